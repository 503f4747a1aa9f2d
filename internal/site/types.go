package site

// NavLink is a navigation entry in the site header.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SocialLink points at an external contact channel.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Metric is a headline statistic shown in the hero section.
type Metric struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// WorkflowStep is one step of the patient-experience explainer.
type WorkflowStep struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Image       string   `json:"image"`
	AccentColor string   `json:"accentColor"`
	MonoText    string   `json:"monoText"`
}

// GalleryItem is a case-study entry in the smile gallery.
type GalleryItem struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Result        string `json:"result"`
	Image         string `json:"image"`
	Span          string `json:"span,omitempty"`
	IsBeforeAfter bool   `json:"isBeforeAfter,omitempty"`
}

// Testimonial is a patient review shown in the marquee.
type Testimonial struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// HeroStatus is the availability badge in the hero section.
type HeroStatus struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Headline is a two-part heading with an emphasized segment.
type Headline struct {
	Prefix    string `json:"prefix"`
	Highlight string `json:"highlight"`
}

// Hero is the above-the-fold content block.
type Hero struct {
	Status      HeroStatus `json:"status"`
	Headline    Headline   `json:"headline"`
	Subheadline string     `json:"subheadline"`
	Description string     `json:"description"`
}

// Workflow is the patient-experience section.
type Workflow struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Steps    []WorkflowStep `json:"steps"`
}

// Gallery is the smile-gallery section.
type Gallery struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []GalleryItem `json:"items"`
}

// Testimonials is the patient-stories section.
type Testimonials struct {
	Title     string        `json:"title"`
	Highlight string        `json:"highlight"`
	Items     []Testimonial `json:"items"`
}

// CTA is the booking call-to-action block.
type CTA struct {
	Headline    string `json:"headline"`
	Highlight   string `json:"highlight"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

// ContactSection holds the copy above the contact form.
type ContactSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteConfig describes every piece of marketing content on the site.
// It is constructed once at startup and never mutated.
type SiteConfig struct {
	Name         string         `json:"name"`
	ShortName    string         `json:"shortName"`
	Description  string         `json:"description"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Location     string         `json:"location"`
	Nav          []NavLink      `json:"nav"`
	Socials      []SocialLink   `json:"socials"`
	Hero         Hero           `json:"hero"`
	Metrics      []Metric       `json:"metrics"`
	Workflow     Workflow       `json:"workflow"`
	Gallery      Gallery        `json:"gallery"`
	Testimonials Testimonials   `json:"testimonials"`
	CTA          CTA            `json:"cta"`
	Contact      ContactSection `json:"contact"`
}
