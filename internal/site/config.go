package site

// DefaultSiteConfig returns the Lumina Dental marketing content.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Name:        "Lumina Dental",
		ShortName:   "Lumina",
		Description: "Advanced Family & Cosmetic Dentistry",
		Email:       "care@luminadental.com",
		Phone:       "555-123-4567",
		Location:    "123 Wellness Blvd, Suite 100",
		Nav: []NavLink{
			{Label: "Our Journey", Href: "#workflows"},
			{Label: "Smile Gallery", Href: "#results"},
			{Label: "Credentials", Href: "#credentials"},
			{Label: "Reviews", Href: "#reviews"},
		},
		Socials: []SocialLink{
			{Platform: "Phone", URL: "tel:555-123-4567"},
			{Platform: "Email", URL: "mailto:care@luminadental.com"},
		},
		Hero: Hero{
			Status: HeroStatus{
				Label: "Next Availability",
				Value: "Today at 2:00 PM",
			},
			Headline: Headline{
				Prefix:    "Modern Dentistry.",
				Highlight: "Timeless Smiles.",
			},
			Subheadline: "Experience pain-free, state-of-the-art dental care designed around your comfort and confidence.",
			Description: "From routine hygiene to complex cosmetic reconstruction, we combine advanced technology with compassionate care.",
		},
		Metrics: []Metric{
			{ID: 1, Label: "Patients Treated", Value: 12500, Prefix: "+"},
			{ID: 2, Label: "Years Experience", Value: 15, Suffix: "+"},
			{ID: 3, Label: "5-Star Reviews", Value: 480},
		},
		Workflow: Workflow{
			Title:    "The Patient",
			Subtitle: "Experience",
			Steps: []WorkflowStep{
				{
					ID:          1,
					Title:       "Digital Consultation",
					Description: "Your journey begins with a comprehensive 3D scan and digital assessment. No uncomfortable molds, just precision diagnostics.",
					Details:     []string{"3D Cone Beam Imaging", "Digital Smile Design", "Insurance Verification"},
					Image:       "https://images.unsplash.com/photo-1629909613654-28e377c37b09?q=80&w=1600&auto=format&fit=crop",
					AccentColor: "text-teal-500",
					MonoText:    "DIAGNOSTICS INITIALIZED",
				},
				{
					ID:          2,
					Title:       "Comfort-First Treatment",
					Description: "Relax in our noise-canceling suites while we perform your treatment using minimally invasive laser technology.",
					Details:     []string{"Sedation Options", "Laser Dentistry", "Noise-Canceling Headphones"},
					Image:       "https://images.unsplash.com/photo-1606811841689-23dfddce3e95?q=80&w=1600&auto=format&fit=crop",
					AccentColor: "text-blue-500",
					MonoText:    "COMFORT PROTOCOLS ACTIVE",
				},
				{
					ID:          3,
					Title:       "Aftercare & Glow",
					Description: "Leave with a brighter smile and a personalized digital care plan directly to your phone. We track your healing remotely.",
					Details:     []string{"Digital Care Plan", "24/7 Virtual Support", "Whitening Take-Home Kit"},
					Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?q=80&w=1600&auto=format&fit=crop",
					AccentColor: "text-indigo-500",
					MonoText:    "SMILE OPTIMIZED",
				},
			},
		},
		Gallery: Gallery{
			Title:    "Smile Gallery",
			Subtitle: "Real Results / Real Patients",
			Items: []GalleryItem{
				{
					ID:            1,
					Title:         "Invisalign Correction",
					Category:      "ORTHODONTICS",
					Description:   "12-month clear aligner treatment resulting in perfectly aligned teeth with no metal braces",
					Duration:      "12 months",
					Result:        "Straight, confident smile",
					Image:         "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=1600&auto=format&fit=crop",
					Span:          "full",
					IsBeforeAfter: true,
				},
				{
					ID:            2,
					Title:         "Porcelain Veneers",
					Category:      "COSMETIC",
					Description:   "Custom-designed porcelain veneers for natural-looking tooth restoration and enhancement",
					Duration:      "2 weeks",
					Result:        "Hollywood-quality smile",
					Image:         "https://images.unsplash.com/photo-1609840114035-3c981b782dfe?q=80&w=1600&auto=format&fit=crop",
					Span:          "third",
					IsBeforeAfter: true,
				},
				{
					ID:            3,
					Title:         "Full Arch Implant",
					Category:      "RESTORATIVE",
					Description:   "Complete dental rehabilitation using advanced implant technology and All-on-4 protocol",
					Duration:      "6 months",
					Result:        "Full functionality restored",
					Image:         "https://images.unsplash.com/photo-1588776814546-daab30f310ce?fm=jpg&q=60&w=3000&auto=format&fit=crop",
					Span:          "third",
					IsBeforeAfter: true,
				},
				{
					ID:            4,
					Title:         "Laser Whitening",
					Category:      "HYGIENE",
					Description:   "Professional laser teeth whitening treatment for dramatically brighter, whiter teeth",
					Duration:      "1 hour",
					Result:        "8+ shades whiter",
					Image:         "https://images.unsplash.com/photo-1598256989800-fe5f95da9787?q=80&w=1600&auto=format&fit=crop",
					Span:          "third",
					IsBeforeAfter: true,
				},
				{
					ID:            5,
					Title:         "Smile Makeover",
					Category:      "COMPLETE CARE",
					Description:   "Comprehensive smile transformation combining orthodontics, whitening, and restorative procedures",
					Duration:      "18 months",
					Result:        "Complete smile rejuvenation",
					Image:         "https://images.unsplash.com/photo-1593022356769-11f762e25ed9?fm=jpg&q=60&w=3000&auto=format&fit=crop",
					Span:          "full",
					IsBeforeAfter: true,
				},
			},
		},
		Testimonials: Testimonials{
			Title:     "Patient",
			Highlight: "Stories",
			Items: []Testimonial{
				{
					ID:     1,
					Quote:  "I used to be terrified of the dentist. Lumina changed everything. The laser treatment was painless, and the staff is incredibly kind.",
					Author: "Sarah Jenkins",
					Role:   "Patient since 2021",
				},
				{
					ID:     2,
					Quote:  "The digital scanning technology is amazing. No more goopy molds! My Invisalign trays fit perfectly from day one.",
					Author: "Michael Ross",
					Role:   "Invisalign Patient",
				},
				{
					ID:     3,
					Quote:  "Dr. Evans is an artist. My veneers look so natural, I can't stop smiling. Best investment I've ever made.",
					Author: "Elena R.",
					Role:   "Cosmetic Patient",
				},
			},
		},
		CTA: CTA{
			Headline:    "Your Best Smile",
			Highlight:   "Starts Here.",
			Description: "Schedule your comprehensive exam today and experience the future of dentistry.",
			ButtonText:  "Book Appointment",
		},
		Contact: ContactSection{
			Title:       "Request Appointment",
			Description: "Fill out the form below to request a time. Our coordinators will contact you within 2 hours to confirm.",
		},
	}
}
