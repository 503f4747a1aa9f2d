package service

import (
	"fmt"
	"html/template"
	"time"

	"github.com/luminadental/lumina/internal/config"
	"github.com/luminadental/lumina/internal/site"
)

// ContactSubmission carries the sanitized fields of one form submission.
// It exists only for the lifetime of the request.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactMessageInfo gathers request metadata included in the clinic
// notification.
type ContactMessageInfo struct {
	IPAddress  string
	UserAgent  string
	Referrer   string
	ReceivedAt time.Time
}

// ContactService composes and dispatches the two emails of a contact
// submission: the clinic notification first, then the auto-reply to the
// submitter. The pair is strictly sequential and not compensated — a
// failed auto-reply leaves the already-delivered notification in place.
type ContactService struct {
	mail        MailService
	clinicEmail string
	clinicPhone string
	siteName    string
}

// NewContactService creates a contact service over the given transport.
func NewContactService(mail MailService, cfg *config.Config, siteCfg *site.SiteConfig) *ContactService {
	return &ContactService{
		mail:        mail,
		clinicEmail: cfg.ClinicEmail,
		clinicPhone: siteCfg.Phone,
		siteName:    siteCfg.Name,
	}
}

// Deliver sends the notification and auto-reply for a sanitized submission.
// The notification send must succeed before the auto-reply is attempted.
func (s *ContactService) Deliver(sub *ContactSubmission, info *ContactMessageInfo) error {
	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}

	notificationHTML, err := renderNotification(notificationData{
		Name:     template.HTML(sub.Name),
		Email:    template.HTML(sub.Email),
		Phone:    template.HTML(phone),
		Message:  template.HTML(sub.Message),
		SiteName: s.siteName,
		IP:       info.IPAddress,
		Time:     info.ReceivedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("compose notification: %w", err)
	}

	if err := s.mail.Send(&Email{
		To:      s.clinicEmail,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		HTML:    notificationHTML,
	}); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	autoReplyHTML, err := renderAutoReply(autoReplyData{
		Name:     template.HTML(sub.Name),
		Message:  template.HTML(sub.Message),
		Phone:    s.clinicPhone,
		SiteName: s.siteName,
	})
	if err != nil {
		return fmt.Errorf("compose auto-reply: %w", err)
	}

	if err := s.mail.Send(&Email{
		To:      sub.Email,
		Subject: fmt.Sprintf("Thank you for contacting %s", s.siteName),
		HTML:    autoReplyHTML,
	}); err != nil {
		return fmt.Errorf("send auto-reply: %w", err)
	}

	return nil
}
