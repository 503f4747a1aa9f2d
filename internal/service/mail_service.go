package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luminadental/lumina/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"
)

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// MailService delivers email. Implementations must be safe for concurrent use.
type MailService interface {
	Send(email *Email) error
}

// SMTPMailService delivers mail over SMTP. The auth strategy is selected
// once at construction and never mutated afterwards.
type SMTPMailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService builds the SMTP transport from configuration. OAuth2
// (XOAUTH2) is preferred when a client id is configured; otherwise the
// dialer falls back to password authentication.
func NewMailService(cfg *config.Config) (*SMTPMailService, error) {
	if cfg.EmailUser == "" {
		return nil, fmt.Errorf("mail transport: EMAIL_USER is not configured")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	if cfg.OAuthClientID != "" {
		oauthConfig := &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			Endpoint:     google.Endpoint,
		}

		token := &oauth2.Token{
			AccessToken:  cfg.OAuthAccessToken,
			RefreshToken: cfg.OAuthRefreshToken,
		}
		if token.RefreshToken != "" {
			// Mark the seed token expired so the source refreshes lazily
			// and caches the result.
			token.Expiry = time.Now().Add(-time.Minute)
		}

		source := oauthConfig.TokenSource(context.Background(), token)
		dialer.Auth = newXOAuth2Auth(cfg.EmailUser, source)
	} else if cfg.EmailPass == "" {
		return nil, fmt.Errorf("mail transport: neither OAuth2 nor EMAIL_PASS is configured")
	}

	return &SMTPMailService{
		dialer: dialer,
		from:   cfg.EmailUser,
	}, nil
}

// UnconfiguredMailService returns a transport that fails every send.
// It lets the server run without mail credentials; contact submissions
// surface the dispatch-failure response instead of crashing startup.
func UnconfiguredMailService() MailService {
	return unconfiguredMailService{}
}

type unconfiguredMailService struct{}

func (unconfiguredMailService) Send(email *Email) error {
	return fmt.Errorf("%w: mail transport is not configured", ErrDispatch)
}

// Send delivers a single message.
func (s *SMTPMailService) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	return nil
}
