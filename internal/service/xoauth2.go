package service

import (
	"fmt"
	"net/smtp"

	"golang.org/x/oauth2"
)

// xoauth2Auth implements the SASL XOAUTH2 mechanism used by Gmail's SMTP
// servers. Access tokens come from the oauth2 token source, which handles
// refresh transparently.
type xoauth2Auth struct {
	user   string
	source oauth2.TokenSource
}

func newXOAuth2Auth(user string, source oauth2.TokenSource) smtp.Auth {
	return &xoauth2Auth{user: user, source: source}
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, fmt.Errorf("xoauth2: refusing to send token over unencrypted connection")
	}

	token, err := a.source.Token()
	if err != nil {
		return "", nil, fmt.Errorf("xoauth2: token refresh failed: %w", err)
	}

	resp := []byte("user=" + a.user + "\x01auth=Bearer " + token.AccessToken + "\x01\x01")
	return "XOAUTH2", resp, nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// The server sends a base64 JSON error as a continuation; an
		// empty response makes it fail the exchange with a proper code.
		return []byte{}, nil
	}
	return nil, nil
}
