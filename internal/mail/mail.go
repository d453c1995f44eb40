// Package mail sends the HTML report through an SMTP submission server.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jidn/idid-cli/internal/config"
)

var ErrIncomplete = errors.New("email settings incomplete")

// Message is a single outbound report email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// SendFunc matches smtp.SendMail so tests can intercept delivery.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers report messages via one SMTP endpoint.
type Sender struct {
	settings config.Email
	send     SendFunc
}

// NewSender validates the settings needed to reach the server.
func NewSender(settings config.Email) (*Sender, error) {
	if settings.Host == "" || settings.From == "" || settings.To == "" {
		return nil, fmt.Errorf("%w: host, from, and to are required", ErrIncomplete)
	}
	if settings.Port == 0 {
		settings.Port = 587
	}
	return &Sender{settings: settings, send: smtp.SendMail}, nil
}

// Send submits msg, authenticating only when a username is configured.
func (s *Sender) Send(msg Message) error {
	if msg.From == "" {
		msg.From = s.settings.From
	}
	if len(msg.To) == 0 {
		msg.To = splitAddresses(s.settings.To)
	}

	var auth smtp.Auth
	if s.settings.Username != "" {
		auth = smtp.PlainAuth("", s.settings.Username, s.settings.Password, s.settings.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.settings.Host, s.settings.Port)
	if err := s.send(addr, auth, msg.From, msg.To, encode(msg)); err != nil {
		return fmt.Errorf("send report to %s: %w", addr, err)
	}
	return nil
}

func encode(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

func splitAddresses(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
