package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"aleb-backend/config"
)

// Attachment references a file already on disk to attach to a message.
type Attachment struct {
	Filename string // name shown to the recipient
	Path     string // location on local disk
}

// Message is a fully composed outbound email. It is built fresh per request
// and not mutated after construction.
type Message struct {
	FromName    string
	FromAddress string
	To          string
	CC          string // blank disables cc
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers a composed message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPSender delivers mail over authenticated SMTP. Two instances exist at
// runtime, one per sender account (contact and careers).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPSender(host, port string, account config.SMTPAccount) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: account.Username,
		password: account.Password,
	}
}

// Send composes the MIME message and hands it to the SMTP relay in a single
// blocking attempt. No retries.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := buildMIME(msg)
	if err != nil {
		return fmt.Errorf("failed to build mime message: %w", err)
	}

	recipients := []string{msg.To}
	if msg.CC != "" {
		recipients = append(recipients, msg.CC)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := net.JoinHostPort(s.host, s.port)
	if err := smtp.SendMail(addr, auth, msg.FromAddress, recipients, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks whether the sender has usable SMTP credentials.
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
