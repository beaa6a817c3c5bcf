// Package mail delivers short plain-text notes to the game group over SMTP.
package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"

	"github.com/gamenight-tools/gamenight/internal/config"
	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Message is one note to send to every configured recipient.
type Message struct {
	Subject string
	Body    string
}

// Sender delivers a message to the whole recipient list.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type smtpSender struct {
	cfg    config.SMTPConfig
	client *gomail.Client
}

// NewSMTPSender creates a Sender speaking STARTTLS SMTP with plain auth.
func NewSMTPSender(cfg config.SMTPConfig) (Sender, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, gnerr.Wrap(err, "creating SMTP client")
	}

	return &smtpSender{cfg: cfg, client: client}, nil
}

// Send implements Sender. Each recipient gets their own copy, so nobody sees
// the rest of the list.
func (s *smtpSender) Send(ctx context.Context, msg *Message) error {
	messages, err := buildMessages(s.cfg, msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, messages...); err != nil {
		return gnerr.WrapWithCode(err, gnerr.CodeInternal, "sending mail")
	}
	return nil
}

func buildMessages(cfg config.SMTPConfig, msg *Message) ([]*gomail.Msg, error) {
	if msg == nil {
		return nil, gnerr.InvalidArgument("message is nil")
	}

	messages := make([]*gomail.Msg, 0, len(cfg.Recipients))
	for _, recipient := range cfg.Recipients {
		m := gomail.NewMsg()
		if err := m.From(cfg.Username); err != nil {
			return nil, gnerr.Wrapf(err, "invalid sender address %q", cfg.Username)
		}
		if err := m.To(recipient); err != nil {
			return nil, gnerr.Wrapf(err, "invalid recipient address %q", recipient)
		}
		m.Subject(msg.Subject)
		m.SetBodyString(gomail.TypeTextPlain, msg.Body)
		messages = append(messages, m)
	}
	return messages, nil
}
