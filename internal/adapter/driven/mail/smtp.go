package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

const smtpTimeout = 30 * time.Second

// SMTPMailer envia mensagens multipart (texto + HTML + anexos) por SMTP.
type SMTPMailer struct {
	cfg types.MailConfig
}

// NewSMTPMailer cria o transporte SMTP.
func NewSMTPMailer(cfg types.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send entrega o e-mail e retorna o Message-ID gerado.
func (m *SMTPMailer) Send(ctx context.Context, email entity.Email) (string, error) {
	if len(email.To) == 0 {
		return "", types.ErrNoRecipients
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		return "", err
	}

	client, err := gomail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("error creating SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("error sending email via %s:%d: %w", m.cfg.Host, m.cfg.Port, err)
	}

	return messageID(msg), nil
}

func (m *SMTPMailer) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTimeout(smtpTimeout),
	}
	if m.cfg.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	// O relay interno aceita envio sem autenticação.
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

func (m *SMTPMailer) buildMessage(email entity.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if m.cfg.FromName != "" {
		if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
			return nil, fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
		}
	} else if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
	}

	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient list: %w", err)
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBodyString(gomail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		msg.SetBodyString(gomail.TypeTextHTML, email.HTML)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, email.Text)
	}

	for _, a := range email.Attachments {
		opts := []gomail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		}
		if err := msg.AttachReader(a.Name, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("error attaching %s: %w", a.Name, err)
		}
	}

	return msg, nil
}

func messageID(msg *gomail.Msg) string {
	if ids := msg.GetGenHeader(gomail.HeaderMessageID); len(ids) > 0 {
		return ids[0]
	}
	return ""
}
