package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// ResendMailer envia pela API HTTP do Resend, para ambientes sem relay SMTP.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer cria o transporte Resend a partir da chave configurada.
func NewResendMailer(cfg types.MailConfig) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   sender(cfg),
	}
}

// Send entrega o e-mail e retorna o ID atribuído pelo Resend.
func (m *ResendMailer) Send(ctx context.Context, email entity.Email) (string, error) {
	if len(email.To) == 0 {
		return "", types.ErrNoRecipients
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}
	for _, a := range email.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Content:  a.Data,
			Filename: a.Name,
		})
	}

	resp, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("error sending email via resend: %w", err)
	}
	return resp.Id, nil
}
