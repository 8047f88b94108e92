// Package mail entrega o relatório diário por SMTP ou pela API do Resend.
package mail

import (
	"fmt"
	netmail "net/mail"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// NewMailRepository escolhe o transporte configurado.
func NewMailRepository(cfg types.MailConfig) (repository.MailRepository, error) {
	switch cfg.Transport {
	case "", types.MailTransportSMTP:
		return NewSMTPMailer(cfg), nil
	case types.MailTransportResend:
		return NewResendMailer(cfg), nil
	}
	return nil, fmt.Errorf("unsupported mail transport %q", cfg.Transport)
}

// sender formats the From header as `"Name" <address>`.
func sender(cfg types.MailConfig) string {
	if cfg.FromName == "" {
		return cfg.From
	}
	return (&netmail.Address{Name: cfg.FromName, Address: cfg.From}).String()
}
