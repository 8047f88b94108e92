package repository

import (
	"context"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

// MailRepository delivers an email and returns the transport's message ID.
type MailRepository interface {
	Send(ctx context.Context, email entity.Email) (string, error)
}
