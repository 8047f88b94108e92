package repository

import (
	"context"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

// TransactionRepository defines the interface for the POS viewer API.
// Each call is a single bounded attempt; failures are *types.FetchError.
type TransactionRepository interface {
	GetTransactionSummary(ctx context.Context, r entity.DateRange) ([]entity.DailySummary, error)
	GetTransactionReport(ctx context.Context, r entity.DateRange) ([]entity.TransactionRecord, error)
}
