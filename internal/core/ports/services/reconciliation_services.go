package services

import (
	"context"
	"time"

	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/shopspring/decimal"
)

// ReconciliationService defines operations for the ledger-side activity feed
// used to pair postings against external statements
type ReconciliationService interface {
	// ListGLActivity retrieves the posted activity of an account up to a date,
	// newest first, with signed amounts.
	ListGLActivity(ctx context.Context, accountCode string, params dto.ListActivityParams) (*dto.ListActivityResponse, error)

	// GLBalance computes the account's ledger balance as of a date, signed by
	// the account's normal balance.
	GLBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error)
}
