package repositories

import (
	"context"
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit and credit totals as of a specific date
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetIncomeStatementData retrieves signed revenue and expense balances for a period
	GetIncomeStatementData(ctx context.Context, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error)

	// GetBalanceSheetData retrieves signed asset, liability and equity balances as of a specific date
	GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error)
}
