package services

import (
	"context"
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// IncomeStatement generates a revenue and expense report for a specific period
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
}
