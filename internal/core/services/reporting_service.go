package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/utils/accounting"
)

// RetainedEarningsLabel is the synthetic equity row the balance sheet folds
// current-period net income into. There is no closing process; income simply
// reports as equity until the books are closed elsewhere.
const RetainedEarningsLabel = "Retained Earnings (current period)"

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("as_of", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	s.LogInfo(ctx, "Trial balance report generated",
		slog.String("as_of", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// IncomeStatement generates a revenue and expense report for a specific period
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error) {
	revenue, expenses, err := s.reportingRepo.GetIncomeStatementData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	revenue = dropZeroBalances(revenue)
	expenses = dropZeroBalances(expenses)

	report := &domain.IncomeStatementReport{
		Revenue:   revenue,
		Expenses:  expenses,
		NetIncome: sumBalances(revenue).Sub(sumBalances(expenses)),
	}

	s.LogInfo(ctx, "Income statement generated",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("revenue_accounts", len(revenue)),
		slog.Int("expense_accounts", len(expenses)))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date.
// Current-period net income is folded into equity as a synthetic retained
// earnings row so the statement balances without a closing process. The
// A = L + E identity is checked and reported as a non-fatal warning when
// violated.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("as_of", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	// Net income since inception of the books up to asOf.
	revenue, expenses, err := s.reportingRepo.GetIncomeStatementData(ctx, time.Time{}, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve net income for balance sheet",
			slog.String("as_of", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve net income data: %w", err)
	}
	netIncome := sumBalances(revenue).Sub(sumBalances(expenses))

	assets = dropZeroBalances(assets)
	liabilities = dropZeroBalances(liabilities)
	equity = dropZeroBalances(equity)

	if !netIncome.IsZero() {
		equity = append(equity, domain.AccountBalance{
			Name:    RetainedEarningsLabel,
			Balance: netIncome,
		})
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf.Format("2006-01-02"),
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      sumBalances(assets),
		TotalLiabilities: sumBalances(liabilities),
		TotalEquity:      sumBalances(equity),
		RetainedEarnings: netIncome,
	}

	difference := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	if difference.Abs().GreaterThan(accounting.CurrencyEpsilon) {
		report.IntegrityWarning = fmt.Sprintf(
			"assets (%s) do not equal liabilities plus equity (%s); difference %s",
			report.TotalAssets.String(),
			report.TotalLiabilities.Add(report.TotalEquity).String(),
			difference.String(),
		)
		s.LogWarn(ctx, "Balance sheet identity violated",
			slog.String("as_of", report.AsOf),
			slog.String("difference", difference.String()))
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("as_of", report.AsOf),
		slog.Int("asset_accounts", len(assets)),
		slog.Int("liability_accounts", len(liabilities)),
		slog.Int("equity_accounts", len(equity)))
	return report, nil
}

// dropZeroBalances removes accounts with a zero balance from report sections.
func dropZeroBalances(balances []domain.AccountBalance) []domain.AccountBalance {
	result := make([]domain.AccountBalance, 0, len(balances))
	for _, b := range balances {
		if b.Balance.IsZero() {
			continue
		}
		result = append(result, b)
	}
	return result
}

func sumBalances(balances []domain.AccountBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	return total
}
