package pgsql

import (
	"context"
	"time"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregation queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData aggregates posted debits and credits per account up to
// asOf. Accounts with no posted lines are omitted.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_code, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.account_code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = 'POSTED' AND e.entry_date <= $1
		GROUP BY a.account_code, a.name, a.account_type
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance data", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}

	return result, nil
}

// GetIncomeStatementData aggregates net revenue and expense balances for the
// period. Revenue accounts report credit minus debit, expense accounts debit
// minus credit, so both come out positive in the normal case.
func (r *PgxReportingRepository) GetIncomeStatementData(ctx context.Context, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error) {
	query := `
		SELECT a.account_code, a.name, a.account_type,
		       COALESCE(SUM(CASE WHEN a.account_type = 'REVENUE' THEN l.credit - l.debit ELSE l.debit - l.credit END), 0) AS balance
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.account_code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = 'POSTED'
		  AND a.account_type IN ('REVENUE', 'EXPENSE')
		  AND e.entry_date >= $1 AND e.entry_date <= $2
		GROUP BY a.account_code, a.name, a.account_type
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query income statement data", err)
	}
	defer rows.Close()

	revenue := []domain.AccountBalance{}
	expenses := []domain.AccountBalance{}
	if err := splitBalancesByType(rows, map[domain.AccountType]*[]domain.AccountBalance{
		domain.Revenue: &revenue,
		domain.Expense: &expenses,
	}); err != nil {
		return nil, nil, err
	}

	return revenue, expenses, nil
}

// GetBalanceSheetData aggregates net balances for asset, liability and equity
// accounts as of a date. Assets report debit minus credit; liabilities and
// equity report credit minus debit.
func (r *PgxReportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error) {
	query := `
		SELECT a.account_code, a.name, a.account_type,
		       COALESCE(SUM(CASE WHEN a.account_type = 'ASSET' THEN l.debit - l.credit ELSE l.credit - l.debit END), 0) AS balance
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.account_code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = 'POSTED'
		  AND a.account_type IN ('ASSET', 'LIABILITY', 'EQUITY')
		  AND e.entry_date <= $1
		GROUP BY a.account_code, a.name, a.account_type
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to query balance sheet data", err)
	}
	defer rows.Close()

	assets := []domain.AccountBalance{}
	liabilities := []domain.AccountBalance{}
	equity := []domain.AccountBalance{}
	if err := splitBalancesByType(rows, map[domain.AccountType]*[]domain.AccountBalance{
		domain.Asset:     &assets,
		domain.Liability: &liabilities,
		domain.Equity:    &equity,
	}); err != nil {
		return nil, nil, nil, err
	}

	return assets, liabilities, equity, nil
}

// splitBalancesByType scans (code, name, type, balance) rows into the slice
// registered for each account type.
func splitBalancesByType(rows pgx.Rows, buckets map[domain.AccountType]*[]domain.AccountBalance) error {
	for rows.Next() {
		var balance domain.AccountBalance
		var accountType domain.AccountType
		if err := rows.Scan(&balance.AccountCode, &balance.Name, &accountType, &balance.Balance); err != nil {
			return apperrors.NewAppError(500, "failed to scan account balance row", err)
		}
		if bucket, ok := buckets[accountType]; ok {
			*bucket = append(*bucket, balance)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating account balance rows", err)
	}
	return nil
}
