package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/utils/accounting"
)

// reconciliationService produces the ledger-side activity feed used to pair
// postings against external bank or card statements. It never mutates the
// ledger and it never sees the external statement; matching is the caller's
// concern.
type reconciliationService struct {
	BaseService
	lineRepo    portsrepo.LineReader
	accountRepo portsrepo.AccountReader
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(lineRepo portsrepo.LineReader, accountRepo portsrepo.AccountReader) portssvc.ReconciliationService {
	return &reconciliationService{
		lineRepo:    lineRepo,
		accountRepo: accountRepo,
	}
}

// Ensure reconciliationService implements the ReconciliationService interface
var _ portssvc.ReconciliationService = (*reconciliationService)(nil)

// ListGLActivity retrieves the posted activity of an account up to a date,
// newest first, with debit-minus-credit signed amounts.
// Implements portssvc.ReconciliationService
func (s *reconciliationService) ListGLActivity(ctx context.Context, accountCode string, params dto.ListActivityParams) (*dto.ListActivityResponse, error) {
	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for activity feed", slog.String("account_code", accountCode))
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	asOf := params.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, nextToken, err := s.lineRepo.ListAccountActivity(ctx, accountCode, asOf, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account activity", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to list activity for account %s: %w", accountCode, err)
	}

	s.LogDebug(ctx, "Account activity retrieved",
		slog.String("account_code", accountCode),
		slog.Int("row_count", len(rows)))
	return dto.ToListActivityResponse(accountCode, rows, nextToken), nil
}

// GLBalance computes the account's ledger balance as of a date, signed by
// the account's normal balance so it reads the same way as the reports.
// Implements portssvc.ReconciliationService
func (s *reconciliationService) GLBalance(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for balance query", slog.String("account_code", accountCode))
		}
		return decimal.Zero, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	debit, credit, err := s.lineRepo.GetAccountTotals(ctx, accountCode, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account totals", slog.String("account_code", accountCode))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountCode, err)
	}

	return accounting.SignedBalance(account.AccountType, debit, credit), nil
}
