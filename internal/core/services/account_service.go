package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
)

// chartOfAccountsService manages the chart of accounts.
type chartOfAccountsService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewChartOfAccountsService creates a new chart of accounts service.
func NewChartOfAccountsService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &chartOfAccountsService{
		accountRepo: accountRepo,
	}
}

// Ensure chartOfAccountsService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*chartOfAccountsService)(nil)

// CreateAccount registers a new account in the chart.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		Code:        req.AccountCode,
		Name:        req.Name,
		AccountType: req.AccountType,
		Subtype:     req.Subtype,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.AccountCode)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", req.AccountCode))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_code", account.Code),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByCode retrieves a specific account by its code.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("account_code", accountCode))
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}
	return account, nil
}

// GetAccountsByCodes retrieves multiple accounts keyed by code.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, accountCodes)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts by codes", slog.Int("code_count", len(accountCodes)))
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of accounts.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's descriptive fields. The code and type
// are immutable once any posting references the account.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) UpdateAccount(ctx context.Context, accountCode string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Subtype != nil {
		account.Subtype = *req.Subtype
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to update account %s: %w", accountCode, err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_code", accountCode))
	return account, nil
}

// DeactivateAccount marks an account as inactive so no new postings can
// reference it. History stays intact.
// Implements portssvc.AccountSvcFacade
func (s *chartOfAccountsService) DeactivateAccount(ctx context.Context, accountCode string, requestingUserID string) error {
	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		return fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountCode, requestingUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_code", accountCode))
		return fmt.Errorf("failed to deactivate account %s: %w", accountCode, err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_code", accountCode))
	return nil
}
