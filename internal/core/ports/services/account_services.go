package services

import (
	"context"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/finbooks/ledger-engine/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByCode retrieves a specific account by its code.
	GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// GetAccountsByCodes retrieves multiple accounts keyed by code.
	GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount registers a new account in the chart.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an account's descriptive fields.
	UpdateAccount(ctx context.Context, accountCode string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive. Accounts with posted
	// history are never deleted.
	DeactivateAccount(ctx context.Context, accountCode string, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
