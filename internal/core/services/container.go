package services

import (
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Chart of accounts first since the posting engine validates against it
	container.Account = NewChartOfAccountsService(repos.AccountRepo)

	container.SourceDocuments = NewSourceDocumentService(repos.SaleRepo, repos.VendorInvoiceRepo)

	container.Posting = NewPostingService(
		repos.JournalRepo,
		container.Account,
		repos.SaleRepo,
		repos.VendorInvoiceRepo,
		ControlAccounts{
			AccountsReceivable: cfg.ARAccountCode,
			Revenue:            cfg.RevenueAccountCode,
			AccountsPayable:    cfg.APAccountCode,
			Cash:               cfg.CashAccountCode,
		},
	)

	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Reconciliation = NewReconciliationService(repos.JournalRepo, repos.AccountRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*chartOfAccountsService)(nil)
	_ portssvc.PostingSvcFacade      = (*postingService)(nil)
	_ portssvc.ReportingService      = (*reportingService)(nil)
	_ portssvc.ReconciliationService = (*reconciliationService)(nil)
	_ portssvc.SourceDocumentSvc     = (*sourceDocumentService)(nil)
)
