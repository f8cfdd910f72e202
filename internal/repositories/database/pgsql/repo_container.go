package pgsql

import (
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres-backed repository against one
// shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		JournalRepo:       journalRepo,
		ReportingRepo:     newPgxReportingRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		VendorInvoiceRepo: newPgxVendorInvoiceRepository(dbPool),
	}
}
