package repositories

import (
	"context"
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryByReference retrieves the posted entry carrying the given external reference.
	FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// SaveEntry persists an entry and its lines atomically within one transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// SaveSaleInvoiceEntry persists the entry and lines for a sale invoice and
	// writes the entry ID back onto the sale, all within one transaction.
	// The sale row is locked for update so concurrent postings of the same
	// sale serialize; a sale that is already posted returns ErrDuplicate.
	SaveSaleInvoiceEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, saleID string) error

	// SaveVendorPaymentEntry persists the entry and lines for a vendor payment,
	// increments the invoice's paid amount and records the entry as its last
	// payment, all within one transaction. The invoice row is locked for update;
	// a payment reference already used returns ErrDuplicate and a payment that
	// would exceed the outstanding balance returns ErrConflict.
	SaveVendorPaymentEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, invoiceID string, amount decimal.Decimal) error

	// DeleteEntry removes an entry and its lines atomically.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LineReader defines read operations for journal line data
type LineReader interface {
	// FindLinesByEntryID retrieves all lines of a single entry in ordinal order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)

	// ListAccountActivity retrieves a paginated, date-descending feed of posted
	// lines touching the given account up to asOf, joined with their entry
	// headers. It returns the rows, a token for the next page, and an error.
	ListAccountActivity(ctx context.Context, accountCode string, asOf time.Time, limit int, nextToken *string) ([]domain.LedgerActivityLine, *string, error)

	// GetAccountTotals returns the summed debit and credit amounts posted to
	// the account up to asOf.
	GetAccountTotals(ctx context.Context, accountCode string, asOf time.Time) (debit decimal.Decimal, credit decimal.Decimal, err error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LineReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
