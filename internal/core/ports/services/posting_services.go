package services

import (
	"context"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/finbooks/ledger-engine/internal/dto"
)

// PostingReaderSvc defines read operations for posted journal entries
type PostingReaderSvc interface {
	// GetEntryByID retrieves a specific entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries, newest first.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// PostingWriterSvc defines write operations of the posting engine
type PostingWriterSvc interface {
	// PostJournalEntry validates and commits a manual journal entry.
	PostJournalEntry(ctx context.Context, req dto.PostJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// PostSaleInvoice posts the revenue-recognition entry for a sale:
	// debit accounts receivable, credit revenue, at the sale total.
	PostSaleInvoice(ctx context.Context, saleID string, creatorUserID string) (*domain.JournalEntry, error)

	// PostVendorPayment posts a payment against a vendor invoice:
	// debit accounts payable, credit cash.
	PostVendorPayment(ctx context.Context, req dto.PostVendorPaymentRequest, creatorUserID string) (*domain.JournalEntry, error)

	// DeleteEntry permanently removes an entry and its lines. This is a
	// privileged, last-resort operation; ordinary corrections should post a
	// compensating entry instead.
	DeleteEntry(ctx context.Context, entryID string, requestingUserID string) error
}

// PostingSvcFacade combines all posting-related service interfaces
// This is a facade for clients that need access to all operations
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}
