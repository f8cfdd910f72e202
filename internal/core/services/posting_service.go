package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/utils/accounting"
)

var (
	ErrUnknownAccount        = errors.New("entry references an unknown account")
	ErrDuplicatePosting      = errors.New("a posting with this reference already exists")
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds the invoice outstanding balance")
)

// ControlAccounts names the conventional chart codes the automated posting
// workflows debit and credit. They are configuration, not hard-coded: the
// chart is user-defined.
type ControlAccounts struct {
	AccountsReceivable string
	Revenue            string
	AccountsPayable    string
	Cash               string
}

// postingService implements the posting engine: validated, atomic writes of
// balanced journal entries.
type postingService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
	saleRepo    portsrepo.SaleReader
	invoiceRepo portsrepo.VendorInvoiceReader
	control     ControlAccounts
}

// NewPostingService creates a new posting service.
func NewPostingService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	saleRepo portsrepo.SaleReader,
	invoiceRepo portsrepo.VendorInvoiceReader,
	control ControlAccounts,
) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		saleRepo:    saleRepo,
		invoiceRepo: invoiceRepo,
		control:     control,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// verifyAccountsPostable checks that every referenced account exists and is
// active. Unknown codes fail the posting outright; silently dropping lines
// would corrupt the books.
func (s *postingService) verifyAccountsPostable(ctx context.Context, accountCodes []string) error {
	accounts, err := s.accountSvc.GetAccountsByCodes(ctx, accountCodes)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for posting: %w", err)
	}
	for _, code := range accountCodes {
		acc, found := accounts[code]
		if !found {
			return fmt.Errorf("%w: %s", ErrUnknownAccount, code)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
		}
	}
	return nil
}

// PostJournalEntry validates and commits a manual journal entry.
// Implements portssvc.PostingSvcFacade
func (s *postingService) PostJournalEntry(ctx context.Context, req dto.PostJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	accountCodes := make([]string, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: lineReq.AccountCode,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Ordinal:     i,
		}
		accountCodes = append(accountCodes, lineReq.AccountCode)
	}

	if err := accounting.ValidateEntryLines(lines); err != nil {
		return nil, err
	}

	if err := s.verifyAccountsPostable(ctx, uniqueStrings(accountCodes)); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Reference:   req.Reference,
		Source:      domain.SourceManual,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: reference %s", ErrDuplicatePosting, req.Reference)
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entryID),
		slog.Int("line_count", len(lines)))
	entry.Lines = lines
	return &entry, nil
}

// twoLineEntry builds the debit/credit line pair every automated posting uses.
func twoLineEntry(entryID, debitAccount, creditAccount string, amount decimal.Decimal) []domain.JournalLine {
	return []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: debitAccount,
			Debit:       amount,
			Credit:      decimal.Zero,
			Ordinal:     0,
		},
		{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: creditAccount,
			Debit:       decimal.Zero,
			Credit:      amount,
			Ordinal:     1,
		},
	}
}

// PostSaleInvoice posts the revenue-recognition entry for a sale: debit
// accounts receivable, credit revenue, at the sale total. Posting the same
// sale twice returns ErrDuplicatePosting; the repository enforces this under
// the same transaction that writes the entry, so concurrent retries cannot
// both land.
// Implements portssvc.PostingSvcFacade
func (s *postingService) PostSaleInvoice(ctx context.Context, saleID string, creatorUserID string) (*domain.JournalEntry, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.String("sale_id", saleID))
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	if sale.PostedEntryID != nil {
		return nil, fmt.Errorf("%w: sale %s already posted as entry %s", ErrDuplicatePosting, saleID, *sale.PostedEntryID)
	}
	if !sale.Total.IsPositive() {
		return nil, fmt.Errorf("%w: sale %s has non-positive total %s", apperrors.ErrValidation, saleID, sale.Total.String())
	}

	if err := s.verifyAccountsPostable(ctx, []string{s.control.AccountsReceivable, s.control.Revenue}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   sale.IssueDate,
		Description: fmt.Sprintf("Sale invoice %s - %s", sale.InvoiceNumber, sale.CustomerName),
		Reference:   sale.InvoiceNumber,
		Source:      domain.SourceSaleInvoice,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	lines := twoLineEntry(entryID, s.control.AccountsReceivable, s.control.Revenue, sale.Total)

	if err := s.journalRepo.SaveSaleInvoiceEntry(ctx, entry, lines, sale.SaleID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: sale %s", ErrDuplicatePosting, saleID)
		}
		s.LogError(ctx, err, "Failed to save sale invoice entry",
			slog.String("sale_id", saleID), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save sale invoice entry: %w", err)
	}

	s.LogInfo(ctx, "Sale invoice posted",
		slog.String("sale_id", saleID),
		slog.String("entry_id", entryID),
		slog.String("amount", sale.Total.String()))
	entry.Lines = lines
	return &entry, nil
}

// PostVendorPayment posts a payment against a vendor invoice: debit accounts
// payable, credit cash. The payment reference is the caller's idempotency
// key; an invoice legitimately takes several partial payments, so the sale
// style once-only guard does not apply here.
// Implements portssvc.PostingSvcFacade
func (s *postingService) PostVendorPayment(ctx context.Context, req dto.PostVendorPaymentRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find vendor invoice", slog.String("invoice_id", req.InvoiceID))
		}
		return nil, fmt.Errorf("failed to find vendor invoice %s: %w", req.InvoiceID, err)
	}

	if req.Amount.GreaterThan(invoice.Outstanding()) {
		return nil, fmt.Errorf("%w: amount %s, outstanding %s",
			ErrPaymentExceedsBalance, req.Amount.String(), invoice.Outstanding().String())
	}

	if err := s.verifyAccountsPostable(ctx, []string{s.control.AccountsPayable, s.control.Cash}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   now,
		Description: fmt.Sprintf("Payment to %s for invoice %s", invoice.VendorName, invoice.InvoiceNumber),
		Reference:   req.PaymentRef,
		Source:      domain.SourceVendorPayment,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	lines := twoLineEntry(entryID, s.control.AccountsPayable, s.control.Cash, req.Amount)

	if err := s.journalRepo.SaveVendorPaymentEntry(ctx, entry, lines, invoice.InvoiceID, req.Amount); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, fmt.Errorf("%w: payment reference %s", ErrDuplicatePosting, req.PaymentRef)
		case errors.Is(err, apperrors.ErrConflict):
			// Lost a race with a concurrent payment; the locked re-check caught it.
			return nil, fmt.Errorf("%w: amount %s", ErrPaymentExceedsBalance, req.Amount.String())
		}
		s.LogError(ctx, err, "Failed to save vendor payment entry",
			slog.String("invoice_id", req.InvoiceID), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save vendor payment entry: %w", err)
	}

	s.LogInfo(ctx, "Vendor payment posted",
		slog.String("invoice_id", req.InvoiceID),
		slog.String("entry_id", entryID),
		slog.String("amount", req.Amount.String()))
	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves a specific entry with its lines.
// Implements portssvc.PostingSvcFacade
func (s *postingService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry by ID", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntries retrieves a paginated list of entries, newest first.
// Implements portssvc.PostingSvcFacade
func (s *postingService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entryIDs := make([]string, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.EntryID
	}
	linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for listed entries")
		return nil, fmt.Errorf("failed to retrieve lines for entries: %w", err)
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}

	return dto.ToListEntriesResponse(entries, nextToken), nil
}

// DeleteEntry permanently removes an entry and its lines. Ordinary
// corrections should post a compensating entry; this exists for privileged
// cleanup of data that should never have been committed.
// Implements portssvc.PostingSvcFacade
func (s *postingService) DeleteEntry(ctx context.Context, entryID string, requestingUserID string) error {
	if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	s.LogWarn(ctx, "Journal entry permanently deleted",
		slog.String("entry_id", entryID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// uniqueStrings returns the unique values of a slice, preserving first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
