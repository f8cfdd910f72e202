package dto

import (
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostLineRequest defines one line of a manual journal entry.
// Exactly one of Debit or Credit must be positive; the service enforces this
// since the constraint spans two fields.
type PostLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// PostJournalEntryRequest defines the data needed to post a manual entry.
type PostJournalEntryRequest struct {
	EntryDate   time.Time         `json:"entryDate" binding:"required"`
	Description string            `json:"description"`
	Reference   string            `json:"reference"` // Optional external idempotency key
	Lines       []PostLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// PostVendorPaymentRequest defines the data needed to post a payment against
// a vendor invoice. PaymentRef is the caller's idempotency key; retrying with
// the same reference never posts twice.
type PostVendorPaymentRequest struct {
	InvoiceID  string          `json:"invoiceID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaymentRef string          `json:"paymentRef" binding:"required"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID      string          `json:"lineID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string         `json:"entryID"`
	EntryDate   time.Time      `json:"entryDate"`
	Description string         `json:"description"`
	Reference   string         `json:"reference,omitempty"`
	Source      string         `json:"source"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	CreatedBy   string         `json:"createdBy"`
	Lines       []LineResponse `json:"lines,omitempty"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of entries with the token for the next page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse DTO.
func ToLineResponse(line *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:      line.LineID,
		AccountCode: line.AccountCode,
		Debit:       line.Debit,
		Credit:      line.Credit,
	}
}

// ToLineResponses converts a slice of domain.JournalLine to []LineResponse.
func ToLineResponses(lines []domain.JournalLine) []LineResponse {
	responses := make([]LineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToLineResponse(&line)
	}
	return responses
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		Source:      string(e.Source),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
		Lines:       ToLineResponses(e.Lines),
	}
}

// ToListEntriesResponse converts a page of domain entries to the list DTO.
func ToListEntriesResponse(entries []domain.JournalEntry, nextToken *string) *ListEntriesResponse {
	resp := &ListEntriesResponse{
		Entries:   make([]EntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i, e := range entries {
		resp.Entries[i] = ToEntryResponse(&e)
	}
	return resp
}
