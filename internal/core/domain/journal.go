package domain

import "time"

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// EntrySource categorizes the origin of a journal entry in a
// machine-checkable way, so reports never have to match on description text.
type EntrySource string

const (
	SourceManual        EntrySource = "MANUAL"
	SourceSaleInvoice   EntrySource = "SALE_INVOICE"
	SourceVendorPayment EntrySource = "VENDOR_PAYMENT"
)

// JournalEntry represents a single balanced financial event composed of
// two or more lines. Entries are created and posted in one atomic
// operation; a POSTED entry is immutable in normal operation.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`     // Primary Key (UUID)
	EntryDate   time.Time   `json:"entryDate"`   // Date the event occurred
	Description string      `json:"description"` // User description
	Reference   string      `json:"reference"`   // External reference / idempotency key, unique when set
	Source      EntrySource `json:"source"`      // MANUAL, SALE_INVOICE, VENDOR_PAYMENT
	Status      EntryStatus `json:"status"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
}
