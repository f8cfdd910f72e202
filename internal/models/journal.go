package models

import "time"

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// EntrySource records which workflow created a journal entry.
type EntrySource string

const (
	SourceManual        EntrySource = "MANUAL"
	SourceSaleInvoice   EntrySource = "SALE_INVOICE"
	SourceVendorPayment EntrySource = "VENDOR_PAYMENT"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple lines.
type JournalEntry struct {
	EntryID     string      `db:"entry_id"`
	EntryDate   time.Time   `db:"entry_date"`
	Description string      `db:"description"`
	Reference   string      `db:"reference"` // Nullable; unique among POSTED entries when set
	Source      EntrySource `db:"source"`
	Status      EntryStatus `db:"status"`
	AuditFields
}
