package models

import "github.com/shopspring/decimal"

// JournalLine represents a single line within a journal entry, affecting one
// account. Exactly one of Debit or Credit is positive; the other is zero.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Ordinal     int             `db:"ordinal"` // Preserves the order lines were submitted in
	AuditFields
}
