package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerActivityLine is one row of the reconciliation activity feed for a
// designated cash/bank account: a posted journal line joined with its
// entry's header fields and signed with the debit-minus-credit convention.
// Pairing these rows against an external bank statement is the caller's job.
type LedgerActivityLine struct {
	EntryID      string          `json:"entryID"`
	EntryDate    time.Time       `json:"entryDate"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	SignedAmount decimal.Decimal `json:"signedAmount"`
}
