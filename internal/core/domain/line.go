package domain

import "github.com/shopspring/decimal"

// JournalLine is a single line of a journal entry, affecting one account.
// Exactly one of Debit and Credit is positive; the other is zero.
type JournalLine struct {
	LineID      string          `json:"lineID"`      // Primary Key (UUID)
	EntryID     string          `json:"entryID"`     // FK -> JournalEntry.EntryID
	AccountCode string          `json:"accountCode"` // FK -> Account.Code (account must already exist)
	Debit       decimal.Decimal `json:"debit"`       // >= 0
	Credit      decimal.Decimal `json:"credit"`      // >= 0
	Ordinal     int             `json:"ordinal"`     // Position within the entry
}
