package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a chart-of-accounts row. The user-assigned code is the
// primary key; journal lines reference it directly.
type Account struct {
	AccountCode string      `db:"account_code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	Subtype     string      `db:"subtype"` // Nullable free-form grouping, e.g. "Current Asset"
	Description string      `db:"description"`
	IsActive    bool        `db:"is_active"`
	AuditFields
}
