package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account type naturally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalance returns the natural side of the account type.
// This classification drives posting sign conventions and report sign
// conventions alike; it must not be re-derived at call sites.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// IsValid reports whether t is one of the five recognized account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents an entry in the chart of accounts.
// The code is the stable identifier every journal line references; it is
// immutable once any posting refers to it.
type Account struct {
	Code        string      `json:"code"`        // Primary key, globally unique
	Name        string      `json:"name"`        // Display name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	Subtype     string      `json:"subtype"`     // Optional finer classification
	Description string      `json:"description"` // Nullable user description
	IsActive    bool        `json:"isActive"`    // Accounts with history are deactivated, never deleted
	AuditFields
}
