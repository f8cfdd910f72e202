package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountBalance represents an account with its signed net balance for
// financial statements. The sign follows the account's normal balance:
// debit-normal accounts report debit-credit, credit-normal accounts
// report credit-debit.
type AccountBalance struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetReport represents a balance sheet as of a date.
// RetainedEarnings is the current-period net income folded into equity.
// IntegrityWarning is set when assets != liabilities + equity, which
// indicates upstream data corruption; the report is still returned.
type BalanceSheetReport struct {
	AsOf             string           `json:"asOf"`
	Assets           []AccountBalance `json:"assets"`
	Liabilities      []AccountBalance `json:"liabilities"`
	Equity           []AccountBalance `json:"equity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
	RetainedEarnings decimal.Decimal  `json:"retainedEarnings"`
	IntegrityWarning string           `json:"integrityWarning,omitempty"`
}

// IncomeStatementReport represents revenue and expense activity for a period.
type IncomeStatementReport struct {
	Revenue   []AccountBalance `json:"revenue"`
	Expenses  []AccountBalance `json:"expenses"`
	NetIncome decimal.Decimal  `json:"netIncome"`
}
