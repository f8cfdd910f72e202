package dto

import (
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountBalanceResponse represents an account with its signed balance in a
// financial report
type AccountBalanceResponse struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Revenue  []AccountBalanceResponse `json:"revenue"`
	Expenses []AccountBalanceResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                   `json:"asOf"`
	Assets      []AccountBalanceResponse `json:"assets"`
	Liabilities []AccountBalanceResponse `json:"liabilities"`
	Equity      []AccountBalanceResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	} `json:"summary"`
	IntegrityWarning string `json:"integrityWarning,omitempty"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}

		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit

	return response
}

func toAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = AccountBalanceResponse{
			AccountCode: b.AccountCode,
			Name:        b.Name,
			Balance:     b.Balance,
		}
	}
	return res
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, from, to time.Time) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Revenue:  toAccountBalanceResponses(report.Revenue),
		Expenses: toAccountBalanceResponses(report.Expenses),
	}

	totalRevenue := decimal.Zero
	for _, rev := range report.Revenue {
		totalRevenue = totalRevenue.Add(rev.Balance)
	}
	totalExpenses := decimal.Zero
	for _, exp := range report.Expenses {
		totalExpenses = totalExpenses.Add(exp.Balance)
	}

	response.Summary.TotalRevenue = totalRevenue
	response.Summary.TotalExpenses = totalExpenses
	response.Summary.NetIncome = report.NetIncome

	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:             report.AsOf,
		Assets:           toAccountBalanceResponses(report.Assets),
		Liabilities:      toAccountBalanceResponses(report.Liabilities),
		Equity:           toAccountBalanceResponses(report.Equity),
		IntegrityWarning: report.IntegrityWarning,
	}

	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.RetainedEarnings = report.RetainedEarnings

	return response
}
