package dto

import (
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListActivityParams defines query parameters for the account activity feed.
type ListActivityParams struct {
	AsOf      time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1"`
	Limit     int       `form:"limit,default=50"`
	NextToken *string   `form:"nextToken"`
}

// ActivityLineResponse represents one row of the account activity feed.
type ActivityLineResponse struct {
	EntryID      string          `json:"entryID"`
	EntryDate    time.Time       `json:"entryDate"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	SignedAmount decimal.Decimal `json:"signedAmount"`
}

// ListActivityResponse wraps a page of activity rows with the next-page token.
type ListActivityResponse struct {
	AccountCode string                 `json:"accountCode"`
	Activity    []ActivityLineResponse `json:"activity"`
	NextToken   *string                `json:"nextToken,omitempty"`
}

// GLBalanceResponse defines the data returned for a ledger balance query.
type GLBalanceResponse struct {
	AccountCode string          `json:"accountCode"`
	AsOf        string          `json:"asOf"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToListActivityResponse converts domain activity rows to the feed DTO.
func ToListActivityResponse(accountCode string, rows []domain.LedgerActivityLine, nextToken *string) *ListActivityResponse {
	resp := &ListActivityResponse{
		AccountCode: accountCode,
		Activity:    make([]ActivityLineResponse, len(rows)),
		NextToken:   nextToken,
	}
	for i, row := range rows {
		resp.Activity[i] = ActivityLineResponse{
			EntryID:      row.EntryID,
			EntryDate:    row.EntryDate,
			Description:  row.Description,
			Reference:    row.Reference,
			Debit:        row.Debit,
			Credit:       row.Credit,
			SignedAmount: row.SignedAmount,
		}
	}
	return resp
}
