package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a read model of a customer sale owned by the sales subsystem.
// The ledger only consumes its amount, date and invoice number, and writes
// the posted entry's ID back as a reference (not ownership).
type Sale struct {
	SaleID        string          `json:"saleID"`
	InvoiceNumber string          `json:"invoiceNumber"` // Used as the posting reference
	CustomerName  string          `json:"customerName"`
	Total         decimal.Decimal `json:"total"`
	IssueDate     time.Time       `json:"issueDate"`
	PostedEntryID *string         `json:"postedEntryID"` // Set once the sale has been posted
	AuditFields
}

// VendorInvoice is a read model of a payable invoice owned by the
// purchasing subsystem.
type VendorInvoice struct {
	InvoiceID          string          `json:"invoiceID"`
	InvoiceNumber      string          `json:"invoiceNumber"`
	VendorName         string          `json:"vendorName"`
	Total              decimal.Decimal `json:"total"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	LastPaymentEntryID *string         `json:"lastPaymentEntryID"`
	AuditFields
}

// Outstanding is the amount still payable on the invoice.
func (v VendorInvoice) Outstanding() decimal.Decimal {
	return v.Total.Sub(v.PaidAmount)
}
