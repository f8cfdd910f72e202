package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the persisted form of a customer sale the posting engine reads
// from and writes its entry reference back to.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerName  string          `db:"customer_name"`
	Total         decimal.Decimal `db:"total"`
	IssueDate     time.Time       `db:"issue_date"`
	PostedEntryID *string         `db:"posted_entry_id"` // Nullable until the sale is posted
	AuditFields
}

// VendorInvoice is the persisted form of a payable invoice.
type VendorInvoice struct {
	InvoiceID          string          `db:"invoice_id"`
	InvoiceNumber      string          `db:"invoice_number"`
	VendorName         string          `db:"vendor_name"`
	Total              decimal.Decimal `db:"total"`
	PaidAmount         decimal.Decimal `db:"paid_amount"`
	LastPaymentEntryID *string         `db:"last_payment_entry_id"`
	AuditFields
}
