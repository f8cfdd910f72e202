package dto

import (
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterSaleRequest defines the data needed to register a sale for posting.
type RegisterSaleRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	CustomerName  string          `json:"customerName" binding:"required"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	IssueDate     time.Time       `json:"issueDate" binding:"required"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	Total         decimal.Decimal `json:"total"`
	IssueDate     time.Time       `json:"issueDate"`
	PostedEntryID *string         `json:"postedEntryID,omitempty"`
}

// RegisterVendorInvoiceRequest defines the data needed to register a payable invoice.
type RegisterVendorInvoiceRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	VendorName    string          `json:"vendorName" binding:"required"`
	Total         decimal.Decimal `json:"total" binding:"required"`
}

// VendorInvoiceResponse defines the data returned for a vendor invoice.
type VendorInvoiceResponse struct {
	InvoiceID          string          `json:"invoiceID"`
	InvoiceNumber      string          `json:"invoiceNumber"`
	VendorName         string          `json:"vendorName"`
	Total              decimal.Decimal `json:"total"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	Outstanding        decimal.Decimal `json:"outstanding"`
	LastPaymentEntryID *string         `json:"lastPaymentEntryID,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		InvoiceNumber: s.InvoiceNumber,
		CustomerName:  s.CustomerName,
		Total:         s.Total,
		IssueDate:     s.IssueDate,
		PostedEntryID: s.PostedEntryID,
	}
}

// ToVendorInvoiceResponse converts a domain.VendorInvoice to VendorInvoiceResponse DTO.
func ToVendorInvoiceResponse(v *domain.VendorInvoice) VendorInvoiceResponse {
	return VendorInvoiceResponse{
		InvoiceID:          v.InvoiceID,
		InvoiceNumber:      v.InvoiceNumber,
		VendorName:         v.VendorName,
		Total:              v.Total,
		PaidAmount:         v.PaidAmount,
		Outstanding:        v.Outstanding(),
		LastPaymentEntryID: v.LastPaymentEntryID,
	}
}
