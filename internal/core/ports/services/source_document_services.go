package services

import (
	"context"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/finbooks/ledger-engine/internal/dto"
)

// SourceDocumentSvc defines intake and lookup operations for the documents
// the posting engine consumes. Ownership of these documents lives with the
// sales and purchasing systems; the ledger only registers what it needs.
type SourceDocumentSvc interface {
	// RegisterSale records a sale so it can later be posted.
	RegisterSale(ctx context.Context, req dto.RegisterSaleRequest, creatorUserID string) (*domain.Sale, error)

	// GetSaleByID retrieves a specific sale.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// RegisterVendorInvoice records a payable invoice so payments can be posted against it.
	RegisterVendorInvoice(ctx context.Context, req dto.RegisterVendorInvoiceRequest, creatorUserID string) (*domain.VendorInvoice, error)

	// GetVendorInvoiceByID retrieves a specific vendor invoice.
	GetVendorInvoiceByID(ctx context.Context, invoiceID string) (*domain.VendorInvoice, error)
}
