package repositories

import (
	"context"

	"github.com/finbooks/ledger-engine/internal/core/domain"
)

// SaleReader defines read operations for sale documents
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSaleByInvoiceNumber retrieves a sale by its invoice number.
	FindSaleByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Sale, error)
}

// SaleWriter defines write operations for sale documents
type SaleWriter interface {
	// SaveSale persists a new sale awaiting posting.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines the sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// VendorInvoiceReader defines read operations for vendor invoices
type VendorInvoiceReader interface {
	// FindInvoiceByID retrieves a specific vendor invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.VendorInvoice, error)
}

// VendorInvoiceWriter defines write operations for vendor invoices
type VendorInvoiceWriter interface {
	// SaveInvoice persists a new vendor invoice.
	SaveInvoice(ctx context.Context, invoice domain.VendorInvoice) error
}

// VendorInvoiceRepositoryFacade combines the vendor invoice repository interfaces
type VendorInvoiceRepositoryFacade interface {
	VendorInvoiceReader
	VendorInvoiceWriter
}
