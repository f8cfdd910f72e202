package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale documents.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, invoice_number, customer_name, total, issue_date, posted_entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.SaleID,
		&sale.InvoiceNumber,
		&sale.CustomerName,
		&sale.Total,
		&sale.IssueDate,
		&sale.PostedEntryID,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
	)
	return sale, err
}

// SaveSale persists a new sale awaiting posting. A reused invoice number
// maps to ErrDuplicate.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (sale_id, invoice_number, customer_name, total, issue_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.InvoiceNumber,
		sale.CustomerName,
		sale.Total,
		sale.IssueDate,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sale with invoice number %s already exists", apperrors.ErrDuplicate, sale.InvoiceNumber)
		}
		return fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves a specific sale by its unique identifier.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`

	sale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by ID "+saleID, err)
	}
	return &sale, nil
}

// FindSaleByInvoiceNumber retrieves a sale by its invoice number.
func (r *PgxSaleRepository) FindSaleByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE invoice_number = $1;`

	sale, err := scanSale(r.Pool.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by invoice number "+invoiceNumber, err)
	}
	return &sale, nil
}

type PgxVendorInvoiceRepository struct {
	BaseRepository
}

// newPgxVendorInvoiceRepository creates a new repository for vendor invoices.
func newPgxVendorInvoiceRepository(pool *pgxpool.Pool) portsrepo.VendorInvoiceRepositoryFacade {
	return &PgxVendorInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxVendorInvoiceRepository implements portsrepo.VendorInvoiceRepositoryFacade
var _ portsrepo.VendorInvoiceRepositoryFacade = (*PgxVendorInvoiceRepository)(nil)

// SaveInvoice persists a new vendor invoice. A reused invoice number maps to
// ErrDuplicate.
func (r *PgxVendorInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.VendorInvoice) error {
	query := `
		INSERT INTO vendor_invoices (invoice_id, invoice_number, vendor_name, total, paid_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.VendorName,
		invoice.Total,
		invoice.PaidAmount,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vendor invoice with number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to save vendor invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves a specific vendor invoice by its unique identifier.
func (r *PgxVendorInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.VendorInvoice, error) {
	query := `
		SELECT invoice_id, invoice_number, vendor_name, total, paid_amount, last_payment_entry_id, created_at, created_by, last_updated_at, last_updated_by
		FROM vendor_invoices
		WHERE invoice_id = $1;
	`
	var invoice domain.VendorInvoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&invoice.InvoiceID,
		&invoice.InvoiceNumber,
		&invoice.VendorName,
		&invoice.Total,
		&invoice.PaidAmount,
		&invoice.LastPaymentEntryID,
		&invoice.CreatedAt,
		&invoice.CreatedBy,
		&invoice.LastUpdatedAt,
		&invoice.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vendor invoice by ID "+invoiceID, err)
	}
	return &invoice, nil
}
