package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
)

// sourceDocumentService registers the sale and vendor invoice documents the
// posting engine consumes. The owning systems remain the source of truth;
// this is just the intake the ledger needs to post against.
type sourceDocumentService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	invoiceRepo portsrepo.VendorInvoiceRepositoryFacade
}

// NewSourceDocumentService creates a new source document service.
func NewSourceDocumentService(saleRepo portsrepo.SaleRepositoryFacade, invoiceRepo portsrepo.VendorInvoiceRepositoryFacade) portssvc.SourceDocumentSvc {
	return &sourceDocumentService{
		saleRepo:    saleRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Ensure sourceDocumentService implements the SourceDocumentSvc interface
var _ portssvc.SourceDocumentSvc = (*sourceDocumentService)(nil)

// RegisterSale records a sale so it can later be posted.
// Implements portssvc.SourceDocumentSvc
func (s *sourceDocumentService) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest, creatorUserID string) (*domain.Sale, error) {
	if !req.Total.IsPositive() {
		return nil, fmt.Errorf("%w: sale total must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		CustomerName:  req.CustomerName,
		Total:         req.Total,
		IssueDate:     req.IssueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: invoice number %s already registered", apperrors.ErrDuplicate, req.InvoiceNumber)
		}
		s.LogError(ctx, err, "Failed to save sale", slog.String("invoice_number", req.InvoiceNumber))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.LogInfo(ctx, "Sale registered",
		slog.String("sale_id", sale.SaleID),
		slog.String("invoice_number", sale.InvoiceNumber))
	return &sale, nil
}

// GetSaleByID retrieves a specific sale.
// Implements portssvc.SourceDocumentSvc
func (s *sourceDocumentService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.String("sale_id", saleID))
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

// RegisterVendorInvoice records a payable invoice so payments can be posted against it.
// Implements portssvc.SourceDocumentSvc
func (s *sourceDocumentService) RegisterVendorInvoice(ctx context.Context, req dto.RegisterVendorInvoiceRequest, creatorUserID string) (*domain.VendorInvoice, error) {
	if !req.Total.IsPositive() {
		return nil, fmt.Errorf("%w: invoice total must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	invoice := domain.VendorInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		VendorName:    req.VendorName,
		Total:         req.Total,
		PaidAmount:    decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: invoice number %s already registered", apperrors.ErrDuplicate, req.InvoiceNumber)
		}
		s.LogError(ctx, err, "Failed to save vendor invoice", slog.String("invoice_number", req.InvoiceNumber))
		return nil, fmt.Errorf("failed to save vendor invoice: %w", err)
	}

	s.LogInfo(ctx, "Vendor invoice registered",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

// GetVendorInvoiceByID retrieves a specific vendor invoice.
// Implements portssvc.SourceDocumentSvc
func (s *sourceDocumentService) GetVendorInvoiceByID(ctx context.Context, invoiceID string) (*domain.VendorInvoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find vendor invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to find vendor invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}
