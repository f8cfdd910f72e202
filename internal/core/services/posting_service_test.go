package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/core/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveSaleInvoiceEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, saleID string) error {
	args := m.Called(ctx, entry, lines, saleID)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveVendorPaymentEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, invoiceID string, amount decimal.Decimal) error {
	args := m.Called(ctx, entry, lines, invoiceID, amount)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListAccountActivity(ctx context.Context, accountCode string, asOf time.Time, limit int, nextToken *string) ([]domain.LedgerActivityLine, *string, error) {
	args := m.Called(ctx, accountCode, asOf, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerActivityLine), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) GetAccountTotals(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock AccountReaderSvc (as used by PostingService) ---
type MockAccountReaderSvc struct {
	mock.Mock
}

var _ portssvc.AccountReaderSvc = (*MockAccountReaderSvc)(nil)

func (m *MockAccountReaderSvc) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountReaderSvc
	mockSaleRepo    *MockSaleRepository
	mockInvoiceRepo *MockVendorInvoiceRepository
	service         portssvc.PostingSvcFacade
	control         services.ControlAccounts
	cashAccount     domain.Account
	revenueAccount  domain.Account
	arAccount       domain.Account
	apAccount       domain.Account
	userID          string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountReaderSvc)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockInvoiceRepo = new(MockVendorInvoiceRepository)
	suite.control = services.ControlAccounts{
		AccountsReceivable: "1100",
		Revenue:            "4000",
		AccountsPayable:    "2000",
		Cash:               "1000",
	}
	suite.service = services.NewPostingService(
		suite.mockJournalRepo,
		suite.mockAccountSvc,
		suite.mockSaleRepo,
		suite.mockInvoiceRepo,
		suite.control,
	)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	suite.arAccount = domain.Account{Code: "1100", Name: "Accounts Receivable", AccountType: domain.Asset, IsActive: true}
	suite.apAccount = domain.Account{Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability, IsActive: true}
	suite.revenueAccount = domain.Account{Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue, IsActive: true}
}

func accountsMap(accounts ...domain.Account) map[string]domain.Account {
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.Code] = a
	}
	return m
}

// --- PostJournalEntry ---

func (suite *PostingServiceTestSuite) TestPostJournalEntry_Success() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate:   time.Now().UTC(),
		Description: "Owner capital contribution",
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
			{AccountCode: "2000", Credit: decimal.NewFromInt(500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(accountsMap(suite.cashAccount, suite.apAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Return(nil).Once()

	entry, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.SourceManual, entry.Source)
	suite.Equal(domain.Posted, entry.Status)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Len(entry.Lines, 2)
	suite.Equal(0, entry.Lines[0].Ordinal)
	suite.Equal(1, entry.Lines[1].Ordinal)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
			{AccountCode: "2000", Credit: decimal.NewFromInt(400)},
		},
	}

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_SingleLine() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
		},
	}

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrEmptyEntry)
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_MalformedLine() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500), Credit: decimal.NewFromInt(500)},
			{AccountCode: "2000", Credit: decimal.NewFromInt(500)},
		},
	}

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrMalformedLine)
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_UnknownAccount() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
			{AccountCode: "9999", Credit: decimal.NewFromInt(500)},
		},
	}

	// 9999 is absent from the returned map
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1000", "9999"}).
		Return(accountsMap(suite.cashAccount), nil).Once()

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownAccount)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.apAccount
	inactive.IsActive = false
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
			{AccountCode: "2000", Credit: decimal.NewFromInt(500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(accountsMap(suite.cashAccount, inactive), nil).Once()

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestPostJournalEntry_DuplicateReference() {
	ctx := context.Background()
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Reference: "INV-042",
		Lines: []dto.PostLineRequest{
			{AccountCode: "1000", Debit: decimal.NewFromInt(500)},
			{AccountCode: "2000", Credit: decimal.NewFromInt(500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(accountsMap(suite.cashAccount, suite.apAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.PostJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicatePosting)
}

// --- PostSaleInvoice ---

func (suite *PostingServiceTestSuite) TestPostSaleInvoice_Success() {
	ctx := context.Background()
	sale := &domain.Sale{
		SaleID:        uuid.NewString(),
		InvoiceNumber: "INV-1001",
		CustomerName:  "Acme Corp",
		Total:         decimal.NewFromInt(1200),
		IssueDate:     time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1100", "4000"}).
		Return(accountsMap(suite.arAccount, suite.revenueAccount), nil).Once()
	suite.mockJournalRepo.On("SaveSaleInvoiceEntry", ctx,
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.Source == domain.SourceSaleInvoice &&
				e.Reference == "INV-1001" &&
				e.EntryDate.Equal(sale.IssueDate)
		}),
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 &&
				lines[0].AccountCode == "1100" && lines[0].Debit.Equal(sale.Total) &&
				lines[1].AccountCode == "4000" && lines[1].Credit.Equal(sale.Total)
		}),
		sale.SaleID,
	).Return(nil).Once()

	entry, err := suite.service.PostSaleInvoice(ctx, sale.SaleID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.SourceSaleInvoice, entry.Source)
	suite.Len(entry.Lines, 2)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostSaleInvoice_AlreadyPosted() {
	ctx := context.Background()
	existingEntryID := uuid.NewString()
	sale := &domain.Sale{
		SaleID:        uuid.NewString(),
		InvoiceNumber: "INV-1001",
		Total:         decimal.NewFromInt(1200),
		PostedEntryID: &existingEntryID,
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()

	_, err := suite.service.PostSaleInvoice(ctx, sale.SaleID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicatePosting)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveSaleInvoiceEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostSaleInvoice_LostRace() {
	ctx := context.Background()
	sale := &domain.Sale{
		SaleID:        uuid.NewString(),
		InvoiceNumber: "INV-1001",
		Total:         decimal.NewFromInt(1200),
		IssueDate:     time.Now().UTC(),
	}

	suite.mockSaleRepo.On("FindSaleByID", ctx, sale.SaleID).Return(sale, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"1100", "4000"}).
		Return(accountsMap(suite.arAccount, suite.revenueAccount), nil).Once()
	// A concurrent posting won the transaction; the locked re-check rejects ours.
	suite.mockJournalRepo.On("SaveSaleInvoiceEntry", ctx, mock.Anything, mock.Anything, sale.SaleID).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.PostSaleInvoice(ctx, sale.SaleID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicatePosting)
}

func (suite *PostingServiceTestSuite) TestPostSaleInvoice_SaleNotFound() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostSaleInvoice(ctx, saleID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- PostVendorPayment ---

func (suite *PostingServiceTestSuite) TestPostVendorPayment_Success() {
	ctx := context.Background()
	invoice := &domain.VendorInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "BILL-77",
		VendorName:    "Paper Supply Co",
		Total:         decimal.NewFromInt(900),
		PaidAmount:    decimal.NewFromInt(300),
	}
	req := dto.PostVendorPaymentRequest{
		InvoiceID:  invoice.InvoiceID,
		Amount:     decimal.NewFromInt(200),
		PaymentRef: "PAY-2026-015",
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"2000", "1000"}).
		Return(accountsMap(suite.apAccount, suite.cashAccount), nil).Once()
	suite.mockJournalRepo.On("SaveVendorPaymentEntry", ctx,
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.Source == domain.SourceVendorPayment && e.Reference == "PAY-2026-015"
		}),
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 &&
				lines[0].AccountCode == "2000" && lines[0].Debit.Equal(req.Amount) &&
				lines[1].AccountCode == "1000" && lines[1].Credit.Equal(req.Amount)
		}),
		invoice.InvoiceID, req.Amount,
	).Return(nil).Once()

	entry, err := suite.service.PostVendorPayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.SourceVendorPayment, entry.Source)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostVendorPayment_ExceedsOutstanding() {
	ctx := context.Background()
	invoice := &domain.VendorInvoice{
		InvoiceID:  uuid.NewString(),
		Total:      decimal.NewFromInt(900),
		PaidAmount: decimal.NewFromInt(800),
	}
	req := dto.PostVendorPaymentRequest{
		InvoiceID:  invoice.InvoiceID,
		Amount:     decimal.NewFromInt(200),
		PaymentRef: "PAY-2026-016",
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	_, err := suite.service.PostVendorPayment(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaymentExceedsBalance)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveVendorPaymentEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostVendorPayment_DuplicateReference() {
	ctx := context.Background()
	invoice := &domain.VendorInvoice{
		InvoiceID:  uuid.NewString(),
		VendorName: "Paper Supply Co",
		Total:      decimal.NewFromInt(900),
		PaidAmount: decimal.Zero,
	}
	req := dto.PostVendorPaymentRequest{
		InvoiceID:  invoice.InvoiceID,
		Amount:     decimal.NewFromInt(200),
		PaymentRef: "PAY-2026-015",
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"2000", "1000"}).
		Return(accountsMap(suite.apAccount, suite.cashAccount), nil).Once()
	suite.mockJournalRepo.On("SaveVendorPaymentEntry", ctx, mock.Anything, mock.Anything, invoice.InvoiceID, req.Amount).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.PostVendorPayment(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicatePosting)
}

func (suite *PostingServiceTestSuite) TestPostVendorPayment_ConcurrentOverpayment() {
	ctx := context.Background()
	invoice := &domain.VendorInvoice{
		InvoiceID:  uuid.NewString(),
		VendorName: "Paper Supply Co",
		Total:      decimal.NewFromInt(900),
		PaidAmount: decimal.Zero,
	}
	req := dto.PostVendorPaymentRequest{
		InvoiceID:  invoice.InvoiceID,
		Amount:     decimal.NewFromInt(500),
		PaymentRef: "PAY-2026-017",
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByCodes", ctx, []string{"2000", "1000"}).
		Return(accountsMap(suite.apAccount, suite.cashAccount), nil).Once()
	suite.mockJournalRepo.On("SaveVendorPaymentEntry", ctx, mock.Anything, mock.Anything, invoice.InvoiceID, req.Amount).
		Return(apperrors.ErrConflict).Once()

	_, err := suite.service.PostVendorPayment(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaymentExceedsBalance)
}

func (suite *PostingServiceTestSuite) TestPostVendorPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.PostVendorPaymentRequest{
		InvoiceID:  uuid.NewString(),
		Amount:     decimal.Zero,
		PaymentRef: "PAY-2026-018",
	}

	_, err := suite.service.PostVendorPayment(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

// --- GetEntryByID / ListEntries / DeleteEntry ---

func (suite *PostingServiceTestSuite) TestGetEntryByID_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1000", Debit: decimal.NewFromInt(10)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "4000", Credit: decimal.NewFromInt(10)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	got, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().NoError(err)
	suite.Len(got.Lines, 2)
}

func (suite *PostingServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PostingServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entries := []domain.JournalEntry{{EntryID: entryID, Status: domain.Posted}}
	linesByEntry := map[string][]domain.JournalLine{
		entryID: {{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1000", Debit: decimal.NewFromInt(10)}},
	}

	suite.mockJournalRepo.On("ListEntries", ctx, 20, (*string)(nil)).Return(entries, "token-next", nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryIDs", ctx, []string{entryID}).Return(linesByEntry, nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-next", *resp.NextToken)
	suite.Len(resp.Entries[0].Lines, 1)
}

func (suite *PostingServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(&domain.JournalEntry{EntryID: entryID}, nil).Once()
	suite.mockJournalRepo.On("DeleteEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
