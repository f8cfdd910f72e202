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
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountCode string, userID string, now time.Time) error {
	args := m.Called(ctx, accountCode, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ChartOfAccountsServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *ChartOfAccountsServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewChartOfAccountsService(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *ChartOfAccountsServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		Subtype:     "Current Asset",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "1000" && a.AccountType == domain.Asset && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000", account.Code)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.True(account.IsActive)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ChartOfAccountsServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ChartOfAccountsServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "1000",
		Name:        "Cash",
		AccountType: domain.AccountType("CONTRA"),
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *ChartOfAccountsServiceTestSuite) TestGetAccountByCode_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByCode(ctx, "9999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChartOfAccountsServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	newName := "Cash and Equivalents"

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, "1000", dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
}

func (suite *ChartOfAccountsServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{Code: "1000", AccountType: domain.Asset, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, "1000", suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "1000", suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ChartOfAccountsServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "9999", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChartOfAccountsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartOfAccountsServiceTestSuite))
}
