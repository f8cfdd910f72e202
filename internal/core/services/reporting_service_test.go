package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetIncomeStatementData(ctx context.Context, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.AccountBalance), args.Get(1).([]domain.AccountBalance), args.Error(2)
}

func (m *MockReportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).([]domain.AccountBalance), args.Get(1).([]domain.AccountBalance), args.Get(2).([]domain.AccountBalance), args.Error(3)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
	asOf     time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
	suite.asOf = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
}

func bal(code, name string, amount int64) domain.AccountBalance {
	return domain.AccountBalance{AccountCode: code, Name: name, Balance: decimal.NewFromInt(amount)}
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_FoldsNetIncomeIntoEquity() {
	ctx := context.Background()

	// Cash 1500 + AR 500 against AP 800 + Capital 1000; 200 net income keeps A = L + E.
	suite.mockRepo.On("GetBalanceSheetData", ctx, suite.asOf).Return(
		[]domain.AccountBalance{bal("1000", "Cash", 1500), bal("1100", "Accounts Receivable", 500)},
		[]domain.AccountBalance{bal("2000", "Accounts Payable", 800)},
		[]domain.AccountBalance{bal("3000", "Owner Capital", 1000)},
		nil,
	).Once()
	suite.mockRepo.On("GetIncomeStatementData", ctx, time.Time{}, suite.asOf).Return(
		[]domain.AccountBalance{bal("4000", "Sales Revenue", 700)},
		[]domain.AccountBalance{bal("5000", "Office Supplies", 500)},
		nil,
	).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal("2026-06-30", report.AsOf)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(2000)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(800)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(1200)))
	suite.True(report.RetainedEarnings.Equal(decimal.NewFromInt(200)))
	suite.Empty(report.IntegrityWarning)

	suite.Require().Len(report.Equity, 2)
	suite.Equal(services.RetainedEarningsLabel, report.Equity[1].Name)
	suite.True(report.Equity[1].Balance.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_SkipsZeroBalances() {
	ctx := context.Background()

	suite.mockRepo.On("GetBalanceSheetData", ctx, suite.asOf).Return(
		[]domain.AccountBalance{bal("1000", "Cash", 1000), bal("1200", "Prepaid Rent", 0)},
		[]domain.AccountBalance{},
		[]domain.AccountBalance{bal("3000", "Owner Capital", 1000)},
		nil,
	).Once()
	suite.mockRepo.On("GetIncomeStatementData", ctx, time.Time{}, suite.asOf).Return(
		[]domain.AccountBalance{}, []domain.AccountBalance{}, nil,
	).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets, 1)
	suite.Equal("1000", report.Assets[0].AccountCode)
	// Zero net income adds no retained earnings row.
	suite.Len(report.Equity, 1)
	suite.Empty(report.IntegrityWarning)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_IntegrityWarningOnBrokenIdentity() {
	ctx := context.Background()

	// Assets overstate liabilities plus equity by 100; the report must still
	// be produced, with the violation surfaced.
	suite.mockRepo.On("GetBalanceSheetData", ctx, suite.asOf).Return(
		[]domain.AccountBalance{bal("1000", "Cash", 1100)},
		[]domain.AccountBalance{},
		[]domain.AccountBalance{bal("3000", "Owner Capital", 1000)},
		nil,
	).Once()
	suite.mockRepo.On("GetIncomeStatementData", ctx, time.Time{}, suite.asOf).Return(
		[]domain.AccountBalance{}, []domain.AccountBalance{}, nil,
	).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.NotEmpty(report.IntegrityWarning)
	suite.Contains(report.IntegrityWarning, "do not equal")
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_NetIncome() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetIncomeStatementData", ctx, from, suite.asOf).Return(
		[]domain.AccountBalance{bal("4000", "Sales Revenue", 900), bal("4100", "Interest Income", 0)},
		[]domain.AccountBalance{bal("5000", "Office Supplies", 300)},
		nil,
	).Once()

	report, err := suite.service.IncomeStatement(ctx, from, suite.asOf)

	suite.Require().NoError(err)
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(600)))
	// Zero-balance revenue account is dropped.
	suite.Len(report.Revenue, 1)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_PassesThroughRows() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		{AccountCode: "1000", AccountName: "Cash", AccountType: domain.Asset, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{AccountCode: "4000", AccountName: "Sales Revenue", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}

	suite.mockRepo.On("GetTrialBalanceData", ctx, suite.asOf).Return(rows, nil).Once()

	got, err := suite.service.TrialBalance(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal(rows, got)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
