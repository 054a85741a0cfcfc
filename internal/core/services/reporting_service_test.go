package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/boki-app/boki_backend/internal/apperrors"
	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	portssvc "github.com/boki-app/boki_backend/internal/core/ports/services"
	"github.com/boki-app/boki_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) ListPostedLines(ctx context.Context, accountID string, from, to *time.Time) ([]domain.PostedLine, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedLine), args.Error(1)
}

func (m *MockReportingRepository) ListPostedLinesUpTo(ctx context.Context, asOf *time.Time) ([]domain.PostedLine, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedLine), args.Error(1)
}

// --- Suite ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	cash              domain.Account
	sales             domain.Account
	rent              domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockReportingRepo)

	suite.cash = domain.Account{AccountID: uuid.NewString(), Code: "1001", Name: "Cash", AccountType: domain.Asset}
	suite.sales = domain.Account{AccountID: uuid.NewString(), Code: "4001", Name: "Sales", AccountType: domain.Revenue}
	suite.rent = domain.Account{AccountID: uuid.NewString(), Code: "5101", Name: "Rent", AccountType: domain.Expense}
}

func (suite *ReportingServiceTestSuite) postedLine(acc domain.Account, entryNo int64, day int, debit, credit int64, lineDesc, entryDesc string) domain.PostedLine {
	return domain.PostedLine{
		EntryNo:          entryNo,
		EntryDate:        time.Date(2025, 4, day, 0, 0, 0, 0, time.UTC),
		EntryDescription: entryDesc,
		LineDescription:  lineDesc,
		AccountID:        acc.AccountID,
		AccountCode:      acc.Code,
		AccountName:      acc.Name,
		AccountType:      acc.AccountType,
		Debit:            decimal.NewFromInt(debit),
		Credit:           decimal.NewFromInt(credit),
	}
}

func (suite *ReportingServiceTestSuite) TestLedger_DebitNormalRunningBalance() {
	ctx := context.Background()

	// Cash receives 100 from a sale, then pays 30 of rent.
	lines := []domain.PostedLine{
		suite.postedLine(suite.cash, 1, 1, 100, 0, "", "Cash sale"),
		suite.postedLine(suite.cash, 2, 3, 0, 30, "Paid in cash", "April rent"),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.cash.AccountID).Return(&suite.cash, nil).Once()
	suite.mockReportingRepo.On("ListPostedLines", ctx, suite.cash.AccountID, (*time.Time)(nil), (*time.Time)(nil)).Return(lines, nil).Once()

	report, err := suite.service.Ledger(ctx, suite.cash.AccountID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(suite.cash.AccountID, report.Account.AccountID)
	suite.Require().Len(report.Rows, 2)

	suite.Equal(int64(1), report.Rows[0].EntryNo)
	suite.True(report.Rows[0].RunningBalance.Equal(decimal.NewFromInt(100)))
	// Line description missing: the entry description fills in.
	suite.Equal("Cash sale", report.Rows[0].Description)

	suite.Equal(int64(2), report.Rows[1].EntryNo)
	suite.True(report.Rows[1].RunningBalance.Equal(decimal.NewFromInt(70)))
	suite.Equal("Paid in cash", report.Rows[1].Description)
}

func (suite *ReportingServiceTestSuite) TestLedger_CreditNormalRunningBalance() {
	ctx := context.Background()

	// A credit grows a revenue account's balance.
	lines := []domain.PostedLine{
		suite.postedLine(suite.sales, 1, 1, 0, 100, "", "Cash sale"),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.sales.AccountID).Return(&suite.sales, nil).Once()
	suite.mockReportingRepo.On("ListPostedLines", ctx, suite.sales.AccountID, (*time.Time)(nil), (*time.Time)(nil)).Return(lines, nil).Once()

	report, err := suite.service.Ledger(ctx, suite.sales.AccountID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].RunningBalance.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestLedger_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.Ledger(ctx, accountID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "ListPostedLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestLedger_PassesDateWindow() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.cash.AccountID).Return(&suite.cash, nil).Once()
	suite.mockReportingRepo.On("ListPostedLines", ctx, suite.cash.AccountID, &from, &to).Return([]domain.PostedLine{}, nil).Once()

	report, err := suite.service.Ledger(ctx, suite.cash.AccountID, &from, &to)

	suite.Require().NoError(err)
	suite.Empty(report.Rows)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsAndNaturalSign() {
	ctx := context.Background()

	// Entry 1: cash sale of 100. Entry 2: rent of 30 paid in cash.
	lines := []domain.PostedLine{
		suite.postedLine(suite.cash, 1, 1, 100, 0, "", "Cash sale"),
		suite.postedLine(suite.sales, 1, 1, 0, 100, "", "Cash sale"),
		suite.postedLine(suite.rent, 2, 3, 30, 0, "", "April rent"),
		suite.postedLine(suite.cash, 2, 3, 0, 30, "", "April rent"),
	}
	suite.mockReportingRepo.On("ListPostedLinesUpTo", ctx, (*time.Time)(nil)).Return(lines, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	// Sorted by account code.
	suite.Equal("1001", rows[0].AccountCode)
	suite.Equal("4001", rows[1].AccountCode)
	suite.Equal("5101", rows[2].AccountCode)

	// Cash: 100 debited, 30 credited, 70 left in its natural debit sign.
	suite.True(rows[0].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(rows[0].Credit.Equal(decimal.NewFromInt(30)))
	suite.True(rows[0].Balance.Equal(decimal.NewFromInt(70)))

	// Sales: credit-normal, so a 100 credit is a positive balance.
	suite.True(rows[1].Credit.Equal(decimal.NewFromInt(100)))
	suite.True(rows[1].Balance.Equal(decimal.NewFromInt(100)))

	// Rent: debit-normal expense.
	suite.True(rows[2].Debit.Equal(decimal.NewFromInt(30)))
	suite.True(rows[2].Balance.Equal(decimal.NewFromInt(30)))

	// The books identity: total debits equal total credits, and the raw
	// signed balances cancel to zero across the full report.
	totalDebit, totalCredit, rawSum := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
		rawSum = rawSum.Add(row.Debit.Sub(row.Credit))
	}
	suite.True(totalDebit.Equal(totalCredit))
	suite.True(rawSum.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Idempotent() {
	ctx := context.Background()
	lines := []domain.PostedLine{
		suite.postedLine(suite.cash, 1, 1, 100, 0, "", "Cash sale"),
		suite.postedLine(suite.sales, 1, 1, 0, 100, "", "Cash sale"),
	}
	suite.mockReportingRepo.On("ListPostedLinesUpTo", ctx, (*time.Time)(nil)).Return(lines, nil).Twice()

	first, err := suite.service.TrialBalance(ctx, nil)
	suite.Require().NoError(err)
	second, err := suite.service.TrialBalance(ctx, nil)
	suite.Require().NoError(err)

	suite.Require().Equal(len(first), len(second))
	for i := range first {
		suite.Equal(first[i].AccountCode, second[i].AccountCode)
		suite.True(first[i].Balance.Equal(second[i].Balance))
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_PassesCutoffDate() {
	ctx := context.Background()
	asOf := time.Date(2025, 4, 2, 23, 59, 59, 0, time.UTC)

	// Only the entries dated on or before the cutoff come back from the
	// repository; the service reports exactly those.
	lines := []domain.PostedLine{
		suite.postedLine(suite.cash, 1, 1, 100, 0, "", "Cash sale"),
		suite.postedLine(suite.sales, 1, 1, 0, 100, "", "Cash sale"),
	}
	suite.mockReportingRepo.On("ListPostedLinesUpTo", ctx, &asOf).Return(lines, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, &asOf)

	suite.Require().NoError(err)
	suite.Len(rows, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_EmptyJournal() {
	ctx := context.Background()
	suite.mockReportingRepo.On("ListPostedLinesUpTo", ctx, (*time.Time)(nil)).Return([]domain.PostedLine{}, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, nil)

	suite.Require().NoError(err)
	suite.Empty(rows)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
