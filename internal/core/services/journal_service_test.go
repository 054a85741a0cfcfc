package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/boki-app/boki_backend/internal/apperrors"
	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	portssvc "github.com/boki-app/boki_backend/internal/core/ports/services"
	"github.com/boki-app/boki_backend/internal/core/services"
	"github.com/boki-app/boki_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem) (int64, error) {
	args := m.Called(ctx, entry, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
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

// --- Mock AccountService (as used by JournalService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) EnsureDefaultAccounts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Suite ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalService
	cashAccount     domain.Account
	salesAccount    domain.Account
	payablesAccount domain.Account
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc)

	suite.userID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1001",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "4001",
		Name:        "Sales",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	suite.payablesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "2001",
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Description: "Cash sale",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, []string{suite.cashAccount.AccountID, suite.salesAccount.AccountID}).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.LineItem")).Return(int64(1), nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(int64(1), entry.EntryNo)
	suite.Equal(req.Description, entry.Description)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Len(entry.Lines, 2)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_DefaultsDateWhenAbsent() {
	ctx := context.Background()
	req := suite.balancedRequest()
	suite.Require().Nil(req.Date)

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(int64(7), nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.False(entry.EntryDate.IsZero())
}

func (suite *JournalServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Description: "Does not balance",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.RequireFromString("99.99")},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(accountsMap, nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)
	// The rejection names both totals so the caller can see the mismatch.
	suite.Contains(err.Error(), "100")
	suite.Contains(err.Error(), "99.99")

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnknownAccount() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		Description: "References a ghost account",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50)},
			{AccountID: unknownID, Credit: decimal.NewFromInt(50)},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(accountsMap, nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrAccountUnknown)
	suite.Contains(err.Error(), unknownID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_MissingDescription() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Description = ""

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrDescriptionMissing)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_NoLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{Description: "Empty entry"}

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrEntryNoLines)
}

func (suite *JournalServiceTestSuite) TestPostEntry_LineWithBothSides() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Description: "Line with both sides set",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(10)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrLineOneSided)
	suite.Contains(err.Error(), "line 1")
}

func (suite *JournalServiceTestSuite) TestPostEntry_LineWithNeitherSide() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Description: "Line with no amounts",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(10)},
			{AccountID: suite.salesAccount.AccountID},
		},
	}

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrLineOneSided)
	suite.Contains(err.Error(), "line 2")
}

func (suite *JournalServiceTestSuite) TestPostEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Description: "Negative amount",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(-100)},
		},
	}

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrLineAmountNegative)
}

func (suite *JournalServiceTestSuite) TestPostEntry_MultiLineSplit() {
	ctx := context.Background()
	// One debit funded by two credits, still balanced.
	req := dto.CreateJournalEntryRequest{
		Description: "Inventory purchase, part cash part credit",
		Lines: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(300)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(120)},
			{AccountID: suite.payablesAccount.AccountID, Credit: decimal.NewFromInt(180)},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:     suite.cashAccount,
		suite.salesAccount.AccountID:    suite.salesAccount,
		suite.payablesAccount.AccountID: suite.payablesAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(int64(3), nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), entry.EntryNo)
	suite.Len(entry.Lines, 3)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListEntries_ClampsLimit() {
	ctx := context.Background()
	suite.mockJournalRepo.On("ListEntries", ctx, 100, (*string)(nil)).Return([]domain.JournalEntry{}, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Limit: 5000})

	suite.Require().NoError(err)
	suite.Empty(resp.Entries)
	suite.Nil(resp.NextToken)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

// --- Gap-free numbering under concurrency ---

// countingJournalRepo is an in-memory stand-in that hands out entry numbers
// the same way the real store does: atomically, only to entries that commit.
type countingJournalRepo struct {
	mu      sync.Mutex
	lastNo  int64
	entries []domain.JournalEntry
}

var _ portsrepo.JournalRepository = (*countingJournalRepo)(nil)

func (r *countingJournalRepo) SaveJournalEntry(_ context.Context, entry domain.JournalEntry, lines []domain.LineItem) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastNo++
	entry.EntryNo = r.lastNo
	entry.Lines = lines
	r.entries = append(r.entries, entry)
	return r.lastNo, nil
}

func (r *countingJournalRepo) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].EntryID == entryID {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *countingJournalRepo) ListEntries(_ context.Context, limit int, _ *string) ([]domain.JournalEntry, *string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) > limit {
		return append([]domain.JournalEntry{}, r.entries[:limit]...), nil, nil
	}
	return append([]domain.JournalEntry{}, r.entries...), nil, nil
}

// staticAccountService resolves every lookup from a fixed map.
type staticAccountService struct {
	portssvc.AccountService
	accounts map[string]domain.Account
}

func (s *staticAccountService) GetAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func TestPostEntry_ConcurrentNumbersAreGapFree(t *testing.T) {
	cash := domain.Account{AccountID: uuid.NewString(), Code: "1001", AccountType: domain.Asset}
	sales := domain.Account{AccountID: uuid.NewString(), Code: "4001", AccountType: domain.Revenue}

	repo := &countingJournalRepo{}
	svc := services.NewJournalService(repo, &staticAccountService{accounts: map[string]domain.Account{
		cash.AccountID:  cash,
		sales.AccountID: sales,
	}})

	const workers = 50
	numbers := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			// Every other worker first fires a request that fails
			// validation; rejected posts must not consume a number.
			if n%2 == 0 {
				bad := dto.CreateJournalEntryRequest{
					Description: "unbalanced",
					Lines: []dto.CreateLineItemRequest{
						{AccountID: cash.AccountID, Debit: decimal.NewFromInt(10)},
						{AccountID: sales.AccountID, Credit: decimal.NewFromInt(11)},
					},
				}
				if _, err := svc.PostEntry(context.Background(), bad, "tester"); err == nil {
					t.Error("expected unbalanced entry to be rejected")
				}
			}

			req := dto.CreateJournalEntryRequest{
				Description: fmt.Sprintf("concurrent post %d", n),
				Lines: []dto.CreateLineItemRequest{
					{AccountID: cash.AccountID, Debit: decimal.NewFromInt(10)},
					{AccountID: sales.AccountID, Credit: decimal.NewFromInt(10)},
				},
			}
			entry, err := svc.PostEntry(context.Background(), req, "tester")
			if err != nil {
				t.Errorf("unexpected post failure: %v", err)
				return
			}
			numbers <- entry.EntryNo
		}(i)
	}
	wg.Wait()
	close(numbers)

	got := make([]int64, 0, workers)
	for n := range numbers {
		got = append(got, n)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	if len(got) != workers {
		t.Fatalf("expected %d posted entries, got %d", workers, len(got))
	}
	for i, n := range got {
		if n != int64(i+1) {
			t.Fatalf("entry numbers are not gap-free: position %d holds %d", i, n)
		}
	}
}
