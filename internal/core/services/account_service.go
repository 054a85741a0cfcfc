package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/boki-app/boki_backend/internal/apperrors"
	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	portssvc "github.com/boki-app/boki_backend/internal/core/ports/services"
	"github.com/boki-app/boki_backend/internal/dto"
	"github.com/boki-app/boki_backend/internal/middleware"
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

// defaultAccounts is the chart seeded into an empty registry on first boot.
var defaultAccounts = []dto.CreateAccountRequest{
	{Code: "1001", Name: "Cash", AccountType: domain.Asset, Description: "Cash on hand"},
	{Code: "1002", Name: "Bank Deposits", AccountType: domain.Asset, Description: "Ordinary bank deposits"},
	{Code: "2001", Name: "Accounts Payable", AccountType: domain.Liability, Description: "Amounts owed to suppliers"},
	{Code: "3001", Name: "Owner's Capital", AccountType: domain.Equity, Description: "Owner's contributed capital"},
	{Code: "4001", Name: "Sales", AccountType: domain.Revenue, Description: "Revenue from goods and services"},
	{Code: "5001", Name: "Purchases", AccountType: domain.Expense, Description: "Cost of goods purchased"},
	{Code: "5101", Name: "Rent", AccountType: domain.Expense, Description: "Office and store rent"},
	{Code: "5102", Name: "Utilities", AccountType: domain.Expense, Description: "Water, electricity and gas"},
}

// CreateAccount registers a new account after validating its type and code.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Code == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	// Binding already restricts the type, but the invariant belongs to the
	// service, not the transport.
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type '%s'", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// ErrDuplicate (code already taken) propagates to the handler.
		return nil, err
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// ListAccounts returns the full chart of accounts sorted by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// EnsureDefaultAccounts seeds the default chart of accounts when the
// registry is empty. A non-empty registry is left untouched.
func (s *accountService) EnsureDefaultAccounts(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts for seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, req := range defaultAccounts {
		if _, err := s.CreateAccount(ctx, req, "system"); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", req.Code, err)
		}
	}

	logger.Info("Seeded default chart of accounts", slog.Int("count", len(defaultAccounts)))
	return nil
}
