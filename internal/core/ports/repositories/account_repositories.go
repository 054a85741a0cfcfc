package repositories

import (
	"context"

	"github.com/boki-app/boki_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate
	// wrapped with the offending code when the code is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns the account or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode returns the account or apperrors.ErrNotFound.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs returns the accounts keyed by ID. Missing IDs are
	// simply absent from the map; callers decide whether that is an error.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns all accounts sorted by code ascending.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountAccounts returns the number of registered accounts.
	CountAccounts(ctx context.Context) (int64, error)
}
