package services

import (
	"context"

	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/boki-app/boki_backend/internal/dto"
)

// AccountService exposes chart-of-accounts operations to handlers and to
// the journal service (which resolves line accounts through it).
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// EnsureDefaultAccounts seeds the default chart of accounts when the
	// registry is empty. Called once at startup.
	EnsureDefaultAccounts(ctx context.Context) error
}
