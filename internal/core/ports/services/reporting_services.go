package services

import (
	"context"
	"time"

	"github.com/boki-app/boki_backend/internal/core/domain"
)

// ReportingService derives read-only financial views from the journal
// history. It never mutates stored data.
type ReportingService interface {
	// Ledger returns the chronological postings for one account with a
	// running balance in the account's natural sign, filtered by an
	// inclusive date window when the bounds are non-nil.
	Ledger(ctx context.Context, accountID string, from, to *time.Time) (*domain.LedgerReport, error)

	// TrialBalance returns per-account debit/credit totals and the signed
	// balance for every account with at least one posted line dated <=
	// asOf (all entries when asOf is nil), sorted by account code.
	TrialBalance(ctx context.Context, asOf *time.Time) ([]domain.TrialBalanceRow, error)
}
