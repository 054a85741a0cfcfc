package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	portssvc "github.com/boki-app/boki_backend/internal/core/ports/services"
	"github.com/boki-app/boki_backend/internal/middleware"
	"github.com/boki-app/boki_backend/internal/utils/accounting"
)

// reportingService derives the ledger and trial-balance views from the
// journal history. All aggregation happens here, in the account's natural
// sign, over lines fetched in chronological order; nothing is mutated.
type reportingService struct {
	accountRepo   portsrepo.AccountRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepository, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// Ledger returns the chronological postings for one account with a running
// balance. The balance starts at zero at the beginning of the requested
// window and accumulates in the account's natural sign.
func (s *reportingService) Ledger(ctx context.Context, accountID string, from, to *time.Time) (*domain.LedgerReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err // propagate NotFound
	}

	lines, err := s.reportingRepo.ListPostedLines(ctx, accountID, from, to)
	if err != nil {
		logger.Error("Failed to fetch posted lines for ledger", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve ledger data: %w", err)
	}

	rows := make([]domain.LedgerRow, len(lines))
	running := decimal.Zero
	for i, line := range lines {
		signed, err := accounting.SignedAmount(line.Debit, line.Credit, account.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to compute running balance: %w", err)
		}
		running = running.Add(signed)

		description := line.LineDescription
		if description == "" {
			description = line.EntryDescription
		}
		rows[i] = domain.LedgerRow{
			EntryNo:        line.EntryNo,
			Date:           line.EntryDate,
			Description:    description,
			Debit:          line.Debit,
			Credit:         line.Credit,
			RunningBalance: running,
		}
	}

	logger.Debug("Ledger computed", slog.String("account_id", accountID), slog.Int("row_count", len(rows)))
	return &domain.LedgerReport{Account: *account, Rows: rows}, nil
}

// TrialBalance accumulates per-account debit and credit totals over all
// entries dated <= asOf and derives each account's balance in its natural
// sign. Rows are sorted by account code. Over the full, unrestricted
// journal the signed raw balances cancel out exactly; that identity is
// what makes the report a check on the books.
func (s *reportingService) TrialBalance(ctx context.Context, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.reportingRepo.ListPostedLinesUpTo(ctx, asOf)
	if err != nil {
		logger.Error("Failed to fetch posted lines for trial balance", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	totals := make(map[string]*domain.TrialBalanceRow)
	for _, line := range lines {
		row, ok := totals[line.AccountID]
		if !ok {
			row = &domain.TrialBalanceRow{
				AccountID:   line.AccountID,
				AccountCode: line.AccountCode,
				AccountName: line.AccountName,
				AccountType: line.AccountType,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			totals[line.AccountID] = row
		}
		row.Debit = row.Debit.Add(line.Debit)
		row.Credit = row.Credit.Add(line.Credit)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, row := range totals {
		raw := row.Debit.Sub(row.Credit)
		debitNormal, err := accounting.DebitNormal(row.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", row.AccountID, err)
		}
		if debitNormal {
			row.Balance = raw
		} else {
			row.Balance = raw.Neg()
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})

	logger.Debug("Trial balance computed", slog.Int("row_count", len(rows)))
	return rows, nil
}
