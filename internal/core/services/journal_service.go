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
	"github.com/boki-app/boki_backend/internal/utils/accounting"
)

var (
	ErrDescriptionMissing = fmt.Errorf("%w: journal entry description is required", apperrors.ErrValidation)
	ErrEntryNoLines       = fmt.Errorf("%w: journal entry must have at least one line item", apperrors.ErrValidation)
	ErrLineAmountNegative = fmt.Errorf("%w: line item amounts must not be negative", apperrors.ErrValidation)
	ErrLineOneSided       = fmt.Errorf("%w: exactly one of debit or credit must be non-zero per line", apperrors.ErrValidation)
	ErrAccountUnknown     = fmt.Errorf("%w: line item references an unknown account", apperrors.ErrValidation)
	ErrEntryUnbalanced    = fmt.Errorf("%w: journal entry debits and credits do not balance", apperrors.ErrValidation)
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// journalService provides journal posting and retrieval operations.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountSvc  portssvc.AccountService
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountService) portssvc.JournalService {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalService = (*journalService)(nil)

// validateLines checks the per-line amount rules: non-negative amounts and
// exactly one non-zero side per line.
func (s *journalService) validateLines(lines []dto.CreateLineItemRequest) error {
	if len(lines) == 0 {
		return ErrEntryNoLines
	}
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w (line %d)", ErrLineAmountNegative, i+1)
		}
		debitSet := !line.Debit.IsZero()
		creditSet := !line.Credit.IsZero()
		if debitSet == creditSet {
			return fmt.Errorf("%w (line %d)", ErrLineOneSided, i+1)
		}
	}
	return nil
}

// PostEntry validates and persists a new journal entry.
//
// Every check runs before the save transaction opens, so a rejected entry
// never consumes an entry number. The repository assigns the number
// atomically with the insert.
func (s *journalService) PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}
	if err := s.validateLines(req.Lines); err != nil {
		return nil, err
	}

	// Resolve every referenced account before any write.
	accountIDs := make([]string, 0, len(req.Lines))
	seen := make(map[string]bool, len(req.Lines))
	for _, line := range req.Lines {
		if !seen[line.AccountID] {
			seen[line.AccountID] = true
			accountIDs = append(accountIDs, line.AccountID)
		}
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountUnknown, id)
		}
	}

	now := time.Now().UTC()
	entryDate := now
	if req.Date != nil {
		entryDate = *req.Date
	}

	entryID := uuid.NewString()
	lines := make([]domain.LineItem, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.LineItem{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Description: lineReq.Description,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
		}
	}

	// The double-entry check: totals must match exactly, no tolerance.
	totalDebit, totalCredit := accounting.EntryTotals(lines)
	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: debits total %s, credits total %s", ErrEntryUnbalanced, totalDebit, totalCredit)
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   entryDate,
		Description: req.Description,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entryNo, err := s.journalRepo.SaveJournalEntry(ctx, entry, lines)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	entry.EntryNo = entryNo
	entry.Lines = lines

	logger.Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.Int64("entry_no", entry.EntryNo),
		slog.String("total", totalDebit.String()),
	)
	return &entry, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// ListEntries returns a page of entries, newest first, with line accounts
// resolved for display.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	accountIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			if !seen[line.AccountID] {
				seen[line.AccountID] = true
				accountIDs = append(accountIDs, line.AccountID)
			}
		}
	}
	accountsMap := map[string]domain.Account{}
	if len(accountIDs) > 0 {
		accountsMap, err = s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
		if err != nil {
			logger.Error("Failed to resolve accounts for entry listing", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve accounts: %w", err)
		}
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i], accountsMap)
	}

	return &dto.ListJournalEntriesResponse{
		Entries:   responses,
		NextToken: nextToken,
	}, nil
}
