package repositories

import (
	"context"

	"github.com/boki-app/boki_backend/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries.
type JournalRepository interface {
	// SaveJournalEntry persists the entry header and all of its lines in a
	// single database transaction and assigns the next entry number from
	// the shared counter inside that same transaction. The counter row
	// lock serializes concurrent posts, so numbers are unique, gap-free
	// and strictly increasing; if the transaction rolls back the number is
	// returned to the pool. Returns the assigned entry number.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem) (int64, error)

	// FindEntryByID returns the entry with its lines in posting order, or
	// apperrors.ErrNotFound.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a page of entries with their lines, sorted by
	// (entry date desc, entry no desc). The returned token resumes after
	// the last entry of the page; nil means the listing is exhausted.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}
