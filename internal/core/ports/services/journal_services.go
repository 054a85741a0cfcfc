package services

import (
	"context"

	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/boki-app/boki_backend/internal/dto"
)

// JournalService exposes journal posting and retrieval operations.
type JournalService interface {
	// PostEntry validates and persists a new journal entry. All
	// validation runs before any write; a rejected entry consumes no
	// entry number. The returned entry carries its assigned number and
	// lines.
	PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a page of entries, newest first, with account
	// references resolved in the response.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}
