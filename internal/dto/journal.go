package dto

import (
	"time"

	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest is one debit or credit line of a new entry.
// Amounts must be non-negative and exactly one of debit/credit non-zero;
// the service enforces both.
type CreateLineItemRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines the data needed to post a new entry.
// Date defaults to the current time when absent.
type CreateJournalEntryRequest struct {
	Date        *time.Time              `json:"date"`
	Description string                  `json:"description" binding:"required,notblank"`
	Reference   string                  `json:"reference"`
	Lines       []CreateLineItemRequest `json:"lines" binding:"required,min=1,dive"`
}

// LineItemResponse is one line of an entry with its account resolved.
type LineItemResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string             `json:"entryID"`
	EntryNo     int64              `json:"entryNo"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Reference   string             `json:"reference,omitempty"`
	Lines       []LineItemResponse `json:"lines"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy,omitempty"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of entries with the resume token.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain entry to its DTO, resolving
// line accounts through the provided map. Accounts missing from the map
// leave code/name empty rather than failing the conversion.
func ToJournalEntryResponse(entry *domain.JournalEntry, accounts map[string]domain.Account) JournalEntryResponse {
	lines := make([]LineItemResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lines[i] = LineItemResponse{
			LineID:      line.LineID,
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
		}
		if acc, ok := accounts[line.AccountID]; ok {
			lines[i].AccountCode = acc.Code
			lines[i].AccountName = acc.Name
		}
	}
	return JournalEntryResponse{
		EntryID:     entry.EntryID,
		EntryNo:     entry.EntryNo,
		Date:        entry.EntryDate,
		Description: entry.Description,
		Reference:   entry.Reference,
		Lines:       lines,
		CreatedAt:   entry.CreatedAt,
		CreatedBy:   entry.CreatedBy,
	}
}
