package mapping

import (
	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/boki-app/boki_backend/internal/models"
)

// JournalEntryToDomain converts a journal entry row to its domain
// representation. Lines are attached separately by the repository.
func JournalEntryToDomain(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNo:     m.EntryNo,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   m.Reference,
		AuditFields: AuditFieldsToDomain(m.AuditFields),
	}
}

// JournalEntryToModel converts a domain journal entry to its database
// representation. EntryNo is left for the store to assign.
func JournalEntryToModel(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNo:     d.EntryNo,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Reference:   d.Reference,
		AuditFields: AuditFieldsToModel(d.AuditFields),
	}
}

// JournalLineToDomain converts a journal line row to its domain
// representation.
func JournalLineToDomain(m models.JournalLine) domain.LineItem {
	return domain.LineItem{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}

// JournalLineToModel converts a domain line item to its database
// representation. LineNo preserves the order lines were submitted in.
func JournalLineToModel(d domain.LineItem, lineNo int) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		LineNo:      lineNo,
		AccountID:   d.AccountID,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
	}
}
