package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database model for the journal_entries table. EntryNo
// is assigned by the store at insert time and is gap free.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryNo     int64     `db:"entry_no"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
	Reference   string    `db:"reference"`
	AuditFields
}

// JournalLine is the database model for the journal_lines table. Exactly one
// of Debit and Credit is non-zero, enforced by a table CHECK constraint as
// well as by validation above the store.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   string          `db:"account_id"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
