package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single, balanced financial event composed of
// ordered line items. Entries are append-only: corrections require a new
// offsetting entry, never an update.
type JournalEntry struct {
	EntryID     string     `json:"entryID"` // Primary Key (UUID)
	EntryNo     int64      `json:"entryNo"` // Strictly increasing, gap-free from 1
	EntryDate   time.Time  `json:"date"`    // Economic date; defaults to creation time
	Description string     `json:"description"`
	Reference   string     `json:"reference"` // Optional voucher/reference string
	Lines       []LineItem `json:"lines,omitempty"`
	AuditFields
}

// LineItem is a single debit or credit against one account, owned by its
// parent JournalEntry. Exactly one of Debit/Credit is non-zero; both are
// always non-negative.
type LineItem struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"` // Non-owning reference, validated at post time
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
