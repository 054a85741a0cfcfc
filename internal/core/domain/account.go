package domain

// AccountType defines the fundamental accounting type of an account.
// It determines the account's natural balance sign.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five closed account categories.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents one entry in the chart of accounts.
// Code is unique across all accounts and immutable once referenced by a
// journal line; there is no update or delete path for accounts.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	Code        string      `json:"code"`      // Short unique identifier, e.g. "1001"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"` // Default true; not enforced against new postings
	AuditFields
}
