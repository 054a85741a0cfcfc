package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostedLine is one journal line joined with its entry header and account,
// as fetched for report computation. Report queries return these in
// (entry date asc, entry no asc, line order) so running balances can be
// accumulated directly.
type PostedLine struct {
	EntryNo          int64           `json:"entryNo"`
	EntryDate        time.Time       `json:"entryDate"`
	EntryDescription string          `json:"entryDescription"`
	LineDescription  string          `json:"lineDescription"`
	AccountID        string          `json:"accountID"`
	AccountCode      string          `json:"accountCode"`
	AccountName      string          `json:"accountName"`
	AccountType      AccountType     `json:"accountType"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
}

// LedgerRow is one line of a general ledger view for a single account.
// RunningBalance is the cumulative balance after this row, expressed in
// the account's natural sign.
type LedgerRow struct {
	EntryNo        int64           `json:"entryNo"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is the ledger view for one account.
type LedgerReport struct {
	Account Account     `json:"account"`
	Rows    []LedgerRow `json:"rows"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Balance is expressed in the account's natural sign.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}
