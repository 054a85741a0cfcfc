package dto

import (
	"time"

	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse represents one row of the general ledger view.
type LedgerRowResponse struct {
	EntryNo        int64           `json:"entryNo"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse represents the ledger view for one account.
type LedgerResponse struct {
	Account AccountResponse     `json:"account"`
	Rows    []LedgerRowResponse `json:"rows"`
}

// TrialBalanceRowResponse represents a row in the trial balance response.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf,omitempty"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToLedgerResponse converts a domain ledger report to its DTO.
func ToLedgerResponse(report *domain.LedgerReport) LedgerResponse {
	rows := make([]LedgerRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = LedgerRowResponse{
			EntryNo:        row.EntryNo,
			Date:           row.Date.Format("2006-01-02"),
			Description:    row.Description,
			Debit:          row.Debit,
			Credit:         row.Credit,
			RunningBalance: row.RunningBalance,
		}
	}
	return LedgerResponse{
		Account: ToAccountResponse(&report.Account),
		Rows:    rows,
	}
}

// ToTrialBalanceResponse converts domain trial balance rows to the report
// DTO, accumulating the debit/credit grand totals.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf *time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}
	if asOf != nil {
		response.AsOf = asOf.Format("2006-01-02")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}
