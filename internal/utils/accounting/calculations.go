package accounting

import (
	"fmt"

	"github.com/boki-app/boki_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebitNormal reports whether accounts of the given type carry a
// debit-normal balance. Asset and Expense accounts accumulate on the
// debit side; Liability, Equity and Revenue accounts on the credit side.
// This is the single natural-sign rule consumed by both the ledger and
// trial-balance computations.
func DebitNormal(accountType domain.AccountType) (bool, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return true, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return false, nil
	default:
		return false, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// SignedAmount converts a line's debit/credit pair into the account's
// natural sign: debit-normal accounts gain on debits, credit-normal
// accounts gain on credits.
func SignedAmount(debit, credit decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	debitNormal, err := DebitNormal(accountType)
	if err != nil {
		return decimal.Zero, err
	}
	raw := debit.Sub(credit)
	if debitNormal {
		return raw, nil
	}
	return raw.Neg(), nil
}

// EntryTotals sums the debit and credit columns across a set of lines.
// Totals are compared exactly by callers; no tolerance is applied.
func EntryTotals(lines []domain.LineItem) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}
