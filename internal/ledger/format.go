// Package ledger reads and writes Ledger-format journal data: entry
// formatting for output, and account/payee extraction from an existing
// journal for completion and suggestions.
package ledger

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
)

// DefaultCurrency is the symbol used when none is configured.
const DefaultCurrency = "£"

// CleanDate normalizes a date string from a bank export to YYYY-MM-DD,
// preferring day-first interpretation for ambiguous forms like 02/03/2024.
func CleanDate(s string) (string, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s),
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format("2006-01-02"), nil
}

// FormatAmount renders an amount for the other side of the transaction: the
// CSV amount is relative to the converted account, so the sign flips. Kept
// as string arithmetic to avoid decimal rounding.
func FormatAmount(amount, currency string) string {
	amount = strings.TrimSpace(amount)
	if neg, ok := strings.CutPrefix(amount, "-"); ok {
		return currency + neg
	}
	return "-" + currency + amount
}

// FormatTransaction renders a simple two-account transaction:
//
//	2024-03-02 PAYEE
//	    Expenses:Food                       -£12.50
//	    Assets:Bank
func FormatTransaction(date, payee, accountIn, accountOut, amount, currency string) (string, error) {
	cleaned, err := CleanDate(date)
	if err != nil {
		return "", err
	}
	formatted := FormatAmount(amount, currency)
	return fmt.Sprintf("%s %s\n    %-36s%12s\n    %s\n",
		cleaned, payee, accountIn, formatted, accountOut), nil
}
