package ledger

import (
	"regexp"
	"strings"
)

var digits = regexp.MustCompile(`\d`)

// CleanPayee normalizes a payee string for matching: digits collapse to 0 so
// that reference numbers embedded in bank descriptions do not split what is
// otherwise the same payee.
func CleanPayee(s string) string {
	return strings.ToUpper(strings.TrimSpace(digits.ReplaceAllString(s, "0")))
}

// Suggester proposes an account for a payee from historical payee/account
// pairs, by most frequent association. It is the starting value for the
// interactive prompt, never a final answer.
type Suggester struct {
	counts map[string]map[string]int
}

func NewSuggester(pairs []Pair) *Suggester {
	counts := make(map[string]map[string]int)
	for _, pair := range pairs {
		payee := CleanPayee(pair.Payee)
		if counts[payee] == nil {
			counts[payee] = make(map[string]int)
		}
		counts[payee][pair.Account]++
	}
	return &Suggester{counts: counts}
}

// Suggest returns the account most often paired with payee, or "" when the
// payee has never been seen. Ties break towards the lexicographically
// smaller account so suggestions are stable.
func (s *Suggester) Suggest(payee string) string {
	counts := s.counts[CleanPayee(payee)]
	var best string
	bestCount := 0
	for account, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || account < best)) {
			best = account
			bestCount = count
		}
	}
	return best
}
