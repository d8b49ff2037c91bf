package ledger

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"time"
)

// DefaultMaxAgeDays limits how far back journal entries are read.
const DefaultMaxAgeDays = 180

var (
	payeeLine   = regexp.MustCompile(`^([0-9\-]+)(=[0-9\-]+)?(?:\s+([*!]))?(?:\s+(\([^)]*\)))?\s+(.*)$`)
	accountLine = regexp.MustCompile(`^\s+[\[(]?(\S+)[\])]?(?:\s+(\S+))?`)
)

// Pair links a payee to the account the transaction balanced against. Pairs
// feed the suggestion table.
type Pair struct {
	Payee   string
	Account string
}

// ParseFile extracts completion and suggestion data from a Ledger journal.
// accountName is the converted account itself: it is excluded from results,
// since only the "other side" of each transaction is interesting. Entries
// dated before begin are skipped. Automated transactions (~) are ignored.
func ParseFile(r io.Reader, accountName string, begin time.Time) (accounts []string, pairs []Pair, err error) {
	seen := make(map[string]bool)

	var (
		currentDate     time.Time
		currentPayee    string
		currentAccounts []string
		skipSection     bool
	)
	flush := func() {
		if currentDate.IsZero() || currentDate.Before(begin) {
			return
		}
		for _, account := range currentAccounts {
			if !seen[account] {
				seen[account] = true
				accounts = append(accounts, account)
			}
		}
		if len(currentAccounts) == 1 {
			pairs = append(pairs, Pair{Payee: currentPayee, Account: currentAccounts[0]})
		}
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		switch {
		case len(line) > 0 && line[0] == '~':
			skipSection = true

		case len(line) > 0 && line[0] >= '0' && line[0] <= '9':
			flush()
			skipSection = false
			m := payeeLine.FindStringSubmatch(line)
			if m == nil {
				return nil, nil, fmt.Errorf("line %d: bad payee line", lineno)
			}
			currentDate, err = time.Parse("2006-01-02", m[1])
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: bad date: %w", lineno, err)
			}
			currentPayee = m[5]
			currentAccounts = nil

		case skipSection:

		case len(line) > 0 && (line[0] == ' ' || line[0] == '\t'):
			m := accountLine.FindStringSubmatch(line)
			if m == nil {
				return nil, nil, fmt.Errorf("line %d: bad account line", lineno)
			}
			if m[1] != accountName {
				currentAccounts = append(currentAccounts, m[1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	flush()
	return accounts, pairs, nil
}
