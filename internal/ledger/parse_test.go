package ledger

import (
	"strings"
	"testing"
	"time"
)

const sampleJournal = `2024-01-05 TESCO STORES
    Expenses:Food                       -£12.50
    Assets:Bank

2024-01-10 * ACME LTD
    Income:Salary                     -£1500.00
    Assets:Bank

~ monthly
    Expenses:Rent                       £800.00
    Assets:Bank

2024-02-01 TESCO STORES
    Expenses:Food                        -£9.99
    Assets:Bank

2023-01-01 OLD ENTRY
    Expenses:Archive                     -£1.00
    Assets:Bank
`

func TestParseFile(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	accounts, pairs, err := ParseFile(strings.NewReader(sampleJournal), "Assets:Bank", begin)
	if err != nil {
		t.Fatal(err)
	}

	wantAccounts := []string{"Expenses:Food", "Income:Salary"}
	if len(accounts) != len(wantAccounts) {
		t.Fatalf("accounts = %v, want %v", accounts, wantAccounts)
	}
	for i, want := range wantAccounts {
		if accounts[i] != want {
			t.Errorf("accounts[%d] = %q, want %q", i, accounts[i], want)
		}
	}

	wantPairs := []Pair{
		{"TESCO STORES", "Expenses:Food"},
		{"ACME LTD", "Income:Salary"},
		{"TESCO STORES", "Expenses:Food"},
	}
	if len(pairs) != len(wantPairs) {
		t.Fatalf("pairs = %v, want %v", pairs, wantPairs)
	}
	for i, want := range wantPairs {
		if pairs[i] != want {
			t.Errorf("pairs[%d] = %v, want %v", i, pairs[i], want)
		}
	}
}

func TestParseFileSkipsAutomated(t *testing.T) {
	accounts, _, err := ParseFile(strings.NewReader(sampleJournal), "Assets:Bank", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range accounts {
		if a == "Expenses:Rent" {
			t.Error("automated transaction account leaked into results")
		}
	}
}

func TestParseFileAgeCutoff(t *testing.T) {
	accounts, _, err := ParseFile(strings.NewReader(sampleJournal), "Assets:Bank", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range accounts {
		if a == "Expenses:Archive" {
			found = true
		}
	}
	if !found {
		t.Error("zero begin time should include old entries")
	}
}

func TestParseFileFlushesLastEntry(t *testing.T) {
	journal := "2024-01-05 SOLO\n    Expenses:Misc    -£1.00\n    Assets:Bank\n"
	accounts, pairs, err := ParseFile(strings.NewReader(journal), "Assets:Bank", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 || accounts[0] != "Expenses:Misc" {
		t.Fatalf("accounts = %v", accounts)
	}
	if len(pairs) != 1 || pairs[0] != (Pair{"SOLO", "Expenses:Misc"}) {
		t.Fatalf("pairs = %v", pairs)
	}
}

func TestParseFileMultiLegEntryYieldsNoPair(t *testing.T) {
	journal := `2024-01-05 SPLIT
    Expenses:Food                        -£5.00
    Expenses:Drink                       -£5.00
    Assets:Bank
`
	accounts, pairs, err := ParseFile(strings.NewReader(journal), "Assets:Bank", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 {
		t.Fatalf("accounts = %v", accounts)
	}
	if len(pairs) != 0 {
		t.Fatalf("pairs = %v, want none for a split transaction", pairs)
	}
}

func TestParseFileBadDate(t *testing.T) {
	journal := "9999-99-99 BROKEN\n    Expenses:X    -£1.00\n"
	if _, _, err := ParseFile(strings.NewReader(journal), "Assets:Bank", time.Time{}); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestCleanPayee(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tesco Stores 3021", "TESCO STORES 0000"},
		{"  acme ltd  ", "ACME LTD"},
		{"REF 12/34", "REF 00/00"},
	}
	for _, tt := range tests {
		if got := CleanPayee(tt.in); got != tt.want {
			t.Errorf("CleanPayee(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggester(t *testing.T) {
	s := NewSuggester([]Pair{
		{"TESCO STORES 1234", "Expenses:Food"},
		{"TESCO STORES 5678", "Expenses:Food"},
		{"TESCO STORES 1234", "Expenses:Household"},
		{"ACME LTD", "Income:Salary"},
	})

	if got := s.Suggest("Tesco Stores 9999"); got != "Expenses:Food" {
		t.Errorf("Suggest = %q, want most frequent Expenses:Food", got)
	}
	if got := s.Suggest("acme ltd"); got != "Income:Salary" {
		t.Errorf("Suggest = %q, want Income:Salary", got)
	}
	if got := s.Suggest("NEVER SEEN"); got != "" {
		t.Errorf("Suggest = %q, want empty for unknown payee", got)
	}
}

func TestSuggesterTieBreaksLexicographically(t *testing.T) {
	s := NewSuggester([]Pair{
		{"SHOP", "Expenses:B"},
		{"SHOP", "Expenses:A"},
	})
	if got := s.Suggest("SHOP"); got != "Expenses:A" {
		t.Errorf("Suggest = %q, want lexicographically smaller Expenses:A", got)
	}
}
