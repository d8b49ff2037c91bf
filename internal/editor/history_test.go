package editor

import "testing"

func newTestHistory(entries ...string) *History {
	h := NewHistory(DefaultHistorySize)
	// Add oldest first so entries[0] ends up newest.
	for i := len(entries) - 1; i >= 0; i-- {
		h.Add(entries[i])
	}
	return h
}

func TestHistoryAddNewestFirst(t *testing.T) {
	h := NewHistory(3)
	h.Add("one")
	h.Add("two")
	h.Add("three")
	if h.At(0) != "three" || h.At(2) != "one" {
		t.Fatalf("entries = [%s %s %s]", h.At(0), h.At(1), h.At(2))
	}
	h.Add("four")
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	if h.At(2) != "two" {
		t.Fatalf("oldest = %q, want %q", h.At(2), "two")
	}
}

func TestHistoryAddDeduplicatesNewest(t *testing.T) {
	h := NewHistory(10)
	h.Add("same")
	h.Add("same")
	if h.Len() != 1 {
		t.Fatalf("len = %d, want 1", h.Len())
	}
	h.Add("other")
	h.Add("same")
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
}

func TestRecallRoundTrip(t *testing.T) {
	e := New(Options{History: newTestHistory("newest", "older")})
	e.Set("in progress")
	e.RecallOlder()
	if got := e.String(); got != "newest" {
		t.Fatalf("buffer = %q, want %q", got, "newest")
	}
	e.RecallNewer()
	if got := e.String(); got != "in progress" {
		t.Fatalf("buffer = %q, want snapshot %q", got, "in progress")
	}
}

func TestRecallWalksOlderAndBack(t *testing.T) {
	e := New(Options{History: newTestHistory("a", "b", "c")})
	e.RecallOlder()
	e.RecallOlder()
	e.RecallOlder()
	if got := e.String(); got != "c" {
		t.Fatalf("buffer = %q, want %q", got, "c")
	}
	// No older entries left: stays put.
	e.RecallOlder()
	if got := e.String(); got != "c" {
		t.Fatalf("buffer = %q, want %q", got, "c")
	}
	e.RecallNewer()
	e.RecallNewer()
	if got := e.String(); got != "a" {
		t.Fatalf("buffer = %q, want %q", got, "a")
	}
	e.RecallNewer()
	if got := e.String(); got != "" {
		t.Fatalf("buffer = %q, want restored empty snapshot", got)
	}
	// Already at the present: no-op.
	e.RecallNewer()
	if got := e.String(); got != "" {
		t.Fatalf("buffer = %q, want empty", got)
	}
}

func TestHasOlderHistory(t *testing.T) {
	e := New(Options{History: newTestHistory("only")})
	if !e.HasOlderHistory() {
		t.Fatal("HasOlderHistory = false, want true")
	}
	e.RecallOlder()
	if e.HasOlderHistory() {
		t.Fatal("HasOlderHistory = true after consuming the only entry")
	}

	empty := New(Options{})
	if empty.HasOlderHistory() {
		t.Fatal("HasOlderHistory = true with empty history")
	}
}

func TestSnapshotTakenOnlyOnFirstRecall(t *testing.T) {
	e := New(Options{History: newTestHistory("x", "y")})
	e.Set("mine")
	e.RecallOlder()
	e.Set("edited recall")
	e.RecallOlder()
	e.RecallNewer()
	e.RecallNewer()
	if got := e.String(); got != "mine" {
		t.Fatalf("buffer = %q, want %q", got, "mine")
	}
}
