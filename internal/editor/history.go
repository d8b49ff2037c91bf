package editor

// DefaultHistorySize bounds how many accepted strings are recalled.
const DefaultHistorySize = 100

// History is a bounded list of previously accepted strings, newest first.
// It outlives individual editors: the caller keeps one History per process
// and shares it across input sessions. Browsing state lives on the Editor.
type History struct {
	entries []string
	size    int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Add records an accepted string unless it repeats the newest entry.
// The oldest entry is discarded past capacity.
func (h *History) Add(s string) {
	if len(h.entries) > 0 && h.entries[0] == s {
		return
	}
	h.entries = append([]string{s}, h.entries...)
	if len(h.entries) > h.size {
		h.entries = h.entries[:h.size]
	}
}

// Len reports how many entries are retained.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at position i, newest first.
func (h *History) At(i int) string {
	return h.entries[i]
}

// HasOlderHistory reports whether another, older entry exists beyond the
// editor's current browsing position. Callers use this to decide whether an
// "up" key should recall history at all.
func (e *Editor) HasOlderHistory() bool {
	return e.history.Len() > e.historyPos+1
}

// RecallOlder loads the next older history entry into the buffer. The first
// recall of a session snapshots the in-progress buffer so it can be restored
// by RecallNewer.
func (e *Editor) RecallOlder() {
	if !e.HasOlderHistory() {
		return
	}
	if e.historyPos == -1 {
		e.pending = make([]rune, len(e.buf))
		copy(e.pending, e.buf)
	}
	e.historyPos++
	e.Set(e.history.At(e.historyPos))
}

// RecallNewer steps back toward the present. Stepping past the newest entry
// restores the snapshot taken when browsing began; already at the present it
// does nothing.
func (e *Editor) RecallNewer() {
	switch {
	case e.historyPos > 0:
		e.historyPos--
		e.Set(e.history.At(e.historyPos))
	case e.historyPos == 0:
		e.historyPos = -1
		e.buf = e.pending
		e.pending = nil
		e.cursor = len(e.buf)
	}
}
