// Package editor implements a single-line text buffer with cursor editing,
// word motions, a bounded kill-ring, and recall history. It is independent
// of rendering and of any completion source.
package editor

import (
	"strings"
	"unicode"
)

// DefaultKillRingSize bounds how many killed spans are retained.
const DefaultKillRingSize = 5

// Options configures a new Editor. The zero value is usable: empty buffer,
// no forbidden characters, private history.
type Options struct {
	Initial      string
	Forbidden    string
	History      *History
	KillRingSize int
}

// Editor is a mutable cursor-addressed character sequence. All operations
// mutate in place and none fail; out-of-range requests are clamped.
type Editor struct {
	buf       []rune
	cursor    int
	forbidden string
	killRing  *KillRing

	history    *History
	historyPos int
	// pending holds the in-progress buffer from the moment the user first
	// moves into history, so stepping back out restores it exactly.
	pending []rune
}

func New(opts Options) *Editor {
	size := opts.KillRingSize
	if size <= 0 {
		size = DefaultKillRingSize
	}
	history := opts.History
	if history == nil {
		history = NewHistory(DefaultHistorySize)
	}
	initial := []rune(opts.Initial)
	return &Editor{
		buf:        initial,
		cursor:     len(initial),
		forbidden:  opts.Forbidden,
		killRing:   NewKillRing(size),
		history:    history,
		historyPos: -1,
	}
}

// String returns the buffer contents.
func (e *Editor) String() string {
	return string(e.buf)
}

// Len returns the buffer length in runes.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Cursor returns the cursor index in [0, Len()].
func (e *Editor) Cursor() int {
	return e.cursor
}

func (e *Editor) clamp() {
	if e.cursor > len(e.buf) {
		e.cursor = len(e.buf)
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// Insert places r at the cursor and advances it, unless r is forbidden.
func (e *Editor) Insert(r rune) {
	if strings.ContainsRune(e.forbidden, r) {
		return
	}
	e.clamp()
	e.buf = append(e.buf[:e.cursor], append([]rune{r}, e.buf[e.cursor:]...)...)
	e.cursor++
}

// DeleteBackward removes the character before the cursor, if any.
func (e *Editor) DeleteBackward() {
	e.clamp()
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
}

func (e *Editor) MoveStart() {
	e.cursor = 0
}

func (e *Editor) MoveEnd() {
	e.cursor = len(e.buf)
}

func (e *Editor) MoveLeft() {
	e.clamp()
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *Editor) MoveRight() {
	e.clamp()
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

// wordForward returns the next position after the cursor whose character is
// non-alphabetic, or the end of the buffer.
func (e *Editor) wordForward() int {
	for i := e.cursor + 1; i < len(e.buf); i++ {
		if !unicode.IsLetter(e.buf[i]) {
			return i
		}
	}
	return len(e.buf)
}

// wordBackward returns the position just after the nearest non-alphabetic
// character before the cursor, or the start of the buffer.
func (e *Editor) wordBackward() int {
	for i := e.cursor - 2; i >= 0; i-- {
		if !unicode.IsLetter(e.buf[i]) {
			return i + 1
		}
	}
	return 0
}

func (e *Editor) MoveWordForward() {
	e.clamp()
	e.cursor = e.wordForward()
}

func (e *Editor) MoveWordBackward() {
	e.clamp()
	e.cursor = e.wordBackward()
}

// KillToEnd truncates the buffer at the cursor and saves the removed suffix.
func (e *Editor) KillToEnd() {
	e.clamp()
	killed := make([]rune, len(e.buf)-e.cursor)
	copy(killed, e.buf[e.cursor:])
	e.buf = e.buf[:e.cursor]
	e.killRing.Push(killed)
}

// KillWordBackward removes from the previous word boundary to the cursor and
// saves the removed span.
func (e *Editor) KillWordBackward() {
	e.clamp()
	p := e.wordBackward()
	killed := make([]rune, e.cursor-p)
	copy(killed, e.buf[p:e.cursor])
	e.buf = append(e.buf[:p], e.buf[e.cursor:]...)
	e.killRing.Push(killed)
	e.cursor = p
}

// Yank reinserts the most recently killed span at the cursor. No-op when
// nothing has been killed.
func (e *Editor) Yank() {
	span, ok := e.killRing.Top()
	if !ok {
		return
	}
	e.clamp()
	buf := make([]rune, 0, len(e.buf)+len(span))
	buf = append(buf, e.buf[:e.cursor]...)
	buf = append(buf, span...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor += len(span)
}

// Clear empties the buffer.
func (e *Editor) Clear() {
	e.buf = e.buf[:0]
	e.cursor = 0
}

// Set replaces the buffer wholesale and puts the cursor at the end.
func (e *Editor) Set(s string) {
	e.buf = []rune(s)
	e.cursor = len(e.buf)
}
