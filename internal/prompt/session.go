// Package prompt ties keystrokes to buffer edits, hierarchy navigation, and
// completion selection. The state machine in Session is pure with respect to
// the terminal: Run wires it to a tcell screen, tests drive it directly.
package prompt

import (
	"strings"

	"github.com/georgek/pathdo/internal/complete"
	"github.com/georgek/pathdo/internal/editor"
	"github.com/georgek/pathdo/internal/hierarchy"
)

// Status is the outcome of a single transition.
type Status int

const (
	StatusContinue Status = iota
	StatusAccept
	StatusCancel
)

// Options configures one input session.
type Options struct {
	Prompt       string
	Initial      string
	Forbidden    string
	History      *editor.History
	KillRingSize int
	Keymap       map[string]string
}

// Session holds the interactive state for one input operation: the segments
// already descended into, the edit buffer, and the current completion list.
type Session struct {
	h   hierarchy.Hierarchy
	sep string
	ed  *editor.Editor

	prompt      string
	path        []string
	nodes       []hierarchy.Node
	completions []complete.Completion
	selected    int
}

func NewSession(h hierarchy.Hierarchy, opts Options) *Session {
	s := &Session{
		h:   h,
		sep: h.Separator(),
		ed: editor.New(editor.Options{
			Initial:      opts.Initial,
			Forbidden:    opts.Forbidden,
			History:      opts.History,
			KillRingSize: opts.KillRingSize,
		}),
		prompt: opts.Prompt,
	}
	s.nodes = h.Subtree(s.path)
	s.completions = complete.Narrow(opts.Initial, s.nodes)
	return s
}

// Editor exposes the underlying buffer, mainly for tests.
func (s *Session) Editor() *editor.Editor {
	return s.ed
}

// Path returns the confirmed segments descended into so far.
func (s *Session) Path() []string {
	return s.path
}

// Completions returns the current completion list.
func (s *Session) Completions() []complete.Completion {
	return s.completions
}

// Selected returns the index of the highlighted completion.
func (s *Session) Selected() int {
	return s.selected
}

// Step consumes one normalized key. On StatusAccept the second return value
// is the composed result string. Unrecognized keys are no-ops.
func (s *Session) Step(k Key) (Status, string) {
	dirty := false
	switch k.Action {
	case actionCancel:
		return StatusCancel, ""

	case actionAccept:
		if len(s.completions) == 0 {
			return StatusAccept, s.joined(s.ed.String())
		}
		node := s.completions[s.selected].Node
		if !node.Internal {
			return StatusAccept, s.joined(node.Label)
		}
		s.descend(node.Label)
		dirty = true

	case actionAcceptRaw:
		return StatusAccept, s.joined(s.ed.String())

	case actionComplete:
		if s.ed.Cursor() == s.ed.Len() {
			if prefix := complete.CommonPrefix(s.completions); prefix != "" {
				s.ed.Set(prefix)
				s.renarrow()
				dirty = true
			}
		}

	case actionCursorStart:
		s.ed.MoveStart()
	case actionCursorEnd:
		s.ed.MoveEnd()
	case actionCursorLeft:
		s.ed.MoveLeft()
	case actionCursorRight:
		s.ed.MoveRight()
	case actionWordForward:
		s.ed.MoveWordForward()
	case actionWordBackward:
		s.ed.MoveWordBackward()

	case actionBackspace, actionKillWord:
		if s.ed.Len() == 0 && len(s.path) > 0 {
			// Ascend one hierarchy level.
			s.path = s.path[:len(s.path)-1]
			s.reload()
		} else {
			if k.Action == actionBackspace {
				s.ed.DeleteBackward()
			} else {
				s.ed.KillWordBackward()
			}
			s.renarrow()
		}
		dirty = true

	case actionKillToEnd:
		s.ed.KillToEnd()
		s.renarrow()
		dirty = true
	case actionYank:
		s.ed.Yank()
		s.renarrow()
		dirty = true
	case actionClearLine:
		s.ed.Clear()
		s.renarrow()
		dirty = true

	case actionHistoryOlder:
		if !s.ed.HasOlderHistory() {
			return StatusContinue, ""
		}
		s.ed.RecallOlder()
		s.rederivePath()
		dirty = true
	case actionHistoryNewer:
		s.ed.RecallNewer()
		s.rederivePath()
		dirty = true

	case actionCycleNext:
		if n := len(s.completions); n > 0 {
			s.selected = (s.selected + 1) % n
		}
	case actionCyclePrev:
		if n := len(s.completions); n > 0 {
			s.selected = (s.selected - 1 + n) % n
		}

	default:
		if k.Rune == 0 {
			return StatusContinue, ""
		}
		switch {
		case s.isSeparator(k.Rune) && len(s.completions) > 0 && s.completions[0].Type == complete.MatchExact:
			// A fully typed segment followed by its literal separator:
			// keep only the exact match and let the descend check below
			// pick it up instead of inserting the separator.
			s.completions = s.completions[:1]
			s.selected = 0
		case s.isSeparator(k.Rune) && s.ed.Len() == 0 && len(s.path) > 0:
			// The level boundary was already crossed when the segment
			// auto-descended, so the redundant separator is swallowed.
		default:
			s.ed.Insert(k.Rune)
			s.renarrow()
		}
		dirty = true
	}

	if dirty {
		s.autoDescend()
	}
	return StatusContinue, ""
}

// autoDescend falls through a level when continuous typing has narrowed the
// completions to a single internal node spelled out in full.
func (s *Session) autoDescend() {
	if len(s.completions) != 1 {
		return
	}
	node := s.completions[0].Node
	if node.Internal && node.Label == s.ed.String() {
		s.descend(node.Label)
	}
}

func (s *Session) descend(label string) {
	s.path = append(s.path, label)
	s.ed.Clear()
	s.reload()
}

// reload re-queries the subtree for the current path and narrows against the
// (now empty or unchanged) buffer.
func (s *Session) reload() {
	s.nodes = s.h.Subtree(s.path)
	s.renarrow()
}

func (s *Session) renarrow() {
	s.completions = complete.Narrow(s.ed.String(), s.nodes)
	s.selected = 0
}

// rederivePath reparses the buffer (typically a recalled history entry)
// against the hierarchy: the longest existing prefix becomes the session
// path, the remainder stays in the buffer.
func (s *Session) rederivePath() {
	segments := hierarchy.SplitPath(s.ed.String(), s.sep)
	matched, rest := s.h.PartialPath(segments)
	s.path = append(s.path[:0], matched...)
	s.ed.Set(strings.Join(rest, s.sep))
	s.reload()
}

func (s *Session) isSeparator(r rune) bool {
	return s.sep != "" && string(r) == s.sep
}

func (s *Session) joined(last string) string {
	if len(s.path) == 0 {
		return last
	}
	return strings.Join(s.path, s.sep) + s.sep + last
}

// promptString is the visible prompt: the caller's prompt plus the confirmed
// path, separator-terminated so typing continues at the next level.
func (s *Session) promptString() string {
	if len(s.path) == 0 {
		return s.prompt
	}
	return s.prompt + strings.Join(s.path, s.sep) + s.sep
}
