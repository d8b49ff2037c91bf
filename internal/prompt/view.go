package prompt

import (
	"strings"

	"github.com/georgek/pathdo/internal/editor"
)

// View is everything a renderer needs: the wrapped row layout with cursor
// position, and the rune span of the highlighted completion within the
// flattened text (SelStart == SelEnd when nothing is highlighted).
type View struct {
	Model    editor.Model
	SelStart int
	SelEnd   int
}

// View lays out the session for the given terminal width: prompt, confirmed
// path, buffer, and the completion annotation. Pure; no side effects.
func (s *Session) View(width int) View {
	tail, selStart, selEnd := s.annotation()
	m := s.ed.RenderModel(width, s.promptString(), tail)
	base := m.PromptLen + m.BufferLen
	return View{
		Model:    m,
		SelStart: base + selStart,
		SelEnd:   base + selEnd,
	}
}

// annotation renders the completion list as " {a | b | c}" with internal
// nodes suffixed by the separator, and returns the rune offsets of the
// currently selected label within the annotation.
func (s *Session) annotation() (text string, selStart, selEnd int) {
	if len(s.completions) == 0 {
		return "", 0, 0
	}
	var b strings.Builder
	b.WriteString(" {")
	for i, c := range s.completions {
		if i > 0 {
			b.WriteString(" | ")
		}
		label := c.Node.Label
		if c.Node.Internal {
			label += s.sep
		}
		if i == s.selected {
			selStart = runeLen(b.String())
			selEnd = selStart + runeLen(label)
		}
		b.WriteString(label)
	}
	b.WriteString("}")
	return b.String(), selStart, selEnd
}

func runeLen(s string) int {
	return len([]rune(s))
}
