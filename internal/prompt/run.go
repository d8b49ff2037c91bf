package prompt

import (
	"github.com/gdamore/tcell/v2"

	"github.com/georgek/pathdo/internal/hierarchy"
	"github.com/georgek/pathdo/internal/logger"
)

var (
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText     = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Run owns one terminal input session: it acquires the screen, feeds key
// events through the session state machine, redraws after every transition,
// and releases the screen on every exit path. ok is false when the user
// cancelled.
func Run(h hierarchy.Hierarchy, opts Options) (value string, ok bool, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", false, err
	}
	if err := screen.Init(); err != nil {
		return "", false, err
	}
	defer screen.Fini()

	keymap := DefaultKeymap()
	for k, v := range opts.Keymap {
		keymap[k] = v
	}

	sess := NewSession(h, opts)
	draw(screen, sess)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			status, out := sess.Step(NormalizeKey(ev, keymap))
			switch status {
			case StatusCancel:
				logger.Debug("prompt cancelled")
				return "", false, nil
			case StatusAccept:
				logger.Debug("prompt accepted", "value", out)
				return out, true, nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized underneath us; treat as cancel.
			return "", false, nil
		}
		draw(screen, sess)
	}
}

func draw(screen tcell.Screen, sess *Session) {
	width, _ := screen.Size()
	v := sess.View(width)
	screen.Clear()
	idx := 0
	for row, line := range v.Model.Rows {
		for col, r := range []rune(line) {
			style := styleText
			switch {
			case idx < v.Model.PromptLen:
				style = stylePrompt
			case idx >= v.SelStart && idx < v.SelEnd:
				style = styleSelected
			}
			screen.SetContent(col, row, r, nil, style)
			idx++
		}
	}
	screen.ShowCursor(v.Model.CursorCol, v.Model.CursorRow)
	screen.Show()
}
