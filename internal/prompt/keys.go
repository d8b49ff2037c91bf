package prompt

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Actions a key can be bound to. Unbound keys that carry a printable rune
// insert it; anything else is a no-op.
const (
	actionCancel       = "cancel"
	actionAccept       = "accept"
	actionAcceptRaw    = "accept_raw"
	actionComplete     = "complete"
	actionCursorStart  = "cursor_start"
	actionCursorEnd    = "cursor_end"
	actionCursorLeft   = "cursor_left"
	actionCursorRight  = "cursor_right"
	actionWordForward  = "word_forward"
	actionWordBackward = "word_backward"
	actionBackspace    = "backspace"
	actionKillWord     = "kill_word"
	actionKillToEnd    = "kill_to_end"
	actionYank         = "yank"
	actionClearLine    = "clear_line"
	actionHistoryOlder = "history_older"
	actionHistoryNewer = "history_newer"
	actionCycleNext    = "cycle_next"
	actionCyclePrev    = "cycle_prev"
)

// DefaultKeymap binds readline-style keys. Entries use the same key-string
// notation as the config file, so user overrides merge directly over it.
func DefaultKeymap() map[string]string {
	return map[string]string{
		"ctrl+c":        actionCancel,
		"ctrl+d":        actionCancel,
		"esc":           actionCancel,
		"enter":         actionAccept,
		"alt+enter":     actionAcceptRaw,
		"tab":           actionComplete,
		"ctrl+a":        actionCursorStart,
		"home":          actionCursorStart,
		"ctrl+e":        actionCursorEnd,
		"end":           actionCursorEnd,
		"ctrl+b":        actionCursorLeft,
		"left":          actionCursorLeft,
		"ctrl+f":        actionCursorRight,
		"right":         actionCursorRight,
		"alt+f":         actionWordForward,
		"alt+b":         actionWordBackward,
		"backspace":     actionBackspace,
		"ctrl+h":        actionBackspace,
		"alt+backspace": actionKillWord,
		"ctrl+w":        actionKillWord,
		"ctrl+k":        actionKillToEnd,
		"ctrl+y":        actionYank,
		"ctrl+l":        actionClearLine,
		"up":            actionHistoryOlder,
		"ctrl+p":        actionHistoryOlder,
		"down":          actionHistoryNewer,
		"ctrl+n":        actionHistoryNewer,
		"ctrl+s":        actionCycleNext,
		"ctrl+r":        actionCyclePrev,
	}
}

// Key is one normalized input token: either a bound action or a printable
// rune. The zero Key is a no-op.
type Key struct {
	Action string
	Rune   rune
}

// NormalizeKey resolves a tcell key event against the keymap. Unbound rune
// events become plain inserts.
func NormalizeKey(ev *tcell.EventKey, keymap map[string]string) Key {
	ks := keyString(ev)
	if action, ok := keymap[ks]; ok {
		return Key{Action: action}
	}
	if ev.Key() == tcell.KeyRune {
		return Key{Rune: ev.Rune()}
	}
	return Key{}
}

// keyString names a key event in keymap notation ("ctrl+k", "alt+backspace",
// "left", "a"). Unknown events map to "".
func keyString(ev *tcell.EventKey) string {
	if ev.Modifiers()&tcell.ModAlt != 0 {
		switch ev.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return "alt+backspace"
		case tcell.KeyEnter:
			return "alt+enter"
		case tcell.KeyRune:
			return "alt+" + strings.ToLower(string(ev.Rune()))
		}
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	// Check Tab and Enter before ctrlKeyName: KeyTab == KeyCtrlI and
	// KeyEnter == KeyCtrlM.
	switch ev.Key() {
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEnter:
		return "enter"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyEscape:
		return "esc"
	}
	return ""
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+key-tcell.KeyCtrlA))
	}
	return ""
}
