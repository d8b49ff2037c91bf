package editor

import "testing"

func TestRenderModelWrapsRows(t *testing.T) {
	e := newTestEditor("abcdefgh")
	m := e.RenderModel(4, "> ", "")
	rows := []string{"> ab", "cdef", "gh"}
	if len(m.Rows) != len(rows) {
		t.Fatalf("rows = %v, want %v", m.Rows, rows)
	}
	for i := range rows {
		if m.Rows[i] != rows[i] {
			t.Fatalf("rows = %v, want %v", m.Rows, rows)
		}
	}
}

func TestRenderModelCursorPosition(t *testing.T) {
	e := newTestEditor("abcdefgh")
	m := e.RenderModel(4, "> ", "")
	// Cursor at end: offset 2+8=10 -> row 2, col 2.
	if m.CursorRow != 2 || m.CursorCol != 2 {
		t.Fatalf("cursor = (%d,%d), want (2,2)", m.CursorRow, m.CursorCol)
	}
	e.MoveStart()
	m = e.RenderModel(4, "> ", "")
	if m.CursorRow != 0 || m.CursorCol != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", m.CursorRow, m.CursorCol)
	}
}

func TestRenderModelIncludesTail(t *testing.T) {
	e := newTestEditor("ab")
	m := e.RenderModel(80, "> ", " {x | y}")
	if len(m.Rows) != 1 || m.Rows[0] != "> ab {x | y}" {
		t.Fatalf("rows = %v", m.Rows)
	}
	if m.PromptLen != 2 || m.BufferLen != 2 {
		t.Fatalf("prompt/buffer len = %d/%d, want 2/2", m.PromptLen, m.BufferLen)
	}
}

func TestRenderModelEmpty(t *testing.T) {
	e := newTestEditor("")
	m := e.RenderModel(10, "", "")
	if len(m.Rows) != 1 || m.Rows[0] != "" {
		t.Fatalf("rows = %v, want one empty row", m.Rows)
	}
	if m.CursorRow != 0 || m.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want origin", m.CursorRow, m.CursorCol)
	}
}
