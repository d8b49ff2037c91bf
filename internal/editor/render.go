package editor

// Model is a wrapped fixed-width layout of prompt + buffer + tail, with the
// cursor position expressed in (row, col) of that layout. It is what a
// renderer needs to draw the line without knowing anything about editing.
type Model struct {
	Rows      []string
	CursorRow int
	CursorCol int
	// PromptLen and BufferLen locate the prompt and buffer regions within
	// the flattened text, for renderers that style them differently.
	PromptLen int
	BufferLen int
}

// RenderModel lays out prompt, buffer, and tail wrapped to width columns.
// Pure: it does not touch editor state.
func (e *Editor) RenderModel(width int, prompt, tail string) Model {
	if width < 1 {
		width = 1
	}
	promptRunes := []rune(prompt)
	text := make([]rune, 0, len(promptRunes)+len(e.buf)+len(tail))
	text = append(text, promptRunes...)
	text = append(text, e.buf...)
	text = append(text, []rune(tail)...)

	var rows []string
	for i := 0; i < len(text); i += width {
		end := i + width
		if end > len(text) {
			end = len(text)
		}
		rows = append(rows, string(text[i:end]))
	}
	if len(rows) == 0 {
		rows = []string{""}
	}

	cursor := len(promptRunes) + e.cursor
	return Model{
		Rows:      rows,
		CursorRow: cursor / width,
		CursorCol: cursor % width,
		PromptLen: len(promptRunes),
		BufferLen: len(e.buf),
	}
}
