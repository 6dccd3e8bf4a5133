package controller

import (
	"strings"
	"unicode"

	"github.com/paul-nameless/tg/internal/view"
)

// GetInput runs the status-pane's single-line editor (spec §4.7): prefix
// stays fixed on the left, printable runes append, backspace removes the
// last rune, Enter commits, and Ctrl-G/Esc cancels. It is called directly
// from a Command's Run, on the input thread, and is explicitly permitted
// to block there (spec §5) — this mirrors the original StatusView.get_input
// curses loop almost line for line.
func (c *Controller) GetInput(prefix, initial string) (string, bool) {
	if c.Surf == nil {
		return "", false
	}
	buf := initial
	for {
		c.Enqueue(func() { c.drawEditor(prefix, buf) })
		row, col := c.editorCursor(prefix, buf)
		key, err := c.Surf.GetWch(row, col)
		if err != nil {
			c.Enqueue(func() { c.Surf.Clear() })
			return "", false
		}
		switch {
		case key.Rune == '\n' || key.Rune == '\r' || key.Name == "enter":
			c.Enqueue(func() { c.Surf.Clear() })
			return buf, true
		case key.Rune == 7 || key.Rune == 27 || key.Name == "esc" || key.Name == "ctrl+g":
			c.Enqueue(func() { c.Surf.Clear() })
			return "", false
		case key.Rune == 127 || key.Rune == 8 || key.Name == "backspace":
			if buf != "" {
				r := []rune(buf)
				buf = string(r[:len(r)-1])
			}
		case key.Name == "" && unicode.IsPrint(key.Rune):
			buf += string(key.Rune)
		}
	}
}

// confirm asks a y/N-style question on the status line; an empty answer
// returns defaultYes and a cancelled answer means no, matching the
// original's is_yes/is_no helpers.
func (c *Controller) confirm(prompt string, defaultYes bool) bool {
	text, ok := c.GetInput(prompt, "")
	if !ok {
		return false
	}
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// drawEditor paints the editor's prefix+buffer onto the status line. Only
// ever invoked inside an Enqueue closure, so it runs on the draw thread
// like every other Surface mutation.
func (c *Controller) drawEditor(prefix, buf string) {
	if c.Surf == nil {
		return
	}
	rows, cols := c.Surf.GetMaxYX()
	if rows < 1 || cols < 1 {
		return
	}
	c.Surf.Move(rows-1, 0)
	c.Surf.Addstr(view.PadRight(view.RenderEditor(prefix, buf, cols), cols))
	c.Surf.Refresh()
}

// editorCursor computes the (row, col) hint GetWch is called with so the
// terminal cursor sits at the end of the visible buffer, per the original's
// `get_wch(0, min(len(buff+prefix), w-1))`.
func (c *Controller) editorCursor(prefix, buf string) (int, int) {
	rows, cols := c.Surf.GetMaxYX()
	row := rows - 1
	if row < 0 {
		row = 0
	}
	return row, view.EditorCursorCol(prefix, buf, cols)
}
