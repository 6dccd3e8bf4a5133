package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/store"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// StatusKind selects which style StatusLine applies.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// StatusLine renders the bottom status bar: a left-aligned message (info,
// error, or a typing indicator) and a right-aligned repeat-factor/key-buffer
// indicator, matching the status line described in spec §4.7/§8.
func StatusLine(kind StatusKind, message string, keyBuffer string, width int) string {
	left := message
	switch kind {
	case StatusInfo:
		left = infoStyle.Render(message)
	case StatusError:
		left = errorStyle.Render(message)
	}

	right := keyBuffer
	pad := width - fmtLen(message) - fmtLen(right)
	if pad < 1 {
		pad = 1
	}
	return left + spaces(pad) + right
}

// TypingIndicator summarizes the active chat's in-flight chat action, e.g.
// "Alice is typing...", or "" if nothing is in flight.
func TypingIndicator(chatID int64, users *store.UserStore) string {
	action, ok := users.Action(chatID)
	if !ok || action.Kind == domain.ActionNone || action.Kind == domain.ActionCancel {
		return ""
	}
	return action.Label(users.Label(action.UserID))
}

// RenderEditor renders the status-pane line editor: prefix followed by the
// buffer's trailing width-1 runes, matching the original curses editor's
// `addstr(0, 0, f"{prefix}{buff[-(w-1):]}")`.
func RenderEditor(prefix, buffer string, width int) string {
	r := []rune(buffer)
	max := width - 1
	if max < 0 {
		max = 0
	}
	if len(r) > max {
		r = r[len(r)-max:]
	}
	return prefix + string(r)
}

// EditorCursorCol returns the column the cursor hint passed to GetWch
// should sit at while the editor is active, mirroring the original's
// `get_wch(0, min(len(buff)+len(prefix), w - 1))`.
func EditorCursorCol(prefix, buffer string, width int) int {
	col := fmtLen(prefix) + fmtLen(buffer)
	if width-1 < col {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}

func fmtLen(s string) int { return len([]rune(s)) }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
