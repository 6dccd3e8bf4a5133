package view

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/paul-nameless/tg/internal/fmtutil"
)

// Wrap reflows text to width columns, respecting existing newlines and
// East-Asian-width-aware cell widths via the underlying wordwrap writer.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Truncate shortens s to at most width display columns, appending an
// ellipsis when it had to cut, matching the chat-list title/last-message
// truncation the original performs.
func Truncate(s string, width int) string {
	if fmtutil.StringLenDWC(s) <= width {
		return s
	}
	if width <= 1 {
		return fmtutil.TruncateToLen(s, width)
	}
	return fmtutil.TruncateToLen(s, width-1) + "…"
}

// PadRight pads s with spaces to width display columns, leaving longer
// strings untouched.
func PadRight(s string, width int) string {
	n := width - fmtutil.StringLenDWC(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
