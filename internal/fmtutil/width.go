package fmtutil

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringLenDWC counts s's visual width, counting East-Asian-wide characters
// as 2 columns and narrow characters as 1, via mattn/go-runewidth (the same
// library the teacher's bubbletea-based panes use for layout math).
func StringLenDWC(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToLen returns a prefix of s whose visual width never exceeds
// width, breaking only at grapheme-cluster boundaries (rivo/uniseg) so a
// combining mark or wide rune is never split.
func TruncateToLen(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringLenDWC(s) <= width {
		return s
	}

	gr := uniseg.NewGraphemes(s)
	var b []rune
	total := 0
	for gr.Next() {
		cluster := gr.Runes()
		w := runewidth.StringWidth(string(cluster))
		if total+w > width {
			break
		}
		b = append(b, cluster...)
		total += w
	}
	return string(b)
}
