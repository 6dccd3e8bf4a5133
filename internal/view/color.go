// Package view renders the chat list, message list, and status line panes
// described in spec §4.7 into plain strings, styled with lipgloss and
// wrapped with muesli/reflow. It has no dependency on a concrete terminal
// library: internal/tui is responsible for drawing the strings this
// package returns onto a domain.Surface.
package view

import (
	"crypto/sha1"

	"github.com/charmbracelet/lipgloss"
)

// userColors is the USERS_COLORS palette a sender's name is deterministically
// mapped into, one ANSI color per distinct sender so a chat transcript stays
// readable without a legend.
var userColors = []string{
	"1", "2", "3", "4", "5", "6", "9", "10", "11", "12", "13", "14",
}

// ColorForLabel hashes label (typically a sender's display name) into one of
// the palette's colors with SHA-1 so the same name always maps to the same
// color within a session and across restarts.
func ColorForLabel(label string) lipgloss.Color {
	sum := sha1.Sum([]byte(label))
	idx := int(sum[0]) % len(userColors)
	return lipgloss.Color(userColors[idx])
}

// SenderStyle returns a lipgloss style that renders a sender's name in its
// deterministic color.
func SenderStyle(label string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorForLabel(label)).Bold(true)
}
