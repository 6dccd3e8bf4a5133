package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/store"
)

var (
	selectedChatStyle = lipgloss.NewStyle().Reverse(true)
	pinnedStyle       = lipgloss.NewStyle().Faint(true)
	unreadStyle       = lipgloss.NewStyle().Bold(true)
	mutedStyle        = lipgloss.NewStyle().Faint(true)
)

// ChatLine is one rendered row of the chat list pane.
type ChatLine struct {
	Text     string
	Selected bool
}

// ChatPane renders the active chat list, the currently-selected row
// highlighted in reverse video per spec §4.7.
func ChatPane(chats []*domain.Chat, users *store.UserStore, currentIndex int, width int) []ChatLine {
	lines := make([]ChatLine, 0, len(chats))
	for i, c := range chats {
		lines = append(lines, ChatLine{
			Text:     renderChatRow(c, users, width),
			Selected: i == currentIndex,
		})
	}
	return lines
}

func renderChatRow(c *domain.Chat, users *store.UserStore, width int) string {
	flags := chatFlags(c)
	title := Truncate(c.Title, width-len(flags)-20)
	preview := lastMessagePreview(c)

	row := PadRight(flags+title, width-20) + PadRight(preview, 20)
	if c.IsMarkedAsUnread || c.UnreadCount > 0 {
		return unreadStyle.Render(row)
	}
	if c.Notification.MuteFor != 0 {
		return mutedStyle.Render(row)
	}
	return row
}

func chatFlags(c *domain.Chat) string {
	flags := ""
	if c.IsPinned {
		flags += "📌"
	}
	if c.Notification.MuteFor != 0 {
		flags += "🔕"
	}
	if c.UnreadCount > 0 {
		flags += "●"
	}
	return flags
}

func lastMessagePreview(c *domain.Chat) string {
	if c.DraftText != "" {
		return "Draft: " + c.DraftText
	}
	if c.LastMessage == nil {
		return ""
	}
	return Truncate(c.LastMessage.Content.Text, 20)
}
