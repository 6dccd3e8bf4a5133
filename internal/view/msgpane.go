package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/msgproxy"
	"github.com/paul-nameless/tg/internal/store"
)

var (
	selectedMsgStyle = lipgloss.NewStyle().Reverse(true)
	pendingMsgStyle  = lipgloss.NewStyle().Faint(true)
	failedMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// MsgLine is one rendered, possibly multi-row message block.
type MsgLine struct {
	MsgID    int64
	Text     string
	Selected bool
}

// MsgPane renders a chat's visible message window, each message prefixed
// by its sender's color-coded label (per §4.7), with text bodies wrapped to
// width. A message's reply-to reference is not rendered.
func MsgPane(msgs []*domain.Message, users *store.UserStore, selected map[int64]bool, width int) []MsgLine {
	lines := make([]MsgLine, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, MsgLine{
			MsgID:    m.ID,
			Text:     renderMessage(m, users, width),
			Selected: selected[m.ID],
		})
	}
	return lines
}

func renderMessage(m *domain.Message, users *store.UserStore, width int) string {
	p := msgproxy.New(m)
	label := users.Label(m.SenderID)
	header := SenderStyle(label).Render(label)

	var body string
	switch p.Kind() {
	case domain.ContentText:
		body = RenderMarkdown(p.TextContent(), width)
	case domain.ContentSystemEvent:
		return renderSystemEvent(m)
	default:
		body = renderMediaLine(p)
	}

	if m.URLPreview != nil {
		body += "\n" + renderURLPreview(m.URLPreview)
	}

	line := header + ": " + body
	if m.IsTemporary() {
		line = pendingMsgStyle.Render(line)
	}
	return line
}

func renderMediaLine(p *msgproxy.Proxy) string {
	status := "↓"
	if p.IsDownloaded() {
		status = "✓"
	}
	name := p.FileName()
	if name == "" {
		name = p.Kind().String()
	}
	switch p.Kind() {
	case domain.ContentVoice, domain.ContentVideoNote:
		return fmt.Sprintf("[%s %s %s]", status, p.Kind().String(), p.Duration())
	case domain.ContentPoll:
		return renderPoll(p)
	default:
		return fmt.Sprintf("[%s %s %s]", status, name, p.HumanSize())
	}
}

func renderPoll(p *msgproxy.Proxy) string {
	var b strings.Builder
	b.WriteString("📊 " + p.PollQuestion())
	for _, opt := range p.PollOptions() {
		fmt.Fprintf(&b, "\n  - %s (%d)", opt.Text, opt.VoterCount)
	}
	return b.String()
}

func renderSystemEvent(m *domain.Message) string {
	switch m.Content.SystemEvent {
	case domain.SystemEventGroupCreated:
		return "— group created —"
	case domain.SystemEventMemberAdded:
		return "— member added —"
	case domain.SystemEventMemberRemoved:
		return "— member removed —"
	case domain.SystemEventTitleChanged:
		return fmt.Sprintf("— title changed to %q —", m.Content.SystemTitle)
	default:
		return "— event —"
	}
}

func renderURLPreview(p *domain.URLPreview) string {
	return fmt.Sprintf("| %s: %s\n| %s", p.SiteName, p.Title, p.Description)
}
