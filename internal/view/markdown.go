package view

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer lazily builds a glamour.TermRenderer per width, since
// many Telegram bots send Markdown/MarkdownV2-formatted text (bold, links,
// code fences) that should render styled rather than as literal asterisks.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

var mdCache markdownRenderer

func rendererForWidth(width int) *glamour.TermRenderer {
	if mdCache.renderer != nil && mdCache.width == width {
		return mdCache.renderer
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	mdCache = markdownRenderer{width: width, renderer: r}
	return r
}

// RenderMarkdown renders text as glamour-styled markdown when it looks like
// markdown, falling back to plain word-wrapping otherwise (and on any
// render error, since a malformed message body must never be dropped).
func RenderMarkdown(text string, width int) string {
	if width < 1 {
		width = 1
	}
	if !looksLikeMarkdown(text) {
		return Wrap(text, width)
	}
	r := rendererForWidth(width)
	if r == nil {
		return Wrap(text, width)
	}
	out, err := r.Render(text)
	if err != nil {
		return Wrap(text, width)
	}
	return strings.TrimSpace(out)
}

func looksLikeMarkdown(s string) bool {
	for _, pat := range []string{"**", "__", "```", "[", "](", "# ", "> "} {
		if strings.Contains(s, pat) {
			return true
		}
	}
	return false
}
