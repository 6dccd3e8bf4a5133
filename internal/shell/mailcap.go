package shell

import (
	"path/filepath"
	"strings"
)

// MailcapChain is the ordered file-open handler lookup from the "Mailcap
// dispatch chain" design note: a per-extension override table from config
// takes priority, then a handful of sensible built-in defaults by
// extension group, matching the original's use of the system mailcap
// module as a last resort before DEFAULT_OPEN.
type MailcapChain struct {
	overrides map[string]string
}

// NewMailcapChain builds a chain from a config-supplied extension->command
// map (e.g. {"pdf": "zathura %s", "jpg": "feh %s"}).
func NewMailcapChain(overrides map[string]string) *MailcapChain {
	normalized := make(map[string]string, len(overrides))
	for ext, cmd := range overrides {
		normalized[strings.ToLower(strings.TrimPrefix(ext, "."))] = cmd
	}
	return &MailcapChain{overrides: normalized}
}

var builtinByExt = map[string]string{
	"jpg": "xdg-open %s", "jpeg": "xdg-open %s", "png": "xdg-open %s", "gif": "xdg-open %s",
	"mp4": "xdg-open %s", "mkv": "xdg-open %s", "webm": "xdg-open %s",
	"mp3": "xdg-open %s", "ogg": "xdg-open %s", "oga": "xdg-open %s",
	"pdf": "xdg-open %s",
	"txt": "less %s", "md": "less %s",
}

// Lookup returns the command template for path's extension, checking the
// config overrides first, then the built-in defaults.
func (m *MailcapChain) Lookup(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", false
	}
	if m != nil {
		if cmd, ok := m.overrides[ext]; ok {
			return cmd, true
		}
	}
	cmd, ok := builtinByExt[ext]
	return cmd, ok
}
