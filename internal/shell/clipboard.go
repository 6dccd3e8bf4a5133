package shell

// Clipboard wraps golang.design/x/clipboard for the two system-clipboard
// operations: copying text out and reading the current text back in. No
// controller command calls it; yank fills only the controller's internal
// copy buffer. Adapted from the teacher's internal/clipboard package,
// collapsed to the single Format (text) this client actually uses.
type Clipboard struct {
	enabled bool
}

// NewClipboard initializes the system clipboard. If initialization fails
// (e.g. no X11/Wayland display available, as in a bare SSH session), the
// returned Clipboard silently no-ops on every call rather than erroring,
// since yank/paste are conveniences, not required for the client to run.
func NewClipboard() *Clipboard {
	if err := clipboardInit(); err != nil {
		return &Clipboard{enabled: false}
	}
	return &Clipboard{enabled: true}
}

// Copy puts text on the system clipboard.
func (c *Clipboard) Copy(text string) {
	if c == nil || !c.enabled {
		return
	}
	clipboardWrite([]byte(text))
}

// Paste reads whatever text is currently on the system clipboard.
func (c *Clipboard) Paste() string {
	if c == nil || !c.enabled {
		return ""
	}
	return string(clipboardRead())
}
