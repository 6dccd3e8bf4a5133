package shell

import (
	"golang.org/x/term"

	"github.com/paul-nameless/tg/internal/logger"
)

// Suspend is the scoped resource behind a Suspend acquisition: while held,
// the controlling terminal sits in its original cooked mode so a child
// process (an $EDITOR, a voice recorder, a file picker) can drive it
// directly. Releasing it puts the terminal back into the raw mode the TUI
// needs. The TUI layer owns the original cooked term.State captured at
// startup and passes it in here; this package only knows how to toggle.
type Suspend struct {
	fd        int
	cooked    *term.State
	restoring bool
}

// NewSuspend restores fd to cooked, given the state term.MakeRaw returned
// when the TUI first put the terminal into raw mode.
func NewSuspend(fd int, cooked *term.State) *Suspend {
	s := &Suspend{fd: fd, cooked: cooked}
	if cooked == nil {
		return s
	}
	if err := term.Restore(fd, cooked); err != nil {
		logger.Warn("shell: failed to restore cooked terminal mode for suspend", "error", err)
		return s
	}
	s.restoring = true
	return s
}

// Release re-enters raw mode. Safe to call on a nil Suspend or more than
// once; only the first call after a successful cook-down does anything.
func (s *Suspend) Release() {
	if s == nil || !s.restoring {
		return
	}
	s.restoring = false
	if _, err := term.MakeRaw(s.fd); err != nil {
		logger.Warn("shell: failed to restore raw terminal mode after suspend", "error", err)
	}
}
