// Package shell is the subprocess boundary behind domain.Shell: running
// external commands, opening files through a mailcap-like chain, probing
// media with ffprobe, wrapping the system clipboard, and suspending the
// TUI's terminal mode around a child process.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// Shell runs commands through the user's $SHELL -c, matching the teacher's
// pattern of shelling out to a single command string rather than an argv
// vector, since config templates (VOICE_RECORD_CMD, EDITOR, …) are whole
// command lines with %s/%f style placeholders already substituted in.
type Shell struct {
	MailcapChain *MailcapChain
	DefaultOpen  string
}

// New builds a Shell wired to mailcap with the given fallback handler.
func New(mailcap *MailcapChain, defaultOpen string) *Shell {
	return &Shell{MailcapChain: mailcap, DefaultOpen: defaultOpen}
}

func shellBinary() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Run executes cmd and waits for it to exit, inheriting the controlling
// terminal so interactive programs (editors, pickers) work normally.
func (s *Shell) Run(ctx context.Context, cmd string) error {
	c := exec.CommandContext(ctx, shellBinary(), "-c", cmd)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return wrapExit(cmd, err)
	}
	return nil
}

// RunWithInput executes cmd, feeding stdinText on stdin instead of the
// terminal (used to pipe help text and message text into a viewer command).
func (s *Shell) RunWithInput(ctx context.Context, cmd string, stdinText string) error {
	c := exec.CommandContext(ctx, shellBinary(), "-c", cmd)
	c.Stdin = bytes.NewBufferString(stdinText)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return wrapExit(cmd, err)
	}
	return nil
}

// OpenFile opens path with optionalCmd if given (substituting "%s" for
// path), else falls through the mailcap chain, else DEFAULT_OPEN.
func (s *Shell) OpenFile(ctx context.Context, path string, optionalCmd string) error {
	if optionalCmd != "" {
		return s.Run(ctx, expandPathTemplate(optionalCmd, path))
	}
	if s.MailcapChain != nil {
		if cmd, ok := s.MailcapChain.Lookup(path); ok {
			return s.Run(ctx, expandPathTemplate(cmd, path))
		}
	}
	if s.DefaultOpen == "" {
		logger.Warn("shell: no handler for file", "path", path)
		return fmt.Errorf("no handler configured for %s", path)
	}
	return s.Run(ctx, expandPathTemplate(s.DefaultOpen, path))
}

func expandPathTemplate(template, path string) string {
	out := make([]byte, 0, len(template))
	for i := 0; i < len(template); i++ {
		if template[i] == '%' && i+1 < len(template) && template[i+1] == 's' {
			out = append(out, path...)
			i++
			continue
		}
		out = append(out, template[i])
	}
	return string(out)
}

// RunCapturing runs cmd with stdinText on stdin and returns its stdout,
// the same plumbing FilePicker.Pick uses, exposed on domain.Shell for the
// fuzzy contact picker (_get_user_ids in the original).
func (s *Shell) RunCapturing(ctx context.Context, cmd, stdinText string) (string, error) {
	runner := &captureRunner{shell: s}
	if err := runner.runWithInputCapturing(ctx, cmd, stdinText); err != nil {
		return "", err
	}
	return runner.stdout, nil
}

// runCapturingStdout runs cmd with stdinText on stdin and out as stdout,
// used by FilePicker to recover a chosen path instead of letting the
// subprocess write straight to the terminal.
func (s *Shell) runCapturingStdout(ctx context.Context, cmd, stdinText string, out *os.File) error {
	c := exec.CommandContext(ctx, shellBinary(), "-c", cmd)
	c.Stdin = bytes.NewBufferString(stdinText)
	c.Stdout = out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return wrapExit(cmd, err)
	}
	return nil
}

func wrapExit(cmd string, err error) error {
	exitCode := 1
	if ee, ok := err.(*exec.ExitError); ok {
		exitCode = ee.ExitCode()
	}
	return &domain.SubprocessFailedError{Command: cmd, ExitCode: exitCode}
}

var _ domain.Shell = (*Shell)(nil)
