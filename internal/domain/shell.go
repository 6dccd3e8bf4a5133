package domain

import "context"

// Shell is the subprocess boundary: notifications, clipboard, media
// players, editors, file pickers, voice recording, and media probing all
// go through it so the controller never shells out directly.
type Shell interface {
	// Run executes cmd (already expanded) and waits for it to exit.
	Run(ctx context.Context, cmd string) error
	// RunWithInput executes cmd, writing stdinText to its stdin.
	RunWithInput(ctx context.Context, cmd string, stdinText string) error
	// OpenFile opens path with optionalCmd (a template possibly containing
	// "%s" for the path) if given, else falls back to a mailcap-style
	// lookup by extension, then to DEFAULT_OPEN.
	OpenFile(ctx context.Context, path string, optionalCmd string) error
	// RunCapturing runs cmd with stdinText on stdin and returns what it
	// printed on stdout, for commands that need a subprocess's answer back
	// (the fuzzy contact picker, the file picker) instead of letting it
	// write straight to the terminal.
	RunCapturing(ctx context.Context, cmd string, stdinText string) (string, error)
}
