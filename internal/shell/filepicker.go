package shell

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/paul-nameless/tg/internal/logger"
)

// FilePicker runs an external file-picker command (FILE_PICKER_CMD, or a
// bundled fzf invocation) rooted at a directory, filtering out entries a
// .gitignore in that directory would exclude, then returns the single
// path the user chose on stdout.
type FilePicker struct {
	shell   *Shell
	command string
}

// NewFilePicker wires a FilePicker to the given command template, which
// must print exactly one chosen path to stdout (e.g. "fzf" or a custom
// FILE_PICKER_CMD).
func NewFilePicker(shell *Shell, command string) *FilePicker {
	return &FilePicker{shell: shell, command: command}
}

// Pick lists root's entries (respecting .gitignore, if present), feeds
// them to the picker command on stdin, and returns the chosen path.
func (p *FilePicker) Pick(ctx context.Context, root string) (string, error) {
	entries, err := listFiles(root)
	if err != nil {
		return "", err
	}

	runner := &captureRunner{shell: p.shell}
	if err := runner.runWithInputCapturing(ctx, p.command, strings.Join(entries, "\n")); err != nil {
		return "", err
	}

	chosen := strings.TrimSpace(runner.stdout)
	if chosen == "" {
		return "", fmt.Errorf("no file chosen")
	}
	return filepath.Join(root, chosen), nil
}

// listFiles walks root recursively, applying root/.gitignore (if present)
// as an exclude list, matching the file_picker_cmd behavior described in
// the original.
func listFiles(root string) ([]string, error) {
	var matcher *gitignore.GitIgnore
	if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		lines := strings.Split(string(data), "\n")
		matcher = gitignore.CompileIgnoreLines(lines...)
	}

	var out []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// captureRunner is a tiny adapter that runs a shell command with piped
// stdin/stdout, since Shell.Run/RunWithInput inherit the real terminal and
// the picker here needs its selection back as a string instead.
type captureRunner struct {
	shell  *Shell
	stdout string
}

func (c *captureRunner) runWithInputCapturing(ctx context.Context, cmd, stdinText string) error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	done := make(chan struct{})
	var collected strings.Builder
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			collected.WriteString(scanner.Text())
			collected.WriteByte('\n')
		}
	}()

	err = c.shell.runCapturingStdout(ctx, cmd, stdinText, w)
	_ = w.Close()
	<-done
	if err != nil {
		logger.Debug("shell: file picker command failed", "command", cmd, "error", err)
		return err
	}
	c.stdout = collected.String()
	return nil
}
