package controller

import (
	"context"
	"fmt"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
	"github.com/paul-nameless/tg/internal/renderqueue"
	"github.com/paul-nameless/tg/internal/store"
)

// Mode is which of the two key tables is currently active.
type Mode int

const (
	ModeChat Mode = iota
	ModeMessage
)

// MaxDownloadSize gates the auto-download behavior of the NewMessage
// handler (spec §8 scenario 5); a zero value disables auto-download.
type Config struct {
	MaxDownloadSize int64
	MyUserID        int64

	// FZF, VoiceRecordCmd, and ViewTextCmd are command templates the new
	// file/contact-picker, voice-recording, and help-paging commands shell
	// out through, mirroring config.FZF/VOICE_RECORD_CMD/VIEW_TEXT_CMD in
	// the original.
	FZF            string
	FilePickerCmd  string
	VoiceRecordCmd string
	ViewTextCmd    string
}

// Controller owns the Model and is the sole thing the input thread, the
// draw thread, and push-update handlers call into. Every mutation it makes
// is expected to run inside a closure submitted through Queue, per spec §5.
type Controller struct {
	Model  *store.Model
	MP     domain.MessagingProvider
	Shell  domain.Shell
	Queue  *renderqueue.Queue
	Config Config

	// Cache is an optional cross-restart dedup store (spec'd as part of
	// the ambient stack, not a named module): a nil Cache behaves as an
	// always-miss cache, so every call site works whether or not a Redis
	// address was configured.
	Cache *store.DedupCache

	Mode Mode

	// Surf is the Surface the input thread reads from; GetInput blocks on
	// it directly (spec §5 names the editor's own prompt loop as one of
	// the few things the input thread is allowed to block on). Set once by
	// main before the input loop starts.
	Surf domain.Surface

	isRunning bool

	statusText string
	statusKind statusKind

	ChatTable *KeyMap
	MsgTable  *KeyMap
}

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
)

// New wires a Controller around an already-constructed Model.
func New(model *store.Model, mp domain.MessagingProvider, shell domain.Shell, q *renderqueue.Queue, cfg Config) *Controller {
	c := &Controller{
		Model:     model,
		MP:        mp,
		Shell:     shell,
		Queue:     q,
		Config:    cfg,
		isRunning: true,
	}
	c.ChatTable = NewKeyMap()
	c.MsgTable = NewKeyMap()
	registerChatCommands(c)
	registerMsgCommands(c)
	registerUpdateHandlers(c)
	return c
}

// PresentInfo sets the status line to an informational message.
func (c *Controller) PresentInfo(format string, args ...any) {
	c.statusText = "Info: " + fmt.Sprintf(format, args...)
	c.statusKind = statusInfo
}

// PresentError sets the status line to an error message.
func (c *Controller) PresentError(format string, args ...any) {
	c.statusText = "Error: " + fmt.Sprintf(format, args...)
	c.statusKind = statusError
}

// StatusText returns the current status-line text (for the status pane / tests).
func (c *Controller) StatusText() string { return c.statusText }

// IsRunning reports whether Quit has been requested.
func (c *Controller) IsRunning() bool { return c.isRunning }

// Quit logs out, marks the controller stopped, and enqueues the draw
// thread's close job. Logout is fire-and-forget: a failed logout shouldn't
// block the client from exiting.
func (c *Controller) Quit() Outcome {
	if c.MP != nil {
		c.MP.Logout(c.ctx())
	}
	c.isRunning = false
	if c.Queue != nil {
		c.Queue.Close()
	}
	return Quit
}

// Enqueue submits job to the draw/mutation queue. Commands must route every
// state change and redraw through this, never touch the TS directly.
func (c *Controller) Enqueue(job renderqueue.Job) {
	if c.Queue == nil {
		job()
		return
	}
	c.Queue.Submit(job)
}

// wrapHandler is the catch-all around an update handler's body, per spec §5
// ("Handlers are wrapped so that exceptions are logged and do not terminate
// the update thread").
func wrapHandler(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("controller: update handler panicked", "kind", kind, "recover", r)
		}
	}()
	fn()
}

// currentChatID resolves the live cursor to a chat id, rather than caching
// an index across a resort, per spec §9's "Cursor across resort" note.
func (c *Controller) currentChatID() (int64, bool) {
	return c.Model.CurrentChatID()
}

// relocateCurrentChat re-finds chatID's new index after a resort, per the
// "refresh current chat" discipline (spec §4.6).
func (c *Controller) relocateCurrentChat(chatID int64) {
	if idx, ok := c.Model.Chats.IndexByID(chatID); ok {
		c.Model.SetCurrentChatIndex(idx)
	}
}

// ctx is the background context used for fire-and-forget MP calls issued
// from inside draw-thread closures; there is no per-command cancellation
// (spec §5, "no general cancellation").
func (c *Controller) ctx() context.Context { return context.Background() }
