// Package renderqueue is the single-consumer mutation/draw queue from
// spec §5: three logical threads (input, draw, MP push-update) cooperate by
// submitting closures that the draw thread alone executes, serially, in FIFO
// order. Producers never block; the tea.Program's own event loop is the only
// blocking consumer.
//
// The concrete draw thread is a charmbracelet/bubbletea tea.Program: its
// internal message channel already implements exactly this discipline (one
// goroutine draining msgs and calling Update/View serially), so Queue wraps
// a tea.Program and turns "submit a closure" into "send a tea.Msg that the
// program's Update method invokes".
package renderqueue

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paul-nameless/tg/internal/logger"
)

// Job is a unit of work submitted to the queue: a state-mutation, a redraw,
// or both combined in one closure, matching spec §5's "mutations happen
// inside the same closure that issues the redraw" rule.
type Job func()

// jobMsg adapts a Job into a tea.Msg so it flows through the program's own
// serialized message loop.
type jobMsg struct{ run Job }

// closeMsg is the designated final message: on Quit the controller enqueues
// this instead of calling tea.Quit directly, so any jobs submitted earlier
// in program order still run first.
type closeMsg struct{}

// Queue is the producer-side handle passed to the input thread and to
// push-update handlers. The draw thread consumes its jobs by calling
// Dispatch from the program's Update.
type Queue struct {
	program *tea.Program
}

// New wraps an already-constructed tea.Program. The caller is expected to
// run program.Run() on the draw thread; Submit/Close are safe to call from
// any goroutine.
func New(program *tea.Program) *Queue {
	return &Queue{program: program}
}

// Submit enqueues job for execution on the draw thread. Non-blocking for
// the caller, per spec §5 ("producer non-blocking, consumer blocking").
func (q *Queue) Submit(job Job) {
	if q == nil || q.program == nil {
		return
	}
	q.program.Send(jobMsg{run: job})
}

// Close enqueues the teardown closure. The draw thread processes every job
// submitted before this one before it exits.
func (q *Queue) Close() {
	if q == nil || q.program == nil {
		return
	}
	q.program.Send(closeMsg{})
}

// Dispatch is called from the program's Update method (the draw thread) for
// every incoming tea.Msg. It runs jobMsg payloads inline, wrapped in a
// logged catch-all per spec §5's "draw loop wraps each popped closure",
// and turns closeMsg into a tea.Quit command. Any other msg is returned
// unhandled (ok=false) so the caller's own Update can process it.
func Dispatch(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	switch m := msg.(type) {
	case jobMsg:
		runGuarded(m.run)
		return nil, true
	case closeMsg:
		return tea.Quit, true
	default:
		return nil, false
	}
}

func runGuarded(job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("renderqueue: job panicked", "recover", r)
		}
	}()
	job()
}
