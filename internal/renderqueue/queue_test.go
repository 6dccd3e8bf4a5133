package renderqueue

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestQueue_NilQueueSubmitAndCloseAreNoOps(t *testing.T) {
	var q *Queue
	assert.NotPanics(t, func() {
		q.Submit(func() {})
		q.Close()
	})
}

func TestDispatch_JobMsgRunsJobAndIsHandled(t *testing.T) {
	ran := false
	cmd, ok := Dispatch(jobMsg{run: func() { ran = true }})
	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.True(t, ran)
}

func TestDispatch_CloseMsgReturnsQuitCommand(t *testing.T) {
	cmd, ok := Dispatch(closeMsg{})
	assert.True(t, ok)
	assert.NotNil(t, cmd)
}

func TestDispatch_UnknownMsgIsUnhandled(t *testing.T) {
	cmd, ok := Dispatch(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestRunGuarded_RecoversFromPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		runGuarded(func() { panic("boom") })
	})
}
