package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_UnprefixedKeyDispatchesImmediately(t *testing.T) {
	table := NewKeyMap()
	calls := 0
	table.Bind("j", Command{Name: "next", Run: func(int) Outcome { calls++; return Continue }})

	d := NewDispatcher()
	d.Feed(table, 'j')
	assert.Equal(t, 1, calls)
}

func TestDispatcher_TwoCharSequenceRequiresBothKeys(t *testing.T) {
	table := NewKeyMap()
	calls := 0
	table.Bind("dd", Command{Name: "delete", Run: func(int) Outcome { calls++; return Continue }})

	d := NewDispatcher()
	d.Feed(table, 'd')
	assert.Equal(t, 0, calls, "single 'd' is a prefix, not a match")
	d.Feed(table, 'd')
	assert.Equal(t, 1, calls, "second 'd' completes the sequence exactly once")
}

func TestDispatcher_RepeatFactorDefaultsToOne(t *testing.T) {
	table := NewKeyMap()
	var got int
	table.Bind("j", Command{Name: "next", WantsRepeat: true, Run: func(f int) Outcome { got = f; return Continue }})

	d := NewDispatcher()
	d.Feed(table, 'j')
	assert.Equal(t, 1, got)
}

func TestDispatcher_DigitsAccumulateIntoRepeatFactor(t *testing.T) {
	table := NewKeyMap()
	var got int
	table.Bind("j", Command{Name: "next", WantsRepeat: true, Run: func(f int) Outcome { got = f; return Continue }})

	d := NewDispatcher()
	d.Feed(table, '1')
	d.Feed(table, '0')
	d.Feed(table, 'j')
	assert.Equal(t, 10, got)
}

func TestDispatcher_CommandWithoutRepeatFlagIgnoresFactor(t *testing.T) {
	table := NewKeyMap()
	var got int
	table.Bind("j", Command{Name: "next", Run: func(f int) Outcome { got = f; return Continue }})

	d := NewDispatcher()
	d.Feed(table, '5')
	d.Feed(table, 'j')
	assert.Equal(t, 1, got)
}

func TestDispatcher_UnboundSequenceInvokesHandlerAndResets(t *testing.T) {
	table := NewKeyMap()
	table.Bind("dd", Command{Name: "delete", Run: func(int) Outcome { return Continue }})

	var unbound string
	d := NewDispatcher()
	d.UnboundHandler = func(buf string) { unbound = buf }

	d.Feed(table, 'z')
	assert.Equal(t, "z", unbound)
	assert.Equal(t, "", d.KeyBuffer())
}

func TestKeyMap_Describe_ListsBindingsSortedBySequence(t *testing.T) {
	table := NewKeyMap()
	table.Bind("j", Command{Name: "next_msg", Run: func(int) Outcome { return Continue }})
	table.Bind("dd", Command{Name: "delete_msgs", Run: func(int) Outcome { return Continue }})

	out := table.Describe()
	ddIdx := strings.Index(out, "dd")
	jIdx := strings.Index(out, "j")
	assert.GreaterOrEqual(t, ddIdx, 0)
	assert.GreaterOrEqual(t, jIdx, 0)
	assert.Less(t, ddIdx, jIdx, "sequences are sorted lexicographically")
	assert.Contains(t, out, "delete_msgs")
	assert.Contains(t, out, "next_msg")
}

func TestDispatcher_DDTriggersDeleteExactlyOnce(t *testing.T) {
	table := NewKeyMap()
	calls := 0
	table.Bind("dd", Command{Name: "delete_msgs", Run: func(int) Outcome { calls++; return Continue }})

	d := NewDispatcher()
	d.Feed(table, 'd')
	d.Feed(table, 'd')
	assert.Equal(t, 1, calls)
}
