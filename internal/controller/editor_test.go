package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paul-nameless/tg/internal/domain"
)

// fakeSurface is a minimal domain.Surface stand-in that feeds GetWch from a
// canned key queue and records what was painted to the status line.
type fakeSurface struct {
	keys   []domain.Key
	pos    int
	rows   int
	cols   int
	drawn  []string
}

func newFakeSurface(rows, cols int, keys ...domain.Key) *fakeSurface {
	return &fakeSurface{keys: keys, rows: rows, cols: cols}
}

func (f *fakeSurface) Resize(rows, cols int) {}
func (f *fakeSurface) Move(y, x int)         {}
func (f *fakeSurface) Erase()                {}
func (f *fakeSurface) Clear()                {}
func (f *fakeSurface) Addstr(s string)       { f.drawn = append(f.drawn, s) }
func (f *fakeSurface) Insstr(s string)       {}
func (f *fakeSurface) Vline(y, x, n int)     {}
func (f *fakeSurface) Refresh()              {}
func (f *fakeSurface) NoutRefresh()          {}
func (f *fakeSurface) GetWch(y, x int) (domain.Key, error) {
	if f.pos >= len(f.keys) {
		return domain.Key{}, assertErr{}
	}
	k := f.keys[f.pos]
	f.pos++
	return k, nil
}
func (f *fakeSurface) Getch() (domain.Key, error)    { return domain.Key{}, assertErr{} }
func (f *fakeSurface) GetMaxYX() (int, int)          { return f.rows, f.cols }
func (f *fakeSurface) Keypad(on bool)                {}
func (f *fakeSurface) ColorPair(fg, bg int) int      { return 0 }
func (f *fakeSurface) AddstrAttr(s string, attr domain.Attr, colorPair int) {}

func runeKey(r rune) domain.Key { return domain.Key{Rune: r} }

func TestGetInput_TypesBackspacesAndCommitsOnEnter(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Surf = newFakeSurface(24, 80,
		runeKey('h'), runeKey('i'), domain.Key{Rune: 127}, runeKey('i'), domain.Key{Rune: '\n'},
	)

	text, ok := c.GetInput("> ", "")
	assert.True(t, ok)
	assert.Equal(t, "hi", text)
}

func TestGetInput_EscCancelsWithoutCommitting(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Surf = newFakeSurface(24, 80, runeKey('x'), domain.Key{Rune: 27})

	text, ok := c.GetInput("> ", "")
	assert.False(t, ok)
	assert.Equal(t, "", text)
}

func TestGetInput_CtrlGNameCancels(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Surf = newFakeSurface(24, 80, domain.Key{Name: "ctrl+g"})

	_, ok := c.GetInput("> ", "")
	assert.False(t, ok)
}

func TestGetInput_NilSurfaceReturnsFalseImmediately(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Surf = nil

	_, ok := c.GetInput("> ", "")
	assert.False(t, ok)
}

type assertErr struct{}

func (assertErr) Error() string { return "eof" }
