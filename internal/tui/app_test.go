package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDecodeKey_SingleRunePassesThrough(t *testing.T) {
	k := decodeKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 'g', k.Rune)
	assert.Equal(t, "", k.Name)
}

func TestDecodeKey_EnterBecomesNewline(t *testing.T) {
	k := decodeKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, '\n', k.Rune)
}

func TestDecodeKey_EscBecomesEscapeRune(t *testing.T) {
	k := decodeKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, '\x1b', k.Rune)
}

func TestDecodeKey_ArrowBecomesNamedKey(t *testing.T) {
	k := decodeKey(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "up", k.Name)
}
