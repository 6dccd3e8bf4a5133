package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEditor_ShortBufferKeepsPrefix(t *testing.T) {
	out := RenderEditor("/", "abc", 20)
	assert.Equal(t, "/abc", out)
}

func TestRenderEditor_TruncatesFromTheLeft(t *testing.T) {
	out := RenderEditor("> ", strings.Repeat("x", 20), 10)
	assert.True(t, strings.HasPrefix(out, "> "))
	assert.LessOrEqual(t, len([]rune(out))-len([]rune("> ")), 10-1)
}

func TestEditorCursorCol_FollowsBufferEnd(t *testing.T) {
	col := EditorCursorCol("/", "abc", 20)
	assert.Equal(t, 4, col)
}

func TestEditorCursorCol_ClampedToWidth(t *testing.T) {
	col := EditorCursorCol("/", strings.Repeat("x", 50), 10)
	assert.Equal(t, 9, col)
}
