package fmtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLenDWC_WideCharactersCountDouble(t *testing.T) {
	assert.Equal(t, 2, StringLenDWC("ab"))
	assert.Equal(t, 4, StringLenDWC("你好"))
}

func TestTruncateToLen_NeverExceedsVisualWidth(t *testing.T) {
	s := "hello, 世界!"
	for w := 1; w <= StringLenDWC(s)+2; w++ {
		out := TruncateToLen(s, w)
		assert.LessOrEqual(t, StringLenDWC(out), w)
	}
}

func TestTruncateToLen_ShorterThanWidthIsUnchanged(t *testing.T) {
	assert.Equal(t, "hi", TruncateToLen("hi", 10))
}
