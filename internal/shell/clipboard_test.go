package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipboard_DisabledClipboardNoOpsSilently(t *testing.T) {
	c := &Clipboard{enabled: false}
	c.Copy("hello")
	assert.Equal(t, "", c.Paste())
}

func TestClipboard_NilReceiverIsSafe(t *testing.T) {
	var c *Clipboard
	c.Copy("hello")
	assert.Equal(t, "", c.Paste())
}
