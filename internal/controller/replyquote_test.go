package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyQuote_RoundTrip(t *testing.T) {
	body := "hello there\nhow are you"
	inserted := InsertRepliedMsg("alice", "original text", body)
	assert.Contains(t, inserted, "# > alice: original text")

	stripped := StripRepliedMsg(inserted)
	assert.Equal(t, body, stripped)
}

func TestReplyQuote_StripTrimsSurroundingWhitespace(t *testing.T) {
	inserted := InsertRepliedMsg("bob", "q", "  \nbody text\n  ")
	stripped := StripRepliedMsg(inserted)
	assert.Equal(t, "body text", stripped)
}

func TestReplyQuote_StripWithNoQuoteLineIsIdentity(t *testing.T) {
	assert.Equal(t, "plain", StripRepliedMsg("  plain  "))
}
