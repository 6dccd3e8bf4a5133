package controller

import "strings"

// replyQuotePrefix marks a line inserted by InsertRepliedMsg, so
// StripRepliedMsg can find and remove it again before the body is sent.
const replyQuotePrefix = "# >"

// InsertRepliedMsg prefixes body with a quoted line identifying the
// message being replied to, for display in the long-editor's draft buffer.
func InsertRepliedMsg(sender, quotedText, body string) string {
	quoted := replyQuotePrefix + " " + sender + ": " + quotedText
	return quoted + "\n" + body
}

// StripRepliedMsg removes every line starting with "# >" and trims
// surrounding whitespace, recovering the body the user actually typed.
func StripRepliedMsg(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(line, replyQuotePrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
