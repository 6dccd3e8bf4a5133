// Package controller owns the Model and exposes it to the outside world as
// a set of parameterless commands dispatched by key sequence, per spec §4.5.
package controller

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Outcome is what a command tells the dispatch loop to do next.
type Outcome int

const (
	Continue Outcome = iota
	Back
	Quit
)

// Command is a bound action. If WantsRepeat is true, Run receives the
// accumulated repeat_factor (default 1); otherwise it is invoked with 1 and
// may ignore it.
type Command struct {
	Name        string
	WantsRepeat bool
	Run         func(repeatFactor int) Outcome
}

// maxKeyBuffer bounds the non-digit key buffer, per spec §4.5.
const maxKeyBuffer = 5

// KeyMap is one of the two dispatch tables (chat-mode, message-mode). Keys
// are the literal key-buffer string a binding matches exactly.
type KeyMap struct {
	bindings map[string]Command
}

// NewKeyMap builds an empty table.
func NewKeyMap() *KeyMap {
	return &KeyMap{bindings: make(map[string]Command)}
}

// Bind registers cmd under the given key sequence (e.g. "dd", "gg", "j").
func (k *KeyMap) Bind(seq string, cmd Command) {
	k.bindings[seq] = cmd
}

// Describe renders every bound key sequence and its command name as
// "seq  name" lines, sorted by sequence, for the ShowHelp command.
func (k *KeyMap) Describe() string {
	seqs := make([]string, 0, len(k.bindings))
	for seq := range k.bindings {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)
	var b strings.Builder
	for _, seq := range seqs {
		name := k.bindings[seq].Name
		if name == "" {
			name = seq
		}
		fmt.Fprintf(&b, "%-8s %s\n", seq, name)
	}
	return b.String()
}

// hasPrefix reports whether any bound sequence starts with buf.
func (k *KeyMap) hasPrefix(buf string) bool {
	for seq := range k.bindings {
		if strings.HasPrefix(seq, buf) {
			return true
		}
	}
	return false
}

// Dispatcher accumulates digits into a repeat factor and non-digit runes
// into a key buffer, matching against the active KeyMap after each key.
type Dispatcher struct {
	repeatFactor int
	keyBuffer    string

	UnboundHandler func(buf string)
}

// NewDispatcher starts with repeat_factor defaulted to unset (treated as 1).
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Feed processes one input rune against table. It returns the Outcome of
// any command that fired (Continue if none fired yet, since more keys may
// still be needed to disambiguate a prefix).
func (d *Dispatcher) Feed(table *KeyMap, r rune) Outcome {
	if unicode.IsDigit(r) && !(r == '0' && d.repeatFactor == 0 && d.keyBuffer == "") {
		d.repeatFactor = d.repeatFactor*10 + int(r-'0')
		return Continue
	}

	d.keyBuffer += string(r)
	if len(d.keyBuffer) > maxKeyBuffer {
		d.reset()
		return Continue
	}

	if cmd, ok := table.bindings[d.keyBuffer]; ok {
		factor := d.repeatFactor
		if factor == 0 {
			factor = 1
		}
		d.reset()
		if cmd.WantsRepeat {
			return cmd.Run(factor)
		}
		return cmd.Run(1)
	}

	if !table.hasPrefix(d.keyBuffer) {
		if d.UnboundHandler != nil {
			d.UnboundHandler(d.keyBuffer)
		}
		d.reset()
	}
	return Continue
}

func (d *Dispatcher) reset() {
	d.repeatFactor = 0
	d.keyBuffer = ""
}

// RepeatFactor exposes the in-progress accumulated factor (0 means unset),
// useful for status-line echo of a pending numeric prefix.
func (d *Dispatcher) RepeatFactor() int { return d.repeatFactor }

// KeyBuffer exposes the in-progress key buffer.
func (d *Dispatcher) KeyBuffer() string { return d.keyBuffer }
