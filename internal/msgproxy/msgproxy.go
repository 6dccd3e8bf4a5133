// Package msgproxy implements the MsgProxy accessor (spec §4.1): a typed,
// read-mostly façade over a domain.Message that classifies its content kind
// and exposes file, duration, text, reply, markup, and sender fields
// without mutating the record's structure.
package msgproxy

import (
	"fmt"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/fmtutil"
	"github.com/paul-nameless/tg/internal/logger"
)

// Proxy wraps a *domain.Message.
type Proxy struct {
	msg *domain.Message
}

// New wraps msg. msg must not be nil.
func New(msg *domain.Message) *Proxy {
	return &Proxy{msg: msg}
}

// Kind classifies the record's content variant.
func (p *Proxy) Kind() domain.ContentKind {
	return p.msg.Content.Kind
}

// File resolves the variant-specific path to the file sub-record. Unknown
// content variants and variants without a file yield (nil, false) and log
// at debug level.
func (p *Proxy) File() (*domain.FileDescriptor, bool) {
	switch p.msg.Content.Kind {
	case domain.ContentDocument, domain.ContentVoice, domain.ContentAudio,
		domain.ContentVideo, domain.ContentVideoNote, domain.ContentPhoto,
		domain.ContentSticker, domain.ContentAnimation:
		if p.msg.Content.File != nil {
			return p.msg.Content.File, true
		}
		return nil, false
	default:
		logger.Debug("msgproxy: no file for content kind", "kind", p.msg.Content.Kind.String())
		return nil, false
	}
}

// TextContent returns the plain text body for ContentText, else "".
func (p *Proxy) TextContent() string {
	if p.msg.Content.Kind == domain.ContentText {
		return p.msg.Content.Text
	}
	return ""
}

// Caption returns the media caption, if any.
func (p *Proxy) Caption() string {
	return p.msg.Content.Caption
}

// Size returns the file size in bytes, or 0 if there is no file.
func (p *Proxy) Size() int64 {
	if f, ok := p.File(); ok {
		return f.Size
	}
	return 0
}

// Duration formats the content duration as M:SS or H:MM:SS.
func (p *Proxy) Duration() string {
	return fmtutil.HumanizeDuration(p.msg.Content.Duration)
}

// HumanSize formats Size using binary IEC suffixes (e.g. "1.0KiB").
func (p *Proxy) HumanSize() string {
	return fmtutil.HumanizeSize(p.Size())
}

// FileName returns the content's file name, if any.
func (p *Proxy) FileName() string {
	if p.msg.Content.FileName != "" {
		return p.msg.Content.FileName
	}
	if f, ok := p.File(); ok {
		return fmt.Sprintf("file_%d", f.ID)
	}
	return ""
}

// FileID returns the remote file id, or 0 if there is no file.
func (p *Proxy) FileID() int64 {
	if f, ok := p.File(); ok {
		return f.ID
	}
	return 0
}

// LocalPath returns the locally cached path, if downloaded.
func (p *Proxy) LocalPath() string {
	if f, ok := p.File(); ok {
		return f.LocalPath
	}
	return ""
}

// IsDownloaded reports whether the file has finished downloading.
func (p *Proxy) IsDownloaded() bool {
	f, ok := p.File()
	return ok && f.IsDownloadingCompleted
}

// IsListened reports whether a voice message has been opened.
func (p *Proxy) IsListened() bool {
	return p.msg.Content.Kind == domain.ContentVoice && p.msg.Content.IsListened
}

// IsViewed reports whether a video note has been opened.
func (p *Proxy) IsViewed() bool {
	return p.msg.Content.Kind == domain.ContentVideoNote && p.msg.Content.IsViewed
}

// MsgID returns the message id.
func (p *Proxy) MsgID() int64 { return p.msg.ID }

// ChatID returns the owning chat id.
func (p *Proxy) ChatID() int64 { return p.msg.ChatID }

// SenderID returns the sender's user id.
func (p *Proxy) SenderID() int64 { return p.msg.SenderID }

// Date returns the message timestamp.
func (p *Proxy) Date() (y int, unix int64) { return 0, p.msg.Date.Unix() }

// ReplyMsgID returns the id this message replies to, or 0.
func (p *Proxy) ReplyMsgID() int64 { return p.msg.ReplyToMessageID }

// CanBeEdited reports whether the message may be edited.
func (p *Proxy) CanBeEdited() bool { return p.msg.CanBeEdited }

// Forward reports whether the message may be forwarded.
func (p *Proxy) Forward() bool { return p.msg.CanBeForwarded }

// PollQuestion requires Kind()==ContentPoll (caller contract).
func (p *Proxy) PollQuestion() string { return p.msg.Content.PollQuestion }

// PollOptions requires Kind()==ContentPoll (caller contract).
func (p *Proxy) PollOptions() []domain.PollOption { return p.msg.Content.PollOptions }

// IsClosedPoll requires Kind()==ContentPoll (caller contract).
func (p *Proxy) IsClosedPoll() bool { return p.msg.Content.IsClosedPoll }

// StickerEmoji returns the sticker's associated emoji.
func (p *Proxy) StickerEmoji() string { return p.msg.Content.StickerEmoji }

// IsAnimated reports whether the sticker/animation is animated.
func (p *Proxy) IsAnimated() bool { return p.msg.Content.IsAnimated }

// ReplyMarkupRows returns the inline keyboard rows, if any.
func (p *Proxy) ReplyMarkupRows() [][]domain.ReplyMarkupButton { return p.msg.ReplyMarkupRows }

// SetLocal mutates the file sub-record's local path/completion flag. No-op
// if the content variant carries no file.
func (p *Proxy) SetLocal(path string, completed bool) {
	if f, ok := p.File(); ok {
		f.LocalPath = path
		f.IsDownloadingCompleted = completed
	}
}

// SetListened marks a voice message as listened. No-op for other variants.
func (p *Proxy) SetListened(v bool) {
	if p.msg.Content.Kind == domain.ContentVoice {
		p.msg.Content.IsListened = v
	}
}

// SetViewed marks a video note as viewed. No-op for other variants.
func (p *Proxy) SetViewed(v bool) {
	if p.msg.Content.Kind == domain.ContentVideoNote {
		p.msg.Content.IsViewed = v
	}
}
