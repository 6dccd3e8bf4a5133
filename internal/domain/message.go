// Package domain holds the entities, push-update vocabulary, and external
// collaborator interfaces (MP, TS, Shell) that the rest of the core is
// built against. Remote records arrive as heterogeneous, string-keyed
// payloads tagged by an "@type" discriminator; this package turns that into
// tagged Go variants with a permissive decoder that keeps unknown fields
// around for pass-through updates instead of dropping them.
package domain

import "time"

// ContentKind classifies a Message's content variant.
type ContentKind int

const (
	ContentUnknown ContentKind = iota
	ContentText
	ContentDocument
	ContentVoice
	ContentAudio
	ContentVideo
	ContentVideoNote
	ContentPhoto
	ContentSticker
	ContentAnimation
	ContentPoll
	ContentSystemEvent
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentDocument:
		return "document"
	case ContentVoice:
		return "voice"
	case ContentAudio:
		return "audio"
	case ContentVideo:
		return "video"
	case ContentVideoNote:
		return "video_note"
	case ContentPhoto:
		return "photo"
	case ContentSticker:
		return "sticker"
	case ContentAnimation:
		return "animation"
	case ContentPoll:
		return "poll"
	case ContentSystemEvent:
		return "system_event"
	default:
		return "unknown"
	}
}

// SystemEventKind distinguishes the sub-variants of ContentSystemEvent.
type SystemEventKind int

const (
	SystemEventNone SystemEventKind = iota
	SystemEventGroupCreated
	SystemEventMemberAdded
	SystemEventMemberRemoved
	SystemEventTitleChanged
)

// SendingState mirrors a message's in-flight send status.
type SendingState int

const (
	SendingStateNone SendingState = iota
	SendingStatePending
	SendingStateFailed
)

// FileDescriptor is the "file" sub-record nested in file-bearing content.
type FileDescriptor struct {
	ID                      int64
	Size                    int64
	ExpectedSize            int64
	LocalPath               string
	IsDownloadingCompleted  bool
	IsDownloadingActive     bool
}

// PollOption is one answer option of a Poll content variant.
type PollOption struct {
	Text       string
	VoterCount int32
}

// ReplyMarkupButton is one button of an inline keyboard row.
type ReplyMarkupButton struct {
	Text string
	URL  string
}

// TextEntity marks a span of Text/Caption as a URL (textEntityTypeUrl/TextUrl).
type TextEntity struct {
	Offset int
	Length int
	URL    string
}

// Content is the tagged union of a Message's body. Only the fields relevant
// to Kind are populated; MsgProxy is responsible for knowing which is which.
type Content struct {
	Kind ContentKind

	Text    string // text body, or caption for media
	Caption string

	File     *FileDescriptor
	Duration int32 // seconds, for voice/audio/video/video_note
	Width    int32
	Height   int32
	FileName string

	IsListened bool // voice: opened
	IsViewed   bool // video note: opened

	StickerEmoji string
	IsAnimated   bool

	PollQuestion string
	PollOptions  []PollOption
	IsClosedPoll bool

	SystemEvent   SystemEventKind
	SystemActorID int64
	SystemTitle   string

	Entities []TextEntity

	// Raw preserves the original decoded payload for unknown variants and
	// for pass-through fields a typed accessor does not expose.
	Raw map[string]any
}

// Message is a per-chat record. ID is unique within ChatID.
type Message struct {
	ID       int64
	ChatID   int64
	SenderID int64
	Date     time.Time
	EditDate time.Time

	Content Content

	CanBeEdited               bool
	CanBeForwarded            bool
	CanBeDeletedForAllUsers   bool
	CanBeDeletedOnlyForSelf   bool

	ReplyToMessageID int64

	SendingState SendingState

	ReplyMarkupRows [][]ReplyMarkupButton

	// URLPreview, when present, backs the "| site: title" rendering block.
	URLPreview *URLPreview
}

// URLPreview is a server-provided link preview.
type URLPreview struct {
	SiteName    string
	Title       string
	Description string
}

// IsTemporary reports whether this record is a client-side optimistic
// placeholder awaiting MessageSendSucceeded confirmation.
func (m *Message) IsTemporary() bool {
	return m.SendingState == SendingStatePending
}
