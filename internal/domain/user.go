package domain

import "time"

// UserStatusKind is the sum-type tag of UserStatus.
type UserStatusKind int

const (
	StatusEmpty UserStatusKind = iota
	StatusOnline
	StatusOffline
	StatusRecently
	StatusLastWeek
	StatusLastMonth
)

// UserStatus is the remote user.status sum type.
type UserStatus struct {
	Kind     UserStatusKind
	Expires  time.Time // StatusOnline
	WasOnline time.Time // StatusOffline
}

// User is a remote user record.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	Phone     string
	Status    UserStatus
	IsBot     bool
}

// GroupKind distinguishes basic groups from supergroups/channels for the
// cache maps in UserStore.
type GroupKind int

const (
	GroupBasic GroupKind = iota
	GroupSuper
)

// Group is a basic-group or supergroup/channel record, cached by UserStore
// for member/subscriber counts shown in the message-pane status line.
type Group struct {
	ID          int64
	Kind        GroupKind
	Title       string
	MemberCount int32
	IsChannel   bool
}

// ActionKind is the tagged union of a ChatAction ("typing", "recording", …).
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionTyping
	ActionRecordingVoice
	ActionUploadingVoice
	ActionRecordingVideo
	ActionUploadingVideo
	ActionUploadingPhoto
	ActionUploadingDocument
	ActionCancel
)

// ChatAction is a per-chat transient "X is typing…" fact.
type ChatAction struct {
	UserID int64
	Kind   ActionKind
}

// Label returns the human label used in the chat-pane row, or "" for none/cancel.
func (a ChatAction) Label(senderLabel string) string {
	var verb string
	switch a.Kind {
	case ActionTyping:
		verb = "typing"
	case ActionRecordingVoice:
		verb = "recording voice"
	case ActionUploadingVoice:
		verb = "uploading voice"
	case ActionRecordingVideo:
		verb = "recording video"
	case ActionUploadingVideo:
		verb = "uploading video"
	case ActionUploadingPhoto:
		verb = "uploading photo"
	case ActionUploadingDocument:
		verb = "uploading document"
	default:
		return ""
	}
	if senderLabel == "" {
		return verb + "..."
	}
	return senderLabel + " " + verb + "..."
}
