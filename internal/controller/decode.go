package controller

import (
	"time"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// decodeMessageForHandlers mirrors store's permissive decoder, duplicated
// here because push-update payloads and get-style responses are shaped
// slightly differently in practice (the update envelope nests "message"
// one level in); it shares the same "Dynamic records → typed variants"
// approach from spec §9.
func decodeMessageForHandlers(chatID int64, raw map[string]any) *domain.Message {
	if raw == nil {
		return nil
	}
	id := int64From(raw, "id")
	if id == 0 {
		return nil
	}
	m := &domain.Message{ID: id, ChatID: chatID}
	m.SenderID = int64From(raw, "sender_id")
	if v := int64From(raw, "date"); v != 0 {
		m.Date = time.Unix(v, 0)
	}
	m.CanBeEdited, _ = raw["can_be_edited"].(bool)
	m.CanBeForwarded, _ = raw["can_be_forwarded"].(bool)
	m.CanBeDeletedForAllUsers, _ = raw["can_be_deleted_for_all_users"].(bool)
	m.CanBeDeletedOnlyForSelf, _ = raw["can_be_deleted_only_for_self"].(bool)
	m.ReplyToMessageID = int64From(raw, "reply_to_message_id")

	contentRaw, _ := raw["content"].(map[string]any)
	m.Content = decodeContentForHandlers(contentRaw)
	return m
}

func decodeContentForHandlers(raw map[string]any) domain.Content {
	if raw == nil {
		return domain.Content{Kind: domain.ContentUnknown}
	}
	kindTag, _ := raw["@type"].(string)
	c := domain.Content{Raw: raw}

	switch kindTag {
	case "messageText":
		c.Kind = domain.ContentText
		if t, ok := raw["text"].(map[string]any); ok {
			c.Text, _ = t["text"].(string)
		}
	case "messageDocument":
		c.Kind = domain.ContentDocument
		c.File = decodeFileForHandlers(raw["document"])
	case "messageVoiceNote":
		c.Kind = domain.ContentVoice
		c.File = decodeFileForHandlers(raw["voice_note"])
	case "messageAudio":
		c.Kind = domain.ContentAudio
		c.File = decodeFileForHandlers(raw["audio"])
	case "messageVideo":
		c.Kind = domain.ContentVideo
		c.File = decodeFileForHandlers(raw["video"])
	case "messageVideoNote":
		c.Kind = domain.ContentVideoNote
		c.File = decodeFileForHandlers(raw["video_note"])
	case "messagePhoto":
		c.Kind = domain.ContentPhoto
		c.File = decodeLargestPhotoSizeForHandlers(raw["photo"])
	case "messageSticker":
		c.Kind = domain.ContentSticker
		c.File = decodeFileForHandlers(raw["sticker"])
	case "messageAnimation":
		c.Kind = domain.ContentAnimation
		c.File = decodeFileForHandlers(raw["animation"])
	case "messagePoll":
		c.Kind = domain.ContentPoll
	case "messageBasicGroupChatCreate", "messageChatAddMembers",
		"messageChatDeleteMember", "messageChatChangeTitle":
		c.Kind = domain.ContentSystemEvent
	default:
		c.Kind = domain.ContentUnknown
		logger.Debug("controller: unknown content kind in update", "type", kindTag)
	}
	return c
}

func decodeFileForHandlers(v any) *domain.FileDescriptor {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	fileNode, ok := m["file"].(map[string]any)
	if !ok {
		fileNode = m
	}
	f := &domain.FileDescriptor{
		ID:   int64From(fileNode, "id"),
		Size: int64From(fileNode, "size"),
	}
	if local, ok := fileNode["local"].(map[string]any); ok {
		f.LocalPath, _ = local["path"].(string)
		f.IsDownloadingCompleted, _ = local["is_downloading_completed"].(bool)
		f.IsDownloadingActive, _ = local["is_downloading_active"].(bool)
	}
	return f
}

func decodeLargestPhotoSizeForHandlers(v any) *domain.FileDescriptor {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	sizes, ok := m["sizes"].([]any)
	if !ok || len(sizes) == 0 {
		return nil
	}
	return decodeFileForHandlers(sizes[len(sizes)-1])
}

func decodeChatForHandlers(raw map[string]any) *domain.Chat {
	if raw == nil {
		return nil
	}
	id := int64From(raw, "id")
	if id == 0 {
		return nil
	}
	ch := &domain.Chat{ID: id}
	ch.Title, _ = raw["title"].(string)
	applyChatFieldPatch(ch, raw)
	return ch
}

// applyChatFieldPatch merges whichever of the ChatXxx update fields are
// present in payload into ch; every field is optional, since the same
// function backs NewChat (full record) and the narrower ChatXxx handlers.
func applyChatFieldPatch(ch *domain.Chat, payload map[string]any) {
	if positions, ok := payload["positions"].([]any); ok && len(positions) > 0 {
		if p0, ok := positions[0].(map[string]any); ok {
			ch.Order = int64From(p0, "order")
		}
	}
	if order, ok := payload["order"].(int64); ok {
		ch.Order = order
	}
	if title, ok := payload["title"].(string); ok {
		ch.Title = title
	}
	if v, ok := payload["is_pinned"].(bool); ok {
		ch.IsPinned = v
	}
	if v, ok := payload["is_marked_as_unread"].(bool); ok {
		ch.IsMarkedAsUnread = v
	}
	if v, ok := payload["unread_count"].(int64); ok {
		ch.UnreadCount = int32(v)
	}
	if v, ok := payload["last_read_inbox_message_id"].(int64); ok {
		ch.LastReadInboxID = v
	}
	if v, ok := payload["last_read_outbox_message_id"].(int64); ok {
		ch.LastReadOutboxID = v
	}
	if v, ok := payload["draft_text"].(string); ok {
		ch.DraftText = v
	}
	if msgRaw, ok := payload["last_message"].(map[string]any); ok {
		ch.LastMessage = decodeMessageForHandlers(ch.ID, msgRaw)
	}
}

func decodeUserStatusForHandlers(raw map[string]any) domain.UserStatus {
	kindTag, _ := raw["@type"].(string)
	switch kindTag {
	case "userStatusOnline":
		return domain.UserStatus{Kind: domain.StatusOnline, Expires: time.Unix(int64From(raw, "expires"), 0)}
	case "userStatusOffline":
		return domain.UserStatus{Kind: domain.StatusOffline, WasOnline: time.Unix(int64From(raw, "was_online"), 0)}
	case "userStatusRecently":
		return domain.UserStatus{Kind: domain.StatusRecently}
	case "userStatusLastWeek":
		return domain.UserStatus{Kind: domain.StatusLastWeek}
	case "userStatusLastMonth":
		return domain.UserStatus{Kind: domain.StatusLastMonth}
	default:
		return domain.UserStatus{Kind: domain.StatusEmpty}
	}
}

func decodeGroupForHandlers(raw map[string]any, kind domain.GroupKind) *domain.Group {
	if raw == nil {
		return nil
	}
	id := int64From(raw, "id")
	if id == 0 {
		return nil
	}
	g := &domain.Group{ID: id, Kind: kind}
	g.Title, _ = raw["title"].(string)
	if v, ok := raw["member_count"].(int64); ok {
		g.MemberCount = int32(v)
	}
	g.IsChannel, _ = raw["is_channel"].(bool)
	return g
}

func decodeActionKindForHandlers(tag string) domain.ActionKind {
	switch tag {
	case "chatActionTyping":
		return domain.ActionTyping
	case "chatActionRecordingVoiceNote":
		return domain.ActionRecordingVoice
	case "chatActionUploadingVoiceNote":
		return domain.ActionUploadingVoice
	case "chatActionRecordingVideo":
		return domain.ActionRecordingVideo
	case "chatActionUploadingVideo":
		return domain.ActionUploadingVideo
	case "chatActionUploadingPhoto":
		return domain.ActionUploadingPhoto
	case "chatActionUploadingDocument":
		return domain.ActionUploadingDocument
	case "chatActionCancel":
		return domain.ActionCancel
	default:
		return domain.ActionNone
	}
}
