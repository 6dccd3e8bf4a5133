package store

import (
	"time"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// decodeMessage turns the MP's decoded "@type":"message" payload into a
// domain.Message. It is permissive: unknown content kinds fall back to
// domain.ContentUnknown and are logged, per the "Dynamic records → typed
// variants" design note — the raw payload is preserved so callers can still
// render a placeholder instead of crashing.
func decodeMessage(chatID int64, raw map[string]any) *domain.Message {
	if raw == nil {
		return nil
	}
	id, _ := raw["id"].(int64)
	if id == 0 {
		if f, ok := raw["id"].(float64); ok {
			id = int64(f)
		}
	}
	if id == 0 {
		return nil
	}

	m := &domain.Message{
		ID:     id,
		ChatID: chatID,
	}
	if v, ok := raw["sender_id"].(int64); ok {
		m.SenderID = v
	}
	if v, ok := raw["date"].(int64); ok {
		m.Date = time.Unix(v, 0)
	}
	if v, ok := raw["can_be_edited"].(bool); ok {
		m.CanBeEdited = v
	}
	if v, ok := raw["can_be_forwarded"].(bool); ok {
		m.CanBeForwarded = v
	}
	if v, ok := raw["can_be_deleted_for_all_users"].(bool); ok {
		m.CanBeDeletedForAllUsers = v
	}
	if v, ok := raw["can_be_deleted_only_for_self"].(bool); ok {
		m.CanBeDeletedOnlyForSelf = v
	}
	if v, ok := raw["reply_to_message_id"].(int64); ok {
		m.ReplyToMessageID = v
	}

	content, _ := raw["content"].(map[string]any)
	m.Content = decodeContent(content)
	return m
}

func decodeContent(raw map[string]any) domain.Content {
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
		c.File = decodeFile(raw["document"])
	case "messageVoiceNote":
		c.Kind = domain.ContentVoice
		c.File = decodeFile(raw["voice_note"])
	case "messageAudio":
		c.Kind = domain.ContentAudio
		c.File = decodeFile(raw["audio"])
	case "messageVideo":
		c.Kind = domain.ContentVideo
		c.File = decodeFile(raw["video"])
	case "messageVideoNote":
		c.Kind = domain.ContentVideoNote
		c.File = decodeFile(raw["video_note"])
	case "messagePhoto":
		c.Kind = domain.ContentPhoto
		c.File = decodeLargestPhotoSize(raw["photo"])
	case "messageSticker":
		c.Kind = domain.ContentSticker
		c.File = decodeFile(raw["sticker"])
		if s, ok := raw["sticker"].(map[string]any); ok {
			c.StickerEmoji, _ = s["emoji"].(string)
			c.IsAnimated, _ = s["is_animated"].(bool)
		}
	case "messageAnimation":
		c.Kind = domain.ContentAnimation
		c.File = decodeFile(raw["animation"])
	case "messagePoll":
		c.Kind = domain.ContentPoll
		if p, ok := raw["poll"].(map[string]any); ok {
			c.PollQuestion, _ = p["question"].(string)
			c.IsClosedPoll, _ = p["is_closed"].(bool)
		}
	case "messageBasicGroupChatCreate", "messageChatAddMembers",
		"messageChatDeleteMember", "messageChatChangeTitle":
		c.Kind = domain.ContentSystemEvent
	default:
		c.Kind = domain.ContentUnknown
		logger.Debug("store: unknown content kind", "type", kindTag)
	}
	return c
}

func decodeFile(v any) *domain.FileDescriptor {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	fileNode, ok := m["file"].(map[string]any)
	if !ok {
		fileNode = m
	}
	f := &domain.FileDescriptor{}
	if id, ok := fileNode["id"].(int64); ok {
		f.ID = id
	}
	if sz, ok := fileNode["size"].(int64); ok {
		f.Size = sz
	}
	if local, ok := fileNode["local"].(map[string]any); ok {
		f.LocalPath, _ = local["path"].(string)
		f.IsDownloadingCompleted, _ = local["is_downloading_completed"].(bool)
		f.IsDownloadingActive, _ = local["is_downloading_active"].(bool)
	}
	return f
}

// decodeLargestPhotoSize picks the last (largest) size, per spec §4.1.
func decodeLargestPhotoSize(v any) *domain.FileDescriptor {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	sizes, ok := m["sizes"].([]any)
	if !ok || len(sizes) == 0 {
		return nil
	}
	last := sizes[len(sizes)-1]
	return decodeFile(last)
}

func decodeChatIDs(raw map[string]any) []int64 {
	if raw == nil {
		return nil
	}
	items, _ := raw["chat_ids"].([]any)
	out := make([]int64, 0, len(items))
	for _, v := range items {
		if id, ok := v.(int64); ok {
			out = append(out, id)
		}
	}
	return out
}

func decodeChat(raw map[string]any) *domain.Chat {
	if raw == nil {
		return nil
	}
	id, ok := raw["id"].(int64)
	if !ok {
		return nil
	}
	c := &domain.Chat{ID: id}
	c.Title, _ = raw["title"].(string)

	if positions, ok := raw["positions"].([]any); ok && len(positions) > 0 {
		if p0, ok := positions[0].(map[string]any); ok {
			if order, ok := p0["order"].(int64); ok {
				c.Order = order
			}
		}
	}
	if unread, ok := raw["unread_count"].(int64); ok {
		c.UnreadCount = int32(unread)
	}
	if pinned, ok := raw["is_pinned"].(bool); ok {
		c.IsPinned = pinned
	}
	if unreadMark, ok := raw["is_marked_as_unread"].(bool); ok {
		c.IsMarkedAsUnread = unreadMark
	}
	return c
}

func decodeMessageList(chatID int64, raw map[string]any) []*domain.Message {
	if raw == nil {
		return nil
	}
	items, _ := raw["messages"].([]any)
	out := make([]*domain.Message, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if dm := decodeMessage(chatID, m); dm != nil {
			out = append(out, dm)
		}
	}
	return out
}
