package controller

import (
	"context"
	"time"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// registerUpdateHandlers wires every required handler kind from spec §4.6
// onto c.MP. Each handler is wrapped in a logged catch-all and submits its
// mutation to the draw queue as one closure. The handlers enqueue no redraw:
// the screen shows the change when the input loop next enqueues a frame,
// after a key press.
func registerUpdateHandlers(c *Controller) {
	c.MP.AddUpdateHandler("NewMessage", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleNewMessage(payload) })
	})
	c.MP.AddUpdateHandler("MessageContent", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleMessageContent(payload) })
	})
	c.MP.AddUpdateHandler("MessageEdited", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleMessageEdited(payload) })
	})
	c.MP.AddUpdateHandler("MessageSendSucceeded", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleMessageSendSucceeded(payload) })
	})
	c.MP.AddUpdateHandler("MessageContentOpened", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleMessageContentOpened(payload) })
	})
	c.MP.AddUpdateHandler("DeleteMessages", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleDeleteMessages(payload) })
	})
	c.MP.AddUpdateHandler("NewChat", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleNewChat(payload) })
	})

	for _, kind := range []string{
		"ChatPosition", "ChatOrder", "ChatLastMessage", "ChatReadInbox",
		"ChatReadOutbox", "ChatTitle", "ChatIsPinned", "ChatIsMarkedAsUnread",
		"ChatDraftMessage", "ChatNotificationSettings",
	} {
		kind := kind
		c.MP.AddUpdateHandler(kind, func(ctx context.Context, k string, payload map[string]any) {
			wrapHandler(k, func() { c.handleChatFieldUpdate(payload) })
		})
	}

	c.MP.AddUpdateHandler("File", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleFile(payload) })
	})
	c.MP.AddUpdateHandler("ConnectionState", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleConnectionState(payload) })
	})
	c.MP.AddUpdateHandler("UserStatus", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleUserStatus(payload) })
	})
	c.MP.AddUpdateHandler("BasicGroup", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleBasicGroup(payload) })
	})
	c.MP.AddUpdateHandler("Supergroup", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleSupergroup(payload) })
	})
	c.MP.AddUpdateHandler("UserChatAction", func(ctx context.Context, kind string, payload map[string]any) {
		wrapHandler(kind, func() { c.handleUserChatAction(payload) })
	})
}

func int64From(m map[string]any, key string) int64 {
	v, _ := m[key].(int64)
	return v
}

// handleNewMessage inserts the message and auto-downloads small attachments
// — spec §4.6/§8 scenario 5. Unless the chat is muted or the message is
// self-sent, it writes an info log line; no notification command is run and
// no redraw is enqueued.
func (c *Controller) handleNewMessage(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	msgRaw, _ := payload["message"].(map[string]any)
	m := decodeMessageForHandlers(chatID, msgRaw)
	if m == nil {
		return
	}

	c.Enqueue(func() {
		c.Model.Messages.Add(chatID, m)

		if f := m.Content.File; f != nil && c.Config.MaxDownloadSize > 0 && f.Size <= c.Config.MaxDownloadSize &&
			!f.IsDownloadingCompleted && !c.Cache.IsDownloaded(c.ctx(), f.ID) {
			c.MP.DownloadFile(c.ctx(), f.ID, 1, 0, 0, false)
			c.Model.TrackDownload(f.ID, chatID, m.ID)
			c.Cache.MarkDownloaded(c.ctx(), f.ID)
		}

		if m.SenderID != c.Config.MyUserID {
			if ch, ok := c.Model.Chats.ChatByID(chatID); !ok || ch.Notification.MuteFor == 0 {
				logger.Info("controller: new message notification", "chat_id", chatID, "msg_id", m.ID)
			}
		}
	})
}

func (c *Controller) handleMessageContent(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	msgID := int64From(payload, "message_id")
	contentRaw, _ := payload["new_content"].(map[string]any)
	content := decodeContentForHandlers(contentRaw)

	c.Enqueue(func() {
		c.Model.Messages.UpdateContent(chatID, msgID, content)
	})
}

func (c *Controller) handleMessageEdited(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	msgID := int64From(payload, "message_id")
	editDate := int64From(payload, "edit_date")

	c.Enqueue(func() {
		c.Model.Messages.UpdateFields(chatID, msgID, func(m *domain.Message) {
			m.EditDate = time.Unix(editDate, 0)
		})
	})
}

func (c *Controller) handleMessageSendSucceeded(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	oldID := int64From(payload, "old_message_id")
	msgRaw, _ := payload["message"].(map[string]any)
	confirmed := decodeMessageForHandlers(chatID, msgRaw)
	if confirmed == nil {
		return
	}
	c.Enqueue(func() {
		c.Model.Messages.ReplaceTemporary(chatID, oldID, confirmed)
	})
}

func (c *Controller) handleMessageContentOpened(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	msgID := int64From(payload, "message_id")
	c.Enqueue(func() {
		c.Model.Messages.UpdateContentOpened(chatID, msgID)
	})
}

// handleDeleteMessages removes message ids, only when the update reports a
// permanent deletion (not the "just hidden locally" variant).
func (c *Controller) handleDeleteMessages(payload map[string]any) {
	isPermanent, _ := payload["is_permanent"].(bool)
	if !isPermanent {
		return
	}
	chatID := int64From(payload, "chat_id")
	var ids []int64
	if raw, ok := payload["message_ids"].([]any); ok {
		for _, v := range raw {
			if id, ok := v.(int64); ok {
				ids = append(ids, id)
			}
		}
	}
	c.Enqueue(func() {
		c.Model.Messages.Remove(chatID, ids)
	})
}

func (c *Controller) handleNewChat(payload map[string]any) {
	chatRaw, _ := payload["chat"].(map[string]any)
	ch := decodeChatForHandlers(chatRaw)
	if ch == nil {
		return
	}
	c.Enqueue(func() {
		c.Model.Chats.Add(ch)
	})
}

// handleChatFieldUpdate covers every "a chat field changed" update kind.
// It remembers the currently selected chat id, applies the patch, re-sorts
// if needed, then relocates the cursor to the same chat id, per the
// "refresh current chat" discipline in spec §4.6.
func (c *Controller) handleChatFieldUpdate(payload map[string]any) {
	chatID := int64From(payload, "chat_id")

	c.Enqueue(func() {
		prevID, hadCur := c.currentChatID()

		c.Model.Chats.Update(chatID, func(ch *domain.Chat) {
			applyChatFieldPatch(ch, payload)
		})

		if hadCur {
			c.relocateCurrentChat(prevID)
		}
	})
}

// handleFile resolves a pending download by file_id, patches the message's
// file descriptor, and forgets the download once complete (spec §8 scenario 5).
func (c *Controller) handleFile(payload map[string]any) {
	fileRaw, _ := payload["file"].(map[string]any)
	fileID := int64From(fileRaw, "id")

	c.Enqueue(func() {
		chatID, msgID, tracked := c.Model.ResolveDownload(fileID)
		if !tracked {
			return
		}
		localRaw, _ := fileRaw["local"].(map[string]any)
		completed, _ := localRaw["is_downloading_completed"].(bool)
		path, _ := localRaw["path"].(string)

		c.Model.Messages.UpdateFields(chatID, msgID, func(m *domain.Message) {
			if m.Content.File == nil {
				return
			}
			m.Content.File.LocalPath = path
			m.Content.File.IsDownloadingCompleted = completed
		})

		if !completed {
			// still downloading: keep tracking it for the next File update.
			c.Model.TrackDownload(fileID, chatID, msgID)
		}
	})
}

func (c *Controller) handleConnectionState(payload map[string]any) {
	stateTag, _ := payload["state"].(string)
	label := connectionStateLabel(stateTag)
	c.Enqueue(func() {
		c.Model.Chats.SetTitle(label)
	})
}

func connectionStateLabel(stateTag string) string {
	switch stateTag {
	case "connectionStateWaitingForNetwork":
		return "Waiting for network..."
	case "connectionStateConnecting":
		return "Connecting..."
	case "connectionStateConnectingToProxy":
		return "Connecting to proxy..."
	case "connectionStateUpdating":
		return "Updating..."
	case "connectionStateReady":
		return ""
	default:
		return ""
	}
}

func (c *Controller) handleUserStatus(payload map[string]any) {
	userID := int64From(payload, "user_id")
	statusRaw, _ := payload["status"].(map[string]any)
	status := decodeUserStatusForHandlers(statusRaw)
	c.Enqueue(func() {
		if u, ok := c.Model.Users.User(c.ctx(), userID); ok {
			u.Status = status
		}
	})
}

func (c *Controller) handleBasicGroup(payload map[string]any) {
	groupRaw, _ := payload["basic_group"].(map[string]any)
	g := decodeGroupForHandlers(groupRaw, domain.GroupBasic)
	if g == nil {
		return
	}
	c.Enqueue(func() { c.Model.Users.AddGroup(g) })
}

func (c *Controller) handleSupergroup(payload map[string]any) {
	groupRaw, _ := payload["supergroup"].(map[string]any)
	g := decodeGroupForHandlers(groupRaw, domain.GroupSuper)
	if g == nil {
		return
	}
	c.Enqueue(func() { c.Model.Users.AddSupergroup(g) })
}

func (c *Controller) handleUserChatAction(payload map[string]any) {
	chatID := int64From(payload, "chat_id")
	userID := int64From(payload, "user_id")
	actionTag, _ := payload["action"].(string)
	kind := decodeActionKindForHandlers(actionTag)

	c.Enqueue(func() {
		c.Model.Users.SetAction(chatID, domain.ChatAction{UserID: userID, Kind: kind})
	})
}
