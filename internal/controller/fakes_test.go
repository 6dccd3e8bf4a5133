package controller

import (
	"context"

	"github.com/paul-nameless/tg/internal/domain"
)

// fakeMP is a hand-written stand-in for domain.MessagingProvider (the
// counterfeiter-generated fake used by the teacher's own test suite cannot
// be code-generated here). It records every call relevant to the spec §8
// end-to-end scenarios and resolves immediately with a canned result.
type fakeMP struct {
	domain.MessagingProvider

	viewMessagesCalls   []viewMessagesCall
	sendMessageCalls    []sendMessageCall
	deleteMessagesCalls []deleteMessagesCall
	forwardCalls        []forwardCall
	downloadCalls       []downloadCall

	getMessageFn       func(chatID, msgID int64) (map[string]any, error)
	searchContactsFn   func(query string) (map[string]any, error)
	searchContactsArgs []string
	joinChatIDs        []int64

	handlers map[string]domain.UpdateHandler
}

type viewMessagesCall struct {
	ChatID  int64
	MsgIDs  []int64
	ForceRd bool
}

type sendMessageCall struct {
	ChatID int64
	Text   string
}

type deleteMessagesCall struct {
	ChatID int64
	IDs    []int64
	Revoke bool
}

type forwardCall struct {
	ToChatID, FromChatID int64
	IDs                  []int64
}

type downloadCall struct {
	FileID int64
}

func newFakeMP() *fakeMP {
	return &fakeMP{handlers: make(map[string]domain.UpdateHandler)}
}

func ok(update map[string]any) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	r.Resolve(update, nil)
	return r
}

func (f *fakeMP) ViewMessages(ctx context.Context, chatID int64, msgIDs []int64, forceRead bool) *domain.AsyncResult {
	f.viewMessagesCalls = append(f.viewMessagesCalls, viewMessagesCall{chatID, msgIDs, forceRead})
	return ok(nil)
}

func (f *fakeMP) SendMessage(ctx context.Context, chatID int64, text string) *domain.AsyncResult {
	f.sendMessageCalls = append(f.sendMessageCalls, sendMessageCall{chatID, text})
	return ok(nil)
}

func (f *fakeMP) DeleteMessages(ctx context.Context, chatID int64, ids []int64, revoke bool) *domain.AsyncResult {
	f.deleteMessagesCalls = append(f.deleteMessagesCalls, deleteMessagesCall{chatID, ids, revoke})
	return ok(nil)
}

func (f *fakeMP) ForwardMessages(ctx context.Context, toChatID, fromChatID int64, ids []int64) *domain.AsyncResult {
	f.forwardCalls = append(f.forwardCalls, forwardCall{toChatID, fromChatID, ids})
	return ok(nil)
}

func (f *fakeMP) GetMessage(ctx context.Context, chatID, msgID int64) *domain.AsyncResult {
	if f.getMessageFn == nil {
		r := domain.NewAsyncResult()
		r.Resolve(nil, &domain.NotFoundError{Kind: "message", ID: msgID})
		return r
	}
	update, err := f.getMessageFn(chatID, msgID)
	r := domain.NewAsyncResult()
	r.Resolve(update, err)
	return r
}

func (f *fakeMP) DownloadFile(ctx context.Context, fileID int64, priority int, offset, limit int64, synchronous bool) *domain.AsyncResult {
	f.downloadCalls = append(f.downloadCalls, downloadCall{fileID})
	return ok(nil)
}

func (f *fakeMP) ToggleChatIsMarkedAsUnread(ctx context.Context, id int64, v bool) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) ToggleChatIsPinned(ctx context.Context, id int64, v bool) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SetChatNotificationSettings(ctx context.Context, id int64, s domain.NotificationSettings) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) LeaveChat(ctx context.Context, id int64) *domain.AsyncResult        { return ok(nil) }
func (f *fakeMP) CloseSecretChat(ctx context.Context, id int64) *domain.AsyncResult  { return ok(nil) }
func (f *fakeMP) DeleteChatHistory(ctx context.Context, id int64, removeFromList, revoke bool) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendDocument(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendChatAction(ctx context.Context, chatID int64, action domain.ActionKind) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SearchContacts(ctx context.Context, query string, limit int) *domain.AsyncResult {
	f.searchContactsArgs = append(f.searchContactsArgs, query)
	if f.searchContactsFn == nil {
		return ok(map[string]any{"chat_ids": []int64{}})
	}
	update, err := f.searchContactsFn(query)
	r := domain.NewAsyncResult()
	r.Resolve(update, err)
	return r
}

func (f *fakeMP) ReplyMessage(ctx context.Context, chatID, replyTo int64, text string) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendPhoto(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendAudio(ctx context.Context, chatID int64, path string, duration int32) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendVideo(ctx context.Context, chatID int64, path string, duration int32, w, h int32) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendVoice(ctx context.Context, chatID int64, path string, duration int32, waveform []byte) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) SendAnimation(ctx context.Context, chatID int64, path string) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) CreateNewSecretChat(ctx context.Context, userID int64) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) CreateNewBasicGroupChat(ctx context.Context, userIDs []int64, title string) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) JoinChat(ctx context.Context, id int64) *domain.AsyncResult {
	f.joinChatIDs = append(f.joinChatIDs, id)
	return ok(nil)
}

func (f *fakeMP) GetMe(ctx context.Context) *domain.AsyncResult { return ok(map[string]any{"id": int64(1)}) }

func (f *fakeMP) GetUser(ctx context.Context, id int64) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) GetUserFullInfo(ctx context.Context, id int64) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) GetContacts(ctx context.Context) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) GetBasicGroup(ctx context.Context, id int64) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) GetBasicGroupFullInfo(ctx context.Context, id int64) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) GetSupergroup(ctx context.Context, id int64) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) GetSupergroupFullInfo(ctx context.Context, id int64) *domain.AsyncResult {
	return ok(nil)
}

func (f *fakeMP) GetSecretChat(ctx context.Context, id int64) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) Logout(ctx context.Context) *domain.AsyncResult { return ok(nil) }

func (f *fakeMP) AddUpdateHandler(kind string, fn domain.UpdateHandler) {
	f.handlers[kind] = fn
}

func (f *fakeMP) fire(kind string, payload map[string]any) {
	if h, ok := f.handlers[kind]; ok {
		h(context.Background(), kind, payload)
	}
}
