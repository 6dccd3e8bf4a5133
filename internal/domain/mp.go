package domain

import "context"

// AsyncResult is the handle returned by every MP call: the caller may
// either .Wait() for it synchronously (blocking is permitted here per
// spec §5) or ignore it for fire-and-forget commands.
type AsyncResult struct {
	done      chan struct{}
	err       error
	errInfo   string
	update    map[string]any
}

// NewAsyncResult creates a result that will be completed exactly once via Resolve.
func NewAsyncResult() *AsyncResult {
	return &AsyncResult{done: make(chan struct{})}
}

// Resolve completes the result. Safe to call once; subsequent calls are no-ops.
func (r *AsyncResult) Resolve(update map[string]any, err error) {
	select {
	case <-r.done:
		return
	default:
	}
	r.update = update
	r.err = err
	if err != nil {
		r.errInfo = err.Error()
	}
	close(r.done)
}

// Wait blocks until the result is resolved and returns the error, if any.
func (r *AsyncResult) Wait() error {
	<-r.done
	return r.err
}

// Update returns the raw decoded payload, valid after Wait returns.
func (r *AsyncResult) Update() map[string]any { return r.update }

// ErrorInfo mirrors the source's free-text error_info field.
func (r *AsyncResult) ErrorInfo() string { return r.errInfo }

// UpdateHandler receives a decoded push-update payload off an MP-owned thread.
type UpdateHandler func(ctx context.Context, kind string, payload map[string]any)

// MessagingProvider (MP) is the binding to the remote protocol. The core
// treats it as an external collaborator: this interface is the entire
// contract, and no concrete wire implementation is required by the core
// itself (see internal/mp/telegram for an illustrative adapter).
type MessagingProvider interface {
	Login(ctx context.Context) *AsyncResult
	Logout(ctx context.Context) *AsyncResult

	// Chats
	GetChats(ctx context.Context, offsetChatID int64, offsetOrder int64, limit int) *AsyncResult
	GetChat(ctx context.Context, id int64) *AsyncResult
	ToggleChatIsMarkedAsUnread(ctx context.Context, id int64, v bool) *AsyncResult
	ToggleChatIsPinned(ctx context.Context, id int64, v bool) *AsyncResult
	SetChatNotificationSettings(ctx context.Context, id int64, s NotificationSettings) *AsyncResult
	ViewMessages(ctx context.Context, chatID int64, msgIDs []int64, forceRead bool) *AsyncResult
	LeaveChat(ctx context.Context, id int64) *AsyncResult
	JoinChat(ctx context.Context, id int64) *AsyncResult
	CreateNewSecretChat(ctx context.Context, userID int64) *AsyncResult
	CreateNewBasicGroupChat(ctx context.Context, userIDs []int64, title string) *AsyncResult
	CloseSecretChat(ctx context.Context, id int64) *AsyncResult
	DeleteChatHistory(ctx context.Context, id int64, removeFromList, revoke bool) *AsyncResult
	SearchContacts(ctx context.Context, query string, limit int) *AsyncResult

	// Messages
	GetChatHistory(ctx context.Context, chatID int64, fromMessageID int64, limit int) *AsyncResult
	GetMessage(ctx context.Context, chatID, msgID int64) *AsyncResult
	SendMessage(ctx context.Context, chatID int64, text string) *AsyncResult
	ReplyMessage(ctx context.Context, chatID, replyTo int64, text string) *AsyncResult
	EditMessageText(ctx context.Context, chatID, msgID int64, text string) *AsyncResult
	DeleteMessages(ctx context.Context, chatID int64, ids []int64, revoke bool) *AsyncResult
	ForwardMessages(ctx context.Context, toChatID, fromChatID int64, ids []int64) *AsyncResult
	OpenMessageContent(ctx context.Context, chatID, msgID int64) *AsyncResult
	SendChatAction(ctx context.Context, chatID int64, action ActionKind) *AsyncResult
	SendDocument(ctx context.Context, chatID int64, path string) *AsyncResult
	SendAudio(ctx context.Context, chatID int64, path string, duration int32) *AsyncResult
	SendPhoto(ctx context.Context, chatID int64, path string) *AsyncResult
	SendVideo(ctx context.Context, chatID int64, path string, duration int32, w, h int32) *AsyncResult
	SendVoice(ctx context.Context, chatID int64, path string, duration int32, waveform []byte) *AsyncResult
	SendAnimation(ctx context.Context, chatID int64, path string) *AsyncResult

	// Users
	GetMe(ctx context.Context) *AsyncResult
	GetUser(ctx context.Context, id int64) *AsyncResult
	GetUserFullInfo(ctx context.Context, id int64) *AsyncResult
	GetContacts(ctx context.Context) *AsyncResult
	GetBasicGroup(ctx context.Context, id int64) *AsyncResult
	GetBasicGroupFullInfo(ctx context.Context, id int64) *AsyncResult
	GetSupergroup(ctx context.Context, id int64) *AsyncResult
	GetSupergroupFullInfo(ctx context.Context, id int64) *AsyncResult
	GetSecretChat(ctx context.Context, id int64) *AsyncResult

	// Files
	DownloadFile(ctx context.Context, fileID int64, priority int, offset, limit int64, synchronous bool) *AsyncResult

	// Push updates
	AddUpdateHandler(kind string, fn UpdateHandler)
}
