package store

import (
	"github.com/paul-nameless/tg/internal/domain"
)

// downloadTarget is where a downloaded file_id should land once DownloadFile
// resolves: the (chat, message) that is waiting on it.
type downloadTarget struct {
	ChatID int64
	MsgID  int64
}

// Model is the aggregate from spec §3/§4: it exclusively owns the three
// per-entity stores plus the scalar state the controller needs to drive the
// three panes (current chat cursor, in-flight downloads, multi-select,
// copy/paste buffer). It is reached only through the controller, whose
// render-queue discipline (spec §5) serializes all mutation against it.
type Model struct {
	Messages *MessageStore
	Chats    *ChatStore
	Users    *UserStore

	currentChatIndex int

	downloads map[int64]downloadTarget

	selected map[int64][]int64

	copiedSourceChatID int64
	copiedMsgIDs       []int64

	chatListTitle string
}

// NewModel wires the three stores to a shared MessagingProvider.
func NewModel(mp domain.MessagingProvider) *Model {
	return &Model{
		Messages:  NewMessageStore(mp),
		Chats:     NewChatStore(mp),
		Users:     NewUserStore(mp),
		downloads: make(map[int64]downloadTarget),
		selected:  make(map[int64][]int64),
	}
}

// CurrentChatIndex returns the cursor into Chats.Active.
func (m *Model) CurrentChatIndex() int { return m.currentChatIndex }

// SetCurrentChatIndex clamps and sets the chat cursor.
func (m *Model) SetCurrentChatIndex(i int) {
	n := len(m.Chats.Active())
	if n == 0 {
		m.currentChatIndex = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.currentChatIndex = i
}

// CurrentChatID resolves the cursor to a chat id, per spec §9's "compute
// fresh from id, never cache index across a resort" discipline.
func (m *Model) CurrentChatID() (int64, bool) {
	return m.Chats.IDByIndex(m.currentChatIndex)
}

// TrackDownload records that fileID's completion should update (chatID, msgID).
func (m *Model) TrackDownload(fileID, chatID, msgID int64) {
	m.downloads[fileID] = downloadTarget{ChatID: chatID, MsgID: msgID}
}

// ResolveDownload looks up and clears a tracked download.
func (m *Model) ResolveDownload(fileID int64) (chatID, msgID int64, ok bool) {
	t, found := m.downloads[fileID]
	if !found {
		return 0, 0, false
	}
	delete(m.downloads, fileID)
	return t.ChatID, t.MsgID, true
}

// ToggleSelected adds or removes msgID from chatID's selection set.
func (m *Model) ToggleSelected(chatID, msgID int64) {
	ids := m.selected[chatID]
	for i, id := range ids {
		if id == msgID {
			m.selected[chatID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
	m.selected[chatID] = append(ids, msgID)
}

// Selected returns the ordered selection for chatID.
func (m *Model) Selected(chatID int64) []int64 {
	return m.selected[chatID]
}

// ClearSelected empties chatID's selection.
func (m *Model) ClearSelected(chatID int64) {
	delete(m.selected, chatID)
}

// SetCopied stashes a forward/copy buffer: a source chat and its message ids.
func (m *Model) SetCopied(chatID int64, msgIDs []int64) {
	m.copiedSourceChatID = chatID
	m.copiedMsgIDs = append([]int64(nil), msgIDs...)
}

// Copied returns the current copy buffer.
func (m *Model) Copied() (chatID int64, msgIDs []int64) {
	return m.copiedSourceChatID, m.copiedMsgIDs
}

// ClearCopied empties the copy buffer.
func (m *Model) ClearCopied() {
	m.copiedSourceChatID = 0
	m.copiedMsgIDs = nil
}

// ChatListTitle returns the chat-pane's short status label.
func (m *Model) ChatListTitle() string { return m.chatListTitle }

// SetChatListTitle sets the chat-pane's short status label.
func (m *Model) SetChatListTitle(t string) { m.chatListTitle = t }
