// Package store holds the three per-entity caches (MessageStore, ChatStore,
// UserStore) and their Model aggregate, per spec §4.2-§4.4 and §3.
package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// chatMessages is the per-chat state: id->record map, a strictly descending
// index, and a display cursor (0 = most recent).
type chatMessages struct {
	byID   map[int64]*domain.Message
	index  []int64 // strictly descending
	cursor int
}

// MessageStore is the per-chat message cache described in spec §4.2.
type MessageStore struct {
	mp    domain.MessagingProvider
	chats map[int64]*chatMessages

	// notFound is global, as in the source: once a message id is confirmed
	// missing it is never refetched, regardless of which chat asked.
	notFound map[int64]struct{}
}

// NewMessageStore creates an empty store bound to mp.
func NewMessageStore(mp domain.MessagingProvider) *MessageStore {
	return &MessageStore{
		mp:       mp,
		chats:    make(map[int64]*chatMessages),
		notFound: make(map[int64]struct{}),
	}
}

func (s *MessageStore) chat(chatID int64) *chatMessages {
	c, ok := s.chats[chatID]
	if !ok {
		c = &chatMessages{byID: make(map[int64]*domain.Message)}
		s.chats[chatID] = c
	}
	return c
}

// Add inserts msg at the front of chatID's index if unseen. A duplicate id
// is ignored (logged as a warning) — Add is idempotent. If the inserted id
// turns out to be less than the index's second element (an out-of-order
// arrival), the whole index is re-sorted descending.
func (s *MessageStore) Add(chatID int64, msg *domain.Message) {
	c := s.chat(chatID)
	if _, exists := c.byID[msg.ID]; exists {
		logger.Warn("message_store: duplicate add ignored", "chat_id", chatID, "msg_id", msg.ID)
		return
	}

	c.byID[msg.ID] = msg
	c.index = append([]int64{msg.ID}, c.index...)

	if len(c.index) >= 2 && c.index[0] < c.index[1] {
		sort.Slice(c.index, func(i, j int) bool { return c.index[i] > c.index[j] })
	}
}

// Remove deletes ids from chatID's index and map. Unknown ids are tolerated.
func (s *MessageStore) Remove(chatID int64, ids []int64) {
	c := s.chat(chatID)
	toRemove := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		toRemove[id] = struct{}{}
		delete(c.byID, id)
	}
	kept := c.index[:0:0]
	for _, id := range c.index {
		if _, gone := toRemove[id]; !gone {
			kept = append(kept, id)
		}
	}
	c.index = kept
	if c.cursor >= len(c.index) && len(c.index) > 0 {
		c.cursor = len(c.index) - 1
	}
}

// Get returns a cached message, falling back to MP.GetMessage on a miss.
// A confirmed-missing id is recorded in the global not-found set and never
// refetched.
func (s *MessageStore) Get(ctx context.Context, chatID, msgID int64) (*domain.Message, bool) {
	c := s.chat(chatID)
	if m, ok := c.byID[msgID]; ok {
		return m, true
	}
	if _, known := s.notFound[msgID]; known {
		return nil, false
	}
	if s.mp == nil {
		return nil, false
	}
	res := s.mp.GetMessage(ctx, chatID, msgID)
	if err := res.Wait(); err != nil {
		s.notFound[msgID] = struct{}{}
		return nil, false
	}
	m := decodeMessage(chatID, res.Update())
	if m == nil {
		s.notFound[msgID] = struct{}{}
		return nil, false
	}
	s.Add(chatID, m)
	return m, true
}

// CursorNext advances the cursor toward older messages (larger index),
// bounded by len(index)-1. Returns whether it moved.
func (s *MessageStore) CursorNext(chatID int64, step int) bool {
	c := s.chat(chatID)
	if len(c.index) == 0 {
		return false
	}
	max := len(c.index) - 1
	next := c.cursor + step
	if next > max {
		next = max
	}
	moved := next != c.cursor
	c.cursor = next
	return moved
}

// CursorPrev advances the cursor toward newer messages, bounded by 0.
func (s *MessageStore) CursorPrev(chatID int64, step int) bool {
	c := s.chat(chatID)
	prev := c.cursor - step
	if prev < 0 {
		prev = 0
	}
	moved := prev != c.cursor
	c.cursor = prev
	return moved
}

// JumpBottom resets the cursor to 0 (most recent).
func (s *MessageStore) JumpBottom(chatID int64) {
	s.chat(chatID).cursor = 0
}

// JumpIDAt returns the message id at index idx of chatID's display order
// (0 = most recent), used by the controller to resolve "the message under
// the cursor" without exposing the internal index slice.
func (s *MessageStore) JumpIDAt(chatID int64, idx int) (int64, bool) {
	c := s.chat(chatID)
	if idx < 0 || idx >= len(c.index) {
		return 0, false
	}
	return c.index[idx], true
}

// JumpTo moves the cursor to msgID's position, if present.
func (s *MessageStore) JumpTo(chatID, msgID int64) bool {
	c := s.chat(chatID)
	for i, id := range c.index {
		if id == msgID {
			c.cursor = i
			return true
		}
	}
	return false
}

// Cursor returns the current cursor position for chatID.
func (s *MessageStore) Cursor(chatID int64) int {
	return s.chat(chatID).cursor
}

// Len returns the number of cached messages for chatID.
func (s *MessageStore) Len(chatID int64) int {
	return len(s.chat(chatID).index)
}

// maxFetchRounds bounds the paginator's retry against an under-delivering MP.
const maxFetchRounds = 3

// Fetch returns a window of up to limit messages starting at offset, in
// strictly decreasing id order. If the cache does not yet cover
// [offset, offset+limit), it issues up to maxFetchRounds sequential
// get_chat_history calls, each continuing from the last fetched id, until
// either the window is satisfied or the MP returns an empty page.
func (s *MessageStore) Fetch(ctx context.Context, chatID int64, offset, limit int) []*domain.Message {
	c := s.chat(chatID)

	if offset+limit > len(c.index) && s.mp != nil {
		fromID := int64(0)
		if len(c.index) > 0 {
			fromID = c.index[len(c.index)-1]
		}
		for round := 0; round < maxFetchRounds && offset+limit > len(c.index); round++ {
			res := s.mp.GetChatHistory(ctx, chatID, fromID, limit)
			if err := res.Wait(); err != nil {
				logger.Warn("message_store: fetch failed", "chat_id", chatID, "error", err)
				break
			}
			msgs := decodeMessageList(chatID, res.Update())
			if len(msgs) == 0 {
				break
			}
			for _, m := range msgs {
				s.Add(chatID, m)
			}
			fromID = c.index[len(c.index)-1]
		}
	}

	end := offset + limit
	if end > len(c.index) {
		end = len(c.index)
	}
	if offset > end {
		offset = end
	}
	out := make([]*domain.Message, 0, end-offset)
	for _, id := range c.index[offset:end] {
		out = append(out, c.byID[id])
	}
	return out
}

// Edit issues MP.EditMessageText and returns whether it succeeded.
func (s *MessageStore) Edit(ctx context.Context, chatID, msgID int64, text string) bool {
	if s.mp == nil {
		return false
	}
	res := s.mp.EditMessageText(ctx, chatID, msgID, text)
	return res.Wait() == nil
}

// Send issues MP.SendMessage and returns an optimistic placeholder record
// keyed by a synthetic negative id, so the store has something to show
// before MessageSendSucceeded arrives.
func (s *MessageStore) Send(ctx context.Context, chatID int64, text string) *domain.Message {
	tmp := &domain.Message{
		ID:           tempMessageID(),
		ChatID:       chatID,
		SendingState: domain.SendingStatePending,
		Content:      domain.Content{Kind: domain.ContentText, Text: text},
	}
	s.Add(chatID, tmp)
	if s.mp != nil {
		s.mp.SendMessage(ctx, chatID, text)
	}
	return tmp
}

func tempMessageID() int64 {
	// Negative ids derived from a uuid never collide with real (positive)
	// message ids. In the strictly descending index they sort after every
	// real id, so a not-yet-confirmed send sits at the index's oldest end
	// until ReplaceTemporary swaps in the confirmed message.
	u := uuid.New()
	v := int64(0)
	for _, b := range u[:8] {
		v = v<<8 | int64(b)
	}
	if v < 0 {
		v = -v
	}
	return -(v%1_000_000_000 + 1)
}

// UpdateContent replaces the stored record's content subtree.
func (s *MessageStore) UpdateContent(chatID, msgID int64, content domain.Content) {
	c := s.chat(chatID)
	if m, ok := c.byID[msgID]; ok {
		m.Content = content
	}
}

// UpdateContentOpened marks voice as listened / video-note as viewed.
func (s *MessageStore) UpdateContentOpened(chatID, msgID int64) {
	c := s.chat(chatID)
	m, ok := c.byID[msgID]
	if !ok {
		return
	}
	switch m.Content.Kind {
	case domain.ContentVoice:
		m.Content.IsListened = true
	case domain.ContentVideoNote:
		m.Content.IsViewed = true
	}
}

// UpdateFields shallow-merges patch into the stored record (used by
// MessageEdited-style updates).
func (s *MessageStore) UpdateFields(chatID, msgID int64, patch func(*domain.Message)) {
	c := s.chat(chatID)
	if m, ok := c.byID[msgID]; ok {
		patch(m)
	}
}

// ReplaceTemporary swaps a client-side optimistic placeholder id for the
// server-confirmed message, per the MessageSendSucceeded handler contract.
func (s *MessageStore) ReplaceTemporary(chatID, oldID int64, confirmed *domain.Message) {
	s.Remove(chatID, []int64{oldID})
	s.Add(chatID, confirmed)
}

// AssertOrdering is a test/debug helper validating the strictly-descending
// invariant; exported so controller-level tests can assert it too.
func (s *MessageStore) AssertOrdering(chatID int64) bool {
	c := s.chat(chatID)
	for i := 1; i < len(c.index); i++ {
		if c.index[i-1] <= c.index[i] {
			return false
		}
	}
	if len(c.index) != len(c.byID) {
		return false
	}
	return true
}
