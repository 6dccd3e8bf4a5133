package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-nameless/tg/internal/domain"
)

func msg(id int64) *domain.Message {
	return &domain.Message{ID: id, Content: domain.Content{Kind: domain.ContentText, Text: "x"}}
}

func TestMessageStore_AddKeepsDescendingIndex(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(10))
	s.Add(1, msg(20))
	s.Add(1, msg(15))

	assert.True(t, s.AssertOrdering(1))
	assert.Equal(t, 3, s.Len(1))
}

func TestMessageStore_AddIsIdempotent(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(10))
	s.Add(1, msg(10))
	assert.Equal(t, 1, s.Len(1))
}

func TestMessageStore_RemoveToleratesUnknownIDs(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(10))
	s.Remove(1, []int64{999, 10})
	assert.Equal(t, 0, s.Len(1))
}

func TestMessageStore_CursorBounds(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(30))
	s.Add(1, msg(20))
	s.Add(1, msg(10))

	assert.Equal(t, 0, s.Cursor(1))
	moved := s.CursorNext(1, 5)
	assert.True(t, moved)
	assert.Equal(t, 2, s.Cursor(1)) // bounded by len-1

	moved = s.CursorNext(1, 1)
	assert.False(t, moved) // already at max

	moved = s.CursorPrev(1, 100)
	assert.True(t, moved)
	assert.Equal(t, 0, s.Cursor(1))
}

func TestMessageStore_JumpToAndBottom(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(30))
	s.Add(1, msg(20))
	s.Add(1, msg(10))

	ok := s.JumpTo(1, 20)
	require.True(t, ok)
	assert.Equal(t, 1, s.Cursor(1))

	s.JumpBottom(1)
	assert.Equal(t, 0, s.Cursor(1))

	ok = s.JumpTo(1, 999)
	assert.False(t, ok)
}

type fakeMP struct {
	domain.MessagingProvider
	historyCalls int
	historyPages [][]*domain.Message
}

func (f *fakeMP) GetChatHistory(ctx context.Context, chatID, fromID int64, limit int) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	idx := f.historyCalls
	f.historyCalls++
	if idx >= len(f.historyPages) {
		r.Resolve(map[string]any{"messages": []any{}}, nil)
		return r
	}
	var items []any
	for _, m := range f.historyPages[idx] {
		items = append(items, map[string]any{
			"id":   m.ID,
			"content": map[string]any{"@type": "messageText", "text": map[string]any{"text": "x"}},
		})
	}
	r.Resolve(map[string]any{"messages": items}, nil)
	return r
}

func TestMessageStore_FetchPaginatesUpToThreeRounds(t *testing.T) {
	mp := &fakeMP{
		historyPages: [][]*domain.Message{
			{msg(100), msg(90)},
			{msg(80), msg(70)},
			{msg(60), msg(50)},
			{msg(40), msg(30)}, // never reached: round cap is 3
		},
	}
	s := NewMessageStore(mp)

	out := s.Fetch(context.Background(), 1, 0, 6)
	assert.LessOrEqual(t, len(out), 6)
	assert.Equal(t, 3, mp.historyCalls)
	assert.True(t, s.AssertOrdering(1))
}

func TestMessageStore_FetchStopsOnEmptyPage(t *testing.T) {
	mp := &fakeMP{historyPages: [][]*domain.Message{{msg(100)}}}
	s := NewMessageStore(mp)

	out := s.Fetch(context.Background(), 1, 0, 10)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, 2, mp.historyCalls) // first page, then an empty page
}

func TestMessageStore_FetchNeverDuplicatesCachedIDs(t *testing.T) {
	s := NewMessageStore(nil)
	s.Add(1, msg(10))
	s.Add(1, msg(5))

	out := s.Fetch(context.Background(), 1, 0, 10)
	assert.Equal(t, 2, len(out))
	assert.True(t, s.AssertOrdering(1))
}

func TestMessageStore_GetNotFoundIsMemoized(t *testing.T) {
	calls := 0
	mp := &fakeMPGetMessage{onGet: func() { calls++ }}
	s := NewMessageStore(mp)

	_, ok := s.Get(context.Background(), 1, 999)
	assert.False(t, ok)
	_, ok = s.Get(context.Background(), 1, 999)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

type fakeMPGetMessage struct {
	domain.MessagingProvider
	onGet func()
}

func (f *fakeMPGetMessage) GetMessage(ctx context.Context, chatID, msgID int64) *domain.AsyncResult {
	f.onGet()
	r := domain.NewAsyncResult()
	r.Resolve(nil, assertErr{})
	return r
}

type assertErr struct{}

func (assertErr) Error() string { return "not found" }
