package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paul-nameless/tg/internal/domain"
)

func chat(id, order int64) *domain.Chat {
	return &domain.Chat{ID: id, Order: order, Title: "chat"}
}

func TestChatStore_AddOrderZeroGoesInactive(t *testing.T) {
	s := NewChatStore(nil)
	s.Add(chat(1, 0))
	s.Add(chat(2, 5))

	assert.Len(t, s.Active(), 1)
	_, ok := s.ChatByID(1)
	assert.True(t, ok)
	assert.True(t, s.AssertInvariants())
}

func TestChatStore_ActiveSortedDescendingByOrderThenID(t *testing.T) {
	s := NewChatStore(nil)
	s.Add(chat(1, 5))
	s.Add(chat(2, 10))
	s.Add(chat(3, 10))

	ids := []int64{}
	for _, c := range s.Active() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.True(t, s.AssertInvariants())
}

func TestChatStore_UpdateToZeroOrderMovesToInactive(t *testing.T) {
	s := NewChatStore(nil)
	s.Add(chat(1, 5))

	ok := s.Update(1, func(c *domain.Chat) { c.Order = 0 })
	assert.True(t, ok)
	assert.Len(t, s.Active(), 0)
	assert.True(t, s.AssertInvariants())
}

func TestChatStore_UpdateUnknownChatLogsAndReturnsFalse(t *testing.T) {
	s := NewChatStore(nil)
	ok := s.Update(999, func(c *domain.Chat) {})
	assert.False(t, ok)
}

func TestChatStore_UpdatePromotesInactiveToActive(t *testing.T) {
	s := NewChatStore(nil)
	s.Add(chat(1, 0))
	ok := s.Update(1, func(c *domain.Chat) { c.Order = 7 })
	assert.True(t, ok)
	assert.Len(t, s.Active(), 1)
	assert.True(t, s.AssertInvariants())
}

func TestChatStore_IndexByIDSurvivesResort(t *testing.T) {
	s := NewChatStore(nil)
	s.Add(chat(7, 1))
	s.Add(chat(8, 2))
	s.Add(chat(9, 3))

	idx, ok := s.IndexByID(7)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	s.Update(7, func(c *domain.Chat) { c.Order = 100 })
	idx, ok = s.IndexByID(7)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

type fakeChatMP struct {
	domain.MessagingProvider
	loadCalls int
	pages     [][]int64
}

func (f *fakeChatMP) GetChats(ctx context.Context, offsetChatID, offsetOrder int64, limit int) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	idx := f.loadCalls
	f.loadCalls++
	if idx >= len(f.pages) {
		r.Resolve(map[string]any{"chat_ids": []any{}}, nil)
		return r
	}
	var ids []any
	for _, id := range f.pages[idx] {
		ids = append(ids, id)
	}
	r.Resolve(map[string]any{"chat_ids": ids}, nil)
	return r
}

func (f *fakeChatMP) GetChat(ctx context.Context, id int64) *domain.AsyncResult {
	r := domain.NewAsyncResult()
	r.Resolve(map[string]any{"id": id, "title": "c", "positions": []any{map[string]any{"order": int64(5)}}}, nil)
	return r
}

func TestChatStore_FetchIssuesAtMostOneLoadPerCall(t *testing.T) {
	mp := &fakeChatMP{pages: [][]int64{{1, 2}, {3, 4}}}
	s := NewChatStore(mp)

	s.Fetch(context.Background(), 0, 10)
	assert.Equal(t, 1, mp.loadCalls)
}

func TestChatStore_FetchStopsAfterEmptyPage(t *testing.T) {
	mp := &fakeChatMP{pages: [][]int64{{}}}
	s := NewChatStore(mp)

	s.Fetch(context.Background(), 0, 10)
	assert.Equal(t, 1, mp.loadCalls)

	s.Fetch(context.Background(), 0, 10)
	assert.Equal(t, 1, mp.loadCalls, "haveFullList must prevent a second MP call")
}

func TestChatStore_SearchAndNextFoundWraps(t *testing.T) {
	s := NewChatStore(nil)
	c1 := chat(1, 5)
	c1.Title = "alice"
	c2 := chat(2, 4)
	c2.Title = "bob"
	s.Add(c1)
	s.Add(c2)

	found := s.Search("a")
	assert.Contains(t, found, int64(1))

	id, ok := s.NextFound(false)
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}
