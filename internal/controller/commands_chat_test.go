package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-nameless/tg/internal/domain"
)

func TestSearchContacts_JumpsOnlyWhenChatAlreadyLoaded(t *testing.T) {
	mp := newFakeMP()
	mp.searchContactsFn = func(query string) (map[string]any, error) {
		return map[string]any{"chat_ids": []int64{42}}, nil
	}
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 42, Order: 1})
	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 2})
	c.Model.SetCurrentChatIndex(0)

	c.SearchContacts("alice")

	require.Len(t, mp.searchContactsArgs, 1)
	assert.Equal(t, "alice", mp.searchContactsArgs[0])
	idx, ok := c.Model.Chats.IndexByID(42)
	require.True(t, ok)
	assert.Equal(t, idx, c.Model.CurrentChatIndex())
}

func TestSearchContacts_ReportsNotLoadedWithoutJoining(t *testing.T) {
	mp := newFakeMP()
	mp.searchContactsFn = func(query string) (map[string]any, error) {
		return map[string]any{"chat_ids": []int64{99}}, nil
	}
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 1})
	c.Model.SetCurrentChatIndex(0)

	c.SearchContacts("bob")

	assert.Empty(t, mp.joinChatIDs)
	assert.Equal(t, "Info: Chat not loaded", c.StatusText())
	assert.Equal(t, 0, c.Model.CurrentChatIndex())
}

func TestSearchContacts_NoResultsReportsNotFound(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 1})
	c.Model.SetCurrentChatIndex(0)

	c.SearchContacts("nobody")

	assert.Equal(t, "Info: Chat not found", c.StatusText())
}
