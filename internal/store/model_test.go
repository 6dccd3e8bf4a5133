package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paul-nameless/tg/internal/domain"
)

func TestModel_CurrentChatIndexClamps(t *testing.T) {
	m := NewModel(nil)
	m.Chats.Add(chat(1, 5))
	m.Chats.Add(chat(2, 4))

	m.SetCurrentChatIndex(100)
	assert.Equal(t, 1, m.CurrentChatIndex())

	m.SetCurrentChatIndex(-5)
	assert.Equal(t, 0, m.CurrentChatIndex())
}

func TestModel_CurrentChatIDTracksResort(t *testing.T) {
	m := NewModel(nil)
	m.Chats.Add(chat(1, 5))
	m.Chats.Add(chat(2, 4))
	m.SetCurrentChatIndex(0)

	id, ok := m.CurrentChatID()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	m.Chats.Update(2, func(c *domain.Chat) { c.Order = 100 })
	id, ok = m.CurrentChatID()
	assert.True(t, ok)
	assert.Equal(t, int64(2), id, "index 0 now resolves to whichever chat is first after resort")
}

func TestModel_DownloadTrackingRoundTrips(t *testing.T) {
	m := NewModel(nil)
	m.TrackDownload(42, 1, 2)

	chatID, msgID, ok := m.ResolveDownload(42)
	assert.True(t, ok)
	assert.Equal(t, int64(1), chatID)
	assert.Equal(t, int64(2), msgID)

	_, _, ok = m.ResolveDownload(42)
	assert.False(t, ok, "resolving clears the tracked download")
}

func TestModel_ToggleSelectedAddsThenRemoves(t *testing.T) {
	m := NewModel(nil)
	m.ToggleSelected(1, 100)
	m.ToggleSelected(1, 200)
	assert.Equal(t, []int64{100, 200}, m.Selected(1))

	m.ToggleSelected(1, 100)
	assert.Equal(t, []int64{200}, m.Selected(1))
}

func TestModel_CopiedBuffer(t *testing.T) {
	m := NewModel(nil)
	m.SetCopied(1, []int64{10, 20})

	chatID, ids := m.Copied()
	assert.Equal(t, int64(1), chatID)
	assert.Equal(t, []int64{10, 20}, ids)

	m.ClearCopied()
	chatID, ids = m.Copied()
	assert.Equal(t, int64(0), chatID)
	assert.Nil(t, ids)
}
