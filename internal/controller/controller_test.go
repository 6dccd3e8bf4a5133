package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/store"
)

func newTestController(mp *fakeMP) *Controller {
	model := store.NewModel(mp)
	return New(model, mp, nil, nil, Config{MyUserID: 999, MaxDownloadSize: 2_000_000})
}

// Scenario 1: Send text.
func TestScenario_SendText(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)

	c.Model.Chats.Add(&domain.Chat{
		ID: 7, Order: 5, Perm: domain.Permissions{CanSendMessages: true},
		LastMessage: &domain.Message{ID: 500},
	})
	c.Model.SetCurrentChatIndex(0)

	c.SendText("hello")

	require.Len(t, mp.viewMessagesCalls, 1)
	assert.Equal(t, int64(7), mp.viewMessagesCalls[0].ChatID)
	assert.Equal(t, []int64{500}, mp.viewMessagesCalls[0].MsgIDs)
	assert.True(t, mp.viewMessagesCalls[0].ForceRd)

	require.Len(t, mp.sendMessageCalls, 1)
	assert.Equal(t, int64(7), mp.sendMessageCalls[0].ChatID)
	assert.Equal(t, "hello", mp.sendMessageCalls[0].Text)

	assert.Equal(t, "Info: Message sent", c.StatusText())
}

// Scenario 2: Delete selected.
func TestScenario_DeleteSelected(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)

	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 5})
	c.Model.Messages.Add(7, &domain.Message{ID: 101, CanBeDeletedForAllUsers: true})
	c.Model.Messages.Add(7, &domain.Message{ID: 102, CanBeDeletedForAllUsers: true})
	c.Model.SetCurrentChatIndex(0)
	c.Model.ToggleSelected(7, 101)
	c.Model.ToggleSelected(7, 102)

	c.DeleteSelected(true)

	require.Len(t, mp.deleteMessagesCalls, 1)
	assert.Equal(t, int64(7), mp.deleteMessagesCalls[0].ChatID)
	assert.ElementsMatch(t, []int64{101, 102}, mp.deleteMessagesCalls[0].IDs)
	assert.True(t, mp.deleteMessagesCalls[0].Revoke)

	assert.Empty(t, c.Model.Selected(7))
	assert.Equal(t, "Info: Message deleted", c.StatusText())
}

// Scenario 3: Forward refused.
func TestScenario_ForwardRefused(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)

	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 5})
	c.Model.Chats.Add(&domain.Chat{ID: 9, Order: 4})
	c.Model.Messages.Add(7, &domain.Message{ID: 101, CanBeForwarded: false})
	c.Model.SetCopied(7, []int64{101})
	c.Model.SetCurrentChatIndex(0) // chat 7 is index 0; pretend we're viewing chat 9 instead

	c.ForwardYanked()

	assert.Empty(t, mp.forwardCalls)
	assert.Equal(t, "Error: Can't forward msg(s)", c.StatusText())

	srcChatID, ids := c.Model.Copied()
	assert.Equal(t, int64(7), srcChatID)
	assert.Equal(t, []int64{101}, ids)
}

// Scenario 4: Push-update reorders chats.
func TestScenario_PushUpdateReordersChats(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)

	orders := map[int64]int64{10: 50, 9: 40, 7: 30, 8: 20, 11: 10}
	for id, order := range orders {
		c.Model.Chats.Add(&domain.Chat{ID: id, Order: order})
	}
	idx, ok := c.Model.Chats.IndexByID(7)
	require.True(t, ok)
	require.Equal(t, 2, idx, "chat 7 must start at index 2 of the 5-chat list")
	c.Model.SetCurrentChatIndex(idx)

	mp.fire("ChatPosition", map[string]any{
		"chat_id":   int64(7),
		"positions": []any{map[string]any{"order": int64(999999)}},
	})

	newIdx, ok := c.Model.Chats.IndexByID(7)
	require.True(t, ok)
	assert.Equal(t, 0, newIdx)
	assert.Equal(t, 0, c.Model.CurrentChatIndex())
}

// Scenario 5: Download auto-trigger.
func TestScenario_DownloadAutoTrigger(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)

	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 5})

	mp.fire("NewMessage", map[string]any{
		"chat_id": int64(7),
		"message": map[string]any{
			"id": int64(55),
			"content": map[string]any{
				"@type": "messagePhoto",
				"photo": map[string]any{
					"sizes": []any{
						map[string]any{"file": map[string]any{"id": int64(42), "size": int64(1_234_567)}},
					},
				},
			},
		},
	})

	require.Len(t, mp.downloadCalls, 1)
	assert.Equal(t, int64(42), mp.downloadCalls[0].FileID)

	_, _, tracked := c.Model.ResolveDownload(42)
	assert.True(t, tracked, "download must have been tracked before this resolve")
	c.Model.TrackDownload(42, 7, 55) // restore the entry the check above consumed

	mp.fire("File", map[string]any{
		"file": map[string]any{
			"id": int64(42),
			"local": map[string]any{
				"path": "/tmp/photo.jpg", "is_downloading_completed": true,
			},
		},
	})
	_, _, trackedAfter := c.Model.ResolveDownload(42)
	assert.False(t, trackedAfter, "completed download must no longer be tracked")
}

// Scenario 6: Suspend editor.
func TestScenario_SuspendEditor_NonEmptySends(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 5, Perm: domain.Permissions{CanSendMessages: true}})

	c.LongEditorResult(7, "  hello from the editor  \n")

	require.Len(t, mp.sendMessageCalls, 1)
	assert.Equal(t, "hello from the editor", mp.sendMessageCalls[0].Text)
	assert.Equal(t, "Info: Message sent", c.StatusText())
}

func TestScenario_SuspendEditor_EmptyCancels(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 7, Order: 5, Perm: domain.Permissions{CanSendMessages: true}})

	c.LongEditorResult(7, "   \n  ")

	assert.Empty(t, mp.sendMessageCalls)
	assert.Equal(t, "Info: Message wasn't sent", c.StatusText())
}

func TestToggleMute_RefusesSelfChat(t *testing.T) {
	mp := newFakeMP()
	c := newTestController(mp)
	c.Model.Chats.Add(&domain.Chat{ID: 999, Order: 5, Type: domain.ChatTypePrivate})
	c.Model.SetCurrentChatIndex(0)

	c.ToggleMute()
	assert.Equal(t, "Error: Can't mute Saved Messages", c.StatusText())
}
