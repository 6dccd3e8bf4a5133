package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paul-nameless/tg/internal/domain"
)

func TestUnsupported_ResolvesWithBackendError(t *testing.T) {
	r := unsupported("GetChats")
	err := r.Wait()
	assert.Error(t, err)
	var berr *domain.BackendRequestFailedError
	assert.ErrorAs(t, err, &berr)
	assert.Equal(t, "GetChats", berr.Op)
}

func TestChatActionToTelegram_KnownKindMaps(t *testing.T) {
	_, ok := chatActionToTelegram(domain.ActionTyping)
	assert.True(t, ok)
}

func TestChatActionToTelegram_UnknownKindMisses(t *testing.T) {
	_, ok := chatActionToTelegram(domain.ActionCancel)
	assert.False(t, ok)
}

func TestWrapErr_NilErrorPassesThroughAsNil(t *testing.T) {
	assert.NoError(t, wrapErr("op", nil))
}

func TestWrapErr_NonNilErrorWraps(t *testing.T) {
	err := wrapErr("SendMessage", assertErr{})
	assert.Error(t, err)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
