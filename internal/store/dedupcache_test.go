package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupCache_NilIsAlwaysMiss(t *testing.T) {
	var d *DedupCache
	d.MarkNotFound(context.Background(), "message", 1)
	assert.False(t, d.IsNotFound(context.Background(), "message", 1))
	assert.False(t, d.IsDownloaded(context.Background(), 1))
	assert.NoError(t, d.Close())
}

func TestDedupCache_UnreachableRedisIsAMiss(t *testing.T) {
	d := NewDedupCache("127.0.0.1:1", 0, time.Minute)
	assert.False(t, d.IsNotFound(context.Background(), "message", 1))
	assert.False(t, d.IsDownloaded(context.Background(), 1))
}

func TestDedupCache_KeyHelpersCoverNegativeIDs(t *testing.T) {
	assert.Equal(t, "tg:notfound:message:-5", notFoundKey("message", -5))
	assert.Equal(t, "tg:downloaded:0", downloadedKey(0))
}
