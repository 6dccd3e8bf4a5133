package msgproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-nameless/tg/internal/domain"
)

func TestFile_PhotoResolvesToFileSubRecord(t *testing.T) {
	msg := &domain.Message{
		Content: domain.Content{
			Kind: domain.ContentPhoto,
			File: &domain.FileDescriptor{ID: 42, Size: 1234},
		},
	}
	p := New(msg)

	f, ok := p.File()
	require.True(t, ok)
	assert.Equal(t, int64(42), f.ID)
	assert.Equal(t, int64(42), p.FileID())
}

func TestFile_UnknownVariantYieldsNone(t *testing.T) {
	msg := &domain.Message{Content: domain.Content{Kind: domain.ContentPoll}}
	p := New(msg)

	_, ok := p.File()
	assert.False(t, ok)
	assert.Equal(t, int64(0), p.Size())
}

func TestTextContent_OnlyForTextKind(t *testing.T) {
	text := New(&domain.Message{Content: domain.Content{Kind: domain.ContentText, Text: "hello"}})
	assert.Equal(t, "hello", text.TextContent())

	photo := New(&domain.Message{Content: domain.Content{Kind: domain.ContentPhoto, Text: "hello"}})
	assert.Equal(t, "", photo.TextContent())
}

func TestSetListened_NoOpForNonVoice(t *testing.T) {
	msg := &domain.Message{Content: domain.Content{Kind: domain.ContentText}}
	p := New(msg)
	p.SetListened(true)
	assert.False(t, p.IsListened())
}

func TestSetListened_VoiceMarksListened(t *testing.T) {
	msg := &domain.Message{Content: domain.Content{Kind: domain.ContentVoice}}
	p := New(msg)
	p.SetListened(true)
	assert.True(t, p.IsListened())
}

func TestSetViewed_VideoNote(t *testing.T) {
	msg := &domain.Message{Content: domain.Content{Kind: domain.ContentVideoNote}}
	p := New(msg)
	assert.False(t, p.IsViewed())
	p.SetViewed(true)
	assert.True(t, p.IsViewed())
}

func TestDurationAndHumanSize(t *testing.T) {
	msg := &domain.Message{
		Content: domain.Content{
			Kind:     domain.ContentVoice,
			Duration: 3661,
			File:     &domain.FileDescriptor{Size: 1024},
		},
	}
	p := New(msg)
	assert.Equal(t, "1:01:01", p.Duration())
	assert.Equal(t, "1.0KiB", p.HumanSize())
}

func TestSetLocal_MutatesNestedFile(t *testing.T) {
	msg := &domain.Message{
		Content: domain.Content{Kind: domain.ContentDocument, File: &domain.FileDescriptor{ID: 7}},
	}
	p := New(msg)
	p.SetLocal("/tmp/x", true)
	assert.Equal(t, "/tmp/x", msg.Content.File.LocalPath)
	assert.True(t, msg.Content.File.IsDownloadingCompleted)
	assert.True(t, p.IsDownloaded())
}
