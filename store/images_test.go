package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePutSupersedesPrevious(t *testing.T) {
	is := NewImageStore(30 * time.Minute)

	first := is.Put("sesi-1", "image/png", []byte("lama"))
	second := is.Put("sesi-1", "image/jpeg", []byte("baru"))

	// 同一会话只保留最新一张
	_, ok := is.Get(first.ID)
	assert.False(t, ok)

	img, ok := is.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.Equal(t, []byte("baru"), img.Data)
	assert.Equal(t, 1, is.Count())
}

func TestImagePutKeepsOtherSessions(t *testing.T) {
	is := NewImageStore(30 * time.Minute)

	first := is.Put("sesi-1", "image/png", []byte("a"))
	is.Put("sesi-2", "image/png", []byte("b"))

	_, ok := is.Get(first.ID)
	assert.True(t, ok)
	assert.Equal(t, 2, is.Count())
}

func TestImageReleaseSession(t *testing.T) {
	is := NewImageStore(30 * time.Minute)

	is.Put("sesi-1", "image/png", []byte("a"))
	other := is.Put("sesi-2", "image/png", []byte("b"))

	is.ReleaseSession("sesi-1")

	assert.Equal(t, 1, is.Count())
	_, ok := is.Get(other.ID)
	assert.True(t, ok)

	// 释放不存在的ID是空操作
	is.Release("tidak-ada")
	assert.Equal(t, 1, is.Count())
}

func TestImageSweepExpired(t *testing.T) {
	is := NewImageStore(10 * time.Millisecond)

	img := is.Put("sesi-1", "image/png", []byte("a"))
	time.Sleep(25 * time.Millisecond)
	is.sweep()

	_, ok := is.Get(img.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, is.Count())
}
