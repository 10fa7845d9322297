package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestUploadStore_SavePNG(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir, 1024)
	require.NoError(t, err)

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 300)...)
	name, err := store.Save(context.Background(), bytes.NewReader(payload))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, "-")

	saved, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, payload, saved)

	p, err := store.Path(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, name), p)
}

func TestUploadStore_RejectsUnknownType(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 1024)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), strings.NewReader("just some text"))
	assert.True(t, apperror.IsValidation(err))
}

func TestUploadStore_RejectsOversize(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir, 100)
	require.NoError(t, err)

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 500)...)
	_, err = store.Save(context.Background(), bytes.NewReader(payload))
	assert.True(t, apperror.IsValidation(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadStore_PathRejectsTraversal(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 1024)
	require.NoError(t, err)

	for _, name := range []string{"", "../etc/passwd", "a/b.png", ".hidden", "missing.png"} {
		_, err := store.Path(name)
		assert.True(t, apperror.IsNotFound(err), name)
	}
}

func TestUploadStore_Remove(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 1024)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), bytes.NewReader(append(append([]byte{}, pngHeader...), 1, 2, 3)))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = store.Path(name)
	assert.True(t, apperror.IsNotFound(err))

	// повторное удаление не ошибка
	require.NoError(t, store.Remove(name))
	assert.True(t, apperror.IsNotFound(store.Remove("../outside.png")))
}
