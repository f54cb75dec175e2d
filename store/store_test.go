package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T, limit int) (*History, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	h, err := Open(path, limit)
	require.NoError(t, err)
	return h, path
}

func TestHistory_AddAndKeywords(t *testing.T) {
	h, _ := openTestHistory(t, 0)
	defer h.Close()

	for _, kw := range []string{"alpha", "beta", "", "beta", "alpha"} {
		require.NoError(t, h.Add(kw))
	}

	keywords, err := h.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "alpha"}, keywords)
}

func TestHistory_Empty(t *testing.T) {
	h, _ := openTestHistory(t, 0)
	defer h.Close()

	keywords, err := h.Keywords()
	require.NoError(t, err)
	assert.Empty(t, keywords)
}

func TestHistory_Limit(t *testing.T) {
	h, _ := openTestHistory(t, 3)
	defer h.Close()

	for _, kw := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, h.Add(kw))
	}

	keywords, err := h.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e"}, keywords)
}

func TestHistory_Persists(t *testing.T) {
	h, path := openTestHistory(t, 0)
	require.NoError(t, h.Add("needle"))
	require.NoError(t, h.Close())

	h, err := Open(path, 0)
	require.NoError(t, err)
	defer h.Close()

	keywords, err := h.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"needle"}, keywords)

	require.NoError(t, h.Add("thread"))
	keywords, err = h.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"needle", "thread"}, keywords)
}
