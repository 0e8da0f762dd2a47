package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyOnFreshDir(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Equal(t, ThemeLight, store.Theme())
}

func TestStore_TokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetToken("abc123"))
	assert.True(t, store.Authenticated())

	// A new store over the same directory sees the persisted token.
	reloaded, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reloaded.Token())
}

func TestStore_ClearKeepsTheme(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetToken("abc123"))
	require.NoError(t, store.SetTheme(ThemeDark))
	require.NoError(t, store.Clear())

	assert.False(t, store.Authenticated())
	assert.Equal(t, ThemeDark, store.Theme())

	reloaded, err := NewStore(dir)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Token())
	assert.Equal(t, ThemeDark, reloaded.Theme())
}

func TestStore_RejectsUnknownTheme(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.SetTheme("solarized"))
	assert.Equal(t, ThemeLight, store.Theme())
}

func TestStore_CorruptFileYieldsEmptySession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.False(t, store.Authenticated())
	assert.Equal(t, ThemeLight, store.Theme())
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("secret"))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
