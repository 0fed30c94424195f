package cmd

import (
	"strings"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popcat/popcat-go/internal/config"
)

// memKeyring is an in-memory keyring for auth command tests.
type memKeyring struct {
	items map[string]keyring.Item
}

func (m *memKeyring) Get(key string) (keyring.Item, error) {
	item, ok := m.items[key]
	if !ok {
		return keyring.Item{}, keyring.ErrKeyNotFound
	}
	return item, nil
}

func (m *memKeyring) GetMetadata(string) (keyring.Metadata, error) {
	return keyring.Metadata{}, keyring.ErrKeyNotFound
}

func (m *memKeyring) Set(item keyring.Item) error {
	m.items[item.Key] = item
	return nil
}

func (m *memKeyring) Remove(key string) error {
	if _, ok := m.items[key]; !ok {
		return keyring.ErrKeyNotFound
	}
	delete(m.items, key)
	return nil
}

func (m *memKeyring) Keys() ([]string, error) { return nil, nil }

func withTestKeyring(t *testing.T) *memKeyring {
	t.Helper()
	ring := &memKeyring{items: make(map[string]keyring.Item)}
	restore := config.SetOpenKeyring(func(keyring.Config) (keyring.Keyring, error) {
		return ring, nil
	})
	t.Cleanup(restore)
	return ring
}

func TestAuthLoginWithFlag(t *testing.T) {
	withTestKeyring(t)

	stdout, _, err := runCommand(t, "", "auth", "login", "--key", "pk-123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "saved")

	key, err := config.LoadPasteyKey()
	require.NoError(t, err)
	assert.Equal(t, "pk-123", key)
}

func TestAuthLoginFromStdin(t *testing.T) {
	withTestKeyring(t)

	_, _, err := runCommand(t, "pk-from-stdin\n", "auth", "login")
	require.NoError(t, err)

	key, err := config.LoadPasteyKey()
	require.NoError(t, err)
	assert.Equal(t, "pk-from-stdin", key)
}

func TestAuthLoginMissingKey(t *testing.T) {
	withTestKeyring(t)

	_, _, err := runCommand(t, "", "auth", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--key is required")
}

func TestAuthStatus(t *testing.T) {
	withTestKeyring(t)

	stdout, _, err := runCommand(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No Pastey API key")

	require.NoError(t, config.SavePasteyKey("pk"))
	stdout, _, err = runCommand(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "configured in the keychain")
}

func TestAuthStatusEnv(t *testing.T) {
	withTestKeyring(t)
	t.Setenv(config.EnvPasteyKey, "pk-env")

	stdout, _, err := runCommand(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, config.EnvPasteyKey)
}

func TestAuthLogout(t *testing.T) {
	withTestKeyring(t)
	require.NoError(t, config.SavePasteyKey("pk"))

	stdout, _, err := runCommand(t, "", "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "removed")

	assert.False(t, config.HasPasteyKey())
}

func TestAuthLogoutNotConfigured(t *testing.T) {
	withTestKeyring(t)

	_, _, err := runCommand(t, "", "auth", "logout")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no Pastey API key"))
}
