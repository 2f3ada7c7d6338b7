package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/qqbot-cli/internal/domain"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "store key is empty"},
		{name: "whitespace", key: "   ", wantErr: "store key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid store key"},
		{name: "traversal", key: "../escape", wantErr: "invalid store key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid store key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, []byte("value"))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "qqbot/sessions/123456789.toml"
	want := []byte("schema_version = 1\n")

	require.NoError(t, store.Put(context.Background(), key, want))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, key))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(blobFileMode), info.Mode().Perm())
}

func TestStorePutReplacesWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "qqbot/email/password"

	require.NoError(t, store.Put(context.Background(), key, []byte("first")))
	require.NoError(t, store.Put(context.Background(), key, []byte("second")))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Join(root, "qqbot/email"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "password", entries[0].Name())
}

func TestStoreGetMissingKeyReportsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Get(context.Background(), "qqbot/sessions/1.toml")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteReportsMissingKey(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	err := store.Delete(context.Background(), "qqbot/sessions/1.toml")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeletePrunesEmptyDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "qqbot/email/password", []byte("secret")))
	require.NoError(t, store.Put(context.Background(), "qqbot/smtp", []byte("other")))
	require.NoError(t, store.Delete(context.Background(), "qqbot/email/password"))

	_, err := os.Stat(filepath.Join(root, "qqbot", "email"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(root, "qqbot", "smtp"))
	assert.NoError(t, err)
	_, err = os.Stat(root)
	assert.NoError(t, err)
}
