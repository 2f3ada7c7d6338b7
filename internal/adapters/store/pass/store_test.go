package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/qqbot-cli/internal/domain"
)

type passCall struct {
	input string
	args  []string
}

func scriptedStore(prefix string, stdout []byte, stderr string, err error) (*Store, *[]passCall) {
	var calls []passCall
	store := NewStore(prefix)
	store.run = func(_ context.Context, input []byte, args ...string) ([]byte, string, error) {
		calls = append(calls, passCall{input: string(input), args: args})
		return stdout, stderr, err
	}
	return store, &calls
}

func TestStorePutInsertsUnderPrefix(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore(DefaultPrefix, nil, "", nil)

	require.NoError(t, store.Put(context.Background(), "email/password", []byte("top-secret")))
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"insert", "--multiline", "--force", "qqbot/email/password"}, (*calls)[0].args)
	assert.Equal(t, "top-secret\n", (*calls)[0].input)
}

func TestStoreGetTrimsTrailingLineBreaks(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore(DefaultPrefix, []byte("top-secret\r\n"), "", nil)

	value, err := store.Get(context.Background(), "/email/password/")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", string(value))
	assert.Equal(t, []string{"show", "qqbot/email/password"}, (*calls)[0].args)
	assert.Empty(t, (*calls)[0].input)
}

func TestStoreWithoutPrefixUsesKeyAsEntry(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore("", nil, "", nil)

	require.NoError(t, store.Delete(context.Background(), "smtp"))
	assert.Equal(t, []string{"rm", "--force", "smtp"}, (*calls)[0].args)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore(DefaultPrefix, nil, "", nil)

	err := store.Put(context.Background(), "  ", []byte("x"))
	require.Error(t, err)
	assert.Empty(t, *calls)
}

func TestStoreMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store, _ := scriptedStore(DefaultPrefix, nil, "Error: qqbot/email/password is not in the password store.", errors.New("exit status 1"))

	_, err := store.Get(context.Background(), "email/password")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)

	err = store.Delete(context.Background(), "email/password")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreReportsStderr(t *testing.T) {
	t.Parallel()

	store, _ := scriptedStore(DefaultPrefix, nil, "gpg: decryption failed", errors.New("exit status 2"))

	_, err := store.Get(context.Background(), "email/password")
	require.Error(t, err)
	assert.ErrorContains(t, err, `pass show "qqbot/email/password"`)
	assert.ErrorContains(t, err, "decryption failed")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore(DefaultPrefix, nil, "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "email/password")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *calls)
}
