package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	filestore "github.com/bnema/qqbot-cli/internal/adapters/store/file"
	"github.com/bnema/qqbot-cli/internal/domain"
	portmocks "github.com/bnema/qqbot-cli/internal/ports/mocks"
)

func sampleSession() domain.Session {
	session := domain.NewSession()
	session.QQ = 123456789
	session.Nick = "QQBot"
	session.MsgID = 6000042
	session.PTWebQQ = "ptwebqq-token"
	session.VFWebQQ = "vfwebqq-token"
	session.UIN = 2847312001
	session.PSessionID = "psession-1"
	session.Hash = "00450043004F004B"
	session.CreatedAt = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	session.Cookies = []domain.Cookie{
		{URL: "http://d1.web2.qq.com/", Name: "ptwebqq", Value: "ptwebqq-token"},
		{URL: "https://ssl.ptlogin2.qq.com/", Name: "superuin", Value: "o0123456789"},
	}
	return session
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filestore.NewStore(t.TempDir()))
	require.NoError(t, err)

	want := sampleSession()
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.GetByAccount(context.Background(), want.QQ)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(filestore.NewStore(root))
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	data, err := os.ReadFile(filepath.Join(root, "123456789.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[cookies]]")
}

func TestRepositoryMissingSessionReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filestore.NewStore(t.TempDir()))
	require.NoError(t, err)

	_, err = repo.GetByAccount(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositoryDefaultsMissingCounters(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "10001.toml"), []byte(strings.Join([]string{
		"qq = 10001",
		"psessionid = \"p\"",
		"",
	}, "\n")), 0o600))

	repo, err := NewRepository(filestore.NewStore(root))
	require.NoError(t, err)

	session, err := repo.GetByAccount(context.Background(), 10001)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientID, session.ClientID)
	assert.Equal(t, domain.InitialMsgID, session.MsgID)
	assert.Equal(t, "p", session.PSessionID)
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "10001.toml"), []byte("version = 999\nqq = 10001\n"), 0o600))

	repo, err := NewRepository(filestore.NewStore(root))
	require.NoError(t, err)

	_, err = repo.GetByAccount(context.Background(), 10001)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported session schema version")
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "10001.toml"), []byte("cookies = ["), 0o600))

	repo, err := NewRepository(filestore.NewStore(root))
	require.NoError(t, err)

	_, err = repo.GetByAccount(context.Background(), 10001)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode session 10001")
}

func TestRepositoryRejectsRecordOfAnotherAccount(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "10001.toml"), []byte("qq = 20002\n"), 0o600))

	repo, err := NewRepository(filestore.NewStore(root))
	require.NoError(t, err)

	_, err = repo.GetByAccount(context.Background(), 10001)
	assert.ErrorContains(t, err, "belongs to account 20002")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(portmocks.NewMockBlobStore(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = repo.Save(ctx, sampleSession())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositorySaveWrapsStoreError(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockBlobStore(t)
	store.EXPECT().Put(mock.Anything, "123456789.toml", mock.Anything).Return(errors.New("disk full")).Once()

	repo, err := NewRepository(store)
	require.NoError(t, err)

	err = repo.Save(context.Background(), sampleSession())
	require.Error(t, err)
	assert.ErrorContains(t, err, "store session 123456789: disk full")
}

func TestRepositoryDeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filestore.NewStore(t.TempDir()))
	require.NoError(t, err)

	session := sampleSession()
	require.NoError(t, repo.Save(context.Background(), session))
	require.NoError(t, repo.Delete(context.Background(), session.QQ))

	_, err = repo.GetByAccount(context.Background(), session.QQ)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
