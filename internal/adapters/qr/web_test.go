package qr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebPresenterServesLatestCode(t *testing.T) {
	presenter := NewWebPresenter("127.0.0.1:0", "", discardLogger())
	assert.Empty(t, presenter.URL())

	ctx := context.Background()
	require.NoError(t, presenter.Present(ctx, domain.QRCode{Seq: 1, Name: "qrcode-run-1.png", PNG: []byte("first")}))
	url := presenter.URL()
	require.Contains(t, url, "http://127.0.0.1:")
	require.Contains(t, url, "/qqbot/login")

	require.NoError(t, presenter.Present(ctx, domain.QRCode{Seq: 2, Name: "qrcode-run-2.png", PNG: []byte("second")}))
	assert.Equal(t, url, presenter.URL())

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Equal(t, []byte("second"), body)

	require.NoError(t, presenter.Close())
	assert.Empty(t, presenter.URL())
	_, err = http.Get(url)
	assert.Error(t, err)
}

func TestWebPresenterAdvertisesCName(t *testing.T) {
	presenter := NewWebPresenter("127.0.0.1:0", "bot.example.com", discardLogger())
	t.Cleanup(func() { _ = presenter.Close() })

	require.NoError(t, presenter.Present(context.Background(), domain.QRCode{Seq: 1, Name: "q.png", PNG: []byte("png")}))
	assert.Contains(t, presenter.URL(), "http://bot.example.com:")
}

func TestWebPresenterListenFailure(t *testing.T) {
	presenter := NewWebPresenter("256.0.0.1:bad", "", discardLogger())

	err := presenter.Present(context.Background(), domain.QRCode{Seq: 1, Name: "q.png", PNG: []byte("png")})
	require.Error(t, err)
	require.NoError(t, presenter.Close())
}

func TestWebPresenterNotFoundBeforePresent(t *testing.T) {
	presenter := NewWebPresenter("127.0.0.1:0", "", discardLogger())
	router := presenter.router()

	req, err := http.NewRequest(http.MethodGet, "/qqbot/login", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
