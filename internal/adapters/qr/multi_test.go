package qr

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMultiPresentsInOrderAndStopsOnError(t *testing.T) {
	first := mocks.NewMockQRPresenter(t)
	second := mocks.NewMockQRPresenter(t)
	code := domain.QRCode{Seq: 1, Name: "q.png", PNG: []byte("png")}

	first.EXPECT().Present(mock.Anything, code).Return(nil).Once()
	second.EXPECT().Present(mock.Anything, code).Return(nil).Once()
	require.NoError(t, Multi{first, second}.Present(context.Background(), code))

	failing := mocks.NewMockQRPresenter(t)
	listenErr := errors.New("address in use")
	failing.EXPECT().Present(mock.Anything, code).Return(listenErr).Once()
	err := Multi{failing, mocks.NewMockQRPresenter(t)}.Present(context.Background(), code)
	assert.ErrorIs(t, err, listenErr)
}

func TestMultiClosesEveryPresenter(t *testing.T) {
	first := mocks.NewMockQRPresenter(t)
	second := mocks.NewMockQRPresenter(t)
	closeErr := errors.New("remove failed")

	first.EXPECT().Close().Return(closeErr).Once()
	second.EXPECT().Close().Return(nil).Once()

	err := Multi{first, second}.Close()
	assert.ErrorIs(t, err, closeErr)
	assert.NoError(t, Multi{}.Close())
}
