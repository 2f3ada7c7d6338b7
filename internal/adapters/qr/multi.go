package qr

import (
	"context"
	"errors"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

// Multi shows every code through all of its presenters, in order.
type Multi []ports.QRPresenter

func (m Multi) Present(ctx context.Context, code domain.QRCode) error {
	for _, presenter := range m {
		if err := presenter.Present(ctx, code); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every presenter even when some fail.
func (m Multi) Close() error {
	var errs []error
	for _, presenter := range m {
		if err := presenter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
