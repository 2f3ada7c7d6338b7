package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	filestore "github.com/bnema/qqbot-cli/internal/adapters/store/file"
	passstore "github.com/bnema/qqbot-cli/internal/adapters/store/pass"
	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

var errNoBackends = errors.New("secret store chain has no backends")

type Backend struct {
	Name  string
	Store ports.BlobStore
}

// Store reads and writes secrets through an ordered list of backends.
// Writes land in the first backend that accepts them, reads return the first
// hit and deletes clear every backend so no stale copy survives.
type Store struct {
	backends []Backend
	logger   *slog.Logger
}

var _ ports.BlobStore = (*Store)(nil)

func NewStore(logger *slog.Logger, backends ...Backend) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret store backend %d (%s) is nil", i, backend.Name)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{backends: backends, logger: logger}, nil
}

// NewPassFirstWithFileFallback prefers the user's password-store and keeps
// secrets in files under fileRoot when pass is missing or broken.
func NewPassFirstWithFileFallback(fileRoot string, logger *slog.Logger) (*Store, error) {
	return NewStore(logger,
		Backend{Name: "pass", Store: passstore.NewStore(passstore.DefaultPrefix)},
		Backend{Name: "file", Store: filestore.NewStore(fileRoot)},
	)
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Store.Put(ctx, key, value)
		if err == nil {
			if len(errs) > 0 {
				s.logger.Debug("secret stored by fallback backend", "key", key, "backend", backend.Name)
			}
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

// Get reports domain.ErrSecretNotFound only when every backend answered
// that the key is missing.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var errs []error
	for _, backend := range s.backends {
		value, err := backend.Store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return nil, err
		}
		if !errors.Is(err, domain.ErrSecretNotFound) {
			s.logger.Debug("secret backend failed", "key", key, "backend", backend.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
		}
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("get secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return nil, fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var (
		errs    []error
		deleted bool
	)
	for _, backend := range s.backends {
		err := backend.Store.Delete(ctx, key)
		switch {
		case err == nil:
			deleted = true
		case isContextError(err):
			return err
		case errors.Is(err, domain.ErrSecretNotFound):
		default:
			errs = append(errs, fmt.Errorf("%s backend: %w", backend.Name, err))
		}
	}

	if deleted {
		if len(errs) > 0 {
			s.logger.Warn("secret deleted but some backends failed", "key", key, "error", errors.Join(errs...))
		}
		return nil
	}
	if len(errs) == 0 {
		return fmt.Errorf("delete secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
