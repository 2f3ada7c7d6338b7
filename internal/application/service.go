package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

var ErrEmptySecretKey = errors.New("secret key is empty")

// Service manages what the bot keeps between runs: stored sessions and the
// secrets the QR presenters need, such as the mail password.
type Service struct {
	sessions ports.SessionRepository
	secrets  ports.BlobStore
}

func NewService(sessions ports.SessionRepository, secrets ports.BlobStore) *Service {
	return &Service{sessions: sessions, secrets: secrets}
}

func (s *Service) GetSession(ctx context.Context, qq int64) (domain.Session, error) {
	session, err := s.sessions.GetByAccount(ctx, qq)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

func (s *Service) RemoveSession(ctx context.Context, qq int64) error {
	if _, err := s.sessions.GetByAccount(ctx, qq); err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if err := s.sessions.Delete(ctx, qq); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *Service) SetSecret(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptySecretKey
	}
	if err := s.secrets.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("store secret: %w", err)
	}

	return nil
}

func (s *Service) RemoveSecret(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptySecretKey
	}
	if err := s.secrets.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}

	return nil
}

// ResolvePassword returns plain when set and otherwise the secret stored
// under ref. Both empty yields an empty password.
func (s *Service) ResolvePassword(ctx context.Context, plain, ref string) (string, error) {
	if plain != "" || strings.TrimSpace(ref) == "" {
		return plain, nil
	}

	value, err := s.secrets.Get(ctx, strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("resolve password %q: %w", ref, err)
	}

	return strings.TrimRight(string(value), "\r\n"), nil
}
