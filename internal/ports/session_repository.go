package ports

import (
	"context"

	"github.com/bnema/qqbot-cli/internal/domain"
)

type SessionRepository interface {
	GetByAccount(ctx context.Context, qq int64) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, qq int64) error
}
