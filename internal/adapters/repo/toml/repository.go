package toml

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

const keySuffix = ".toml"

// Repository stores one versioned TOML record per account in a BlobStore.
type Repository struct {
	store ports.BlobStore
	mu    sync.RWMutex
}

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(store ports.BlobStore) (*Repository, error) {
	if store == nil {
		return nil, errors.New("session blob store is nil")
	}

	return &Repository{store: store}, nil
}

func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session.QQ <= 0 {
		return fmt.Errorf("save session: invalid account number %d", session.QQ)
	}

	record := toSchema(session)
	record.applyDefaults()

	data, err := toml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", session.QQ, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(ctx, keyFor(session.QQ), data); err != nil {
		return fmt.Errorf("store session %d: %w", session.QQ, err)
	}

	return nil
}

func (r *Repository) GetByAccount(ctx context.Context, qq int64) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := r.store.Get(ctx, keyFor(qq))
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Session{}, fmt.Errorf("%w: account %d", domain.ErrSessionNotFound, qq)
		}
		return domain.Session{}, fmt.Errorf("load session %d: %w", qq, err)
	}

	var record sessionSchema
	if err := toml.Unmarshal(data, &record); err != nil {
		return domain.Session{}, fmt.Errorf("decode session %d: %w", qq, err)
	}
	if err := record.validateVersion(); err != nil {
		return domain.Session{}, err
	}
	record.applyDefaults()

	session := fromSchema(record)
	if session.QQ != qq {
		return domain.Session{}, fmt.Errorf("decode session %d: record belongs to account %d", qq, session.QQ)
	}

	return session, nil
}

func (r *Repository) Delete(ctx context.Context, qq int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, keyFor(qq)); err != nil {
		return fmt.Errorf("delete session %d: %w", qq, err)
	}
	return nil
}

func keyFor(qq int64) string {
	return strconv.FormatInt(qq, 10) + keySuffix
}

func toSchema(session domain.Session) sessionSchema {
	cookies := make([]cookieSchema, 0, len(session.Cookies))
	for _, cookie := range session.Cookies {
		cookies = append(cookies, cookieSchema{URL: cookie.URL, Name: cookie.Name, Value: cookie.Value})
	}

	return sessionSchema{
		QQ:         session.QQ,
		Nick:       session.Nick,
		ClientID:   session.ClientID,
		MsgID:      session.MsgID,
		PTWebQQ:    session.PTWebQQ,
		VFWebQQ:    session.VFWebQQ,
		UIN:        session.UIN,
		PSessionID: session.PSessionID,
		Hash:       session.Hash,
		CreatedAt:  formatTime(session.CreatedAt),
		Cookies:    cookies,
	}
}

func fromSchema(record sessionSchema) domain.Session {
	var cookies []domain.Cookie
	for _, cookie := range record.Cookies {
		cookies = append(cookies, domain.Cookie{URL: cookie.URL, Name: cookie.Name, Value: cookie.Value})
	}

	clientID := record.ClientID
	if clientID == 0 {
		clientID = domain.ClientID
	}
	msgID := record.MsgID
	if msgID == 0 {
		msgID = domain.InitialMsgID
	}

	return domain.Session{
		ClientID:   clientID,
		MsgID:      msgID,
		Cookies:    cookies,
		PTWebQQ:    record.PTWebQQ,
		VFWebQQ:    record.VFWebQQ,
		UIN:        record.UIN,
		PSessionID: record.PSessionID,
		Hash:       record.Hash,
		QQ:         record.QQ,
		Nick:       record.Nick,
		CreatedAt:  parseTime(record.CreatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
