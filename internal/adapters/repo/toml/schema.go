package toml

import "fmt"

const currentSchemaVersion = 1

type sessionSchema struct {
	Version    int            `toml:"version"`
	QQ         int64          `toml:"qq"`
	Nick       string         `toml:"nick"`
	ClientID   int64          `toml:"client_id"`
	MsgID      int64          `toml:"msg_id"`
	PTWebQQ    string         `toml:"ptwebqq"`
	VFWebQQ    string         `toml:"vfwebqq"`
	UIN        int64          `toml:"uin"`
	PSessionID string         `toml:"psessionid"`
	Hash       string         `toml:"hash"`
	CreatedAt  string         `toml:"created_at,omitempty"`
	Cookies    []cookieSchema `toml:"cookies"`
}

type cookieSchema struct {
	URL   string `toml:"url"`
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s sessionSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
