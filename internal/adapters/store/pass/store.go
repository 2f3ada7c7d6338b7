package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

// DefaultPrefix is the password-store folder holding bot secrets.
const DefaultPrefix = "qqbot"

const missingEntryMarker = "is not in the password store"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input []byte, args ...string) (stdout []byte, stderr string, err error)

// Store keeps secrets such as the QR mailbox password in the user's
// password-store, one entry per key under prefix.
type Store struct {
	prefix string
	run    runFunc
}

var _ ports.BlobStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: strings.Trim(prefix, "/"), run: runPassCommand}
}

func (s *Store) entry(key string) (string, error) {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", errors.New("secret key is empty")
	}
	if s.prefix == "" {
		return key, nil
	}
	return path.Join(s.prefix, key), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := s.entry(key)
	if err != nil {
		return err
	}

	input := append(bytes.Clone(value), '\n')
	if _, stderr, err := s.run(ctx, input, "insert", "--multiline", "--force", entry); err != nil {
		return formatError("insert", entry, err, stderr)
	}

	return nil
}

// Get returns the whole entry without its trailing line break.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, err := s.entry(key)
	if err != nil {
		return nil, err
	}

	stdout, stderr, err := s.run(ctx, nil, "show", entry)
	if err != nil {
		return nil, formatError("show", entry, err, stderr)
	}

	return bytes.TrimRight(stdout, "\r\n"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := s.entry(key)
	if err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, nil, "rm", "--force", entry); err != nil {
		return formatError("rm", entry, err, stderr)
	}

	return nil
}

func runPassCommand(ctx context.Context, input []byte, args ...string) ([]byte, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, "", ErrUnavailable
		}
		return nil, "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if len(input) > 0 {
		cmd.Stdin = bytes.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.Bytes(), strings.TrimSpace(stderr.String()), err
}

// formatError maps a missing entry to domain.ErrSecretNotFound so callers
// can tell it apart from a broken password-store.
func formatError(op, entry string, err error, stderr string) error {
	if strings.Contains(stderr, missingEntryMarker) {
		return fmt.Errorf("pass %s %q: %w", op, entry, domain.ErrSecretNotFound)
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
