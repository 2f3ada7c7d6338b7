package qr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bnema/qqbot-cli/internal/domain"
)

type opener func(ctx context.Context, path string) error

// FilePresenter writes each QR code to dir and, when show is set, opens it
// with the desktop image viewer. Only the latest image is kept on disk.
type FilePresenter struct {
	dir    string
	show   bool
	open   opener
	logger *slog.Logger

	mu      sync.Mutex
	current string
}

func NewFilePresenter(dir string, show bool, logger *slog.Logger) *FilePresenter {
	if dir == "" {
		dir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FilePresenter{dir: dir, show: show, open: openWithSystemViewer, logger: logger}
}

// Path returns the image written by the last Present call.
func (p *FilePresenter) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *FilePresenter) Present(ctx context.Context, code domain.QRCode) error {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return fmt.Errorf("create QR code directory: %w", err)
	}

	path := filepath.Join(p.dir, filepath.Base(code.Name))
	if err := os.WriteFile(path, code.PNG, 0o600); err != nil {
		return fmt.Errorf("write QR code: %w", err)
	}

	p.mu.Lock()
	previous := p.current
	p.current = path
	p.mu.Unlock()
	if previous != "" && previous != path {
		_ = os.Remove(previous)
	}

	p.logger.Info("QR code saved", "path", path)
	if !p.show {
		return nil
	}
	if err := p.open(ctx, path); err != nil {
		p.logger.Warn("could not open the QR code automatically, open it manually", "url", "file://"+path, "error", err)
	}

	return nil
}

func (p *FilePresenter) Close() error {
	p.mu.Lock()
	path := p.current
	p.current = ""
	p.mu.Unlock()

	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove QR code: %w", err)
	}

	return nil
}

func openWithSystemViewer(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	default:
		return fmt.Errorf("no image viewer known for %s", runtime.GOOS)
	}

	return cmd.Run()
}
