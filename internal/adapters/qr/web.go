package qr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bnema/qqbot-cli/internal/domain"
)

const (
	loginPath       = "/qqbot/login"
	shutdownTimeout = 5 * time.Second
)

// WebPresenter serves the latest QR code at /qqbot/login. The server starts
// with the first Present call and stops on Close.
type WebPresenter struct {
	addr   string
	cname  string
	logger *slog.Logger

	mu       sync.Mutex
	png      []byte
	server   *http.Server
	url      string
	serveErr chan error
}

// NewWebPresenter listens on addr (host:port). cname is the host name put in
// the advertised URL and defaults to the listening host.
func NewWebPresenter(addr, cname string, logger *slog.Logger) *WebPresenter {
	if logger == nil {
		logger = slog.Default()
	}

	return &WebPresenter{addr: addr, cname: cname, logger: logger}
}

// URL is empty until the server has started.
func (p *WebPresenter) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *WebPresenter) Present(_ context.Context, code domain.QRCode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.server == nil {
		if err := p.start(); err != nil {
			return err
		}
	}
	p.png = append([]byte(nil), code.PNG...)

	p.logger.Info("open the QR code in a browser", "url", p.url)
	return nil
}

func (p *WebPresenter) start() error {
	listener, err := net.Listen("tcp", p.addr)
	if err != nil {
		return fmt.Errorf("listen for QR code server on %s: %w", p.addr, err)
	}

	host, port, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("parse QR code server address: %w", err)
	}
	if p.cname != "" {
		host = p.cname
	}

	p.url = "http://" + net.JoinHostPort(host, port) + loginPath
	p.server = &http.Server{Handler: p.router(), ReadHeaderTimeout: 10 * time.Second}
	p.serveErr = make(chan error, 1)

	go func(server *http.Server, errCh chan<- error) {
		errCh <- server.Serve(listener)
	}(p.server, p.serveErr)

	p.logger.Info("QR code server started", "addr", listener.Addr().String())
	return nil
}

func (p *WebPresenter) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET(loginPath, p.serveCode)
	return router
}

func (p *WebPresenter) serveCode(c *gin.Context) {
	p.mu.Lock()
	png := p.png
	p.mu.Unlock()

	if len(png) == 0 {
		c.String(http.StatusNotFound, "no QR code issued yet")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

func (p *WebPresenter) Close() error {
	p.mu.Lock()
	server, errCh := p.server, p.serveErr
	p.server, p.serveErr, p.png, p.url = nil, nil, nil, ""
	p.mu.Unlock()

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown QR code server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve QR code: %w", err)
	}

	p.logger.Info("QR code server stopped")
	return nil
}
