// Package web serves the workflow editor: static files plus the JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"

	"today/internal/config"
	"today/internal/workflow"
)

// Server serves the workflow API plus the static editor files.
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// New builds the HTTP server around the given store.
func New(cfg *config.Config, store *workflow.Store, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	registerRoutes(e, store)
	e.Static("/", cfg.RootDir)

	return &Server{echo: e, cfg: cfg}
}

// Start runs the server until ctx is canceled or the listener fails.
// The listener binds to localhost only.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(fmt.Sprintf("127.0.0.1:%d", s.cfg.Port))
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// OpenBrowser opens url after a short delay so the listener is up first.
func OpenBrowser(url string) {
	time.AfterFunc(400*time.Millisecond, func() {
		if err := browser.OpenURL(url); err != nil {
			log.Debugf("open browser: %v", err)
		}
	})
}
