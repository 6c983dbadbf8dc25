// Package api provides the HTTP server exposing the recipe lookup service.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/crumbwork/ladle/internal/api/router"
	"github.com/crumbwork/ladle/internal/store"
)

// Config holds configuration for the API server.
type Config struct {
	Store        store.Store
	Addr         string
	Port         int
	DefaultLimit int
	SeedFile     string
	Watch        bool
	Logger       *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	store        store.Store
	addr         string
	defaultLimit int
	seedFile     string
	watch        bool
	logger       *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		store:        cfg.Store,
		addr:         fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port),
		defaultLimit: cfg.DefaultLimit,
		seedFile:     cfg.SeedFile,
		watch:        cfg.Watch,
		logger:       logger,
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting server", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		requestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.store, s.defaultLimit, s.logger)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Watch the seed file for changes if the store supports reloading
	if s.watch && s.seedFile != "" {
		if reloadable, ok := s.store.(store.Reloadable); ok {
			eg.Go(func() error {
				return s.watchSeedFile(egctx, reloadable)
			})
		} else {
			s.logger.Warn("store does not support reloading, ignoring watch", "seed_file", s.seedFile)
		}
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchSeedFile reloads the store when the seed file changes. The watch is on
// the containing directory, not the file: atomic saves replace the inode and
// would drop a file-level watch after the first event.
func (s *Server) watchSeedFile(ctx context.Context, reloadable store.Reloadable) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.seedFile)); err != nil {
		s.logger.Error("failed to watch seed file", "path", s.seedFile, "error", err)
		// Continue without watching
		<-ctx.Done()
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event := <-watcher.Events:
			if filepath.Clean(event.Name) != filepath.Clean(s.seedFile) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("seed file changed, reloading", "path", s.seedFile)
				if err := reloadable.ReloadFromFile(s.seedFile); err != nil {
					s.logger.Error("reload failed", "error", err)
				}
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
