// Package server wires configuration, storage, providers, and the HTTP API
// into a runnable daemon.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"screenfind/internal/aggregate"
	v1 "screenfind/internal/api/v1"
	"screenfind/internal/config"
	"screenfind/internal/events"
	"screenfind/internal/genres"
	"screenfind/internal/store"
	"screenfind/internal/tmdb"
	"screenfind/internal/tvmaze"
)

// ParseLogLevel maps a config log level string to a slog level.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the daemon logger from config.
func NewLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLogLevel(cfg.Server.LogLevel),
	}))
}

// Runner owns the daemon lifecycle.
type Runner struct {
	cfg *config.Config
	log *slog.Logger

	// addr is set once the listener is bound; tests bind port 0.
	addr chan string
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, log: log, addr: make(chan string, 1)}
}

// Addr returns a channel that yields the bound listen address once.
func (r *Runner) Addr() <-chan string {
	return r.addr
}

// lightDisabled stands in for the keyless provider when it is switched off.
type lightDisabled struct{}

func (lightDisabled) SearchShows(context.Context, string) ([]tvmaze.SearchResult, error) {
	return nil, nil
}

func (lightDisabled) Show(context.Context, int64) (*tvmaze.Show, error) {
	return nil, tvmaze.ErrNotFound
}

// Run starts the daemon and blocks until the context is canceled or a
// component fails.
func (r *Runner) Run(ctx context.Context) error {
	cfg := r.cfg

	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	bus := events.NewBus(r.log.With("component", "bus"))
	defer bus.Close()

	records := store.NewRecords(db)
	watchlist := store.NewWatchlist(records, bus, r.log.With("component", "watchlist"))
	preferences := store.NewPreferences(records, bus)
	recent := store.NewRecentSearches(records, bus)

	rich := tmdb.NewClient(cfg.Providers.TMDB.APIKey, tmdb.WithBaseURL(cfg.Providers.TMDB.URL))
	var light aggregate.LightProvider = lightDisabled{}
	if cfg.TVMazeEnabled() {
		light = tvmaze.NewClient(tvmaze.WithBaseURL(cfg.Providers.TVMaze.URL))
	}
	agg := aggregate.New(rich, light, r.log)

	api, err := v1.New(v1.ServerDeps{
		Searcher:    agg,
		Watchlist:   watchlist,
		Preferences: preferences,
		Recent:      recent,
		Genres:      genres.NewCatalog(),
	}, r.log.With("component", "api"))
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	r.addr <- ln.Addr().String()

	r.log.Info("server starting",
		"addr", ln.Addr().String(),
		"database", cfg.Database.Path,
		"tvmaze", cfg.TVMazeEnabled(),
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Handler: logRequests(mux, r.log)}

	g, gctx := errgroup.WithContext(ctx)
	evCh := bus.SubscribeAll(16)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case e, ok := <-evCh:
				if !ok {
					return nil
				}
				r.log.Debug("store event", "type", e.Type, "item", e.ItemKey, "category", e.Category)
			}
		}
	})
	g.Go(func() error {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	r.log.Info("server stopped")
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
