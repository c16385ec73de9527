package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/nazm-backend/internal/adapter/staticcache"
	"github.com/heartmarshall/nazm-backend/internal/annotate"
	"github.com/heartmarshall/nazm-backend/internal/config"
	"github.com/heartmarshall/nazm-backend/internal/corpus"
	"github.com/heartmarshall/nazm-backend/internal/transport/middleware"
	"github.com/heartmarshall/nazm-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// logger, wires adapters, services and handlers, and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_backend", cfg.Cache.Backend),
	)

	handler, cleanup, err := NewHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds the full HTTP handler. cleanup stops the rate limiter
// and closes the runtime cache.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	table, err := LoadGlossary(cfg)
	if err != nil {
		return nil, nil, err
	}
	if c := table.Collisions(); len(c) > 0 {
		logger.Warn("glossary roman spellings collide", slog.Int("count", len(c)))
	}

	poems, err := corpus.Load(cfg.Corpus.PoemsPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("corpus loaded", slog.Int("poems", poems.Len()), slog.Int("glossary", table.Len()))

	runtime, err := NewRuntimeCache(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := runtime.Ping(pingCtx); err != nil {
		logger.Warn("runtime cache unreachable", slog.String("error", err.Error()))
	}
	cancel()

	static := staticcache.NewReader(cfg.Dictionary.StaticCachePath, logger)
	if f := staticcache.CheckFreshness(cfg.Corpus.PoemsPath, cfg.Dictionary.StaticCachePath); f.NeedsRebuild() {
		logger.Warn("static cache out of date", slog.String("status", string(f.Status)), slog.String("detail", f.Describe()))
	}

	resolver := NewResolver(cfg, logger, runtime, static, NewProviders(cfg, logger))
	annotator := annotate.NewAnnotator(table)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(logger, rest.Handlers{
		Meaning:  rest.NewMeaningHandler(resolver, logger),
		Annotate: rest.NewAnnotateHandler(annotator),
		Poems:    rest.NewPoemsHandler(poems, annotator),
		Health:   rest.NewHealthHandler(runtime, static, BuildVersion()),
	}, rest.RouterOptions{
		CORS:              cfg.CORS,
		TrustForwardedFor: cfg.Server.TrustForwardedFor,
		Limiter:           limiter,
		LookupsPerMinute:  cfg.RateLimit.LookupsPerMinute,
	})

	cleanup := func() {
		limiter.Stop()
		if err := runtime.Close(); err != nil {
			logger.Warn("close runtime cache", slog.String("error", err.Error()))
		}
	}
	return handler, cleanup, nil
}
