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

	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/audit"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/dailylimit"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/schema"
	stanzarepo "github.com/heartmarshall/poetic-threads/internal/adapter/postgres/stanza"
	themerepo "github.com/heartmarshall/poetic-threads/internal/adapter/postgres/theme"
	"github.com/heartmarshall/poetic-threads/internal/adapter/postgres/user"
	"github.com/heartmarshall/poetic-threads/internal/adapter/redis"
	"github.com/heartmarshall/poetic-threads/internal/auth"
	"github.com/heartmarshall/poetic-threads/internal/clock"
	"github.com/heartmarshall/poetic-threads/internal/config"
	"github.com/heartmarshall/poetic-threads/internal/service/moderation"
	"github.com/heartmarshall/poetic-threads/internal/service/notification"
	"github.com/heartmarshall/poetic-threads/internal/service/pagination"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
	"github.com/heartmarshall/poetic-threads/internal/service/reader"
	"github.com/heartmarshall/poetic-threads/internal/service/submission"
	"github.com/heartmarshall/poetic-threads/internal/service/theme"
	"github.com/heartmarshall/poetic-threads/internal/transport/middleware"
	"github.com/heartmarshall/poetic-threads/internal/transport/rest"
	"github.com/heartmarshall/poetic-threads/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Poem.Location.String()),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	sch, err := schema.Detect(ctx, pool)
	if err != nil {
		return fmt.Errorf("detect schema: %w", err)
	}
	logger.Info("schema detected",
		slog.String("theme_table", sch.ThemeTable),
		slog.Bool("theme_pages", sch.ThemeHasPages),
	)

	// Repositories
	stanzas := stanzarepo.New(pool, sch)
	themes := themerepo.New(pool, sch)
	users := user.New(pool)
	limits := dailylimit.New(pool)
	auditLog := audit.New(pool)
	txm := postgres.NewTxManager(pool)

	oracle := clock.NewOracle(clock.System{}, cfg.Poem.Location)

	// Services
	ledger := quota.NewLedger(logger, limits, oracle, cfg.Poem.DailyCap)
	pages := pagination.NewAssigner(stanzas, cfg.Poem.PageSize)
	submitSvc := submission.NewService(logger, stanzas, themes, ledger, pages, txm, oracle, cfg.Poem.MaxStanzaLength)
	moderationSvc := moderation.NewService(logger, stanzas, users, themes, auditLog, txm, oracle)
	readerSvc := reader.NewService(logger, stanzas, users, themes, txm, reader.Options{
		PageSize:    cfg.Poem.PageSize,
		LastDefault: cfg.Poem.LastDefault,
		LastMax:     cfg.Poem.LastMax,
	})
	notifySvc := notification.NewService(logger, stanzas)
	themeSvc := theme.NewService(logger, themes, users)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	health := rest.NewHealthHandler(pool, BuildVersion())

	// Rate limiting: Redis when configured so replicas share budgets.
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RedisURL != "" {
			rl, err := redis.NewLimiter(ctx, cfg.RateLimit.RedisURL)
			if err != nil {
				return err
			}
			defer rl.Close()
			health.WithCheck("redis", rl)
			limiter = rl
		} else {
			rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
			defer rl.Stop()
			limiter = rl
		}
	}

	var submitLimit middleware.Middleware
	if limiter != nil {
		submitLimit = middleware.RateLimit(limiter, "submit", cfg.RateLimit.SubmissionsPerMinute, logger)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     health,
		Themes:     rest.NewThemeHandler(themeSvc, logger),
		Stanzas:    rest.NewStanzaHandler(submitSvc, readerSvc, ledger, notifySvc, logger),
		Moderation: rest.NewModerationHandler(moderationSvc, logger),
	}, submitLimit)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	}
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter, "api", cfg.RateLimit.RequestsPerMinute, logger))
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(chain...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
