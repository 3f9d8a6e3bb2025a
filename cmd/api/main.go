package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anirex/internal/auth"
	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/config"
	"anirex/internal/httpx"
	"anirex/internal/logging"
	"anirex/internal/platform/jikan"
	"anirex/internal/profile"
	"anirex/internal/review"
	"anirex/internal/session"
	"anirex/internal/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const janitorInterval = time.Hour

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(logging.Config{})
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	dbPool := mustOpenDB(ctx, logger, cfg.Database.DSN)
	defer dbPool.Close()

	timeout := cfg.Database.QueryTimeout

	catalogClient := jikan.NewClient(jikan.Config{
		BaseURL:         cfg.Catalog.BaseURL,
		UserAgent:       cfg.Catalog.UserAgent,
		Timeout:         cfg.Catalog.Timeout,
		BreakerFailures: cfg.Catalog.BreakerFailures,
		BreakerCooldown: cfg.Catalog.BreakerCooldown,
	})
	catalogService := catalog.NewService(catalogClient)

	userService := user.NewService(user.NewPostgresRepo(dbPool, timeout))
	sessionService := session.NewService(
		session.NewPostgresRepo(dbPool, timeout),
		session.NewBlacklistPostgresRepo(dbPool, timeout),
	)
	authService := auth.NewService(cfg.Security.JWTSecret, userService, sessionService)
	profileService := profile.NewService(profile.NewPostgresRepo(dbPool, timeout), userService)
	collectionService := collection.NewService(collection.NewPostgresRepo(dbPool, timeout), catalogService)
	reviewService := review.NewService(review.NewPostgresRepo(dbPool, timeout), catalogService)

	srv := &server{
		catalog:     catalog.NewHTTPHandler(catalogService),
		reviews:     review.NewHTTPHandler(reviewService),
		users:       user.NewHTTPHandler(userService),
		auth:        auth.NewHTTPHandler(authService),
		sessions:    session.NewHTTPHandler(sessionService),
		profiles:    profile.NewHTTPHandler(profileService),
		collections: collection.NewHTTPHandler(collectionService),
		db:          dbPool,
		jwtSecret:   cfg.Security.JWTSecret,
		blacklist:   sessionService,
	}

	limiter := httpx.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	go limiter.RunCleanup(ctx)
	go sessionService.RunJanitor(ctx, janitorInterval)

	handler := httpx.Chain(srv.routes(),
		httpx.RequestIDMiddleware(logger),
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.CORS.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.Security.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes),
		limiter.Middleware,
	)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Str("catalog", cfg.Catalog.BaseURL).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}

func mustOpenDB(ctx context.Context, logger zerolog.Logger, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create db pool")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal().Err(err).Str("dsn", config.RedactDSN(dsn)).Msg("cannot ping database")
	}
	logger.Info().Msg("database connection OK")
	return pool
}
