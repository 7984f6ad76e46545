package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"promptlab/internal/adapter/repo"
	"promptlab/internal/domain"
	"promptlab/internal/gallery"
	"promptlab/internal/http/handlers"
	"promptlab/internal/http/httpapi"
	"promptlab/internal/infra"
	"promptlab/internal/quiz"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := infra.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.Check{}

	var artworks domain.ArtworkRepository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		artworks = repo.NewArtworkRepository(infra.NewSQLRunner(pool, logger))
		checks["postgres"] = func(ctx context.Context) error { return pool.Ping(ctx) }
		logger.Info().Msg("gallery stored in postgres")
	} else {
		artworks = repo.NewArtworkRepositoryMemory(domain.SeedArtworks())
		logger.Warn().Msg("DATABASE_URL not set, gallery kept in memory")
	}

	var attempts domain.AttemptStore
	if cfg.RedisURL != "" {
		rdb, err := infra.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer rdb.Close()
		attempts = repo.NewAttemptStoreRedis(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info().Msg("quiz attempts stored in redis")
	} else {
		attempts = repo.NewAttemptStoreMemory()
	}

	app := handlers.NewApp(logger,
		gallery.NewService(artworks, cfg.DefaultArtworkImageURL, logger),
		quiz.NewService(attempts, cfg.QuizAttemptTTL, logger),
	)
	app.Checks = checks

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:            logger,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		RateLimitPerMin:   cfg.RateLimitPerMin,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})
	server := infra.NewHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
