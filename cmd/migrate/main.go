// Command migrate applies the gallery schema and optionally loads the starter artworks.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"promptlab/internal/db"
	"promptlab/internal/domain"
	"promptlab/internal/infra"
)

func main() {
	seed := flag.Bool("seed", false, "insert the starter gallery when the table is empty")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	logger := infra.NewLogger(nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = infra.NewLogger(cfg)
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}
	if err := db.Migrate(ctx, conn); err != nil {
		logger.Error().Err(err).Msg("migrate failed")
		os.Exit(1)
	}
	logger.Info().Int("statements", len(db.Statements())).Msg("schema applied")

	if *seed {
		n, err := db.Seed(ctx, conn, domain.SeedArtworks())
		if err != nil {
			logger.Error().Err(err).Msg("seed failed")
			os.Exit(1)
		}
		logger.Info().Int("artworks", n).Msg("gallery seeded")
	}
}
