// Package db holds the gallery schema and the seed routine used by cmd/migrate.
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"promptlab/internal/domain"
	"promptlab/internal/sqlinline"
)

//go:embed schema.sql
var schema string

// Statements returns the schema split into individual statements.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schema, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the schema in one transaction. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i, stmt := range Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// Seed inserts artworks when the gallery is empty and reports how many rows were written.
func Seed(ctx context.Context, db *sql.DB, artworks []domain.Artwork) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var count int
	if err := tx.QueryRowContext(ctx, sqlinline.QCountArtworks).Scan(&count); err != nil {
		return 0, fmt.Errorf("count artworks: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	written := 0
	for _, art := range artworks {
		res, err := tx.ExecContext(ctx, sqlinline.QSeedArtwork, seedArgs(art)...)
		if err != nil {
			return 0, fmt.Errorf("seed artwork %d: %w", art.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			written++
		}
	}
	if _, err := tx.ExecContext(ctx, sqlinline.QSyncArtworkSequence); err != nil {
		return 0, fmt.Errorf("sync artwork sequence: %w", err)
	}
	return written, tx.Commit()
}

func seedArgs(a domain.Artwork) []any {
	return []any{a.ID, a.Title, a.Prompt, a.Style, a.Author, a.Likes, a.Comments, a.ImageURL, a.Description, a.CreatedAt}
}
