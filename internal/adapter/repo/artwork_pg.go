package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"promptlab/internal/domain"
	"promptlab/internal/infra"
	"promptlab/internal/sqlinline"
)

// ArtworkRepositoryPG implements domain.ArtworkRepository on PostgreSQL.
type ArtworkRepositoryPG struct {
	db infra.SQLExecutor
}

// NewArtworkRepository creates a Postgres artwork repo.
func NewArtworkRepository(db infra.SQLExecutor) *ArtworkRepositoryPG {
	return &ArtworkRepositoryPG{db: db}
}

func (r *ArtworkRepositoryPG) List(ctx context.Context, style string) ([]domain.Artwork, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListArtworks, style)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Artwork{}
	for rows.Next() {
		var art domain.Artwork
		if err := scanArtwork(rows, &art); err != nil {
			return nil, err
		}
		items = append(items, art)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ArtworkRepositoryPG) Get(ctx context.Context, id int64) (*domain.Artwork, error) {
	var art domain.Artwork
	if err := scanArtwork(r.db.QueryRow(ctx, sqlinline.QGetArtwork, id), &art); err != nil {
		return nil, notFound(err)
	}
	return &art, nil
}

// Create inserts artwork and fills in its generated id and timestamp.
func (r *ArtworkRepositoryPG) Create(ctx context.Context, artwork *domain.Artwork) error {
	err := r.db.QueryRow(ctx, sqlinline.QInsertArtwork,
		artwork.Title, artwork.Prompt, artwork.Style, artwork.Author, artwork.ImageURL, artwork.Description,
	).Scan(&artwork.ID, &artwork.CreatedAt)
	if err != nil {
		return err
	}
	artwork.Likes = 0
	artwork.Comments = 0
	return nil
}

func (r *ArtworkRepositoryPG) IncrementLikes(ctx context.Context, id int64) (*domain.Artwork, error) {
	var art domain.Artwork
	if err := scanArtwork(r.db.QueryRow(ctx, sqlinline.QLikeArtwork, id), &art); err != nil {
		return nil, notFound(err)
	}
	return &art, nil
}

// AddComment stores comment and bumps the artwork's comment count in one statement.
func (r *ArtworkRepositoryPG) AddComment(ctx context.Context, comment *domain.Comment) error {
	id, err := uuid.Parse(comment.ID)
	if err != nil {
		return fmt.Errorf("comment id: %w", err)
	}
	err = r.db.QueryRow(ctx, sqlinline.QInsertComment,
		id, comment.ArtworkID, comment.Author, comment.Body,
	).Scan(&comment.CreatedAt)
	return notFound(err)
}

func (r *ArtworkRepositoryPG) ListComments(ctx context.Context, artworkID int64) ([]domain.Comment, error) {
	if _, err := r.Get(ctx, artworkID); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sqlinline.QListComments, artworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArtworkID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanArtwork(row pgx.Row, art *domain.Artwork) error {
	return row.Scan(&art.ID, &art.Title, &art.Prompt, &art.Style, &art.Author,
		&art.Likes, &art.Comments, &art.ImageURL, &art.Description, &art.CreatedAt)
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

var _ domain.ArtworkRepository = (*ArtworkRepositoryPG)(nil)
