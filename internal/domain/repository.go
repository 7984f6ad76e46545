package domain

import (
	"context"
	"time"
)

// ArtworkRepository persists gallery artworks and their comments.
type ArtworkRepository interface {
	List(ctx context.Context, style string) ([]Artwork, error)
	Get(ctx context.Context, id int64) (*Artwork, error)
	Create(ctx context.Context, artwork *Artwork) error
	IncrementLikes(ctx context.Context, id int64) (*Artwork, error)
	AddComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, artworkID int64) ([]Comment, error)
}

// AttemptStore keeps quiz attempts for a limited time.
type AttemptStore interface {
	Save(ctx context.Context, attempt *QuizAttempt, ttl time.Duration) error
	Get(ctx context.Context, id string) (*QuizAttempt, error)
	// Update applies fn to the stored attempt and saves the result. Concurrent
	// updates of one attempt are serialized; an error from fn leaves the
	// stored attempt unchanged.
	Update(ctx context.Context, id string, ttl time.Duration, fn func(*QuizAttempt) error) (*QuizAttempt, error)
}
