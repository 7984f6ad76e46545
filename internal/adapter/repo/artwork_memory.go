package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"promptlab/internal/domain"
)

// ArtworkRepositoryMemory keeps the gallery in process memory.
type ArtworkRepositoryMemory struct {
	mu       sync.RWMutex
	artworks map[int64]domain.Artwork
	comments map[int64][]domain.Comment
	nextID   int64
	now      func() time.Time
}

// NewArtworkRepositoryMemory returns a repo holding seed.
func NewArtworkRepositoryMemory(seed []domain.Artwork) *ArtworkRepositoryMemory {
	r := &ArtworkRepositoryMemory{
		artworks: make(map[int64]domain.Artwork, len(seed)),
		comments: make(map[int64][]domain.Comment),
		nextID:   1,
		now:      time.Now,
	}
	for _, art := range seed {
		r.artworks[art.ID] = art
		if art.ID >= r.nextID {
			r.nextID = art.ID + 1
		}
	}
	return r
}

func (r *ArtworkRepositoryMemory) List(_ context.Context, style string) ([]domain.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.Artwork, 0, len(r.artworks))
	for _, art := range r.artworks {
		if style == "" || art.Style == style {
			items = append(items, art)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (r *ArtworkRepositoryMemory) Get(_ context.Context, id int64) (*domain.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	art, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &art, nil
}

func (r *ArtworkRepositoryMemory) Create(_ context.Context, artwork *domain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	artwork.ID = r.nextID
	artwork.CreatedAt = r.now()
	artwork.Likes = 0
	artwork.Comments = 0
	r.nextID++
	r.artworks[artwork.ID] = *artwork
	return nil
}

func (r *ArtworkRepositoryMemory) IncrementLikes(_ context.Context, id int64) (*domain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	art, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	art.Likes++
	r.artworks[id] = art
	return &art, nil
}

func (r *ArtworkRepositoryMemory) AddComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	art, ok := r.artworks[comment.ArtworkID]
	if !ok {
		return domain.ErrNotFound
	}
	comment.CreatedAt = r.now()
	art.Comments++
	r.artworks[art.ID] = art
	r.comments[art.ID] = append(r.comments[art.ID], *comment)
	return nil
}

func (r *ArtworkRepositoryMemory) ListComments(_ context.Context, artworkID int64) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.artworks[artworkID]; !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.Comment{}, r.comments[artworkID]...), nil
}

var _ domain.ArtworkRepository = (*ArtworkRepositoryMemory)(nil)
