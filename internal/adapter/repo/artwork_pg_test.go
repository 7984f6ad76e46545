package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"promptlab/internal/domain"
	"promptlab/internal/sqlinline"
)

func artworkRow(id int64, style string, created time.Time) []any {
	return []any{id, "title", "/imagine prompt a cat", style, "You", 3, 1, "https://example.com/a.png", "desc", created}
}

func TestArtworkRepositoryPGList(t *testing.T) {
	now := time.Now()
	exec := &fakeExecutor{rows: [][]any{
		artworkRow(2, domain.GalleryStyleAnime, now),
		artworkRow(1, domain.GalleryStyleAnime, now.Add(-time.Hour)),
	}}
	items, err := NewArtworkRepository(exec).List(context.Background(), domain.GalleryStyleAnime)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].Likes != 3 {
		t.Fatalf("items = %+v", items)
	}
	if exec.calls[0].query != sqlinline.QListArtworks || exec.calls[0].args[0] != domain.GalleryStyleAnime {
		t.Fatalf("unexpected call %+v", exec.calls[0])
	}
}

func TestArtworkRepositoryPGGetNotFound(t *testing.T) {
	exec := &fakeExecutor{row: fakeRow{err: pgx.ErrNoRows}}
	if _, err := NewArtworkRepository(exec).Get(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	if _, err := NewArtworkRepository(exec).IncrementLikes(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("IncrementLikes err = %v, want ErrNotFound", err)
	}
}

func TestArtworkRepositoryPGCreate(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	exec := &fakeExecutor{row: fakeRow{values: []any{int64(7), created}}}
	art := &domain.Artwork{Title: "t", Prompt: "p", Style: domain.GalleryStyleAnime, Author: "You", Likes: 5}
	if err := NewArtworkRepository(exec).Create(context.Background(), art); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if art.ID != 7 || !art.CreatedAt.Equal(created) || art.Likes != 0 {
		t.Fatalf("artwork = %+v", art)
	}
	if got := len(exec.calls[0].args); got != 6 {
		t.Fatalf("insert args = %d, want 6", got)
	}
}

func TestArtworkRepositoryPGAddComment(t *testing.T) {
	created := time.Now()
	exec := &fakeExecutor{row: fakeRow{values: []any{created}}}
	c := &domain.Comment{ID: uuid.NewString(), ArtworkID: 1, Author: "You", Body: "nice"}
	if err := NewArtworkRepository(exec).AddComment(context.Background(), c); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if !c.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", c.CreatedAt, created)
	}
	if _, ok := exec.calls[0].args[0].(uuid.UUID); !ok {
		t.Fatalf("comment id arg is %T, want uuid.UUID", exec.calls[0].args[0])
	}

	bad := &domain.Comment{ID: "not-a-uuid", ArtworkID: 1, Body: "x"}
	if err := NewArtworkRepository(exec).AddComment(context.Background(), bad); err == nil {
		t.Fatalf("AddComment accepted a malformed id")
	}

	missing := &fakeExecutor{row: fakeRow{err: pgx.ErrNoRows}}
	c2 := &domain.Comment{ID: uuid.NewString(), ArtworkID: 99, Body: "x"}
	if err := NewArtworkRepository(missing).AddComment(context.Background(), c2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("AddComment on missing artwork err = %v, want ErrNotFound", err)
	}
}
