package gallery

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"promptlab/internal/domain"
	"promptlab/internal/prompt"
)

// AllStyles is the filter value that disables style filtering.
const AllStyles = "all"

// Service implements the student gallery on top of an ArtworkRepository.
type Service struct {
	repo         domain.ArtworkRepository
	validate     *validator.Validate
	defaultImage string
	logger       zerolog.Logger
}

func NewService(repo domain.ArtworkRepository, defaultImageURL string, logger zerolog.Logger) *Service {
	if defaultImageURL == "" {
		defaultImageURL = domain.DefaultArtworkImageURL
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Service{repo: repo, validate: v, defaultImage: defaultImageURL, logger: logger}
}

// List returns artworks newest first, optionally limited to one style.
func (s *Service) List(ctx context.Context, style string) ([]domain.Artwork, error) {
	return s.repo.List(ctx, normalizeStyle(style))
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Artwork, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Like(ctx context.Context, id int64) (*domain.Artwork, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// Submit validates sub and adds it to the gallery credited to DefaultArtworkAuthor.
func (s *Service) Submit(ctx context.Context, sub domain.ArtworkSubmission) (*domain.Artwork, error) {
	sub.Title = strings.TrimSpace(sub.Title)
	sub.Prompt = strings.TrimSpace(sub.Prompt)
	sub.Style = strings.TrimSpace(sub.Style)
	sub.Description = strings.TrimSpace(sub.Description)
	sub.ImageURL = strings.TrimSpace(sub.ImageURL)
	if err := s.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArtwork, describe(err))
	}

	art := &domain.Artwork{
		Title:       sub.Title,
		Prompt:      sub.Prompt,
		Style:       sub.Style,
		Author:      domain.DefaultArtworkAuthor,
		ImageURL:    sub.ImageURL,
		Description: sub.Description,
	}
	if art.ImageURL == "" {
		art.ImageURL = s.defaultImage
	}
	if err := s.repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}
	s.logger.Info().Int64("artwork_id", art.ID).Str("style", art.Style).Msg("artwork shared")
	return art, nil
}

// Comment attaches a comment to artwork id.
func (s *Service) Comment(ctx context.Context, id int64, sub domain.CommentSubmission) (*domain.Comment, error) {
	sub.Author = strings.TrimSpace(sub.Author)
	sub.Body = strings.TrimSpace(sub.Body)
	if err := s.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidComment, describe(err))
	}
	if sub.Author == "" {
		sub.Author = domain.DefaultArtworkAuthor
	}
	c := &domain.Comment{
		ID:        uuid.NewString(),
		ArtworkID: id,
		Author:    sub.Author,
		Body:      sub.Body,
	}
	if err := s.repo.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Comments lists the comments on artwork id, oldest first.
func (s *Service) Comments(ctx context.Context, id int64) ([]domain.Comment, error) {
	return s.repo.ListComments(ctx, id)
}

// Analyze runs the prompt analyzer over the artwork's prompt. A nil analysis
// means the prompt is blank.
func (s *Service) Analyze(ctx context.Context, id int64) (*prompt.Analysis, error) {
	art, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a, ok := prompt.Analyze(art.Prompt)
	if !ok {
		return nil, nil
	}
	return a, nil
}

func normalizeStyle(style string) string {
	style = strings.TrimSpace(style)
	if strings.EqualFold(style, AllStyles) {
		return ""
	}
	return style
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fe.Field()+" must be one of "+strings.Join(domain.GalleryStyles(), ", "))
		case "url":
			msgs = append(msgs, fe.Field()+" must be a valid URL")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
