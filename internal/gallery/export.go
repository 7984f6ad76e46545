package gallery

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"promptlab/pkg/zip"
)

const maxSlugLen = 40

// Export packs the prompts of the listed artworks into a zip archive with
// one "<id>-<slug>.txt" file per artwork.
func (s *Service) Export(ctx context.Context, style string) ([]byte, error) {
	items, err := s.List(ctx, style)
	if err != nil {
		return nil, err
	}
	entries := make([]zip.Entry, 0, len(items))
	for _, art := range items {
		entries = append(entries, zip.Entry{
			Filename: fmt.Sprintf("%d-%s.txt", art.ID, Slug(art.Title)),
			Modified: art.CreatedAt,
			Data:     []byte(art.Prompt + "\n"),
		})
	}
	data, err := zip.Archive(entries)
	if err != nil {
		return nil, fmt.Errorf("archive gallery: %w", err)
	}
	s.logger.Debug().Int("artworks", len(entries)).Str("style", style).Msg("gallery exported")
	return data, nil
}

// Slug turns a title into a lower-case, dash separated file name stem.
func Slug(title string) string {
	lower := cases.Lower(language.Und).String(title)
	var b strings.Builder
	dash := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(truncateRunes(slug, maxSlugLen), "-")
	}
	if slug == "" {
		return "artwork"
	}
	return slug
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
