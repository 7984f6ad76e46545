package domain

import "time"

// Gallery styles shown in the style filter and the submission form.
const (
	GalleryStyle3DPixar        = "3D Pixar"
	GalleryStylePhotorealistic = "Photorealistic"
	GalleryStyleWatercolor     = "Watercolor"
	GalleryStyleAnime          = "Anime"
	GalleryStyleOilPainting    = "Oil Painting"
	GalleryStyleDigitalArt     = "Digital Art"
)

// GalleryStyles lists the gallery styles in display order.
func GalleryStyles() []string {
	return []string{
		GalleryStyle3DPixar,
		GalleryStylePhotorealistic,
		GalleryStyleWatercolor,
		GalleryStyleAnime,
		GalleryStyleOilPainting,
		GalleryStyleDigitalArt,
	}
}

// DefaultArtworkAuthor is credited on every submission; the gallery has no accounts.
const DefaultArtworkAuthor = "You"

// Artwork is a gallery entry shared by a student.
type Artwork struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Prompt      string    `json:"prompt"`
	Style       string    `json:"style"`
	Author      string    `json:"author"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArtworkSubmission is the share form payload.
type ArtworkSubmission struct {
	Title       string `json:"title" validate:"required,max=120"`
	Prompt      string `json:"prompt" validate:"required,max=2000"`
	Style       string `json:"style" validate:"required,oneof='3D Pixar' Photorealistic Watercolor Anime 'Oil Painting' 'Digital Art'"`
	Description string `json:"description" validate:"max=1000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

// Comment is a note left on an artwork.
type Comment struct {
	ID        string    `json:"id"`
	ArtworkID int64     `json:"artworkId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentSubmission is the comment form payload.
type CommentSubmission struct {
	Author string `json:"author" validate:"max=60"`
	Body   string `json:"body" validate:"required,max=500"`
}
