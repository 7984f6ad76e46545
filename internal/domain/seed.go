package domain

import "time"

// DefaultArtworkImageURL is shown for submissions without an image.
const DefaultArtworkImageURL = "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop"

var seedEpoch = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

// SeedArtworks returns the starter gallery. Lower ids are newer so the
// gallery lists them in id order.
func SeedArtworks() []Artwork {
	seeds := []Artwork{
		{
			ID:          1,
			Title:       "Mystical Forest Guardian",
			Prompt:      "/imagine prompt a majestic dragon perched on ancient tree, 3D Pixar style, golden hour lighting, magical atmosphere --ar 16:9 --s 300",
			Style:       GalleryStyle3DPixar,
			Author:      "Student Artist",
			Likes:       24,
			Comments:    8,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			Description: "My first attempt at creating a Pixar-style character! I wanted to combine the friendly look of Pixar with the majesty of a dragon.",
		},
		{
			ID:          2,
			Title:       "Serene Mountain Lake",
			Prompt:      "/imagine prompt a peaceful mountain lake at sunrise, watercolor painting, soft pastel colors, misty atmosphere --ar 3:2 --s 400",
			Style:       GalleryStyleWatercolor,
			Author:      "Nature Lover",
			Likes:       18,
			Comments:    5,
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Description: "Inspired by a camping trip last summer. I love how the watercolor style captures the peaceful feeling of early morning by the lake.",
		},
		{
			ID:          3,
			Title:       "Vintage Coffee Shop",
			Prompt:      "/imagine prompt cozy vintage coffee shop interior, photorealistic, warm lighting, steam rising from coffee cup, bokeh background --ar 4:3 --v 5.2",
			Style:       GalleryStylePhotorealistic,
			Author:      "Coffee Enthusiast",
			Likes:       31,
			Comments:    12,
			ImageURL:    "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=400&h=300&fit=crop",
			Description: "Trying to capture the perfect coffee shop atmosphere. The challenge was getting the steam and lighting just right!",
		},
		{
			ID:          4,
			Title:       "Cute Robot Friend",
			Prompt:      "/imagine prompt a friendly small robot, 3D Pixar style, big expressive eyes, holding a flower, pastel colors --ar 1:1 --s 250",
			Style:       GalleryStyle3DPixar,
			Author:      "Robot Fan",
			Likes:       42,
			Comments:    15,
			ImageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400&h=300&fit=crop",
			Description: "I wanted to create a robot that felt warm and friendly, like it could be a character in a Pixar movie about friendship.",
		},
	}
	for i := range seeds {
		seeds[i].CreatedAt = seedEpoch.Add(-time.Duration(seeds[i].ID) * time.Hour)
	}
	return seeds
}
