package prompt

// Keyword tables used by the analyzer. Style, lighting and camera entries
// match as substrings of the normalized token; adjectives and stop words
// match exactly. Normalized tokens never contain spaces or punctuation, so
// multi-word entries such as "golden hour" are kept only for reference and
// never match on their own.

var styleKeywords = []string{
	"3d", "pixar", "anime", "watercolor", "photorealistic", "hyperrealistic",
	"oil painting", "digital art", "sketch", "cartoon", "realistic", "abstract",
	"impressionist", "surreal", "cyberpunk", "steampunk", "art nouveau",
	// single-word anchors so every builder style phrase is recognised
	"painting", "digital",
}

var lightingKeywords = []string{
	"lighting", "light", "golden hour", "sunset", "sunrise", "dramatic",
	"soft", "hard", "natural", "studio", "neon", "backlit", "rim light",
	"chiaroscuro", "volumetric", "ambient", "diffused", "cinematic",
}

var cameraKeywords = []string{
	"shot", "angle", "close-up", "wide", "macro", "telephoto", "fisheye",
	"bokeh", "depth of field", "f/", "mm", "lens", "camera", "photography",
}

var commonAdjectives = toSet(
	"beautiful", "stunning", "majestic", "cute", "adorable", "mysterious",
	"ancient", "modern", "futuristic", "vintage", "elegant", "rustic",
	"vibrant", "colorful", "dark", "bright", "small", "large", "tiny",
	"huge", "detailed", "simple", "complex", "smooth", "rough", "shiny",
)

var stopWords = toSet(
	"the", "and", "with", "for", "are", "but", "not", "you", "all", "can",
	"had", "her", "was", "one", "our", "out", "day", "get", "has", "him",
	"his", "how", "its", "may", "new", "now", "old", "see", "two", "way",
	"who", "boy", "did", "man", "men", "put", "say", "she", "too", "use",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
