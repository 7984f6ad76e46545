package prompt

import (
	"strings"
)

// ImaginePrefix starts every composed command.
const ImaginePrefix = "/imagine prompt "

// Style identifies one of the art styles offered by the builder.
type Style string

const (
	Style3DPixar        Style = "3d-pixar"
	StylePhotorealistic Style = "photorealistic"
	StyleWatercolor     Style = "watercolor"
	StyleAnime          Style = "anime"
	StyleOilPainting    Style = "oil-painting"
	StyleDigitalArt     Style = "digital-art"
)

var stylePhrases = map[Style]string{
	Style3DPixar:        "3D Pixar style",
	StylePhotorealistic: "photorealistic, hyperrealistic",
	StyleWatercolor:     "watercolor painting, soft colors",
	StyleAnime:          "anime style",
	StyleOilPainting:    "oil painting",
	StyleDigitalArt:     "digital art",
}

// StylePhrase returns the descriptive phrase emitted for the style.
func StylePhrase(s Style) (string, bool) {
	phrase, ok := stylePhrases[s]
	return phrase, ok
}

// Valid reports whether s is empty or a known style.
func (s Style) Valid() bool {
	if s == "" {
		return true
	}
	_, ok := stylePhrases[s]
	return ok
}

// Parameters holds the optional flag values of a composed prompt.
type Parameters struct {
	AspectRatio string `json:"aspectRatio"`
	Stylize     string `json:"stylize"`
	Version     string `json:"version"`
	Quality     string `json:"quality"`
}

// ComposerInput is the builder form state. Callers own it and mutate it
// between compositions.
type ComposerInput struct {
	Subject       string     `json:"subject"`
	Adjectives    []string   `json:"adjectives"`
	Style         Style      `json:"style"`
	Lighting      string     `json:"lighting"`
	Parameters    Parameters `json:"parameters"`
	NegativeTerms []string   `json:"negativeTerms"`
}

// AddAdjective appends a trimmed adjective unless it is blank or already present.
func (in *ComposerInput) AddAdjective(term string) bool {
	var added bool
	in.Adjectives, added = addTerm(in.Adjectives, term)
	return added
}

// RemoveAdjective drops every occurrence of term.
func (in *ComposerInput) RemoveAdjective(term string) {
	in.Adjectives = removeTerm(in.Adjectives, term)
}

// AddNegativeTerm appends a trimmed exclusion unless it is blank or already present.
func (in *ComposerInput) AddNegativeTerm(term string) bool {
	var added bool
	in.NegativeTerms, added = addTerm(in.NegativeTerms, term)
	return added
}

// RemoveNegativeTerm drops every occurrence of term.
func (in *ComposerInput) RemoveNegativeTerm(term string) {
	in.NegativeTerms = removeTerm(in.NegativeTerms, term)
}

// Reset clears every field.
func (in *ComposerInput) Reset() {
	*in = ComposerInput{}
}

// Compose renders the input as a single /imagine command. The layout is
// "<prefix>[adjectives subject][, style][, lighting][ flags]" with flags in
// the fixed order --ar, --s, --v, --q, --no.
func Compose(in ComposerInput) string {
	var sb strings.Builder
	sb.WriteString(ImaginePrefix)

	if subject := strings.TrimSpace(in.Subject); subject != "" {
		if adjectives := uniqueTerms(in.Adjectives); len(adjectives) > 0 {
			sb.WriteString(strings.Join(adjectives, ", "))
			sb.WriteByte(' ')
		}
		sb.WriteString(subject)
	}

	if phrase, ok := stylePhrases[in.Style]; ok {
		sb.WriteString(", ")
		sb.WriteString(phrase)
	}

	if lighting := strings.TrimSpace(in.Lighting); lighting != "" {
		sb.WriteString(", ")
		sb.WriteString(lighting)
	}

	if flags := composeFlags(in); len(flags) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(flags, " "))
	}

	return sb.String()
}

func composeFlags(in ComposerInput) []string {
	var flags []string
	params := []struct {
		key   string
		value string
	}{
		{"--ar", in.Parameters.AspectRatio},
		{"--s", in.Parameters.Stylize},
		{"--v", in.Parameters.Version},
		{"--q", in.Parameters.Quality},
	}
	for _, p := range params {
		if v := strings.TrimSpace(p.value); v != "" {
			flags = append(flags, p.key+" "+v)
		}
	}
	if negatives := uniqueTerms(in.NegativeTerms); len(negatives) > 0 {
		flags = append(flags, "--no "+strings.Join(negatives, ", "))
	}
	return flags
}

func addTerm(terms []string, term string) ([]string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return terms, false
	}
	for _, existing := range terms {
		if existing == term {
			return terms, false
		}
	}
	return append(terms, term), true
}

func removeTerm(terms []string, term string) []string {
	out := terms[:0]
	for _, existing := range terms {
		if existing != term {
			out = append(out, existing)
		}
	}
	return out
}

// uniqueTerms trims, drops blanks and keeps the first occurrence of each term.
func uniqueTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out, _ = addTerm(out, t)
	}
	return out
}
