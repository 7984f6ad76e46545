package prompt

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Complexity tiers a prompt by its description word count.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Bucket is the semantic class assigned to a description token.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketSubject
	BucketAdjective
	BucketStyle
	BucketLighting
	BucketCamera
	BucketOther
)

// MaxSubjects caps the subject bucket; later subject candidates go to Other.
const MaxSubjects = 3

const (
	SuggestSubject     = "Consider adding a clear main subject (e.g., 'a cat', 'a castle', 'a person')"
	SuggestAdjectives  = "Add descriptive adjectives to make your subject more specific (e.g., 'majestic', 'cute', 'ancient')"
	SuggestStyle       = "Specify an art style (e.g., '3D Pixar style', 'watercolor painting', 'photorealistic')"
	SuggestLighting    = "Consider adding lighting description (e.g., 'golden hour lighting', 'soft natural light')"
	SuggestAspectRatio = "Add aspect ratio parameter (e.g., '--ar 16:9' for widescreen, '--ar 1:1' for square)"
)

var (
	prefixPattern    = regexp.MustCompile(`(?i)^\s*/imagine\s+prompt(?:\s+|$)`)
	parameterPattern = regexp.MustCompile(`(?:^|\s+)--`)
	tokenPattern     = regexp.MustCompile(`[,\s]+`)
	nonWordPattern   = regexp.MustCompile(`\W`)
)

// Analysis is the breakdown of a single prompt.
type Analysis struct {
	Subjects    []string    `json:"subjects"`
	Adjectives  []string    `json:"adjectives"`
	Styles      []string    `json:"styles"`
	Lighting    []string    `json:"lighting"`
	Camera      []string    `json:"camera"`
	Other       []string    `json:"other"`
	Parameters  []Parameter `json:"parameters"`
	Suggestions []string    `json:"suggestions"`
	WordCount   int         `json:"wordCount"`
	Complexity  Complexity  `json:"complexity"`
}

// Complete reports whether the analyzer had nothing left to suggest.
func (a *Analysis) Complete() bool {
	return len(a.Suggestions) == 0
}

// Analyze breaks raw into classified description tokens, decoded flags and
// improvement suggestions. It returns false without doing any work when raw
// is blank.
func Analyze(raw string) (*Analysis, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	body := prefixPattern.ReplaceAllString(raw, "")
	segments := parameterPattern.Split(body, -1)
	description := segments[0]
	flags := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		flags = append(flags, "--"+seg)
	}

	words := Tokenize(description)
	a := &Analysis{
		Subjects:    []string{},
		Adjectives:  []string{},
		Styles:      []string{},
		Lighting:    []string{},
		Camera:      []string{},
		Other:       []string{},
		Parameters:  make([]Parameter, 0, len(flags)),
		Suggestions: []string{},
		WordCount:   len(words),
		Complexity:  ComplexityFor(len(words)),
	}

	lower := cases.Lower(language.Und)
	for _, word := range words {
		switch classify(normalize(lower, word), len(a.Subjects)) {
		case BucketStyle:
			a.Styles = append(a.Styles, word)
		case BucketLighting:
			a.Lighting = append(a.Lighting, word)
		case BucketCamera:
			a.Camera = append(a.Camera, word)
		case BucketAdjective:
			a.Adjectives = append(a.Adjectives, word)
		case BucketSubject:
			a.Subjects = append(a.Subjects, word)
		case BucketOther:
			a.Other = append(a.Other, word)
		}
	}

	hasAspect := false
	for _, flag := range flags {
		a.Parameters = append(a.Parameters, ParseParameter(flag))
		if strings.HasPrefix(flag, "--ar") {
			hasAspect = true
		}
	}

	if len(a.Subjects) == 0 {
		a.Suggestions = append(a.Suggestions, SuggestSubject)
	}
	if len(a.Adjectives) == 0 {
		a.Suggestions = append(a.Suggestions, SuggestAdjectives)
	}
	if len(a.Styles) == 0 {
		a.Suggestions = append(a.Suggestions, SuggestStyle)
	}
	if len(a.Lighting) == 0 {
		a.Suggestions = append(a.Suggestions, SuggestLighting)
	}
	if !hasAspect {
		a.Suggestions = append(a.Suggestions, SuggestAspectRatio)
	}

	return a, true
}

// Tokenize splits a description on commas and whitespace runs.
func Tokenize(description string) []string {
	parts := tokenPattern.Split(description, -1)
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// Classify returns the bucket for a single token given how many subjects
// have already been collected.
func Classify(token string, subjects int) Bucket {
	return classify(normalize(cases.Lower(language.Und), token), subjects)
}

// ComplexityFor maps a word count to its tier.
func ComplexityFor(words int) Complexity {
	switch {
	case words > 20:
		return ComplexityHigh
	case words > 10:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

func normalize(lower cases.Caser, token string) string {
	return nonWordPattern.ReplaceAllString(lower.String(token), "")
}

func classify(norm string, subjects int) Bucket {
	switch {
	case containsAny(norm, styleKeywords):
		return BucketStyle
	case containsAny(norm, lightingKeywords):
		return BucketLighting
	case containsAny(norm, cameraKeywords):
		return BucketCamera
	}
	if _, ok := commonAdjectives[norm]; ok {
		return BucketAdjective
	}
	if len(norm) <= 2 {
		return BucketNone
	}
	if _, ok := stopWords[norm]; ok {
		return BucketNone
	}
	if subjects < MaxSubjects {
		return BucketSubject
	}
	return BucketOther
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
