package handlers

import (
	"net/http"

	"promptlab/internal/course"
	"promptlab/internal/domain"
	"promptlab/internal/prompt"
)

type composeRequest struct {
	Subject       string            `json:"subject"`
	Adjectives    []string          `json:"adjectives"`
	Style         prompt.Style      `json:"style"`
	Lighting      string            `json:"lighting"`
	Parameters    prompt.Parameters `json:"parameters"`
	NegativeTerms []string          `json:"negativeTerms"`
}

type composeResponse struct {
	Prompt string `json:"prompt"`
}

type analyzeRequest struct {
	Prompt string `json:"prompt"`
}

type promptOptionsResponse struct {
	Styles       []course.Option `json:"styles"`
	Lighting     []course.Option `json:"lighting"`
	AspectRatios []course.Option `json:"aspectRatios"`
	Versions     []course.Option `json:"versions"`
	Qualities    []course.Option `json:"qualities"`
}

func (a *App) PromptOptions(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, promptOptionsResponse{
		Styles:       course.StyleOptions(),
		Lighting:     course.LightingOptions(),
		AspectRatios: course.AspectRatioOptions(),
		Versions:     course.VersionOptions(),
		Qualities:    course.QualityOptions(),
	})
}

func (a *App) PromptExamples(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": course.ExamplePrompts()})
}

// PromptCompose builds a command from the builder fields. Term lists go
// through the same helpers the builder uses, so blanks and duplicates drop out.
func (a *App) PromptCompose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Style.Valid() {
		a.fail(w, r, domain.ErrUnknownStyle)
		return
	}
	in := prompt.ComposerInput{
		Subject:    req.Subject,
		Style:      req.Style,
		Lighting:   req.Lighting,
		Parameters: req.Parameters,
	}
	for _, adj := range req.Adjectives {
		in.AddAdjective(adj)
	}
	for _, term := range req.NegativeTerms {
		in.AddNegativeTerm(term)
	}
	a.json(w, http.StatusOK, composeResponse{Prompt: prompt.Compose(in)})
}

// PromptAnalyze answers 204 for a blank prompt.
func (a *App) PromptAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !a.decode(w, r, &req) {
		return
	}
	analysis, ok := prompt.Analyze(req.Prompt)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.json(w, http.StatusOK, analysis)
}
