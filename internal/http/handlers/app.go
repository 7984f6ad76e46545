package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"promptlab/internal/domain"
	"promptlab/internal/gallery"
	"promptlab/internal/middleware"
	"promptlab/internal/quiz"
)

const maxBodyBytes = 64 << 10

// App carries the services shared by every handler.
type App struct {
	Logger  zerolog.Logger
	Gallery *gallery.Service
	Quizzes *quiz.Service
	// Checks are dependency probes reported by Health, keyed by name.
	Checks map[string]Check
}

func NewApp(logger zerolog.Logger, g *gallery.Service, q *quiz.Service) *App {
	return &App{Logger: logger, Gallery: g, Quizzes: q, Checks: map[string]Check{}}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errorDetail{Code: errCode, Message: message}})
}

// fail maps service errors onto the JSON error envelope.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrInvalidArtwork),
		errors.Is(err, domain.ErrInvalidComment),
		errors.Is(err, domain.ErrInvalidAnswer),
		errors.Is(err, domain.ErrUnknownStyle):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrAnswerRequired):
		a.error(w, http.StatusConflict, "answer_required", "answer the current question first")
	case errors.Is(err, domain.ErrAttemptFinished):
		a.error(w, http.StatusConflict, "attempt_finished", "attempt is already finished")
	case errors.Is(err, domain.ErrAttemptBusy):
		a.error(w, http.StatusConflict, "attempt_busy", "attempt changed concurrently, retry")
	default:
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

func intParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
