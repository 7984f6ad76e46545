package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptlab/internal/domain"
	"promptlab/internal/quiz"
)

type scoreRequest struct {
	Answers map[int]int `json:"answers"`
}

type answerRequest struct {
	Option *int `json:"option"`
}

func (a *App) QuizGet(w http.ResponseWriter, r *http.Request) {
	m, err := intParam(r, "module")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, quiz.Public(quiz.ForModule(int(m))))
}

// QuizScore grades a full answer sheet in one call.
func (a *App) QuizScore(w http.ResponseWriter, r *http.Request) {
	m, err := intParam(r, "module")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	var req scoreRequest
	if !a.decode(w, r, &req) {
		return
	}
	a.json(w, http.StatusOK, quiz.Score(quiz.ForModule(int(m)), req.Answers))
}

func (a *App) QuizAttemptStart(w http.ResponseWriter, r *http.Request) {
	m, err := intParam(r, "module")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	attempt, err := a.Quizzes.Start(r.Context(), int(m))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, a.Quizzes.View(attempt))
}

func (a *App) QuizAttemptGet(w http.ResponseWriter, r *http.Request) {
	a.attempt(w, r, a.Quizzes.Get)
}

func (a *App) QuizAttemptAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Option == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "option is required")
		return
	}
	id := chi.URLParam(r, "id")
	attempt, err := a.Quizzes.Answer(r.Context(), id, *req.Option)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, a.Quizzes.View(attempt))
}

func (a *App) QuizAttemptNext(w http.ResponseWriter, r *http.Request) {
	a.attempt(w, r, a.Quizzes.Next)
}

func (a *App) QuizAttemptReset(w http.ResponseWriter, r *http.Request) {
	a.attempt(w, r, a.Quizzes.Reset)
}

func (a *App) attempt(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*domain.QuizAttempt, error)) {
	attempt, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, a.Quizzes.View(attempt))
}
