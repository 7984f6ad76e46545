package handlers

import (
	"net/http"

	"promptlab/internal/course"
)

func (a *App) CourseModules(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": course.Modules()})
}

func (a *App) CourseModule(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "number")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	m, ok := course.ModuleByNumber(int(n))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "module not found")
		return
	}
	a.json(w, http.StatusOK, m)
}

func (a *App) CourseFeatures(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": course.Features()})
}
