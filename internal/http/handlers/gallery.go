package handlers

import (
	"fmt"
	"net/http"
	"time"

	"promptlab/internal/domain"
)

func (a *App) GalleryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Gallery.List(r.Context(), r.URL.Query().Get("style"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GalleryStyles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": domain.GalleryStyles()})
}

func (a *App) GallerySubmit(w http.ResponseWriter, r *http.Request) {
	var req domain.ArtworkSubmission
	if !a.decode(w, r, &req) {
		return
	}
	art, err := a.Gallery.Submit(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, art)
}

func (a *App) GalleryLike(w http.ResponseWriter, r *http.Request) {
	id, ok := a.artworkID(w, r)
	if !ok {
		return
	}
	art, err := a.Gallery.Like(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, art)
}

func (a *App) GalleryComments(w http.ResponseWriter, r *http.Request) {
	id, ok := a.artworkID(w, r)
	if !ok {
		return
	}
	items, err := a.Gallery.Comments(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GalleryComment(w http.ResponseWriter, r *http.Request) {
	id, ok := a.artworkID(w, r)
	if !ok {
		return
	}
	var req domain.CommentSubmission
	if !a.decode(w, r, &req) {
		return
	}
	c, err := a.Gallery.Comment(r.Context(), id, req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, c)
}

func (a *App) GalleryAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := a.artworkID(w, r)
	if !ok {
		return
	}
	analysis, err := a.Gallery.Analyze(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if analysis == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.json(w, http.StatusOK, analysis)
}

// GalleryExport downloads the listed prompts as a zip archive.
func (a *App) GalleryExport(w http.ResponseWriter, r *http.Request) {
	data, err := a.Gallery.Export(r.Context(), r.URL.Query().Get("style"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	name := fmt.Sprintf("gallery-prompts-%s.zip", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *App) artworkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := intParam(r, "id")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return 0, false
	}
	return id, true
}
