package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"promptlab/internal/adapter/repo"
	"promptlab/internal/domain"
	"promptlab/internal/gallery"
	"promptlab/internal/http/handlers"
	"promptlab/internal/prompt"
	"promptlab/internal/quiz"
)

func newTestRouter(t *testing.T, limit int) http.Handler {
	t.Helper()
	logger := zerolog.Nop()
	app := handlers.NewApp(logger,
		gallery.NewService(repo.NewArtworkRepositoryMemory(domain.SeedArtworks()), "", logger),
		quiz.NewService(repo.NewAttemptStoreMemory(), 0, logger),
	)
	return NewRouter(app, Options{Logger: logger, AllowedOrigins: []string{"http://localhost:5173"}, RateLimitPerMin: limit})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, 100)
	rr := do(t, h, http.MethodGet, "/v1/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestHealthReportsFailedCheck(t *testing.T) {
	logger := zerolog.Nop()
	app := handlers.NewApp(logger, nil, nil)
	app.Checks["redis"] = func(context.Context) error { return errors.New("down") }
	h := NewRouter(app, Options{Logger: logger, RateLimitPerMin: 1})

	rr := do(t, h, http.MethodGet, "/v1/healthz", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var res struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	decode(t, rr, &res)
	if res.Status != "degraded" || res.Checks["redis"] != "down" {
		t.Fatalf("health = %+v", res)
	}
}

func TestComposeThenAnalyze(t *testing.T) {
	h := newTestRouter(t, 100)
	rr := do(t, h, http.MethodPost, "/v1/prompts/compose", `{
		"subject": "a dragon",
		"adjectives": ["majestic", "majestic", " "],
		"style": "3d-pixar",
		"lighting": "golden hour lighting",
		"parameters": {"aspectRatio": "16:9", "stylize": "300"}
	}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("compose status = %d body %s", rr.Code, rr.Body.String())
	}
	var composed struct {
		Prompt string `json:"prompt"`
	}
	decode(t, rr, &composed)
	want := "/imagine prompt majestic a dragon, 3D Pixar style, golden hour lighting --ar 16:9 --s 300"
	if composed.Prompt != want {
		t.Fatalf("prompt = %q, want %q", composed.Prompt, want)
	}

	body, _ := json.Marshal(map[string]string{"prompt": composed.Prompt})
	rr = do(t, h, http.MethodPost, "/v1/prompts/analyze", string(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("analyze status = %d", rr.Code)
	}
	var a prompt.Analysis
	decode(t, rr, &a)
	if len(a.Parameters) != 2 || len(a.Styles) != 2 || a.Subjects[0] != "dragon" {
		t.Fatalf("analysis = %+v", a)
	}
}

func TestComposeRejectsUnknownStyle(t *testing.T) {
	rr := do(t, newTestRouter(t, 100), http.MethodPost, "/v1/prompts/compose", `{"subject":"a cat","style":"claymation"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, rr, &body)
	if body.Error.Code != "bad_request" {
		t.Fatalf("error code = %q", body.Error.Code)
	}
}

func TestAnalyzeBlankIsNoContent(t *testing.T) {
	h := newTestRouter(t, 100)
	for _, body := range []string{`{"prompt":"   "}`, `{}`, ""} {
		rr := do(t, h, http.MethodPost, "/v1/prompts/analyze", body)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("body %q: status = %d, want 204", body, rr.Code)
		}
	}
	if rr := do(t, h, http.MethodPost, "/v1/prompts/analyze", `{"prompt":1}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed payload status = %d, want 400", rr.Code)
	}
}

func TestCourseRoutes(t *testing.T) {
	h := newTestRouter(t, 100)
	if rr := do(t, h, http.MethodGet, "/v1/course/modules", ""); rr.Code != http.StatusOK {
		t.Fatalf("modules status = %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/course/modules/1", ""); rr.Code != http.StatusOK {
		t.Fatalf("module 1 status = %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/course/modules/99", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("module 99 status = %d, want 404", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/course/modules/abc", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("module abc status = %d, want 400", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/prompts/options", ""); rr.Code != http.StatusOK {
		t.Fatalf("options status = %d", rr.Code)
	}
}

func TestQuizAttemptFlow(t *testing.T) {
	h := newTestRouter(t, 100)

	rr := do(t, h, http.MethodPost, "/v1/quizzes/1/attempts", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("start status = %d", rr.Code)
	}
	var view quiz.AttemptView
	decode(t, rr, &view)
	if view.Question == nil || view.Total != 5 || view.Progress != 20 {
		t.Fatalf("view = %+v", view)
	}
	base := "/v1/quiz-attempts/" + view.ID

	if rr := do(t, h, http.MethodPost, base+"/next", ""); rr.Code != http.StatusConflict {
		t.Fatalf("next without answer status = %d, want 409", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, base+"/answer", `{}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("answer without option status = %d, want 400", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, base+"/answer", `{"option":7}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("out of range option status = %d, want 400", rr.Code)
	}

	for _, q := range quiz.ForModule(1).Questions {
		body, _ := json.Marshal(map[string]int{"option": q.Correct})
		if rr := do(t, h, http.MethodPost, base+"/answer", string(body)); rr.Code != http.StatusOK {
			t.Fatalf("answer status = %d", rr.Code)
		}
		rr := do(t, h, http.MethodPost, base+"/next", "")
		if rr.Code != http.StatusOK {
			t.Fatalf("next status = %d", rr.Code)
		}
		view = quiz.AttemptView{}
		decode(t, rr, &view)
	}
	if !view.Finished || view.Result == nil || view.Result.Score != 5 || view.Result.Tier != quiz.TierExcellent {
		t.Fatalf("final view = %+v", view)
	}

	if rr := do(t, h, http.MethodPost, base+"/answer", `{"option":0}`); rr.Code != http.StatusConflict {
		t.Fatalf("answer after finish status = %d, want 409", rr.Code)
	}
	rr = do(t, h, http.MethodPost, base+"/reset", "")
	view = quiz.AttemptView{}
	decode(t, rr, &view)
	if view.Finished || view.Current != 0 {
		t.Fatalf("reset view = %+v", view)
	}
	if rr := do(t, h, http.MethodGet, "/v1/quiz-attempts/nope", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown attempt status = %d, want 404", rr.Code)
	}
}

func TestQuizScoreAndPublic(t *testing.T) {
	h := newTestRouter(t, 100)
	rr := do(t, h, http.MethodGet, "/v1/quizzes/2", "")
	if strings.Contains(rr.Body.String(), `"correct":`) || strings.Contains(rr.Body.String(), `"explanation":`) {
		t.Fatalf("public quiz leaks answers: %s", rr.Body.String())
	}

	rr = do(t, h, http.MethodPost, "/v1/quizzes/9/score", `{"answers":{"0":1,"1":2,"2":1}}`)
	var res quiz.Result
	decode(t, rr, &res)
	if res.Module != 1 || res.Score != 3 || res.Percentage != 60 || res.Tier != quiz.TierGood {
		t.Fatalf("result = %+v", res)
	}
}

func TestGalleryRoutes(t *testing.T) {
	h := newTestRouter(t, 100)

	rr := do(t, h, http.MethodPost, "/v1/gallery", `{"title":"Neon Fox","prompt":"/imagine prompt a neon fox --ar 1:1","style":"Anime"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("submit status = %d body %s", rr.Code, rr.Body.String())
	}
	var art domain.Artwork
	decode(t, rr, &art)
	if art.ID != 5 || art.Author != "You" {
		t.Fatalf("artwork = %+v", art)
	}

	rr = do(t, h, http.MethodGet, "/v1/gallery?style=Anime", "")
	var list struct {
		Items []domain.Artwork `json:"items"`
	}
	decode(t, rr, &list)
	if len(list.Items) != 1 || list.Items[0].ID != 5 {
		t.Fatalf("anime list = %+v", list.Items)
	}

	if rr := do(t, h, http.MethodPost, "/v1/gallery", `{"prompt":"p","style":"Anime"}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("submit without title status = %d, want 400", rr.Code)
	}

	rr = do(t, h, http.MethodPost, "/v1/gallery/2/like", "")
	art = domain.Artwork{}
	decode(t, rr, &art)
	if art.Likes != 19 {
		t.Fatalf("likes = %d, want 19", art.Likes)
	}
	if rr := do(t, h, http.MethodPost, "/v1/gallery/404/like", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("like unknown status = %d, want 404", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, "/v1/gallery/x/like", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("like non-numeric status = %d, want 400", rr.Code)
	}

	if rr := do(t, h, http.MethodPost, "/v1/gallery/3/comments", `{"body":"So cozy"}`); rr.Code != http.StatusCreated {
		t.Fatalf("comment status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/v1/gallery/3/comments", "")
	var comments struct {
		Items []domain.Comment `json:"items"`
	}
	decode(t, rr, &comments)
	if len(comments.Items) != 1 || comments.Items[0].Author != "You" {
		t.Fatalf("comments = %+v", comments.Items)
	}

	if rr := do(t, h, http.MethodGet, "/v1/gallery/3/analysis", ""); rr.Code != http.StatusOK {
		t.Fatalf("analysis status = %d", rr.Code)
	}

	rr = do(t, h, http.MethodGet, "/v1/gallery/export?style=all", "")
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "application/zip" {
		t.Fatalf("export status = %d type %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	if !strings.HasPrefix(rr.Header().Get("Content-Disposition"), "attachment;") {
		t.Fatalf("Content-Disposition = %q", rr.Header().Get("Content-Disposition"))
	}
}

func TestWriteRoutesAreRateLimited(t *testing.T) {
	h := newTestRouter(t, 1)
	if rr := do(t, h, http.MethodPost, "/v1/gallery/1/like", ""); rr.Code != http.StatusOK {
		t.Fatalf("first like status = %d", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, "/v1/gallery/1/like", ""); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second like status = %d, want 429", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/v1/gallery", ""); rr.Code != http.StatusOK {
		t.Fatalf("read route throttled: %d", rr.Code)
	}
}

func TestRateLimitIgnoresForwardedHeaders(t *testing.T) {
	h := newTestRouter(t, 1)
	for i, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/gallery/1/like", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		want := http.StatusOK
		if i > 0 {
			want = http.StatusTooManyRequests
		}
		if rr.Code != want {
			t.Fatalf("like with X-Forwarded-For %s status = %d, want %d", ip, rr.Code, want)
		}
	}
}
