package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"promptlab/internal/http/handlers"
	"promptlab/internal/middleware"
)

// Options tune the middleware stack.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
	// TrustProxyHeaders rewrites RemoteAddr from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that sets those headers.
	TrustProxyHeaders bool
}

// NewRouter mounts every /v1 route. Write endpoints are rate limited per client IP.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	limit := middleware.RateLimit(opts.RateLimitPerMin, time.Minute)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Route("/course", func(r chi.Router) {
			r.Get("/modules", app.CourseModules)
			r.Get("/modules/{number}", app.CourseModule)
			r.Get("/features", app.CourseFeatures)
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Get("/options", app.PromptOptions)
			r.Get("/examples", app.PromptExamples)
			r.Post("/compose", app.PromptCompose)
			r.Post("/analyze", app.PromptAnalyze)
		})

		r.Route("/quizzes/{module}", func(r chi.Router) {
			r.Get("/", app.QuizGet)
			r.Post("/score", app.QuizScore)
			r.With(limit).Post("/attempts", app.QuizAttemptStart)
		})

		r.Route("/quiz-attempts/{id}", func(r chi.Router) {
			r.Get("/", app.QuizAttemptGet)
			r.Post("/answer", app.QuizAttemptAnswer)
			r.Post("/next", app.QuizAttemptNext)
			r.Post("/reset", app.QuizAttemptReset)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", app.GalleryList)
			r.Get("/styles", app.GalleryStyles)
			r.Get("/export", app.GalleryExport)
			r.With(limit).Post("/", app.GallerySubmit)
			r.Route("/{id}", func(r chi.Router) {
				r.With(limit).Post("/like", app.GalleryLike)
				r.Get("/comments", app.GalleryComments)
				r.With(limit).Post("/comments", app.GalleryComment)
				r.Get("/analysis", app.GalleryAnalysis)
			})
		})
	})

	return r
}
