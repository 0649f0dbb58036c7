package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the portfolio routes. Static files are served from
// publicDir/assets under /assets/.
func NewRouter(h *Handler, publicDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(AccessLog(h.logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", HealthHandler)

	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(publicDir, "assets"))))
	r.Handle("/assets/*", assets)

	r.Get("/", h.WorkHandler)
	r.Get("/work", h.WorkHandler)
	r.Get("/project/{slug}", h.ProjectHandler)
	r.Get("/case-study/{slug}", h.CaseStudyHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.FeedHandler)
		r.Get("/categories", h.CategoriesHandler)
	})

	return r
}
