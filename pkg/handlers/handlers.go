package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"studio-portfolio/pkg/cards"
	"studio-portfolio/pkg/gallery"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

// Handler serves the portfolio pages
type Handler struct {
	svc      *services.Service
	viewsDir string
	logger   *zap.Logger
}

// New creates a Handler rendering pug views from viewsDir. Relative
// directories are resolved against the working directory once, here.
func New(svc *services.Service, viewsDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if abs, err := filepath.Abs(viewsDir); err == nil {
		viewsDir = abs
	}
	return &Handler{svc: svc, viewsDir: viewsDir, logger: logger}
}

// WorkHandler renders the filterable, paginated gallery
func (h *Handler) WorkHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := stateFromQuery(r)

	view, err := h.svc.Gallery(ctx, state)
	if err != nil {
		h.serverError(w, "gallery view", err)
		return
	}
	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.serverError(w, "categories", err)
		return
	}
	featured, err := h.svc.Featured(ctx)
	if err != nil {
		h.serverError(w, "featured projects", err)
		return
	}

	h.render(w, "work.pug", buildWorkPage(view, layoutFromQuery(r), categories, featured))
}

// ProjectHandler renders /project/{slug}
func (h *Handler) ProjectHandler(w http.ResponseWriter, r *http.Request) {
	item, categories, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if cards.IsCaseStudy(item.Category) {
		http.Redirect(w, r, cards.DetailHref(item), http.StatusMovedPermanently)
		return
	}

	index, _ := strconv.Atoi(r.URL.Query().Get("image"))
	h.render(w, "project.pug", buildProjectPage(item, categories, index))
}

// CaseStudyHandler renders /case-study/{slug}
func (h *Handler) CaseStudyHandler(w http.ResponseWriter, r *http.Request) {
	item, categories, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !cards.IsCaseStudy(item.Category) {
		http.Redirect(w, r, cards.DetailHref(item), http.StatusMovedPermanently)
		return
	}

	html, err := h.svc.CaseStudy(item)
	if err != nil {
		h.serverError(w, "case study markdown", err)
		return
	}
	h.render(w, "case_study.pug", buildCaseStudyPage(item, categories, html))
}

// FeedHandler serves the gallery view as JSON
func (h *Handler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.svc.Gallery(ctx, stateFromQuery(r))
	if err != nil {
		h.serverError(w, "gallery view", err)
		return
	}
	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.serverError(w, "categories", err)
		return
	}

	writeJSON(w, FeedResponse{
		State:      view.State,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Cards:      cards.RenderAll(view.Items, categories),
	})
}

// CategoriesHandler serves the category list with project counts as JSON
func (h *Handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CategoryCounts(r.Context())
	if err != nil {
		h.serverError(w, "category counts", err)
		return
	}
	writeJSON(w, counts)
}

// HealthHandler answers liveness checks
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (models.Item, []models.Category, bool) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	item, err := h.svc.Project(ctx, slug)
	if errors.Is(err, services.ErrProjectNotFound) {
		h.logger.Info("project not found", zap.String("slug", slug))
		http.NotFound(w, r)
		return models.Item{}, nil, false
	}
	if err != nil {
		h.serverError(w, "project lookup", err)
		return models.Item{}, nil, false
	}

	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.serverError(w, "categories", err)
		return models.Item{}, nil, false
	}
	return item, categories, true
}

func stateFromQuery(r *http.Request) gallery.State {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}
	category := strings.TrimSpace(q.Get("category"))
	if category == "" {
		category = models.AllCategories
	}
	return gallery.State{Category: category, Page: page, Search: q.Get("q")}
}

func layoutFromQuery(r *http.Request) string {
	if r.URL.Query().Get("view") == listLayout {
		return listLayout
	}
	return gridLayout
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	// the default pug filesystem refuses paths outside the working directory
	tpl, err := pug.CompileFile(name, pug.Options{Dir: compiler.FsDir(h.viewsDir)})
	if err != nil {
		h.serverError(w, "template "+name, err)
		return
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		h.serverError(w, "template "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, what string, err error) {
	h.logger.Error("request failed", zap.String("step", what), zap.Error(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
