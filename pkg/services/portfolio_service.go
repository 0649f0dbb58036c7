package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"studio-portfolio/pkg/catalog"
	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/gallery"
	"studio-portfolio/pkg/markdown"
	"studio-portfolio/pkg/models"
)

const (
	catalogKey     = "catalog"
	loadTimeout    = 30 * time.Second
	markdownPrefix = "md:"
)

// ErrProjectNotFound is returned when no item has the requested slug
var ErrProjectNotFound = errors.New("project not found")

// Service serves catalog snapshots, gallery views and case-study copy
type Service struct {
	config *config.Config
	source catalog.Source
	assets AssetResolver
	logger *zap.Logger
	cache  *cache.Cache
	mu     sync.RWMutex
}

// CaseStudyHTML is the markdown part of a case study rendered to HTML
type CaseStudyHTML struct {
	Overview  template.HTML
	Challenge template.HTML
	Solution  template.HTML
}

var (
	// defaultService is the singleton instance used by the CLI commands
	defaultService *Service
	initErr        error
	once           sync.Once
)

// NewService wires a service. A nil resolver passes asset references through
// as public bucket URLs; a nil logger discards logs.
func NewService(cfg *config.Config, source catalog.Source, assets AssetResolver, logger *zap.Logger) *Service {
	if assets == nil {
		assets = PublicResolver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		config: cfg,
		source: source,
		assets: assets,
		logger: logger,
		cache:  cache.New(ttl, 2*ttl),
	}
}

// InitService initializes the shared service from configuration. Only the
// first call does any work; a failure is returned to every later call too.
func InitService(cfg *config.Config, logger *zap.Logger) error {
	once.Do(func() {
		defaultService, initErr = newFromConfig(cfg, logger)
		if initErr != nil {
			initErr = fmt.Errorf("init service: %w", initErr)
		}
	})
	return initErr
}

func newFromConfig(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	source, err := catalog.NewSource(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	var assets AssetResolver = PublicResolver{}
	if cfg.SigningEnabled() {
		assets = NewBucketSigner(logger)
	}
	return NewService(cfg, source, assets, logger), nil
}

// Default returns the shared service. InitService must have been called.
func Default() *Service {
	return defaultService
}

// GetCatalog returns the current catalog snapshot of the shared service
func GetCatalog() (*catalog.Catalog, error) {
	return defaultService.Catalog(context.Background())
}

// GetProjects returns all projects of the shared service
func GetProjects() ([]models.Item, error) {
	return defaultService.Projects(context.Background())
}

// GetProject returns a project of the shared service by slug
func GetProject(slug string) (models.Item, error) {
	return defaultService.Project(context.Background(), slug)
}

// Close releases resources held by the asset resolver, such as the storage
// client of a BucketSigner.
func (s *Service) Close() error {
	if c, ok := s.assets.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Config returns the configuration the service was built with
func (s *Service) Config() *config.Config {
	return s.config
}

// Catalog returns the cached catalog snapshot, loading it from the source
// when the cache is empty or expired.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	s.mu.RLock()
	if cached, found := s.cache.Get(catalogKey); found {
		s.mu.RUnlock()
		s.logger.Debug("using cached catalog")
		return cached.(*catalog.Catalog), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, found := s.cache.Get(catalogKey); found {
		return cached.(*catalog.Catalog), nil
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	s.logger.Info("loading catalog", zap.Stringer("source", s.source))
	c, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog", zap.Stringer("source", s.source), zap.Error(err))
		return nil, err
	}
	for _, w := range c.Warnings() {
		s.logger.Warn("catalog data defect", zap.String("detail", w))
	}

	s.cache.Set(catalogKey, c, cache.DefaultExpiration)
	return c, nil
}

// Reload drops every cached value so the next read goes back to the source.
func (s *Service) Reload() {
	s.mu.Lock()
	s.cache.Flush()
	s.mu.Unlock()
}

// Categories returns the catalog's category list
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Categories(), nil
}

// CategoryCounts returns every category with its number of projects
func (s *Service) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Counts(), nil
}

// Projects returns every project in catalog order with asset references resolved
func (s *Service) Projects(ctx context.Context) ([]models.Item, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	items := c.Items()
	for i := range items {
		items[i] = s.resolveAssets(ctx, items[i])
	}
	return items, nil
}

// Project returns one project by slug
func (s *Service) Project(ctx context.Context, slug string) (models.Item, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return models.Item{}, err
	}
	item, ok := c.Item(slug)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
	}
	return s.resolveAssets(ctx, item), nil
}

// Featured returns the featured projects in catalog order
func (s *Service) Featured(ctx context.Context) ([]models.Item, error) {
	items, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return gallery.Featured(items), nil
}

// Gallery rebuilds a gallery controller from state and returns its view.
func (s *Service) Gallery(ctx context.Context, state gallery.State) (gallery.View, error) {
	items, err := s.Projects(ctx)
	if err != nil {
		return gallery.View{}, err
	}
	ctrl := gallery.NewController(items, s.config.PageSize)
	ctrl.Restore(state)
	return ctrl.View(), nil
}

// CaseStudy renders the markdown sections of an item's case study. Items
// without one return a zero value.
func (s *Service) CaseStudy(item models.Item) (CaseStudyHTML, error) {
	cs := item.CaseStudy
	if cs == nil {
		return CaseStudyHTML{}, nil
	}
	var out CaseStudyHTML
	var err error
	if out.Overview, err = s.renderMarkdown(cs.Overview); err != nil {
		return CaseStudyHTML{}, fmt.Errorf("%s overview: %w", item.Slug, err)
	}
	if out.Challenge, err = s.renderMarkdown(cs.Challenge); err != nil {
		return CaseStudyHTML{}, fmt.Errorf("%s challenge: %w", item.Slug, err)
	}
	if out.Solution, err = s.renderMarkdown(cs.Solution); err != nil {
		return CaseStudyHTML{}, fmt.Errorf("%s solution: %w", item.Slug, err)
	}
	return out, nil
}

// renderMarkdown caches by source text, so edited copy never hits a stale entry.
func (s *Service) renderMarkdown(source string) (template.HTML, error) {
	if source == "" {
		return "", nil
	}
	key := markdownPrefix + source
	if cached, found := s.cache.Get(key); found {
		return cached.(template.HTML), nil
	}
	html, err := markdown.ToHTML(source)
	if err != nil {
		return "", err
	}
	s.cache.Set(key, html, cache.DefaultExpiration)
	return html, nil
}

func (s *Service) resolveAssets(ctx context.Context, item models.Item) models.Item {
	if item.Image != "" {
		item.Image = s.assets.Resolve(ctx, item.Image)
	}
	if len(item.Images) > 0 {
		images := make([]string, len(item.Images))
		for i, ref := range item.Images {
			images[i] = s.assets.Resolve(ctx, ref)
		}
		item.Images = images
	}
	return item
}
