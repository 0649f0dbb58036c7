package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"studio-portfolio/pkg/catalog"
	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/gallery"
	"studio-portfolio/pkg/models"
)

type countingSource struct {
	inner catalog.Source
	loads atomic.Int32
}

func (s *countingSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	s.loads.Add(1)
	return s.inner.Load(ctx)
}

func (s *countingSource) String() string { return "counting" }

type failingSource struct{}

func (failingSource) Load(context.Context) (*catalog.Catalog, error) {
	return nil, errors.New("bucket unreachable")
}

func (failingSource) String() string { return "failing" }

func newTestService(t *testing.T) (*Service, *countingSource) {
	t.Helper()
	src := &countingSource{inner: catalog.FileSource{Path: "../../content/projects.yaml"}}
	cfg := &config.Config{PageSize: 2, CacheTTL: time.Minute}
	return NewService(cfg, src, nil, zaptest.NewLogger(t)), src
}

func TestCatalogIsCached(t *testing.T) {
	svc, src := newTestService(t)
	ctx := context.Background()

	_, err := svc.Catalog(ctx)
	require.NoError(t, err)
	_, err = svc.Projects(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.loads.Load())

	svc.Reload()
	_, err = svc.Catalog(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.loads.Load())
}

func TestCatalogLoadError(t *testing.T) {
	svc := NewService(&config.Config{PageSize: 2}, failingSource{}, nil, zaptest.NewLogger(t))
	_, err := svc.Projects(context.Background())
	require.Error(t, err)
}

func TestProjectLookup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.Project(ctx, "nexus")
	require.NoError(t, err)
	assert.Equal(t, "Nexus Brand Identity", item.Title)

	_, err = svc.Project(ctx, "missing")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGalleryRebuildsStatePerCall(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.Gallery(ctx, gallery.State{Category: models.AllCategories, Page: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, view.TotalPages)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "experiments", view.Items[0].Slug)

	view, err = svc.Gallery(ctx, gallery.State{Category: "web", Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 2, view.TotalItems)
}

func TestFeatured(t *testing.T) {
	svc, _ := newTestService(t)
	items, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "zero-chill", items[0].Slug)
	assert.Equal(t, "gnosis", items[1].Slug)
}

func TestCaseStudyMarkdown(t *testing.T) {
	svc, _ := newTestService(t)
	item, err := svc.Project(context.Background(), "nexus")
	require.NoError(t, err)

	cs, err := svc.CaseStudy(item)
	require.NoError(t, err)
	assert.Contains(t, string(cs.Overview), "<strong>leaders in applied AI</strong>")
	assert.Contains(t, string(cs.Challenge), "<em>and</em>")

	none, err := svc.CaseStudy(models.Item{Slug: "plain"})
	require.NoError(t, err)
	assert.Equal(t, CaseStudyHTML{}, none)
}

func TestPublicResolver(t *testing.T) {
	r := PublicResolver{}
	ctx := context.Background()
	assert.Equal(t, "https://storage.googleapis.com/studio/img/a%20b.jpg", r.Resolve(ctx, "gs://studio/img/a b.jpg"))
	assert.Equal(t, "/assets/img/x.jpg", r.Resolve(ctx, "/assets/img/x.jpg"))
}

func TestProjectsResolveAssets(t *testing.T) {
	c, err := catalog.New(nil, []models.Item{{
		Title:    "Remote",
		Category: "graphics",
		Slug:     "remote",
		Image:    "gs://studio/posters/cover.jpg",
		Images:   []string{"gs://studio/posters/1.jpg", "/assets/img/local.jpg"},
		Stats:    models.CompletedStats{},
	}})
	require.NoError(t, err)

	svc := NewService(&config.Config{PageSize: 2}, catalog.StaticSource{Catalog: c}, nil, zaptest.NewLogger(t))
	item, err := svc.Project(context.Background(), "remote")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/studio/posters/cover.jpg", item.Image)
	assert.Equal(t, []string{"https://storage.googleapis.com/studio/posters/1.jpg", "/assets/img/local.jpg"}, item.Images)

	// the cached catalog keeps the raw references
	raw, _ := c.Item("remote")
	assert.Equal(t, "gs://studio/posters/cover.jpg", raw.Image)
}

func TestBucketSignerCachesAndFallsBack(t *testing.T) {
	signer := NewBucketSigner(zaptest.NewLogger(t))
	var calls int
	signer.sign = func(_ context.Context, bucket, object string) (string, error) {
		calls++
		if object == "broken.jpg" {
			return "", errors.New("no credentials")
		}
		return "https://signed.example/" + bucket + "/" + object, nil
	}
	ctx := context.Background()

	assert.Equal(t, "https://signed.example/studio/a.jpg", signer.Resolve(ctx, "gs://studio/a.jpg"))
	assert.Equal(t, "https://signed.example/studio/a.jpg", signer.Resolve(ctx, "gs://studio/a.jpg"))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "https://storage.googleapis.com/studio/broken.jpg", signer.Resolve(ctx, "gs://studio/broken.jpg"))
	assert.Equal(t, "/local.png", signer.Resolve(ctx, "/local.png"))
	assert.NoError(t, signer.Close())
}

func TestCompareAssets(t *testing.T) {
	items := []models.Item{
		{Slug: "a", Image: "gs://studio/a.jpg", Images: []string{"gs://studio/a-1.jpg"}},
		{Slug: "b", Image: "gs://elsewhere/b.jpg"},
		{Slug: "c", Image: "/assets/img/c.jpg"},
	}
	report := compareAssets("studio", items, map[string]bool{"a.jpg": true})
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []MissingAsset{{Slug: "a", Ref: "gs://studio/a-1.jpg"}}, report.Missing)
}

func TestCheckAssetsNeedsBucket(t *testing.T) {
	_, err := CheckAssets(context.Background(), "", nil)
	require.Error(t, err)
}

func TestClosedSignerServesPublicURLs(t *testing.T) {
	signer := NewBucketSigner(zaptest.NewLogger(t))
	require.NoError(t, signer.Close())
	require.NoError(t, signer.Close())

	// no storage client is created after Close
	got := signer.Resolve(context.Background(), "gs://studio/a.jpg")
	assert.Equal(t, "https://storage.googleapis.com/studio/a.jpg", got)
	assert.Nil(t, signer.client)
}

type closingResolver struct {
	PublicResolver
	closed int
}

func (r *closingResolver) Close() error {
	r.closed++
	return nil
}

func TestServiceCloseReleasesResolver(t *testing.T) {
	resolver := &closingResolver{}
	cfg := &config.Config{PageSize: 2, CacheTTL: time.Minute}
	svc := NewService(cfg, catalog.FileSource{Path: "../../content/projects.yaml"}, resolver, zaptest.NewLogger(t))
	require.NoError(t, svc.Close())
	assert.Equal(t, 1, resolver.closed)

	plain, _ := newTestService(t)
	assert.NoError(t, plain.Close())
}

func TestInitServiceKeepsFirstError(t *testing.T) {
	t.Cleanup(func() {
		once = sync.Once{}
		defaultService = nil
		initErr = nil
	})
	once = sync.Once{}
	defaultService = nil
	initErr = nil

	cfg := &config.Config{CatalogPath: "gs://only-bucket", PageSize: 2, CacheTTL: time.Minute}
	logger := zaptest.NewLogger(t)

	err := InitService(cfg, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init service")

	again := InitService(&config.Config{CatalogPath: "../../content/projects.yaml"}, logger)
	require.ErrorIs(t, again, err)
	assert.Nil(t, Default())
}
