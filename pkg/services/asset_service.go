package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"studio-portfolio/pkg/catalog"
	"studio-portfolio/pkg/models"
)

const (
	publicStorageURL = "https://storage.googleapis.com/"
	signedURLTTL     = 24 * time.Hour
	// signedURLCacheTTL stays well inside signedURLTTL so a cached URL never expires in a page
	signedURLCacheTTL = time.Hour
)

var errSignerClosed = errors.New("asset signer is closed")

// AssetResolver turns a catalog asset reference into a URL a browser can load
type AssetResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// PublicResolver maps gs://bucket/object to its public storage URL and leaves
// every other reference alone.
type PublicResolver struct{}

// Resolve implements AssetResolver
func (PublicResolver) Resolve(_ context.Context, ref string) string {
	bucket, object, err := catalog.ParseBucketURL(ref)
	if err != nil {
		return ref
	}
	return publicURL(bucket, object)
}

func publicURL(bucket, object string) string {
	return publicStorageURL + bucket + "/" + (&url.URL{Path: object}).EscapedPath()
}

// BucketSigner turns gs:// references into 24-hour signed URLs. Signed URLs
// are cached; failures fall back to the public URL.
type BucketSigner struct {
	logger *zap.Logger
	cache  *cache.Cache
	sign   func(ctx context.Context, bucket, object string) (string, error)

	clientOnce sync.Once
	client     *storage.Client
	clientErr  error
}

// NewBucketSigner creates a signer backed by Cloud Storage
func NewBucketSigner(logger *zap.Logger) *BucketSigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BucketSigner{
		logger: logger,
		cache:  cache.New(signedURLCacheTTL, 2*signedURLCacheTTL),
	}
	s.sign = s.signWithStorage
	return s
}

// Resolve implements AssetResolver
func (s *BucketSigner) Resolve(ctx context.Context, ref string) string {
	bucket, object, err := catalog.ParseBucketURL(ref)
	if err != nil {
		return ref
	}
	if cached, found := s.cache.Get(ref); found {
		return cached.(string)
	}

	signed, err := s.sign(ctx, bucket, object)
	if err != nil {
		s.logger.Warn("failed to sign asset URL", zap.String("ref", ref), zap.Error(err))
		return publicURL(bucket, object)
	}
	s.cache.Set(ref, signed, cache.DefaultExpiration)
	return signed
}

// Close releases the storage client, if one was created. A closed signer
// never creates a client again and resolves to public URLs.
func (s *BucketSigner) Close() error {
	s.clientOnce.Do(func() {
		s.clientErr = errSignerClosed
	})
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	s.clientErr = errSignerClosed
	return err
}

func (s *BucketSigner) signWithStorage(ctx context.Context, bucket, object string) (string, error) {
	s.clientOnce.Do(func() {
		// the client outlives the request that triggered it
		s.client, s.clientErr = storage.NewClient(context.WithoutCancel(ctx))
	})
	if s.clientErr != nil {
		return "", fmt.Errorf("failed to create storage client: %w", s.clientErr)
	}
	return s.client.Bucket(bucket).SignedURL(object, &storage.SignedURLOptions{
		Expires: time.Now().Add(signedURLTTL),
		Method:  "GET",
	})
}

// AssetReport lists the gs:// references of a catalog that point at missing objects
type AssetReport struct {
	Checked int
	Missing []MissingAsset
}

// MissingAsset is one unresolved reference
type MissingAsset struct {
	Slug string
	Ref  string
}

// CheckAssets scans the bucket and reports catalog references into it that
// have no matching object. References to other buckets are not checked.
func CheckAssets(ctx context.Context, bucketName string, items []models.Item) (AssetReport, error) {
	if bucketName == "" {
		return AssetReport{}, errors.New("no bucket configured")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return AssetReport{}, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	existing := make(map[string]bool)
	it := client.Bucket(bucketName).Objects(ctx, nil)
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return AssetReport{}, fmt.Errorf("error iterating objects: %w", err)
		}
		existing[obj.Name] = true
	}

	return compareAssets(bucketName, items, existing), nil
}

func compareAssets(bucketName string, items []models.Item, existing map[string]bool) AssetReport {
	var report AssetReport
	for _, item := range items {
		for _, ref := range assetRefs(item) {
			bucket, object, err := catalog.ParseBucketURL(ref)
			if err != nil || bucket != bucketName {
				continue
			}
			report.Checked++
			if !existing[strings.TrimPrefix(object, "/")] {
				report.Missing = append(report.Missing, MissingAsset{Slug: item.Slug, Ref: ref})
			}
		}
	}
	return report
}

func assetRefs(item models.Item) []string {
	refs := make([]string, 0, len(item.Images)+1)
	if item.Image != "" {
		refs = append(refs, item.Image)
	}
	return append(refs, item.Images...)
}
