package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// Source produces a catalog snapshot
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	String() string
}

// NewSource picks a bucket source for gs:// locations and a file source otherwise.
func NewSource(location string) (Source, error) {
	if strings.HasPrefix(location, "gs://") {
		bucket, object, err := ParseBucketURL(location)
		if err != nil {
			return nil, err
		}
		return &BucketSource{Bucket: bucket, Object: object}, nil
	}
	return FileSource{Path: location}, nil
}

// ParseBucketURL splits gs://bucket/path/to/object into bucket and object names.
func ParseBucketURL(location string) (string, string, error) {
	rest, ok := strings.CutPrefix(location, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// location: %q", location)
	}
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("gs:// location needs a bucket and an object: %q", location)
	}
	return bucket, object, nil
}

// FileSource reads the catalog document from the local filesystem
type FileSource struct {
	Path string
}

// Load reads and decodes the file
func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return c, nil
}

func (s FileSource) String() string {
	return s.Path
}

// BucketSource reads the catalog document from a Cloud Storage object
type BucketSource struct {
	Bucket string
	Object string
}

// Load downloads and decodes the object
func (s *BucketSource) Load(ctx context.Context) (*Catalog, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	reader, err := client.Bucket(s.Bucket).Object(s.Object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("Object(%q).NewReader: %w", s.Object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return c, nil
}

func (s *BucketSource) String() string {
	return fmt.Sprintf("gs://%s/%s", s.Bucket, s.Object)
}

// StaticSource always returns the same catalog
type StaticSource struct {
	Catalog *Catalog
}

// Load returns the wrapped catalog
func (s StaticSource) Load(_ context.Context) (*Catalog, error) {
	if s.Catalog == nil {
		return nil, fmt.Errorf("static source has no catalog")
	}
	return s.Catalog, nil
}

func (s StaticSource) String() string {
	return "static"
}
