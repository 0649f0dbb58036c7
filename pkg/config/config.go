package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	CatalogPath string
	BucketName  string
	Port        string
	PageSize    int
	CacheTTL    time.Duration
	ViewsDir    string
	PublicDir   string
	LogLevel    string
}

const (
	defaultCatalogPath = "content/projects.yaml"
	defaultPort        = "8080"
	defaultPageSize    = 2
	defaultCacheTTL    = 5 * time.Minute
	defaultViewsDir    = "views"
	defaultPublicDir   = "public"
	defaultLogLevel    = "info"
)

// ErrInvalidPageSize is returned when PAGE_SIZE is not a positive integer
var ErrInvalidPageSize = errors.New("PAGE_SIZE must be a positive integer")

// ErrInvalidCacheTTL is returned when CACHE_TTL is not a positive duration
var ErrInvalidCacheTTL = errors.New("CACHE_TTL must be a positive duration")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	pageSize := defaultPageSize
	if raw := strings.TrimSpace(os.Getenv("PAGE_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPageSize, raw)
		}
		pageSize = n
	}

	cacheTTL := defaultCacheTTL
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCacheTTL, raw)
		}
		cacheTTL = d
	}

	return &Config{
		CatalogPath: envOr("CATALOG_PATH", defaultCatalogPath),
		BucketName:  strings.TrimSpace(os.Getenv("BUCKET_NAME")),
		Port:        envOr("PORT", defaultPort),
		PageSize:    pageSize,
		CacheTTL:    cacheTTL,
		ViewsDir:    envOr("VIEWS_DIR", defaultViewsDir),
		PublicDir:   envOr("PUBLIC_DIR", defaultPublicDir),
		LogLevel:    envOr("LOG_LEVEL", defaultLogLevel),
	}, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// SigningEnabled reports whether gs:// asset references should be signed.
func (c *Config) SigningEnabled() bool {
	return c.BucketName != ""
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Work URL: http://localhost:%s/work\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/api/projects\n", c.Port)
}
