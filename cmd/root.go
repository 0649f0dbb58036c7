package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/services"
)

// Configuration flags
var (
	catalogPath string
	bucketName  string
	portNumber  string
	pageSize    int
	logLevel    string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studio-portfolio",
		Short: "Studio Portfolio serves and manages a filterable project gallery",
		Long: `Studio Portfolio is a command line application that validates and inspects the
project catalog, a YAML file kept locally or in Google Cloud Storage, and serves it as a
filterable, paginated portfolio gallery.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Set the CATALOG_PATH, a file path or gs:// URL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "Set the PAGE_SIZE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListProjectsCmd())
	rootCmd.AddCommand(newShowProjectCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckAssetsCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if catalogPath != "" {
		os.Setenv("CATALOG_PATH", catalogPath)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if pageSize != 0 {
		os.Setenv("PAGE_SIZE", strconv.Itoa(pageSize))
	}

	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// setup loads configuration, builds the logger and initializes the shared service
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if err := services.InitService(cfg, logger); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
