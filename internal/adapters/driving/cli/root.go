// Package cli implements the placescout command line interface.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/placescout-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/placescout-cli/internal/logger"
)

// version is set via -ldflags at release builds.
var version = "dev"

var verbose bool

// Services are wired by main (or by tests) before Execute.
var (
	scrapeService driving.ScrapeService
	runStore      driven.RunStore
	configStore   driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "placescout",
	Short: "Export Google Places Text Search results to CSV/JSON",
	Long: `Placescout runs Google Places API Text Search queries and exports the
results as flat CSV rows or raw JSON documents. Field selection is
driven by the API field mask, so the CSV columns follow what you ask
the API for.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env next to the binary is a convenience for the API key.
		_ = godotenv.Load()
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")
}

// SetServices injects the service implementations the commands use.
func SetServices(scrape driving.ScrapeService, runs driven.RunStore, config driven.ConfigStore) {
	scrapeService = scrape
	runStore = runs
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configString reads a config value, tolerating a missing store.
func configString(key string) string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}

// configInt reads an integer config value, tolerating a missing store.
func configInt(key string) int {
	if configStore == nil {
		return 0
	}
	return configStore.GetInt(key)
}

// defaultFields resolves the field mask default: config first, then the
// built-in mask.
func defaultFields() string {
	if v := configString(configfile.KeyDefaultFields); v != "" {
		return v
	}
	return configfile.DefaultFieldMask
}
