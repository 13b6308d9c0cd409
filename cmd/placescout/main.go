package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	configfile "github.com/custodia-labs/placescout-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/placescout-cli/internal/adapters/driven/export"
	historysqlite "github.com/custodia-labs/placescout-cli/internal/adapters/driven/history/sqlite"
	"github.com/custodia-labs/placescout-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/placescout-cli/internal/connectors/places"
	"github.com/custodia-labs/placescout-cli/internal/core/services"
	"github.com/custodia-labs/placescout-cli/internal/flatten"
	"github.com/custodia-labs/placescout-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	runStore, err := historysqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer runStore.Close()

	// Load .env before resolving the key. A missing key is not fatal
	// here; the search command re-checks before any network call so
	// version/history keep working without one.
	_ = godotenv.Load()
	apiKey, _ := places.APIKeyFromEnv()
	client := places.NewClient(apiKey)

	scrape := services.NewScrapeService(
		client,
		flatten.New(),
		export.NewFileExporter(),
		runStore,
	)

	cli.SetServices(scrape, runStore, configStore)

	if err := cli.Execute(); err != nil {
		logger.Debug("Exiting with error: %v", err)
		return err
	}
	return nil
}
