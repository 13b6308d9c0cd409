package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/placescout-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/placescout-cli/internal/connectors/places"
	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driving"
)

// maxPageBound caps --max-pages; the API serves at most three pages of
// twenty places per text query.
const maxPageBound = 3

var (
	searchQueries  []string
	searchFields   string
	searchMaxPages int
	searchLanguage string
	searchRegion   string
	searchOutDir   string
	searchFormat   string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run text-search queries and export the results",
	Long: `Runs one or more Places Text Search queries and writes each query's
results to timestamped files in the output directory. Queries run
sequentially; a failing query stops the batch.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchQueries, "query", "q", nil,
		"text query to run (repeatable)")
	searchCmd.Flags().StringVar(&searchFields, "fields", "",
		"comma-separated field mask (default from config or built-in)")
	searchCmd.Flags().IntVar(&searchMaxPages, "max-pages", maxPageBound,
		"pages to fetch per query (1-3)")
	searchCmd.Flags().StringVar(&searchLanguage, "language-code", "",
		"preferred result language, e.g. \"es\"")
	searchCmd.Flags().StringVar(&searchRegion, "region-code", "",
		"region bias, e.g. \"AR\"")
	searchCmd.Flags().StringVar(&searchOutDir, "out-dir", "",
		"output directory (default from config or \"data\")")
	searchCmd.Flags().StringVar(&searchFormat, "format", "csv",
		"output format: csv, json or both")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if scrapeService == nil {
		return errors.New("scrape service not configured")
	}
	if len(searchQueries) == 0 {
		return fmt.Errorf("%w: at least one --query is required", domain.ErrInvalidInput)
	}

	opts, err := resolveSearchOptions(cmd)
	if err != nil {
		return err
	}

	// Fail before any network call if no key is available.
	if _, err := places.APIKeyFromEnv(); err != nil {
		return err
	}

	runs, err := scrapeService.RunAll(cmd.Context(), searchQueries, opts)
	for _, run := range runs {
		for _, out := range run.Outputs {
			cmd.Printf("[OK] %q: %d places -> %s\n", run.Query, run.Items, out)
		}
	}
	if err != nil {
		return err
	}

	total := 0
	for _, run := range runs {
		total += run.Items
	}
	cmd.Printf("Done: %d query(ies), %d places total\n", len(runs), total)
	return nil
}

// resolveSearchOptions merges flags with config-file defaults. Flags
// win; config fills in what the user left untouched.
func resolveSearchOptions(cmd *cobra.Command) (driving.ScrapeOptions, error) {
	var opts driving.ScrapeOptions

	opts.Fields = searchFields
	if opts.Fields == "" {
		opts.Fields = defaultFields()
	}

	opts.MaxPages = searchMaxPages
	if !cmd.Flags().Changed("max-pages") {
		if v := configInt(configfile.KeyDefaultMaxPages); v != 0 {
			opts.MaxPages = v
		}
	}
	if opts.MaxPages < 1 || opts.MaxPages > maxPageBound {
		return opts, fmt.Errorf("%w: --max-pages must be between 1 and %d",
			domain.ErrInvalidInput, maxPageBound)
	}

	format := searchFormat
	if !cmd.Flags().Changed("format") {
		if v := configString(configfile.KeyDefaultFormat); v != "" {
			format = v
		}
	}
	parsed, err := domain.ParseOutputFormat(format)
	if err != nil {
		return opts, err
	}
	opts.Format = parsed

	opts.OutDir = searchOutDir
	if opts.OutDir == "" {
		opts.OutDir = configString(configfile.KeyDefaultOutDir)
	}
	if opts.OutDir == "" {
		opts.OutDir = "data"
	}

	opts.LanguageCode = searchLanguage
	if opts.LanguageCode == "" {
		opts.LanguageCode = configString(configfile.KeyLanguageCode)
	}
	opts.RegionCode = searchRegion
	if opts.RegionCode == "" {
		opts.RegionCode = configString(configfile.KeyRegionCode)
	}

	return opts, nil
}
