package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent query runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if runStore == nil {
		return errors.New("history store not configured")
	}

	runs, err := runStore.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, runs)
	}
	return outputHistoryTable(cmd, runs)
}

func outputHistoryJSON(cmd *cobra.Command, runs []domain.Run) error {
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling runs: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, runs []domain.Run) error {
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, run := range runs {
		took := run.EndedAt.Sub(run.StartedAt).Round(100 * time.Millisecond)
		cmd.Printf("%s  %q  %d places, %d page(s), %s (%s)\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Query, run.Items, run.Pages, run.Format, took)
		if len(run.Outputs) > 0 {
			cmd.Printf("    -> %s\n", strings.Join(run.Outputs, ", "))
		}
	}
	return nil
}
