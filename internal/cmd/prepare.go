package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"merchdash/internal/config"
	"merchdash/internal/logging"
	"merchdash/internal/pipeline"
)

var (
	prepareEvents  string
	prepareCatalog string
	prepareOutput  string
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Join, clean and trim the raw exports into the dashboard dataset",
	Long: `Prepare reads the raw events and product catalog exports, inner-joins
them on item id, fills missing countries with the UNK sentinel, derives the
calendar day of each event, and trims the dataset to the span after the
last day with zero add-to-cart activity.

Any data-integrity problem (duplicate catalog ids, a dataset with no
add-to-cart events at all) aborts the run before the output is replaced.`,
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)

	prepareCmd.Flags().StringVar(&prepareEvents, "events", "", "Events CSV path (overrides config)")
	prepareCmd.Flags().StringVar(&prepareCatalog, "catalog", "", "Catalog CSV path (overrides config)")
	prepareCmd.Flags().StringVar(&prepareOutput, "output", "", "Output CSV path (overrides config)")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.New(cfg.Log.Level)

	events := cfg.Data.Events
	if prepareEvents != "" {
		events = prepareEvents
	}
	catalog := cfg.Data.Catalog
	if prepareCatalog != "" {
		catalog = prepareCatalog
	}
	output := cfg.Data.Output
	if prepareOutput != "" {
		output = prepareOutput
	}

	log.Info().
		Str("events", events).
		Str("catalog", catalog).
		Str("output", output).
		Msg("starting preparation run")

	stats, err := pipeline.New(log).Run(events, catalog, output)
	if err != nil {
		return fmt.Errorf("preparation failed: %w", err)
	}

	log.Info().
		Int("events_read", stats.EventsRead).
		Int("rows_written", stats.RowsWritten).
		Msg("preparation complete")
	return nil
}
