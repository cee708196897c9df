package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"merchdash/internal/config"
	"merchdash/internal/dataset"
	"merchdash/internal/logging"
	"merchdash/internal/server"
)

var (
	serveAddr string
	serveData string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Serve loads the prepared dataset once, derives the continent of every
row, and exposes the dashboard API:
- filter metadata (continents, devices, date range)
- KPI summary (total revenue, average order value, unique users)
- the five chart aggregates

Filters bind from query parameters on every data route.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Prepared dataset path (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.New(cfg.Log.Level)

	path := cfg.Data.Output
	if serveData != "" {
		path = serveData
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	store := dataset.NewStore(path)
	rows, err := store.Rows()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Info().Int("rows", len(rows)).Str("path", path).Msg("dataset loaded")

	srv := server.NewServer(store, cfg.Dashboard, log)

	log.Info().Str("addr", addr).Msg("starting dashboard server")
	if err := srv.Start(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
