package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "merchdash",
	Short: "Merchdash - merchandise shop analytics",
	Long: `Merchdash merges e-commerce event logs with product metadata and serves
an interactive analytics dashboard over the prepared dataset.

Use 'prepare' to join, clean and trim the raw exports into a single
flattened table, then 'serve' to expose the dashboard API over it.`,
}

// Execute runs the root command
func Execute() {
	// Optional .env for local overrides; config has defaults for everything.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
