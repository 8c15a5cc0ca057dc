package app

import (
	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagTable  string

	// RootCmd is the root command for tiraj
	RootCmd = &cobra.Command{
		Use:   "tiraj",
		Short: "Historical draw pattern analysis",
		Long: `tiraj checks 2-digit trigger numbers against the fixed pattern catalog
and scans the stored draw history for hits: strict matches and digit-reversal
matches, week by week, on the weekdays each pattern set is paired with.

Draw history lives in a local SQLite database (or a shared Postgres database
when TIRAJ_DATABASE_URL is set) and is loaded from CSV files.

Quick Start:
  1. tiraj import draws.csv --table matin
  2. tiraj analyze 24 45 --date 2024-01-09
  3. tiraj verify 10 27 --day mardi

Examples:
  # Which pattern sets contain 24?
  tiraj catalog 24

  # Six-week day-pair scan with the detailed log
  tiraj analyze 24 45 --detail

  # Seven-week single-day verification
  tiraj verify 10 27 72 --day vendredi --table soir

  # Keep importing CSVs dropped into a directory
  tiraj watch --dir ./incoming

  # Expose the engine to a UI
  tiraj serve --port 8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database path (default: ~/.tiraj/tiraj.db)")
	RootCmd.PersistentFlags().StringVar(&flagTable, "table", "", "draw table: matin, soir or loto (default: matin)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
