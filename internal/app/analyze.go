package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/export"
	"github.com/lakay-labs/tiraj/internal/match"
	"github.com/lakay-labs/tiraj/internal/output"
)

var (
	analyzeDate   string
	analyzeWeeks  int
	analyzeDetail bool
	analyzeXLSX   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <number> [number...]",
	Short: "Scan draw history for pattern-set hits on the given numbers",
	Long: `Map each trigger number to its pattern sets, then scan the last weeks of
draw history on each set's day-pair. A record field hits when it equals one
of the day's numbers (strict) or when its digit reversal does (reverse);
strict always wins when both apply.

Each week is reported even when nothing matched, so the detailed log shows
"checked, nothing found" explicitly. A week whose store query fails is
recorded the same way and the scan continues.

Numbers that are blank, non-numeric, out of range or absent from the
catalog contribute nothing and produce no error.`,
	Example: `  # Six-week scan against the morning draw
  tiraj analyze 24 45

  # Anchor the scan on a fixed date (reproducible)
  tiraj analyze 24 45 --date 2024-01-09

  # Show the full per-week trail and export it
  tiraj analyze 24 45 --detail --xlsx report.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "reference date YYYY-MM-DD (default: today)")
	analyzeCmd.Flags().IntVar(&analyzeWeeks, "weeks", 0, "weeks back to scan (default: 6)")
	analyzeCmd.Flags().BoolVarP(&analyzeDetail, "detail", "v", false, "show the per-week detailed log")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "write the detailed log to this .xlsx file")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref, err := parseDateFlag(analyzeDate)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	engine, err := newEngine(st)
	if err != nil {
		return err
	}

	weeks := analyzeWeeks
	if weeks == 0 {
		weeks = cfg.WeeksBack
	}

	report, err := engine.Analyze(analysis.Request{
		ReferenceDate: ref,
		Numbers:       args,
		Table:         cfg.Table,
		WeeksBack:     weeks,
	})
	if err != nil {
		return err
	}

	if len(report.Log) == 0 {
		fmt.Println("Nothing to analyze: no input mapped to a catalog set.")
		return nil
	}

	formatted := analysis.FormatFinalResults(report.Raw)
	fmt.Print(output.RenderResults(formatted))

	if pairs := match.FindMariagePairs(analysis.DistinctNumbers(report.Raw)); len(pairs) > 0 {
		fmt.Println()
		fmt.Print(output.RenderMariage(pairs))
	}

	if analyzeDetail {
		fmt.Println()
		fmt.Print(output.RenderLog(report.Log))
	}

	if analyzeXLSX != "" {
		if err := export.LogToXLSX(report.Log, analyzeXLSX); err != nil {
			return fmt.Errorf("xlsx export failed: %w", err)
		}
		fmt.Printf("\nDetailed log written to %s\n", analyzeXLSX)
	}

	return nil
}
