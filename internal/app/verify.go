package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/output"
)

var (
	verifyDate string
	verifyDay  string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <number> [number...]",
	Short: "Check one weekday's last seven draws against the given numbers",
	Long: `Scan the last seven occurrences of one weekday and match every stored
field of those draws against the full number list. Unlike 'analyze' there
is no catalog lookup and no day-pair split: the numbers you pass are the
targets. Within one draw, the same (number, match type) is reported once.`,
	Example: `  # Last seven Tuesdays of the morning draw
  tiraj verify 10 27 72 --day mardi

  # Anchored on a fixed date, evening draw
  tiraj verify 10 90 --day vendredi --table soir --date 2024-01-09`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDate, "date", "", "reference date YYYY-MM-DD (default: today)")
	verifyCmd.Flags().StringVar(&verifyDay, "day", "", "target weekday, dimanche..samedi (required)")
	verifyCmd.MarkFlagRequired("day")

	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref, err := parseDateFlag(verifyDate)
	if err != nil {
		return err
	}
	day, err := draw.ParseWeekday(verifyDay)
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

	hits, err := engine.VerifyDay(analysis.VerifyRequest{
		ReferenceDate: ref,
		Numbers:       args,
		Table:         cfg.Table,
		Day:           day,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Last %d %ss, table %s:\n\n", analysis.VerifyWeeksBack, day.English(), cfg.Table)
	fmt.Print(output.RenderVerification(hits))
	return nil
}
