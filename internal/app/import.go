package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Load draw records from a CSV file",
	Long: `Load historical draw records into the configured table. The expected CSV
layout is one draw per line: date,f1,...,fN with date as YYYY-MM-DD and N
fields for the table's family (7 for matin/soir, 10 for loto). Blank fields
are stored as nulls; malformed lines are skipped and counted.

Creates the database schema on first use.`,
	Example: `  tiraj import draws.csv
  tiraj import loto-2024.csv --table loto`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return err
	}

	res, err := importer.ImportFile(st, cfg.Table, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d record(s) into %s", res.Imported, cfg.Table)
	if res.Skipped > 0 {
		fmt.Printf(" (%d line(s) skipped)", res.Skipped)
	}
	fmt.Println()
	return nil
}
