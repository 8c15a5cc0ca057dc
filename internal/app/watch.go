package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/watcher"
)

var watchDir string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Import draw CSVs as they are dropped into a directory",
	Long: `Watch a drop directory and import every *.csv that appears into the
configured table. Files already present are imported on startup; processed
files are moved to a processed/ subdirectory. Runs until interrupted.`,
	Example: `  tiraj watch
  tiraj watch --dir ./incoming --table soir`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", "", "drop directory (default: ~/.tiraj/incoming)")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchDir != "" {
		cfg.WatchDir = watchDir
	}
	if err := os.MkdirAll(cfg.WatchDir, 0755); err != nil {
		return fmt.Errorf("failed to create watch directory: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return err
	}

	w, err := watcher.New(cfg.WatchDir, cfg.Table, st)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("Watching %s for draw CSVs (table %s). Ctrl-C to stop.\n", cfg.WatchDir, cfg.Table)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	return w.Stop()
}
