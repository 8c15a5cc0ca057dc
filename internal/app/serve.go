package app

import (
	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the analysis engine over HTTP",
	Long: `Start an HTTP server for external UIs:

  POST /analyze          day-pair scan (same contract as 'tiraj analyze')
  POST /verify           single-day verification
  GET  /catalog/:number  reverse catalog lookup
  GET  /health           liveness check`,
	Example: `  tiraj serve
  tiraj serve --port 9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: 8080 or TIRAJ_PORT)")

	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
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

	return server.New(engine).Run(cfg.Port)
}
