package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/credlens/credlens/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the credlens HTTP API",
	Long: `Serve starts the JSON/HTTP API:

  GET  /api/health         liveness check
  POST /api/analyze        analyze one URL
  POST /api/batch-analyze  analyze up to 10 URLs sequentially

CORS origins come from the config allow-list plus the ALLOWED_ORIGINS
environment variable (comma-separated).

Example:
  credlens serve
  credlens serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{})

	analyzer := pipeline.NewAnalyzer(cfg, log)
	return server.New(cfg, analyzer, log).Run()
}
