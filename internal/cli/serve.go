package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tradecoach/internal/server"
)

func addServeCommands(rootCmd *cobra.Command, app *App) {
	var addr, mode string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scenario and coaching API over HTTP",
		Long: `Starts the JSON API:

  GET  /healthz
  GET  /api/catalog/traders[/:id]
  GET  /api/catalog/strategies
  GET  /api/catalog/scenarios[/:id]
  POST /api/scenarios/random
  POST /api/scenarios/custom
  POST /api/coaching/assess
  POST /api/simulations`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Server.Addr
			}
			if mode == "" {
				mode = app.Config.Server.Mode
			}
			srv, err := server.New(server.Config{
				Addr:      addr,
				Mode:      mode,
				Catalog:   app.Catalog,
				Generator: app.generatorOptions(0),
				Logger:    app.Logger,
				RateLimit: app.Config.Server.RateLimit,
				Burst:     app.Config.Server.Burst,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.output(cmd).Info("Listening on %s (Ctrl+C to stop)", srv.Addr())
			return srv.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&mode, "mode", "", "gin mode: debug, release, test (default from config)")
	rootCmd.AddCommand(cmd)
}
