package commands

import (
	"github.com/spf13/cobra"

	"github.com/crumbwork/ladle/internal/api"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the recipe API server",
		Long: `Start the HTTP server exposing the recipe lookup endpoints:

  GET /              list recipes (default limit)
  GET /recipe/{id}   fetch a single recipe by id
  GET /search        keyword search with optional max_results
  GET /health        liveness check`,
		Example: `  # Serve the embedded recipe set from memory
  ladle serve

  # Serve from a SQLite database on a custom port
  ladle serve --store sqlite --database .ladle/recipes.db --port 9000

  # Reload the collection whenever the seed file changes
  ladle serve --seed-file recipes.json --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := GetLogger(ctx)

			st, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			server := api.NewServer(api.Config{
				Store:        st,
				Addr:         cfg.Addr,
				Port:         cfg.Port,
				DefaultLimit: cfg.DefaultLimit,
				SeedFile:     cfg.SeedFile,
				Watch:        cfg.Watch,
				Logger:       logger,
			})

			return server.Serve(ctx)
		},
	}
}
