package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crumbwork/ladle/internal/config"
	"github.com/crumbwork/ladle/internal/store"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load recipes into the backing database",
		Long: `Apply pending migrations and insert the seed recipes into the configured
sqlite or postgres store. Records that are already present are left
untouched, so re-running seed is safe.`,
		Example: `  # Seed the default SQLite database with the embedded recipes
  ladle seed --store sqlite

  # Seed postgres from a custom seed file
  ladle seed --store postgres --dsn "$DATABASE_URL" --seed-file recipes.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := GetLogger(ctx)

			if cfg.StoreType == config.StoreMemory {
				return fmt.Errorf("the memory store is seeded at startup; seed applies to sqlite or postgres")
			}

			recipes, err := loadSeedRecipes(cfg)
			if err != nil {
				return err
			}

			st, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			seeder, ok := st.(store.Seeder)
			if !ok {
				return fmt.Errorf("store %q does not support seeding", cfg.StoreType)
			}

			inserted, err := seeder.Seed(ctx, recipes)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d recipes (%d already present)\n",
				inserted, len(recipes)-inserted)
			return nil
		},
	}
}
