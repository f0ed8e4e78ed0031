package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Seeder loads fixture rows once the schema exists.
type Seeder interface {
	Seed(ctx context.Context) error
}

// MaybeRunDev executes the embedded migrations automatically when the app is running in
// dev mode and the feature flag is enabled, then seeds fixtures when AutoSeed is set.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client, seeders ...Seeder) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	dialect := Dialect(cfg.DB)
	meta := map[string]any{"env": cfg.App.Env, "dialect": dialect}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, dialect, "", "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "Goose migrations completed")

	if !cfg.FeatureFlags.AutoSeed || len(seeders) == 0 {
		return nil
	}
	for _, seeder := range seeders {
		if seeder == nil {
			continue
		}
		if err := seeder.Seed(ctx); err != nil {
			return fmt.Errorf("seeding fixtures: %w", err)
		}
	}
	logg.Info(ctx, "fixtures seeded")
	return nil
}
