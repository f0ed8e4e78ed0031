// Command migrate manages the storefront schema with goose and loads the fixture catalog.
//
//	migrate -cmd=up|down|status
//	migrate -cmd=version -version=20240101000000
//	migrate -cmd=create -name=add_reviews
//	migrate -cmd=validate [-dir=pkg/migrate/migrations]
//	migrate -cmd=seed
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/migrate"
	"github.com/angelmondragon/storefront-backend/pkg/navigation"
)

type options struct {
	cmd     string
	dir     string
	name    string
	version string
}

func main() {
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: up|down|status|version|create|validate|seed")
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	flag.StringVar(&opts.name, "name", "", "migration name (for create)")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "migrate"}).Error(context.Background(), "config.load_failed", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"cmd":     opts.cmd,
		"dir":     opts.dir,
		"dialect": migrate.Dialect(cfg.DB),
	})

	if err := run(ctx, cfg, logg, opts); err != nil {
		logg.Error(ctx, "migrate.failed", err)
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", opts.cmd, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, opts options) error {
	// create and validate only touch files
	switch opts.cmd {
	case "create":
		if opts.name == "" {
			return errors.New("missing -name")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
		if err != nil {
			return err
		}
		fmt.Println("created migration:", path)
		return nil
	case "validate":
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return err
		}
		fmt.Println("migration validation passed")
		return nil
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	logg.Info(ctx, "migrate.ready")

	switch opts.cmd {
	case "up", "down", "status":
		return migrate.Run(ctx, sqlDB, migrate.Dialect(cfg.DB), opts.dir, opts.cmd)
	case "version":
		return migrateTo(ctx, sqlDB, cfg, opts)
	case "seed":
		if err := seedFixtures(ctx, cfg, logg, dbClient); err != nil {
			return err
		}
		fmt.Println("fixtures seeded")
		return nil
	default:
		return fmt.Errorf("unknown -cmd value %q", opts.cmd)
	}
}

func migrateTo(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, opts options) error {
	if opts.version == "" {
		return errors.New("missing -version")
	}
	return migrate.MigrateToVersion(ctx, sqlDB, migrate.Dialect(cfg.DB), opts.dir, opts.version)
}

// seedFixtures loads the catalog and coupon fixtures into an already migrated database.
func seedFixtures(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client) error {
	nav, err := navigation.NewPathNavigator(cfg.App.BaseURL)
	if err != nil {
		return err
	}
	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo:      catalog.NewRepository(dbClient.DB()),
		TxRunner:  dbClient,
		Navigator: nav,
	})
	if err != nil {
		return err
	}
	if err := catalogService.Seed(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Repo:      cart.NewRepository(dbClient.DB()),
		TxRunner:  dbClient,
		Products:  catalogService,
		Wishlist:  wishlist.NewRepository(dbClient.DB()),
		Navigator: nav,
		Logger:    logg,
	})
	if err != nil {
		return err
	}
	if err := cartService.Seed(ctx); err != nil {
		return fmt.Errorf("seed coupons: %w", err)
	}
	return nil
}
