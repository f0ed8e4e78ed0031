package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/storefront-backend/pkg/config"
)

const DefaultDir = "pkg/migrate/migrations"

// embeddedDir is the path of the SQL files inside Embedded.
const embeddedDir = "migrations"

// Embedded ships the SQL migrations inside the binary.
//
//go:embed migrations/*.sql
var Embedded embed.FS

// goose keeps dialect and base FS as package globals.
var gooseMu sync.Mutex

// Dialect maps the configured database driver onto a goose dialect name.
func Dialect(cfg config.DBConfig) string {
	if cfg.IsSQLite() {
		return "sqlite3"
	}
	return "postgres"
}

// Run executes a standard goose command that requires a DB connection. An empty
// dir runs the embedded migrations.
func Run(ctx context.Context, db *sql.DB, dialect string, dir string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if command == "" {
		return fmt.Errorf("command is required")
	}

	return withGoose(dialect, dir, func(resolved string) error {
		// RunContext prints status output to stdout (goose internal)
		if err := goose.RunContext(ctx, command, db, resolved, args...); err != nil {
			return fmt.Errorf("goose %s: %w", command, err)
		}
		return nil
	})
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, dialect string, dir string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	return withGoose(dialect, dir, func(resolved string) error {
		current, err := goose.GetDBVersion(db)
		if err != nil {
			return fmt.Errorf("get db version: %w", err)
		}

		switch {
		case current == target:
			return nil

		case current < target:
			if err := goose.UpToContext(ctx, db, resolved, target); err != nil {
				return fmt.Errorf("goose up-to %d: %w", target, err)
			}
			return nil

		default:
			if err := goose.DownToContext(ctx, db, resolved, target); err != nil {
				return fmt.Errorf("goose down-to %d: %w", target, err)
			}
			return nil
		}
	})
}

// Versions lists the migration versions bundled in the binary, oldest first.
func Versions() ([]int64, error) {
	entries, err := fs.ReadDir(Embedded, embeddedDir)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		m := sqlFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func withGoose(dialect, dir string, fn func(resolved string) error) error {
	if dialect == "" {
		return fmt.Errorf("dialect is required")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	resolved := dir
	if dir == "" {
		goose.SetBaseFS(Embedded)
		defer goose.SetBaseFS(nil)
		resolved = embeddedDir
	}
	return fn(resolved)
}
