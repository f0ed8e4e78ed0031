package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// nonPortable lists Postgres-only DDL; every migration has to run on SQLite as well.
var nonPortable = []string{"SERIAL", "JSONB", "TIMESTAMPTZ", "CREATE EXTENSION", "::", "GEN_RANDOM_UUID", "ILIKE"}

// ValidateDir checks migration names, goose annotations and portability. An empty dir
// validates the embedded migrations.
func ValidateDir(dir string) error {
	if dir == "" {
		sub, err := fs.Sub(Embedded, embeddedDir)
		if err != nil {
			return err
		}
		return ValidateFS(sub)
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}
	return ValidateFS(os.DirFS(dir))
}

// ValidateFS runs the ValidateDir checks against the root of fsys.
func ValidateFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	seen := map[string]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		if prev, ok := seen[m[1]]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name)
		}
		seen[m[1]] = name

		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read file %q: %w", name, err)
		}
		if err := validateSQL(name, string(b)); err != nil {
			return err
		}
	}
	return nil
}

func validateSQL(name, txt string) error {
	for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(txt, marker) {
			return fmt.Errorf("migration %q missing %q", name, marker)
		}
	}
	upper := strings.ToUpper(stripComments(txt))
	for _, token := range nonPortable {
		if strings.Contains(upper, token) {
			return fmt.Errorf("migration %q uses non-portable %q", name, token)
		}
	}
	return nil
}

func stripComments(txt string) string {
	lines := strings.Split(txt, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
