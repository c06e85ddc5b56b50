package db

import (
	"context"
	"embed"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema creates the users and exercises tables if they do not exist.
// Every statement is IF NOT EXISTS, so it is safe to call repeatedly or
// concurrently with itself.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := schemaFS.ReadDir("schema")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".sql") {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		b, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(b)); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops both tables (exercises first via cascade) and recreates them.
func Reset(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS exercises, users CASCADE`); err != nil {
		return err
	}
	return EnsureSchema(ctx, pool)
}
