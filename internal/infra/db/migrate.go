package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	return applyAll(ctx, "migrations/postgres", func(ctx context.Context, stmt string) error {
		_, err := pool.Exec(ctx, stmt)
		return err
	})
}

func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return applyAll(ctx, "migrations/sqlite", func(ctx context.Context, stmt string) error {
		_, err := db.ExecContext(ctx, stmt)
		return err
	})
}

// applyAll runs every file of dir in lexical order. Files are written to be
// idempotent, so no version table is kept.
func applyAll(ctx context.Context, dir string, exec func(context.Context, string) error) error {
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, dir+"/"+e.Name())
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", e.Name(), err)
		}
		if err := exec(ctx, string(body)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", e.Name(), err)
		}
		slog.Debug("migration applied", "file", e.Name())
	}
	return nil
}
