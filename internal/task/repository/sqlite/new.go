package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"wellness-planner/internal/task/repository"
	"wellness-planner/pkg/log"
)

//go:embed migrations.sql
var migrationsFS embed.FS

type implRepository struct {
	db  *sql.DB
	loc *time.Location
	l   log.Logger
}

// New creates a SQLite-backed Repository and applies the schema. Dates read
// back are converted into loc.
func New(ctx context.Context, db *sql.DB, loc *time.Location, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}
	r := &implRepository{db: db, loc: loc, l: l}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *implRepository) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, string(b)); err != nil {
		return fmt.Errorf("%s: %w", r.dsn("migrate"), err)
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
