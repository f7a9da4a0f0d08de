package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/stagehype-backend/migrations"
)

// NewMigrator returns a goose provider over the embedded migrations, backed by
// a database/sql handle borrowed from the pool. The caller must close the
// returned *sql.DB handle via the provider's Close.
func NewMigrator(pool *pgxpool.Pool) (*goose.Provider, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	provider, err := NewMigrator(pool)
	if err != nil {
		return err
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// ErrMigrationsPending is reported by SchemaCheck when the database is behind
// the embedded migrations.
var ErrMigrationsPending = errors.New("migrations pending")

// SchemaCheck returns a health check that fails while embedded migrations
// are not yet applied.
func SchemaCheck(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		provider, err := NewMigrator(pool)
		if err != nil {
			return err
		}
		defer provider.Close()

		pending, err := provider.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("goose has pending: %w", err)
		}
		if pending {
			return ErrMigrationsPending
		}
		return nil
	}
}
