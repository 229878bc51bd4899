package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"streetcast/internal/core/port"
)

// Repository implements port.SignageRepository using pgxpool for PostgreSQL.
// Each method is a single statement; no transaction spans methods.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ port.SignageRepository = (*Repository)(nil)

// queryOne runs a single-row query and reports absence as found == false.
func queryOne(ctx context.Context, pool *pgxpool.Pool, query string, args []any, dest ...any) (bool, error) {
	err := pool.QueryRow(ctx, query, args...).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
