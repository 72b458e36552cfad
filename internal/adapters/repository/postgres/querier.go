package postgres

import (
	"context"
	"database/sql"
)

// SQLQuerier abstracts *sql.DB and *sql.Tx so repositories run inside or
// outside a transaction unchanged
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
