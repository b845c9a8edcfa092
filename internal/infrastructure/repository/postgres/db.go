// Package postgres implements the domain repositories over Postgres using
// sqlx. Repositories are constructed over an Executor so the same code runs
// against a *sqlx.DB (autocommit per statement, the pipeline default) or a
// *sqlx.Tx (one transaction per source file).
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Executor is the slice of sqlx both *sqlx.DB and *sqlx.Tx satisfy.
type Executor interface {
	sqlx.ExtContext
}

// Connect opens and pings a Postgres connection.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return sqlx.ConnectContext(ctx, "postgres", dsn)
}
