package store

import (
	"context"
	"database/sql"
)

// DBTX is the database surface the stores depend on. Every store query goes
// through RETURNING-style reads, so row queries are the whole contract.
// Both *sql.DB and *sql.Tx satisfy it, which lets a store run standalone or
// inside a caller-managed transaction.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
