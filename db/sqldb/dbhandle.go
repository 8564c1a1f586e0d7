package sqldb

import "context"

type DBHandle interface {
	// Exec executes SQL statements like INSERT, UPDATE, DELETE.
	Exec(ctx context.Context, query string, args ...any) (Result, error)

	QueryRows(ctx context.Context, query string, args ...any) (Rows, error) // Eager. Fails upfront on statement execution
	QueryRow(ctx context.Context, query string, args ...any) Row            // Lazy. Only fails at Scan()

	Prepare(ctx context.Context, query string) (PreparedStmt, error)
}
