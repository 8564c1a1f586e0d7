package sqldb

import "context"

type Client interface {
	Init() error
	Close() error
	DBHandle() DBHandle
	BeginTx(ctx context.Context) (Tx, error)

	// PlaceholderPrefix reports the engine's bind-placeholder style,
	// fed to SelectQuery.SQL and ReplaceStaticPlaceholders.
	PlaceholderPrefix() byte
}
