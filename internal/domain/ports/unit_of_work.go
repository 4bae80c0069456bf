package ports

import "context"

// UnitOfWork defines the interface for transaction management. Runtime
// procedures are single-statement and do not need it; the seed binary uses
// WithTransaction to load every catalog atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
