package repository

import "context"

// UnitOfWork persists the pending changes of the scope carried in ctx.
// This allows the use case layer to commit changes without depending on a specific DB driver like GORM.
type UnitOfWork interface {
	// SaveChanges flushes pending additions and modifications of tracked
	// entities atomically and returns the number of affected records.
	// Changes are discarded from the scope only when the flush succeeds.
	SaveChanges(ctx context.Context) (int, error)
}

// ScopeFactory opens unit-of-work scopes. Delivery code opens one per request.
type ScopeFactory interface {
	// NewScope returns a child context carrying a fresh, empty scope.
	NewScope(ctx context.Context) context.Context
}
