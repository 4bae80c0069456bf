package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// dbFromContext extracts a transaction handle from the context when one
// was opened by the UnitOfWork, otherwise falls back to the repository's
// own handle (which may be nil in degraded mode).
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// touch stamps a patch map so every update refreshes updatedAt even when
// GORM is updating through a column map.
func touch(patch map[string]any) map[string]any {
	patch["updatedAt"] = time.Now().UTC()
	return patch
}
