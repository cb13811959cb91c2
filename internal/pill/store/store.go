// Package store persists pill aggregates. Two implementations exist behind
// the same contract: a mutex-guarded in-memory map and a MongoDB-backed
// store. Both must be observably equivalent; the shared suite in
// suite_test.go runs against each.
package store

import (
	"context"

	"pillbox/internal/pill/models"
	id "pillbox/pkg/domain"
)

// Store is the pill repository contract.
//
// Absence from a point lookup is reported as sentinel.ErrNotFound; any other
// error is an infrastructure failure. Every single operation is atomic and
// safe under concurrent invocation, but no guarantee spans two calls.
type Store interface {
	// Save is an idempotent upsert keyed by the pill id: it inserts when
	// absent and fully replaces when present.
	Save(ctx context.Context, pill *models.Pill) error
	// FindByID returns the pill or sentinel.ErrNotFound.
	FindByID(ctx context.Context, pillID id.PillID) (*models.Pill, error)
	// FindAll returns a full snapshot. Order is unspecified and stable only
	// within one implementation.
	FindAll(ctx context.Context) ([]*models.Pill, error)
}
