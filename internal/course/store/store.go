// Package store persists course aggregates behind one contract with two
// implementations: a mutex-guarded in-memory map and a MongoDB-backed store.
// The shared suite in suite_test.go keeps both observably equivalent.
package store

import (
	"context"

	"pillbox/internal/course/models"
	id "pillbox/pkg/domain"
)

// Store is the course repository contract.
//
// Absence from a point lookup is reported as sentinel.ErrNotFound; any other
// error is an infrastructure failure. Each operation is individually atomic;
// nothing spans two calls, so check-then-save flows in the service layer are
// not isolated (documented in DESIGN.md).
type Store interface {
	// Save is an idempotent upsert keyed by the course id: it inserts when
	// absent and fully replaces the aggregate when present.
	Save(ctx context.Context, course *models.Course) error
	// FindByID returns the course or sentinel.ErrNotFound.
	FindByID(ctx context.Context, courseID id.CourseID) (*models.Course, error)
	// FindAll returns a full snapshot. Order is unspecified and stable only
	// within one implementation.
	FindAll(ctx context.Context) ([]*models.Course, error)
	// FindByTitle is an exact-match lookup, used solely for the
	// creation-time uniqueness check. Returns sentinel.ErrNotFound when no
	// course carries the title.
	FindByTitle(ctx context.Context, title string) (*models.Course, error)
}
