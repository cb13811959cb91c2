package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about stored aggregates, not validation
// failures:
//   - ErrNotFound: aggregate does not exist in the store
//   - ErrConflict: a store-level uniqueness rule was violated
//
// For validation errors (bad input, malformed ids), use pkg/domain-errors
// directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
