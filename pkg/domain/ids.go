// Package domain holds the typed identifiers shared across the catalog.
//
// IDs are opaque UUIDs: generated by the creating service, never by the
// store, compared only for equality. On the wire and in storage they are
// canonical lowercase-hyphenated UUID text.
package domain

import (
	"github.com/google/uuid"

	dErrors "pillbox/pkg/domain-errors"
)

// PillID identifies a pill aggregate.
type PillID uuid.UUID

// CourseID identifies a course aggregate.
type CourseID uuid.UUID

// NewPillID generates a fresh random pill id.
func NewPillID() PillID {
	return PillID(uuid.New())
}

// NewCourseID generates a fresh random course id.
func NewCourseID() CourseID {
	return CourseID(uuid.New())
}

// ParsePillID parses an id from its canonical text form. It rejects empty
// strings, malformed UUIDs, and the nil UUID.
func ParsePillID(s string) (PillID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return PillID{}, err
	}
	return PillID(u), nil
}

// ParseCourseID parses an id from its canonical text form. Same validation
// rules as ParsePillID.
func ParseCourseID(s string) (CourseID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return CourseID{}, err
	}
	return CourseID(u), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return u, nil
}

func (id PillID) String() string { return uuid.UUID(id).String() }

func (id CourseID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is the zero value (never assigned).
func (id PillID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// IsZero reports whether the id is the zero value (never assigned).
func (id CourseID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the canonical lowercase-hyphenated form.
func (id PillID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical form, applying the same validation as
// ParsePillID.
func (id *PillID) UnmarshalText(b []byte) error {
	parsed, err := ParsePillID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText renders the canonical lowercase-hyphenated form.
func (id CourseID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical form, applying the same validation as
// ParseCourseID.
func (id *CourseID) UnmarshalText(b []byte) error {
	parsed, err := ParseCourseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
