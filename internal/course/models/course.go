package models

import (
	id "pillbox/pkg/domain"
	dErrors "pillbox/pkg/domain-errors"
	pstrings "pillbox/pkg/platform/strings"
)

// Difficulty is the coarse effort rating of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// ParseDifficulty validates one of the four difficulty labels.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return Difficulty(s), nil
	default:
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown difficulty %q", s)
	}
}

// Course is the aggregate root for a learning path. It references pills by
// id only; a referenced pill is not guaranteed to exist at read time because
// pills live in an independent store with no relational enforcement.
//
// Invariants:
//   - Title is unique across the catalog at creation time (checked by the
//     service, not enforced by the store)
//   - PillIDs contains no duplicates and preserves insertion order
//   - Tags likewise dedupe on insert, order preserved
type Course struct {
	ID          id.CourseID `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Instructor  string      `json:"instructor"`
	Difficulty  Difficulty  `json:"difficulty"`
	Hours       int         `json:"hours"`
	Tags        []string    `json:"tags"`
	Price       float64     `json:"price"`
	PillIDs     []id.PillID `json:"pill_ids"`
}

// NewCourse constructs a course with an assigned id and the supplied initial
// pill references. Tags are trimmed and deduped; pill ids are deduped
// preserving order.
func NewCourse(
	courseID id.CourseID,
	title, description, instructor string,
	difficulty Difficulty,
	hours int,
	tags []string,
	price float64,
	pillIDs []id.PillID,
) *Course {
	c := &Course{
		ID:          courseID,
		Title:       title,
		Description: description,
		Instructor:  instructor,
		Difficulty:  difficulty,
		Hours:       hours,
		Tags:        pstrings.DedupeAndTrim(tags),
		Price:       price,
		PillIDs:     make([]id.PillID, 0, len(pillIDs)),
	}
	for _, pid := range pillIDs {
		c.AddPill(pid)
	}
	return c
}

// AddPill appends a pill reference if it is not already present. Adding a
// pill twice is a no-op, not an error.
func (c *Course) AddPill(pillID id.PillID) {
	if c.HasPill(pillID) {
		return
	}
	c.PillIDs = append(c.PillIDs, pillID)
}

// HasPill reports whether the course already references the pill.
func (c *Course) HasPill(pillID id.PillID) bool {
	for _, existing := range c.PillIDs {
		if existing == pillID {
			return true
		}
	}
	return false
}

// PillCount returns the number of referenced pills.
func (c *Course) PillCount() int {
	return len(c.PillIDs)
}

// AddTag appends a tag if absent, preserving insertion order.
func (c *Course) AddTag(tag string) {
	for _, existing := range c.Tags {
		if existing == tag {
			return
		}
	}
	c.Tags = append(c.Tags, tag)
}

// HasTag reports whether the course carries the tag.
func (c *Course) HasTag(tag string) bool {
	for _, existing := range c.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// RemoveTag drops a tag, keeping the order of the rest.
func (c *Course) RemoveTag(tag string) {
	kept := c.Tags[:0]
	for _, existing := range c.Tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	c.Tags = kept
}
