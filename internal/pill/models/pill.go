package models

import (
	id "pillbox/pkg/domain"
)

// Pill is a standalone content unit. It is immutable after creation: the
// catalog exposes no update operation, only creation and reads.
type Pill struct {
	ID      id.PillID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// NewPill constructs a pill with an assigned id. Titles are not unique; two
// pills may share one.
func NewPill(pillID id.PillID, title, content string) *Pill {
	return &Pill{
		ID:      pillID,
		Title:   title,
		Content: content,
	}
}
