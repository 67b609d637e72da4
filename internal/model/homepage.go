package model

import "time"

// HomepageSection is a keyed content block rendered on the public homepage
// (hero copy, opening hours, featured banner, ...).
type HomepageSection struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateHomepageRequest is the payload for bulk updating homepage sections.
type UpdateHomepageRequest struct {
	Sections map[string]string `json:"sections" binding:"required"`
}
