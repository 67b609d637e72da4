package model

import "time"

// Role describes a permission tier for admin users.
// Stored as static reference data; route-level enforcement is intentionally
// not implemented — the role travels with the session claims only.
type Role struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Well-known role names seeded by migrations.
const (
	RoleAdmin    = "admin"    // full access
	RoleHomepage = "homepage" // homepage content only
	RoleShop     = "shop"     // shop products only
)
