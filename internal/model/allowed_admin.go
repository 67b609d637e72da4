package model

import "time"

// AllowedAdmin is an allow-list entry mapping an email to its role.
// Entries are created by the seed process and are never mutated by
// request-serving code.
type AllowedAdmin struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}
