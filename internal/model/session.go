package model

import "time"

// Session is a sign-in record. The ID is the JWT's jti, so a row exists for
// every live token. Rows are only ever bulk-deleted by the maintenance
// sweep once Expires has passed.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Expires   time.Time `json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}
