package domain

import "time"

// Session binds an opaque bearer token to a user identity (in-memory only).
// A token maps to exactly one user and is never reassigned; the session
// lives until an explicit logout.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
