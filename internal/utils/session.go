package utils

import "time"

// SessionData is the admin session shape handed from the store to the
// middleware.
type SessionData struct {
	AdminID   string
	ExpiresAt time.Time
}
