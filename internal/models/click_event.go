package models

import (
	"time"
)

// ClickEvent is an append-only audit record of one accepted increment.
// Events are written only for accepted clicks and are never mutated;
// they are removed only by the session deletion cascade.
type ClickEvent struct {
	// ID is the unique identifier for the event
	ID string

	// SessionID is the session the click was counted toward
	SessionID string

	// UserID is the clicking user; empty for anonymous clicks
	UserID string

	// ClickedAt is when the click was accepted
	ClickedAt time.Time
}
