package models

import (
	"time"
)

// Participant represents one identity's membership in a session
type Participant struct {
	// ID is a unique identifier for this membership
	ID string

	// SessionID is the ID of the session the participant joined
	SessionID string

	// UserID is the ID of the user; empty for anonymous participants
	UserID string

	// JoinedAt is when the participant joined the session
	JoinedAt time.Time

	// ClickCount is this participant's contribution to the session count
	ClickCount int
}

// Anonymous reports whether the participant joined without an identity.
func (p *Participant) Anonymous() bool {
	return p.UserID == ""
}
