package session

import "github.com/hidayahlabs/dhikrd/internal/models"

type CreateSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListActiveSessionsInput struct {
}

type ListActiveSessionsOutput struct {
	Sessions []*models.Session
}

type ListActiveAutoSessionsInput struct {
}

type ListActiveAutoSessionsOutput struct {
	Sessions []*models.Session
}

// IncrementClickInput carries one click to be applied
type IncrementClickInput struct {
	SessionID string

	// UserID is recorded on the click event; may be empty for anonymous clicks
	UserID string

	// ParticipantID, when set, has its click counter bumped in the same
	// atomic unit as the session counter
	ParticipantID string
}

// IncrementClickOutput reports the outcome of one click
type IncrementClickOutput struct {
	// Accepted is false when the session was inactive; no state changed
	Accepted bool

	// Completed is true only for the click that reached the target
	Completed bool

	// NewCount is the session count after the click
	NewCount int
}

type CreateAutoSessionInput struct {
	Session *models.Session
}

// CreateAutoSessionOutput reports which session holds the auto slot. When
// another client won the creation race, Created is false and SessionID is
// the winner's.
type CreateAutoSessionOutput struct {
	Created   bool
	SessionID string
}

type ReleaseAutoSessionInput struct {
	SessionID string
}

type GetActiveAutoSessionIDInput struct {
}

type GetActiveAutoSessionIDOutput struct {
	// SessionID is empty when no automatic session is active
	SessionID string
}
