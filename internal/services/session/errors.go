package session

import "errors"

// Define errors
var (
	// ErrInvalidInput is returned when a request is missing required fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionNotFound is returned when the session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrForbidden is returned on an authorization failure
	ErrForbidden = errors.New("operation not permitted")

	// ErrExclusivityViolation is returned when joining a second private
	// session while already a private-session member
	ErrExclusivityViolation = errors.New("already a member of another private session")

	// ErrNotParticipant is returned when leaving a session without a
	// membership row
	ErrNotParticipant = errors.New("not a participant of this session")

	// ErrSessionClosed is returned when joining a session that is inactive
	// or no longer accepting joins
	ErrSessionClosed = errors.New("session is closed")

	// ErrSessionFull is returned when a session is at maximum capacity
	ErrSessionFull = errors.New("session is at maximum capacity")

	// ErrConflict is returned when a concurrent modification could not be
	// reconciled
	ErrConflict = errors.New("concurrent modification could not be reconciled")
)
