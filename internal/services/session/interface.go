package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hidayahlabs/dhikrd/internal/services/session Service

import "context"

// Service defines the session operations exposed to the UI layer, plus the
// automatic-session operations consumed by the rotation controller.
type Service interface {
	// CreateSession creates a new user session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a user to a session; joining twice is idempotent
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// LeaveSession removes a user's membership from a session
	LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error)

	// RecordClick applies one increment toward the session target. A click
	// on an inactive session is reported as not accepted, not as an error.
	// Callers must not auto-retry on timeout; the operation is not
	// idempotent.
	RecordClick(ctx context.Context, input *RecordClickInput) (*RecordClickOutput, error)

	// DeleteSession removes a session and all dependent rows; authorized
	// for the creator or an admin
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// ListActiveSessions returns all active sessions
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)

	// GetSession returns one session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetParticipants returns a session's participants
	GetParticipants(ctx context.Context, input *GetParticipantsInput) (*GetParticipantsOutput, error)

	// ListActiveAutoSessions returns the active automatic sessions; used by
	// the rotation controller
	ListActiveAutoSessions(ctx context.Context, input *ListActiveAutoSessionsInput) (*ListActiveAutoSessionsOutput, error)

	// CreateAutoSession creates an automatic session under the store-level
	// single-active guard; used by the rotation controller
	CreateAutoSession(ctx context.Context, input *CreateAutoSessionInput) (*CreateAutoSessionOutput, error)
}
