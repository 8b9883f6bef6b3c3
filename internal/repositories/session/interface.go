package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hidayahlabs/dhikrd/internal/repositories/session Repository

import (
	"context"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session row; dependents must already be gone
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListActiveSessions retrieves all active sessions
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)

	// ListActiveAutoSessions retrieves all active automatic sessions
	ListActiveAutoSessions(ctx context.Context, input *ListActiveAutoSessionsInput) (*ListActiveAutoSessionsOutput, error)

	// IncrementClick applies one clamped counter increment and appends the
	// click event as a single atomic unit
	IncrementClick(ctx context.Context, input *IncrementClickInput) (*IncrementClickOutput, error)

	// CreateAutoSession creates an automatic session guarded by the
	// store-level single-active-auto-session invariant
	CreateAutoSession(ctx context.Context, input *CreateAutoSessionInput) (*CreateAutoSessionOutput, error)

	// ReleaseAutoSession clears the active-auto guard if it still points at
	// the given session
	ReleaseAutoSession(ctx context.Context, input *ReleaseAutoSessionInput) error

	// GetActiveAutoSessionID returns the ID the active-auto guard points at
	GetActiveAutoSessionID(ctx context.Context, input *GetActiveAutoSessionIDInput) (*GetActiveAutoSessionIDOutput, error)
}
