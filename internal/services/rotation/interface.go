package rotation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hidayahlabs/dhikrd/internal/services/rotation Service

import "context"

// Service keeps exactly one automatic session alive, matching the current
// prayer period
type Service interface {
	// EnsureAutoSession converges the store on one automatic session for
	// the current period and returns its ID. Invoked on app foreground and
	// on the periodic tick; safe to retry.
	EnsureAutoSession(ctx context.Context, input *EnsureAutoSessionInput) (*EnsureAutoSessionOutput, error)

	// Run invokes EnsureAutoSession on a periodic tick until the context is
	// canceled. Failures are logged and swallowed; the next tick self-heals.
	Run(ctx context.Context)
}
