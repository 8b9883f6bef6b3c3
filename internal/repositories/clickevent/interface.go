package clickevent

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hidayahlabs/dhikrd/internal/repositories/clickevent Repository

import (
	"context"
)

// Repository defines the interface for the append-only click ledger.
// Accepted clicks are normally appended by the session store's increment
// unit; AppendClick exists for reconciliation tooling and tests.
type Repository interface {
	// AppendClick appends one accepted click to the ledger
	AppendClick(ctx context.Context, input *AppendClickInput) error

	// ListClicks retrieves all click events for a session in append order
	ListClicks(ctx context.Context, input *ListClicksInput) (*ListClicksOutput, error)

	// CountClicks returns the number of ledger entries for a session
	CountClicks(ctx context.Context, input *CountClicksInput) (*CountClicksOutput, error)

	// DeleteAllForSession removes a session's ledger as the first stage of
	// the deletion cascade
	DeleteAllForSession(ctx context.Context, input *DeleteAllForSessionInput) error
}
