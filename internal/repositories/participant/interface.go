package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hidayahlabs/dhikrd/internal/repositories/participant Repository

import (
	"context"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// AddParticipant persists a membership. Adding an identified user who
	// already belongs to the session reports AlreadyJoined and returns the
	// existing row instead of duplicating it.
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantByUser retrieves a user's membership in a session
	GetParticipantByUser(ctx context.Context, input *GetParticipantByUserInput) (*models.Participant, error)

	// ListParticipants retrieves all participants of a session
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// CountParticipants returns the number of participants in a session
	CountParticipants(ctx context.Context, input *CountParticipantsInput) (*CountParticipantsOutput, error)

	// RemoveParticipant removes a user's membership from a session
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error

	// DeleteAllForSession removes every membership of a session as part of
	// the deletion cascade
	DeleteAllForSession(ctx context.Context, input *DeleteAllForSessionInput) error

	// ClaimPrivateMembership reserves the user's single private-session
	// slot; the claim is store-enforced so concurrent joins cannot both win
	ClaimPrivateMembership(ctx context.Context, input *ClaimPrivateMembershipInput) (*ClaimPrivateMembershipOutput, error)

	// ReleasePrivateMembership frees the slot if it is held for the session
	ReleasePrivateMembership(ctx context.Context, input *ReleasePrivateMembershipInput) error
}
