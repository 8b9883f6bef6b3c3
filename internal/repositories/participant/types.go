package participant

import "github.com/hidayahlabs/dhikrd/internal/models"

type AddParticipantInput struct {
	Participant *models.Participant
}

type AddParticipantOutput struct {
	// Participant is the stored row; the pre-existing one when AlreadyJoined
	Participant *models.Participant

	// AlreadyJoined is true when the user already had a membership row
	AlreadyJoined bool
}

type GetParticipantInput struct {
	ParticipantID string
}

type GetParticipantByUserInput struct {
	SessionID string
	UserID    string
}

type ListParticipantsInput struct {
	SessionID string
}

type ListParticipantsOutput struct {
	Participants []*models.Participant
}

type CountParticipantsInput struct {
	SessionID string
}

type CountParticipantsOutput struct {
	Count int
}

type RemoveParticipantInput struct {
	SessionID string
	UserID    string
}

type DeleteAllForSessionInput struct {
	SessionID string
}

type ClaimPrivateMembershipInput struct {
	UserID    string
	SessionID string
}

type ClaimPrivateMembershipOutput struct {
	// Claimed is true when the slot was free or already held for this session
	Claimed bool

	// HeldBySessionID is the conflicting session when Claimed is false
	HeldBySessionID string
}

type ReleasePrivateMembershipInput struct {
	UserID    string
	SessionID string
}
