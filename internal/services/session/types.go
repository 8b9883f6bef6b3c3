package session

import (
	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/common/random"
	"github.com/hidayahlabs/dhikrd/internal/common/uuid"
	"github.com/hidayahlabs/dhikrd/internal/livefeed"
	"github.com/hidayahlabs/dhikrd/internal/models"
	clickEventRepo "github.com/hidayahlabs/dhikrd/internal/repositories/clickevent"
	participantRepo "github.com/hidayahlabs/dhikrd/internal/repositories/participant"
	sessionRepo "github.com/hidayahlabs/dhikrd/internal/repositories/session"
	"github.com/sirupsen/logrus"
)

// Default bounds for the random target assigned when a manual session omits
// its target count
const (
	defaultTargetMin = 100
	defaultTargetMax = 999
)

// Config holds configuration for the session service
type Config struct {
	// Default cap on participants when a session does not set one
	DefaultMaxParticipants int

	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	ParticipantRepo participantRepo.Repository
	ClickEventRepo  clickEventRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        random.Source

	// Feed receives counter updates for accepted clicks; optional
	Feed livefeed.Publisher

	// Logger defaults to the standard logger
	Logger *logrus.Logger
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// CreatorID is the user creating the session
	CreatorID string

	// Name is the display name of the session
	Name string

	// Invocation is the dhikr content to count
	Invocation *models.Invocation

	// TargetCount is the shared goal; 0 means "omitted" and a random target
	// in [100, 999] is assigned
	TargetCount int

	// MaxParticipants caps membership; 0 uses the service default
	MaxParticipants int

	// Private marks the session invite-only
	Private bool

	// CallerIsPrivileged must be set to create a non-private session
	CallerIsPrivileged bool
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// SessionID is the unique identifier for the created session
	SessionID string

	// TargetCount is the stored target, random when it was omitted
	TargetCount int
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	// SessionID is the session to join
	SessionID string

	// UserID is the joining user; empty joins anonymously
	UserID string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	// Success indicates the user holds a membership row
	Success bool

	// AlreadyJoined indicates the membership existed before this call
	AlreadyJoined bool

	// ParticipantID is the membership row ID
	ParticipantID string
}

// LeaveSessionInput contains parameters for leaving a session
type LeaveSessionInput struct {
	SessionID string
	UserID    string
}

// LeaveSessionOutput contains the result of leaving a session
type LeaveSessionOutput struct {
	Success bool
}

// RecordClickInput contains parameters for one click
type RecordClickInput struct {
	// SessionID is the session being counted toward
	SessionID string

	// UserID is the clicking user; empty for anonymous clicks
	UserID string
}

// RecordClickOutput contains the result of one click
type RecordClickOutput struct {
	// Accepted is false when the session was inactive; nothing changed
	Accepted bool

	// Completed is true only for the click that reached the target
	Completed bool

	// NewCount is the session count after the click
	NewCount int
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string

	// RequesterID must match the session creator unless IsAdmin is set
	RequesterID string

	// IsAdmin bypasses the creator check
	IsAdmin bool
}

// DeleteSessionOutput contains the result of deleting a session
type DeleteSessionOutput struct {
	Success bool
}

type ListActiveSessionsInput struct {
}

type ListActiveSessionsOutput struct {
	Sessions []*models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.Session
}

type GetParticipantsInput struct {
	SessionID string
}

type GetParticipantsOutput struct {
	Participants []*models.Participant
}

type ListActiveAutoSessionsInput struct {
}

type ListActiveAutoSessionsOutput struct {
	Sessions []*models.Session
}

// CreateAutoSessionInput contains parameters for creating an automatic
// session. Automatic sessions always have an unlimited target.
type CreateAutoSessionInput struct {
	// Period the session is scoped to
	Period models.PrayerPeriod

	// Name is the period display name
	Name string

	// Invocation is the period-appropriate content
	Invocation *models.Invocation

	// MaxParticipants caps membership; 0 uses the service default
	MaxParticipants int
}

// CreateAutoSessionOutput contains the result of creating an automatic
// session
type CreateAutoSessionOutput struct {
	// SessionID holds the auto slot; the winner's ID when Created is false
	SessionID string

	// Created is false when another client won the creation race
	Created bool
}
