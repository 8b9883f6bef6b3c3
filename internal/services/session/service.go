package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/common/random"
	"github.com/hidayahlabs/dhikrd/internal/common/uuid"
	"github.com/hidayahlabs/dhikrd/internal/livefeed"
	"github.com/hidayahlabs/dhikrd/internal/models"
	clickEventRepo "github.com/hidayahlabs/dhikrd/internal/repositories/clickevent"
	participantRepo "github.com/hidayahlabs/dhikrd/internal/repositories/participant"
	sessionRepo "github.com/hidayahlabs/dhikrd/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	config          *Config
	sessionRepo     sessionRepo.Repository
	participantRepo participantRepo.Repository
	clickEventRepo  clickEventRepo.Repository
	clock           clock.Clock
	uuidGen         uuid.UUID
	random          random.Source
	feed            livefeed.Publisher
	logger          *logrus.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}

	if cfg.ClickEventRepo == nil {
		return nil, errors.New("click event repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		config:          cfg,
		sessionRepo:     cfg.SessionRepo,
		participantRepo: cfg.ParticipantRepo,
		clickEventRepo:  cfg.ClickEventRepo,
		clock:           cfg.Clock,
		uuidGen:         cfg.UUIDGenerator,
		random:          cfg.Random,
		feed:            cfg.Feed,
		logger:          logger,
	}, nil
}

// CreateSession creates a new user session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Invocation == nil {
		return nil, fmt.Errorf("%w: input and invocation cannot be nil", ErrInvalidInput)
	}

	// Public sessions are a privileged surface; everyone else creates
	// private ones
	if !input.Private && !input.CallerIsPrivileged {
		return nil, ErrForbidden
	}

	targetCount := input.TargetCount
	if targetCount == 0 {
		targetCount = s.random.IntBetween(defaultTargetMin, defaultTargetMax)
	}

	maxParticipants := input.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = s.config.DefaultMaxParticipants
	}

	now := s.clock.Now()
	sessionID := s.uuidGen.NewUUID()

	sess := &models.Session{
		ID:              sessionID,
		CreatorID:       input.CreatorID,
		Name:            input.Name,
		Text:            input.Invocation.Text,
		Transliteration: input.Invocation.Transliteration,
		Translation:     input.Invocation.Translation,
		Reference:       input.Invocation.Reference,
		TargetCount:     targetCount,
		CurrentCount:    0,
		Active:          true,
		Open:            true,
		Private:         input.Private,
		MaxParticipants: maxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		SessionID:   sessionID,
		TargetCount: targetCount,
	}, nil
}

// JoinSession adds a user to a session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: input and session ID cannot be empty", ErrInvalidInput)
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !sess.Active || !sess.Open {
		return nil, ErrSessionClosed
	}

	// Idempotence check before anything else, so a rejoin never trips the
	// capacity or exclusivity rules
	if input.UserID != "" {
		existing, err := s.participantRepo.GetParticipantByUser(ctx, &participantRepo.GetParticipantByUserInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
		})
		if err == nil {
			return &JoinSessionOutput{
				Success:       true,
				AlreadyJoined: true,
				ParticipantID: existing.ID,
			}, nil
		}
		if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, err
		}
	}

	if sess.MaxParticipants > 0 {
		count, err := s.participantRepo.CountParticipants(ctx, &participantRepo.CountParticipantsInput{
			SessionID: input.SessionID,
		})
		if err != nil {
			return nil, err
		}

		if count.Count >= sess.MaxParticipants {
			return nil, ErrSessionFull
		}
	}

	// An identity holds at most one private membership at a time. Common
	// sessions are exempt: they may be joined regardless of private
	// membership.
	claimedPrivate := false
	if sess.Private && input.UserID != "" {
		claim, err := s.participantRepo.ClaimPrivateMembership(ctx, &participantRepo.ClaimPrivateMembershipInput{
			UserID:    input.UserID,
			SessionID: input.SessionID,
		})
		if err != nil {
			return nil, err
		}

		if !claim.Claimed {
			return nil, ErrExclusivityViolation
		}
		claimedPrivate = true
	}

	p := &models.Participant{
		ID:         s.uuidGen.NewUUID(),
		SessionID:  input.SessionID,
		UserID:     input.UserID,
		JoinedAt:   s.clock.Now(),
		ClickCount: 0,
	}

	added, err := s.participantRepo.AddParticipant(ctx, &participantRepo.AddParticipantInput{Participant: p})
	if err != nil {
		if claimedPrivate {
			_ = s.participantRepo.ReleasePrivateMembership(ctx, &participantRepo.ReleasePrivateMembershipInput{
				UserID:    input.UserID,
				SessionID: input.SessionID,
			})
		}
		return nil, err
	}

	return &JoinSessionOutput{
		Success:       true,
		AlreadyJoined: added.AlreadyJoined,
		ParticipantID: added.Participant.ID,
	}, nil
}

// LeaveSession removes a user's membership from a session
func (s *service) LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, fmt.Errorf("%w: input, session ID and user ID cannot be empty", ErrInvalidInput)
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	err = s.participantRepo.RemoveParticipant(ctx, &participantRepo.RemoveParticipantInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrNotParticipant
		}
		return nil, err
	}

	if sess.Private {
		if err := s.participantRepo.ReleasePrivateMembership(ctx, &participantRepo.ReleasePrivateMembershipInput{
			UserID:    input.UserID,
			SessionID: input.SessionID,
		}); err != nil {
			return nil, err
		}
	}

	return &LeaveSessionOutput{Success: true}, nil
}

// RecordClick applies one increment toward the session target
func (s *service) RecordClick(ctx context.Context, input *RecordClickInput) (*RecordClickOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: input and session ID cannot be empty", ErrInvalidInput)
	}

	// Bump the participant counter only when a membership exists; clicks
	// from non-members still count toward the session
	participantID := ""
	if input.UserID != "" {
		p, err := s.participantRepo.GetParticipantByUser(ctx, &participantRepo.GetParticipantByUserInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
		})
		if err == nil {
			participantID = p.ID
		} else if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, err
		}
	}

	out, err := s.sessionRepo.IncrementClick(ctx, &sessionRepo.IncrementClickInput{
		SessionID:     input.SessionID,
		UserID:        input.UserID,
		ParticipantID: participantID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, sessionRepo.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if out.Accepted && s.feed != nil {
		if err := s.feed.PublishUpdate(ctx, &livefeed.Update{
			SessionID: input.SessionID,
			Count:     out.NewCount,
			Completed: out.Completed,
		}); err != nil {
			// The feed is advisory; a failed publish never fails the click
			s.logger.WithError(err).WithField("session_id", input.SessionID).
				Warn("failed to publish counter update")
		}
	}

	return &RecordClickOutput{
		Accepted:  out.Accepted,
		Completed: out.Completed,
		NewCount:  out.NewCount,
	}, nil
}

// DeleteSession removes a session and all dependent rows. The cascade order
// is click events, then participants, then the session row; the session row
// must never outlive removal of its dependents but also never precede it.
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: input and session ID cannot be empty", ErrInvalidInput)
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !input.IsAdmin && (sess.CreatorID == "" || sess.CreatorID != input.RequesterID) {
		return nil, ErrForbidden
	}

	// Each stage is idempotent, so a cascade interrupted part way is
	// finished by the next delete attempt.
	if err := s.clickEventRepo.DeleteAllForSession(ctx, &clickEventRepo.DeleteAllForSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, err
	}

	if err := s.participantRepo.DeleteAllForSession(ctx, &participantRepo.DeleteAllForSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, err
	}

	return &DeleteSessionOutput{Success: true}, nil
}

// ListActiveSessions returns all active sessions
func (s *service) ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	out, err := s.sessionRepo.ListActiveSessions(ctx, &sessionRepo.ListActiveSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ListActiveSessionsOutput{Sessions: out.Sessions}, nil
}

// GetSession returns one session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: input and session ID cannot be empty", ErrInvalidInput)
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionOutput{Session: sess}, nil
}

// GetParticipants returns a session's participants
func (s *service) GetParticipants(ctx context.Context, input *GetParticipantsInput) (*GetParticipantsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: input and session ID cannot be empty", ErrInvalidInput)
	}

	if _, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID}); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	out, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &GetParticipantsOutput{Participants: out.Participants}, nil
}

// ListActiveAutoSessions returns the active automatic sessions
func (s *service) ListActiveAutoSessions(ctx context.Context, input *ListActiveAutoSessionsInput) (*ListActiveAutoSessionsOutput, error) {
	out, err := s.sessionRepo.ListActiveAutoSessions(ctx, &sessionRepo.ListActiveAutoSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ListActiveAutoSessionsOutput{Sessions: out.Sessions}, nil
}

// CreateAutoSession creates an automatic session under the store-level
// single-active guard. Automatic sessions are unlimited and keep no creator.
func (s *service) CreateAutoSession(ctx context.Context, input *CreateAutoSessionInput) (*CreateAutoSessionOutput, error) {
	if input == nil || input.Invocation == nil {
		return nil, fmt.Errorf("%w: input and invocation cannot be nil", ErrInvalidInput)
	}

	if input.Period == "" {
		return nil, fmt.Errorf("%w: period cannot be empty", ErrInvalidInput)
	}

	maxParticipants := input.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = s.config.DefaultMaxParticipants
	}

	now := s.clock.Now()

	sess := &models.Session{
		ID:              s.uuidGen.NewUUID(),
		Name:            input.Name,
		Text:            input.Invocation.Text,
		Transliteration: input.Invocation.Transliteration,
		Translation:     input.Invocation.Translation,
		Reference:       input.Invocation.Reference,
		TargetCount:     0,
		CurrentCount:    0,
		Active:          true,
		Open:            true,
		Auto:            true,
		PrayerPeriod:    input.Period,
		MaxParticipants: maxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	out, err := s.sessionRepo.CreateAutoSession(ctx, &sessionRepo.CreateAutoSessionInput{Session: sess})
	if err != nil {
		return nil, err
	}

	return &CreateAutoSessionOutput{
		SessionID: out.SessionID,
		Created:   out.Created,
	}, nil
}
