package httpapi

import (
	"github.com/hidayahlabs/dhikrd/internal/livefeed"
	"github.com/hidayahlabs/dhikrd/internal/models"
	"github.com/hidayahlabs/dhikrd/internal/services/rotation"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// Service dependencies
	Sessions sessionService.Service
	Rotation rotation.Service

	// Feed delivers live counter updates to websocket clients; optional
	Feed livefeed.Subscriber

	// AdminToken grants admin privilege when presented in X-Admin-Token.
	// Empty disables the admin surface entirely.
	AdminToken string

	// Logger defaults to the standard logger
	Logger *logrus.Logger
}

type createSessionRequest struct {
	Name            string `json:"name"`
	Text            string `json:"text" binding:"required"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Reference       string `json:"reference"`
	TargetCount     int    `json:"target_count"`
	MaxParticipants int    `json:"max_participants"`
	Private         bool   `json:"private"`
}

type createSessionResponse struct {
	SessionID   string `json:"session_id"`
	TargetCount int    `json:"target_count"`
}

type joinSessionResponse struct {
	Joined        bool   `json:"joined"`
	AlreadyJoined bool   `json:"already_joined"`
	ParticipantID string `json:"participant_id,omitempty"`
}

type leaveSessionResponse struct {
	Left bool `json:"left"`
}

type clickResponse struct {
	Accepted  bool `json:"accepted"`
	Completed bool `json:"completed"`
	Count     int  `json:"count"`
}

type deleteSessionResponse struct {
	Deleted bool `json:"deleted"`
}

type ensureAutoResponse struct {
	SessionID *string `json:"session_id"`
	Period    string  `json:"period,omitempty"`
}

type sessionResponse struct {
	ID              string  `json:"id"`
	CreatorID       string  `json:"creator_id,omitempty"`
	Name            string  `json:"name"`
	Text            string  `json:"text"`
	Transliteration string  `json:"transliteration,omitempty"`
	Translation     string  `json:"translation,omitempty"`
	Reference       string  `json:"reference,omitempty"`
	TargetCount     int     `json:"target_count"`
	CurrentCount    int     `json:"current_count"`
	Active          bool    `json:"active"`
	Open            bool    `json:"open"`
	Private         bool    `json:"private"`
	Auto            bool    `json:"auto"`
	PrayerPeriod    string  `json:"prayer_period,omitempty"`
	MaxParticipants int     `json:"max_participants"`
	CreatedAt       string  `json:"created_at"`
	CompletedAt     *string `json:"completed_at,omitempty"`
}

type participantResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	JoinedAt   string `json:"joined_at"`
	ClickCount int    `json:"click_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toSessionResponse(s *models.Session) *sessionResponse {
	resp := &sessionResponse{
		ID:              s.ID,
		CreatorID:       s.CreatorID,
		Name:            s.Name,
		Text:            s.Text,
		Transliteration: s.Transliteration,
		Translation:     s.Translation,
		Reference:       s.Reference,
		TargetCount:     s.TargetCount,
		CurrentCount:    s.CurrentCount,
		Active:          s.Active,
		Open:            s.Open,
		Private:         s.Private,
		Auto:            s.Auto,
		PrayerPeriod:    string(s.PrayerPeriod),
		MaxParticipants: s.MaxParticipants,
		CreatedAt:       s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if s.CompletedAt != nil {
		completed := s.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CompletedAt = &completed
	}

	return resp
}

func toParticipantResponse(p *models.Participant) *participantResponse {
	return &participantResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		JoinedAt:   p.JoinedAt.Format("2006-01-02T15:04:05Z07:00"),
		ClickCount: p.ClickCount,
	}
}
