package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hidayahlabs/dhikrd/internal/livefeed"
	"github.com/hidayahlabs/dhikrd/internal/models"
	"github.com/hidayahlabs/dhikrd/internal/services/rotation"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
)

// Handler exposes the session operations over HTTP. The mobile client treats
// an unreachable store as an unconfigured backend, so infrastructure
// failures degrade to safe defaults (empty lists, null, false) instead of
// surfacing 5xx errors; typed domain failures keep their status codes.
type Handler struct {
	sessions   sessionService.Service
	rotation   rotation.Service
	feed       livefeed.Subscriber
	adminToken string
	logger     *logrus.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.Rotation == nil {
		return nil, errors.New("rotation service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Handler{
		sessions:   cfg.Sessions,
		rotation:   cfg.Rotation,
		feed:       cfg.Feed,
		adminToken: cfg.AdminToken,
		logger:     logger,
	}, nil
}

// Register attaches the routes to a gin engine
func (h *Handler) Register(router *gin.Engine) {
	router.POST("/sessions", h.createSession)
	router.GET("/sessions", h.listSessions)
	router.GET("/sessions/:id", h.getSession)
	router.GET("/sessions/:id/participants", h.getParticipants)
	router.POST("/sessions/:id/join", h.joinSession)
	router.POST("/sessions/:id/leave", h.leaveSession)
	router.POST("/sessions/:id/click", h.recordClick)
	router.DELETE("/sessions/:id", h.deleteSession)
	router.POST("/auto/ensure", h.ensureAutoSession)
	router.GET("/sessions/:id/live", h.liveUpdates)
}

// userID extracts the caller identity; authentication itself happens
// upstream of this service
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func (h *Handler) isAdmin(c *gin.Context) bool {
	return h.adminToken != "" && c.GetHeader("X-Admin-Token") == h.adminToken
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, err := h.sessions.CreateSession(c.Request.Context(), &sessionService.CreateSessionInput{
		CreatorID: userID(c),
		Name:      req.Name,
		Invocation: &models.Invocation{
			Text:            req.Text,
			Transliteration: req.Transliteration,
			Translation:     req.Translation,
			Reference:       req.Reference,
		},
		TargetCount:        req.TargetCount,
		MaxParticipants:    req.MaxParticipants,
		Private:            req.Private,
		CallerIsPrivileged: h.isAdmin(c),
	})
	if err != nil {
		if errors.Is(err, sessionService.ErrForbidden) {
			c.JSON(http.StatusForbidden, errorResponse{Error: "public sessions require privilege"})
			return
		}
		if errors.Is(err, sessionService.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
			return
		}
		h.degrade(c, err, gin.H{"session_id": nil})
		return
	}

	c.JSON(http.StatusCreated, createSessionResponse{
		SessionID:   out.SessionID,
		TargetCount: out.TargetCount,
	})
}

func (h *Handler) listSessions(c *gin.Context) {
	out, err := h.sessions.ListActiveSessions(c.Request.Context(), &sessionService.ListActiveSessionsInput{})
	if err != nil {
		h.degrade(c, err, []*sessionResponse{})
		return
	}

	sessions := make([]*sessionResponse, 0, len(out.Sessions))
	for _, s := range out.Sessions {
		sessions = append(sessions, toSessionResponse(s))
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) getSession(c *gin.Context) {
	out, err := h.sessions.GetSession(c.Request.Context(), &sessionService.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
			return
		}
		h.degrade(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(out.Session))
}

func (h *Handler) getParticipants(c *gin.Context) {
	out, err := h.sessions.GetParticipants(c.Request.Context(), &sessionService.GetParticipantsInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
			return
		}
		h.degrade(c, err, []*participantResponse{})
		return
	}

	participants := make([]*participantResponse, 0, len(out.Participants))
	for _, p := range out.Participants {
		participants = append(participants, toParticipantResponse(p))
	}

	c.JSON(http.StatusOK, participants)
}

func (h *Handler) joinSession(c *gin.Context) {
	out, err := h.sessions.JoinSession(c.Request.Context(), &sessionService.JoinSessionInput{
		SessionID: c.Param("id"),
		UserID:    userID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		case errors.Is(err, sessionService.ErrSessionClosed):
			c.JSON(http.StatusConflict, errorResponse{Error: "session is closed"})
		case errors.Is(err, sessionService.ErrSessionFull):
			c.JSON(http.StatusConflict, errorResponse{Error: "session is full"})
		case errors.Is(err, sessionService.ErrExclusivityViolation):
			c.JSON(http.StatusConflict, errorResponse{Error: "already a member of another private session"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		default:
			h.degrade(c, err, joinSessionResponse{Joined: false})
		}
		return
	}

	c.JSON(http.StatusOK, joinSessionResponse{
		Joined:        out.Success,
		AlreadyJoined: out.AlreadyJoined,
		ParticipantID: out.ParticipantID,
	})
}

func (h *Handler) leaveSession(c *gin.Context) {
	out, err := h.sessions.LeaveSession(c.Request.Context(), &sessionService.LeaveSessionInput{
		SessionID: c.Param("id"),
		UserID:    userID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		case errors.Is(err, sessionService.ErrNotParticipant):
			c.JSON(http.StatusNotFound, errorResponse{Error: "not a participant"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			// Leaving needs a caller identity; a missing X-User-ID header
			// is the caller's mistake, not a store outage
			c.JSON(http.StatusBadRequest, errorResponse{Error: "X-User-ID header is required"})
		default:
			h.degrade(c, err, leaveSessionResponse{Left: false})
		}
		return
	}

	c.JSON(http.StatusOK, leaveSessionResponse{Left: out.Success})
}

func (h *Handler) recordClick(c *gin.Context) {
	out, err := h.sessions.RecordClick(c.Request.Context(), &sessionService.RecordClickInput{
		SessionID: c.Param("id"),
		UserID:    userID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		case errors.Is(err, sessionService.ErrConflict):
			c.JSON(http.StatusConflict, errorResponse{Error: "concurrent modification, click not counted"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		default:
			h.degrade(c, err, clickResponse{Accepted: false})
		}
		return
	}

	c.JSON(http.StatusOK, clickResponse{
		Accepted:  out.Accepted,
		Completed: out.Completed,
		Count:     out.NewCount,
	})
}

func (h *Handler) deleteSession(c *gin.Context) {
	out, err := h.sessions.DeleteSession(c.Request.Context(), &sessionService.DeleteSessionInput{
		SessionID:   c.Param("id"),
		RequesterID: userID(c),
		IsAdmin:     h.isAdmin(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		case errors.Is(err, sessionService.ErrForbidden):
			c.JSON(http.StatusForbidden, errorResponse{Error: "only the creator or an admin may delete"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		default:
			h.degrade(c, err, deleteSessionResponse{Deleted: false})
		}
		return
	}

	c.JSON(http.StatusOK, deleteSessionResponse{Deleted: out.Success})
}

func (h *Handler) ensureAutoSession(c *gin.Context) {
	out, err := h.rotation.EnsureAutoSession(c.Request.Context(), &rotation.EnsureAutoSessionInput{})
	if err != nil {
		// An unresolved period is a benign skip, not a failure surface
		if errors.Is(err, rotation.ErrPeriodUnresolved) {
			c.JSON(http.StatusOK, ensureAutoResponse{SessionID: nil})
			return
		}
		h.degrade(c, err, ensureAutoResponse{SessionID: nil})
		return
	}

	c.JSON(http.StatusOK, ensureAutoResponse{
		SessionID: &out.SessionID,
		Period:    string(out.Period),
	})
}

// degrade logs an infrastructure failure and answers with the safe default
// the mobile client expects from an unconfigured backend
func (h *Handler) degrade(c *gin.Context, err error, fallback interface{}) {
	h.logger.WithError(err).WithField("path", c.FullPath()).Warn("store unavailable, degrading to default response")
	c.JSON(http.StatusOK, fallback)
}
