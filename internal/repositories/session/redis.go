package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	activeSessionsKey = "sessions:active"

	// autoActiveKey holds the ID of the single active automatic session.
	// It is only ever written with SETNX, which makes it the store-level
	// uniqueness guard over (auto, active).
	autoActiveKey = "sessions:auto:active"

	// participantKeyPrefix must match the participant repository
	participantKeyPrefix = "participant:"

	// sessionClicksKeyFormat must match the clickevent repository
	sessionClicksKeyFormat = "session:%s:clicks"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrConflict is returned when the manual fallback strategy gives up on
	// reconciling a concurrent modification
	ErrConflict = errors.New("concurrent modification detected")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// DisableScripting skips the server-side scripting probe and forces the
	// manual transaction strategy
	DisableScripting bool

	// Logger receives the strategy selection notice; defaults to the
	// standard logger
	Logger *logrus.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	logger    *logrus.Logger
	increment incrementStrategy
	scripting bool
}

// NewRedis creates a new Redis-backed session repository. The constructor
// probes the store once for server-side scripting support and installs
// either the atomic script strategy or the manual transaction fallback.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &redisRepository{
		client: cfg.RedisClient,
		logger: logger,
	}

	r.scripting = !cfg.DisableScripting && probeScripting(cfg.RedisClient)
	if r.scripting {
		r.increment = &atomicIncrement{client: cfg.RedisClient}
		logger.WithField("strategy", "atomic").Info("session store: server-side scripting available")
	} else {
		r.increment = &manualIncrement{client: cfg.RedisClient}
		// The fallback accepts a small risk of rejected clicks under heavy
		// contention (surfaced as ErrConflict), so the switch is logged
		// rather than applied quietly.
		logger.WithField("strategy", "manual").Warn("session store: scripting unavailable, falling back to manual transactions")
	}

	return r, nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func participantKey(participantID string) string {
	return participantKeyPrefix + participantID
}

func clicksKey(sessionID string) string {
	return fmt.Sprintf(sessionClicksKeyFormat, sessionID)
}

// CreateSession persists a new session to Redis
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	pipe.HSet(ctx, sessionKey(input.Session.ID), sessionFields(input.Session))

	if input.Session.Active {
		pipe.SAdd(ctx, activeSessionsKey, input.Session.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	return sessionFromFields(fields)
}

// DeleteSession removes a session row from Redis. Callers must have removed
// the session's click events and participants first; the session row is
// always the last element of the deletion cascade.
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, sessionKey(input.SessionID))
	pipe.SRem(ctx, activeSessionsKey, input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if sess.Auto {
		if err := r.ReleaseAutoSession(ctx, &ReleaseAutoSessionInput{SessionID: input.SessionID}); err != nil {
			return err
		}
	}

	return nil
}

// ListActiveSessions retrieves all active sessions from Redis
func (r *redisRepository) ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	sessions, err := r.fetchActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	return &ListActiveSessionsOutput{Sessions: sessions}, nil
}

// ListActiveAutoSessions retrieves all active automatic sessions from Redis
func (r *redisRepository) ListActiveAutoSessions(ctx context.Context, input *ListActiveAutoSessionsInput) (*ListActiveAutoSessionsOutput, error) {
	sessions, err := r.fetchActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	auto := make([]*models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Auto {
			auto = append(auto, sess)
		}
	}

	return &ListActiveAutoSessionsOutput{Sessions: auto}, nil
}

func (r *redisRepository) fetchActiveSessions(ctx context.Context) ([]*models.Session, error) {
	sessionIDs, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.MapStringStringCmd, len(sessionIDs))

	for _, sessionID := range sessionIDs {
		commands[sessionID] = pipe.HGetAll(ctx, sessionKey(sessionID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get active sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for sessionID, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
		}

		if len(fields) == 0 {
			// Session was deleted between reading the set and fetching the row
			continue
		}

		sess, err := sessionFromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
		}

		sessions = append(sessions, sess)
	}

	return sessions, nil
}

// IncrementClick applies one clamped increment through the installed strategy
func (r *redisRepository) IncrementClick(ctx context.Context, input *IncrementClickInput) (*IncrementClickOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return r.increment.apply(ctx, input)
}

// CreateAutoSession creates an automatic session, claiming the active-auto
// guard first. When scripting is available the claim and the row write are
// one atomic unit; otherwise they execute as a guarded multi-statement
// sequence with the same external contract.
func (r *redisRepository) CreateAutoSession(ctx context.Context, input *CreateAutoSessionInput) (*CreateAutoSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	if !input.Session.Auto {
		return nil, errors.New("session must be automatic")
	}

	if r.scripting {
		return r.createAutoScripted(ctx, input.Session)
	}

	return r.createAutoManual(ctx, input.Session)
}

func (r *redisRepository) createAutoScripted(ctx context.Context, sess *models.Session) (*CreateAutoSessionOutput, error) {
	args := make([]interface{}, 0, 1+2*sessionFieldCount)
	args = append(args, sess.ID)
	for field, value := range sessionFields(sess) {
		args = append(args, field, value)
	}

	res, err := createAutoScript.Run(ctx, r.client,
		[]string{autoActiveKey, sessionKey(sess.ID), activeSessionsKey}, args...).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to create automatic session: %w", err)
	}

	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected script reply length %d", len(res))
	}

	created, _ := res[0].(int64)
	winner, _ := res[1].(string)

	return &CreateAutoSessionOutput{
		Created:   created == 1,
		SessionID: winner,
	}, nil
}

func (r *redisRepository) createAutoManual(ctx context.Context, sess *models.Session) (*CreateAutoSessionOutput, error) {
	for attempt := 0; attempt < manualRetries; attempt++ {
		claimed, err := r.client.SetNX(ctx, autoActiveKey, sess.ID, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to claim auto session guard: %w", err)
		}

		if !claimed {
			winner, err := r.client.Get(ctx, autoActiveKey).Result()
			if err == redis.Nil {
				// The holder released between the failed claim and the
				// read; contend for the guard again instead of reporting
				// an empty winner.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read auto session guard: %w", err)
			}
			return &CreateAutoSessionOutput{Created: false, SessionID: winner}, nil
		}

		if err := r.CreateSession(ctx, &CreateSessionInput{Session: sess}); err != nil {
			// Creation failed after the claim; release the guard so the next
			// rotation attempt is not wedged.
			_ = r.ReleaseAutoSession(ctx, &ReleaseAutoSessionInput{SessionID: sess.ID})
			return nil, err
		}

		return &CreateAutoSessionOutput{Created: true, SessionID: sess.ID}, nil
	}

	return nil, ErrConflict
}

// ReleaseAutoSession clears the active-auto guard if it still points at the
// given session
func (r *redisRepository) ReleaseAutoSession(ctx context.Context, input *ReleaseAutoSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if r.scripting {
		if err := releaseAutoScript.Run(ctx, r.client, []string{autoActiveKey}, input.SessionID).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("failed to release auto session guard: %w", err)
		}
		return nil
	}

	current, err := r.client.Get(ctx, autoActiveKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to read auto session guard: %w", err)
	}

	if current == input.SessionID {
		if err := r.client.Del(ctx, autoActiveKey).Err(); err != nil {
			return fmt.Errorf("failed to release auto session guard: %w", err)
		}
	}

	return nil
}

// GetActiveAutoSessionID returns the ID held by the active-auto guard
func (r *redisRepository) GetActiveAutoSessionID(ctx context.Context, input *GetActiveAutoSessionIDInput) (*GetActiveAutoSessionIDOutput, error) {
	sessionID, err := r.client.Get(ctx, autoActiveKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetActiveAutoSessionIDOutput{}, nil
		}
		return nil, fmt.Errorf("failed to read auto session guard: %w", err)
	}

	return &GetActiveAutoSessionIDOutput{SessionID: sessionID}, nil
}

const sessionFieldCount = 18

// sessionFields encodes a session as Redis hash fields. Counters are stored
// as plain integers so the increment strategies can operate on them in place.
func sessionFields(s *models.Session) map[string]interface{} {
	completedAt := ""
	if s.CompletedAt != nil {
		completedAt = s.CompletedAt.Format(time.RFC3339Nano)
	}

	return map[string]interface{}{
		"id":               s.ID,
		"creator_id":       s.CreatorID,
		"name":             s.Name,
		"text":             s.Text,
		"transliteration":  s.Transliteration,
		"translation":      s.Translation,
		"reference":        s.Reference,
		"target_count":     strconv.Itoa(s.TargetCount),
		"current_count":    strconv.Itoa(s.CurrentCount),
		"active":           encodeBool(s.Active),
		"open":             encodeBool(s.Open),
		"private":          encodeBool(s.Private),
		"auto":             encodeBool(s.Auto),
		"prayer_period":    string(s.PrayerPeriod),
		"max_participants": strconv.Itoa(s.MaxParticipants),
		"created_at":       s.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":       s.UpdatedAt.Format(time.RFC3339Nano),
		"completed_at":     completedAt,
	}
}

func sessionFromFields(fields map[string]string) (*models.Session, error) {
	targetCount, err := strconv.Atoi(fields["target_count"])
	if err != nil {
		return nil, fmt.Errorf("invalid target_count: %w", err)
	}

	currentCount, err := strconv.Atoi(fields["current_count"])
	if err != nil {
		return nil, fmt.Errorf("invalid current_count: %w", err)
	}

	maxParticipants, err := strconv.Atoi(fields["max_participants"])
	if err != nil {
		return nil, fmt.Errorf("invalid max_participants: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	var completedAt *time.Time
	if fields["completed_at"] != "" {
		t, err := time.Parse(time.RFC3339Nano, fields["completed_at"])
		if err != nil {
			return nil, fmt.Errorf("invalid completed_at: %w", err)
		}
		completedAt = &t
	}

	return &models.Session{
		ID:              fields["id"],
		CreatorID:       fields["creator_id"],
		Name:            fields["name"],
		Text:            fields["text"],
		Transliteration: fields["transliteration"],
		Translation:     fields["translation"],
		Reference:       fields["reference"],
		TargetCount:     targetCount,
		CurrentCount:    currentCount,
		Active:          decodeBool(fields["active"]),
		Open:            decodeBool(fields["open"]),
		Private:         decodeBool(fields["private"]),
		Auto:            decodeBool(fields["auto"]),
		PrayerPeriod:    models.PrayerPeriod(fields["prayer_period"]),
		MaxParticipants: maxParticipants,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		CompletedAt:     completedAt,
	}, nil
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func decodeBool(s string) bool {
	return s == "1"
}
