package participant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"

	// per-session indexes
	sessionParticipantsKeyFormat = "session:%s:participants"
	sessionMembersKeyFormat      = "session:%s:members"

	// privateMemberKeyPrefix holds one private-session ID per user, written
	// only with SETNX. This is the store-level exclusivity invariant.
	privateMemberKeyPrefix = "member:private:"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func participantKey(participantID string) string {
	return participantKeyPrefix + participantID
}

func participantsKey(sessionID string) string {
	return fmt.Sprintf(sessionParticipantsKeyFormat, sessionID)
}

func membersKey(sessionID string) string {
	return fmt.Sprintf(sessionMembersKeyFormat, sessionID)
}

func privateMemberKey(userID string) string {
	return privateMemberKeyPrefix + userID
}

// AddParticipant persists a membership to Redis. For identified users the
// member index is written with HSETNX, which makes repeated joins land on
// the same row no matter how they interleave.
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil || input.Participant == nil {
		return nil, errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.ID == "" || p.SessionID == "" {
		return nil, errors.New("participant ID and session ID cannot be empty")
	}

	if p.UserID != "" {
		inserted, err := r.client.HSetNX(ctx, membersKey(p.SessionID), p.UserID, p.ID).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to index member: %w", err)
		}

		if !inserted {
			existing, err := r.GetParticipantByUser(ctx, &GetParticipantByUserInput{
				SessionID: p.SessionID,
				UserID:    p.UserID,
			})
			if err != nil {
				return nil, err
			}

			return &AddParticipantOutput{
				Participant:   existing,
				AlreadyJoined: true,
			}, nil
		}
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, participantKey(p.ID), participantFields(p))
	pipe.SAdd(ctx, participantsKey(p.SessionID), p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	return &AddParticipantOutput{Participant: p}, nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, participantKey(input.ParticipantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrParticipantNotFound
	}

	return participantFromFields(fields)
}

// GetParticipantByUser retrieves a user's membership in a session
func (r *redisRepository) GetParticipantByUser(ctx context.Context, input *GetParticipantByUserInput) (*models.Participant, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	participantID, err := r.client.HGet(ctx, membersKey(input.SessionID), input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	return r.GetParticipant(ctx, &GetParticipantInput{ParticipantID: participantID})
}

// ListParticipants retrieves all participants of a session from Redis
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	participantIDs, err := r.client.SMembers(ctx, participantsKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	if len(participantIDs) == 0 {
		return &ListParticipantsOutput{Participants: []*models.Participant{}}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.MapStringStringCmd, len(participantIDs))

	for _, participantID := range participantIDs {
		commands[participantID] = pipe.HGetAll(ctx, participantKey(participantID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for participantID, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get participant %s: %w", participantID, err)
		}

		if len(fields) == 0 {
			// Removed between reading the set and fetching the row
			continue
		}

		p, err := participantFromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to decode participant %s: %w", participantID, err)
		}

		participants = append(participants, p)
	}

	return &ListParticipantsOutput{Participants: participants}, nil
}

// CountParticipants returns the number of participants in a session
func (r *redisRepository) CountParticipants(ctx context.Context, input *CountParticipantsInput) (*CountParticipantsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, participantsKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	return &CountParticipantsOutput{Count: int(count)}, nil
}

// RemoveParticipant removes a user's membership from a session
func (r *redisRepository) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return errors.New("input, session ID and user ID cannot be empty")
	}

	participantID, err := r.client.HGet(ctx, membersKey(input.SessionID), input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to look up member: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, participantKey(participantID))
	pipe.SRem(ctx, participantsKey(input.SessionID), participantID)
	pipe.HDel(ctx, membersKey(input.SessionID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	return nil
}

// DeleteAllForSession removes every membership of a session. Stage deletes
// are idempotent so a partially-failed cascade can be finished by a retry.
func (r *redisRepository) DeleteAllForSession(ctx context.Context, input *DeleteAllForSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	participants, err := r.ListParticipants(ctx, &ListParticipantsInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	for _, p := range participants.Participants {
		pipe.Del(ctx, participantKey(p.ID))
	}

	pipe.Del(ctx, participantsKey(input.SessionID))
	pipe.Del(ctx, membersKey(input.SessionID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	// Free private-membership slots held for this session
	for _, p := range participants.Participants {
		if p.UserID == "" {
			continue
		}
		if err := r.ReleasePrivateMembership(ctx, &ReleasePrivateMembershipInput{
			UserID:    p.UserID,
			SessionID: input.SessionID,
		}); err != nil {
			return err
		}
	}

	return nil
}

// ClaimPrivateMembership reserves the user's single private-session slot
func (r *redisRepository) ClaimPrivateMembership(ctx context.Context, input *ClaimPrivateMembershipInput) (*ClaimPrivateMembershipOutput, error) {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return nil, errors.New("input, user ID and session ID cannot be empty")
	}

	claimed, err := r.client.SetNX(ctx, privateMemberKey(input.UserID), input.SessionID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim private membership: %w", err)
	}

	if claimed {
		return &ClaimPrivateMembershipOutput{Claimed: true}, nil
	}

	holder, err := r.client.Get(ctx, privateMemberKey(input.UserID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read private membership: %w", err)
	}

	// Rejoining the same private session is not a conflict
	if holder == input.SessionID {
		return &ClaimPrivateMembershipOutput{Claimed: true}, nil
	}

	return &ClaimPrivateMembershipOutput{Claimed: false, HeldBySessionID: holder}, nil
}

// ReleasePrivateMembership frees the slot if it is held for the session
func (r *redisRepository) ReleasePrivateMembership(ctx context.Context, input *ReleasePrivateMembershipInput) error {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return errors.New("input, user ID and session ID cannot be empty")
	}

	holder, err := r.client.Get(ctx, privateMemberKey(input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to read private membership: %w", err)
	}

	if holder == input.SessionID {
		if err := r.client.Del(ctx, privateMemberKey(input.UserID)).Err(); err != nil {
			return fmt.Errorf("failed to release private membership: %w", err)
		}
	}

	return nil
}

func participantFields(p *models.Participant) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"session_id":  p.SessionID,
		"user_id":     p.UserID,
		"joined_at":   p.JoinedAt.Format(time.RFC3339Nano),
		"click_count": strconv.Itoa(p.ClickCount),
	}
}

func participantFromFields(fields map[string]string) (*models.Participant, error) {
	joinedAt, err := time.Parse(time.RFC3339Nano, fields["joined_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid joined_at: %w", err)
	}

	clickCount, err := strconv.Atoi(fields["click_count"])
	if err != nil {
		return nil, fmt.Errorf("invalid click_count: %w", err)
	}

	return &models.Participant{
		ID:         fields["id"],
		SessionID:  fields["session_id"],
		UserID:     fields["user_id"],
		JoinedAt:   joinedAt,
		ClickCount: clickCount,
	}, nil
}
