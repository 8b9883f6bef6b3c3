package clickevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

// sessionClicksKeyFormat must match the session repository, which appends to
// the same list inside its atomic increment unit
const sessionClicksKeyFormat = "session:%s:clicks"

// Config holds configuration for the Redis click ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed click ledger repository
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

func clicksKey(sessionID string) string {
	return fmt.Sprintf(sessionClicksKeyFormat, sessionID)
}

// AppendClick appends one accepted click to the ledger
func (r *redisRepository) AppendClick(ctx context.Context, input *AppendClickInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	if event.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal click event: %w", err)
	}

	if err := r.client.RPush(ctx, clicksKey(event.SessionID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to append click event: %w", err)
	}

	return nil
}

// ListClicks retrieves all click events for a session in append order
func (r *redisRepository) ListClicks(ctx context.Context, input *ListClicksInput) (*ListClicksOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	entries, err := r.client.LRange(ctx, clicksKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list click events: %w", err)
	}

	events := make([]*models.ClickEvent, 0, len(entries))
	for _, entry := range entries {
		var event models.ClickEvent
		if err := json.Unmarshal([]byte(entry), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal click event: %w", err)
		}
		events = append(events, &event)
	}

	return &ListClicksOutput{Events: events}, nil
}

// CountClicks returns the number of ledger entries for a session
func (r *redisRepository) CountClicks(ctx context.Context, input *CountClicksInput) (*CountClicksOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	count, err := r.client.LLen(ctx, clicksKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count click events: %w", err)
	}

	return &CountClicksOutput{Count: int(count)}, nil
}

// DeleteAllForSession removes a session's ledger
func (r *redisRepository) DeleteAllForSession(ctx context.Context, input *DeleteAllForSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := r.client.Del(ctx, clicksKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete click events: %w", err)
	}

	return nil
}
