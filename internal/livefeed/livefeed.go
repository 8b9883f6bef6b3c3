package livefeed

//go:generate mockgen -package=mocks -destination=mocks/mock_livefeed.go github.com/hidayahlabs/dhikrd/internal/livefeed Publisher,Subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "session:updates:"

// Update is one counter change pushed to watching clients. The stream is
// advisory; the store remains the authoritative count.
type Update struct {
	SessionID string `json:"session_id"`
	Count     int    `json:"count"`
	Completed bool   `json:"completed"`
}

// Publisher pushes counter updates for a session
type Publisher interface {
	// PublishUpdate broadcasts one counter change
	PublishUpdate(ctx context.Context, update *Update) error
}

// Subscriber delivers counter updates for a session
type Subscriber interface {
	// Subscribe returns a channel of updates for the session and a stop
	// function releasing the subscription
	Subscribe(ctx context.Context, sessionID string) (<-chan *Update, func(), error)
}

// Config holds configuration for the Redis live feed
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisFeed implements Publisher and Subscriber over Redis pub/sub
type redisFeed struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed live feed
func NewRedis(cfg *Config) (*redisFeed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisFeed{
		client: cfg.RedisClient,
	}, nil
}

func channelName(sessionID string) string {
	return channelPrefix + sessionID
}

// PublishUpdate broadcasts one counter change
func (f *redisFeed) PublishUpdate(ctx context.Context, update *Update) error {
	if update == nil || update.SessionID == "" {
		return errors.New("update and session ID cannot be empty")
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	if err := f.client.Publish(ctx, channelName(update.SessionID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish update: %w", err)
	}

	return nil
}

// Subscribe returns a channel of updates for the session
func (f *redisFeed) Subscribe(ctx context.Context, sessionID string) (<-chan *Update, func(), error) {
	if sessionID == "" {
		return nil, nil, errors.New("session ID cannot be empty")
	}

	pubsub := f.client.Subscribe(ctx, channelName(sessionID))

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	updates := make(chan *Update)

	go func() {
		defer close(updates)
		for msg := range pubsub.Channel() {
			var update Update
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				continue
			}
			select {
			case updates <- &update:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() {
		_ = pubsub.Close()
	}

	return updates, stop, nil
}
