package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

// incrementStrategy applies one clamped click increment. Both strategies
// honor the same contract: an inactive session rejects the click with no
// side effects; an accepted click updates the session counter, the
// participant counter and the click ledger together.
type incrementStrategy interface {
	apply(ctx context.Context, input *IncrementClickInput) (*IncrementClickOutput, error)
}

// incrementClickScript performs the whole read-modify-write server side:
// clamp at target, flip active off exactly when the target is reached, bump
// the participant counter and append the click event.
//
// KEYS[1] session hash, KEYS[2] active set, KEYS[3] participant hash,
// KEYS[4] click event list.
// ARGV[1] timestamp, ARGV[2] event JSON, ARGV[3] session ID,
// ARGV[4] participant ID (empty to skip the participant counter).
var incrementClickScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1, 0, 0}
end
if redis.call('HGET', KEYS[1], 'active') ~= '1' then
  return {0, 0, tonumber(redis.call('HGET', KEYS[1], 'current_count') or '0')}
end
local target = tonumber(redis.call('HGET', KEYS[1], 'target_count') or '0')
local count = tonumber(redis.call('HGET', KEYS[1], 'current_count') or '0') + 1
local completed = 0
if target > 0 and count >= target then
  count = target
  completed = 1
end
redis.call('HSET', KEYS[1], 'current_count', count, 'updated_at', ARGV[1])
if completed == 1 then
  redis.call('HSET', KEYS[1], 'active', '0', 'completed_at', ARGV[1])
  redis.call('SREM', KEYS[2], ARGV[3])
end
if ARGV[4] ~= '' then
  redis.call('HINCRBY', KEYS[3], 'click_count', 1)
end
redis.call('RPUSH', KEYS[4], ARGV[2])
return {1, completed, count}
`)

// createAutoScript claims the active-auto guard and writes the session row
// as one atomic unit. Returns {0, winnerID} when the guard was already held.
//
// KEYS[1] auto guard, KEYS[2] session hash, KEYS[3] active set.
// ARGV[1] session ID, ARGV[2..] alternating hash field/value pairs.
var createAutoScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
  return {0, redis.call('GET', KEYS[1])}
end
for i = 2, #ARGV, 2 do
  redis.call('HSET', KEYS[2], ARGV[i], ARGV[i+1])
end
redis.call('SADD', KEYS[3], ARGV[1])
return {1, ARGV[1]}
`)

// releaseAutoScript deletes the guard only if it still points at ARGV[1]
var releaseAutoScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// probeScripting checks once whether the store supports server-side scripts
func probeScripting(client *redis.Client) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return incrementClickScript.Load(ctx, client).Err() == nil
}

func marshalClickEvent(sessionID, userID string, clickedAt time.Time) (string, error) {
	event := &models.ClickEvent{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		ClickedAt: clickedAt,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal click event: %w", err)
	}

	return string(eventJSON), nil
}

// atomicIncrement runs the whole increment server side
type atomicIncrement struct {
	client *redis.Client
}

func (s *atomicIncrement) apply(ctx context.Context, input *IncrementClickInput) (*IncrementClickOutput, error) {
	now := time.Now()

	eventJSON, err := marshalClickEvent(input.SessionID, input.UserID, now)
	if err != nil {
		return nil, err
	}

	keys := []string{
		sessionKey(input.SessionID),
		activeSessionsKey,
		participantKey(input.ParticipantID),
		clicksKey(input.SessionID),
	}

	res, err := incrementClickScript.Run(ctx, s.client, keys,
		now.Format(time.RFC3339Nano), eventJSON, input.SessionID, input.ParticipantID).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to increment click: %w", err)
	}

	if len(res) != 3 {
		return nil, fmt.Errorf("unexpected script reply length %d", len(res))
	}

	if res[0] == -1 {
		return nil, ErrSessionNotFound
	}

	return &IncrementClickOutput{
		Accepted:  res[0] == 1,
		Completed: res[1] == 1,
		NewCount:  int(res[2]),
	}, nil
}

// manualRetries bounds the optimistic retry loop of the fallback strategy
const manualRetries = 3

// manualIncrement is the degraded strategy for stores without scripting. It
// uses an optimistic WATCH transaction; under heavy contention it can give
// up and surface ErrConflict instead of a counted click.
type manualIncrement struct {
	client *redis.Client
}

func (s *manualIncrement) apply(ctx context.Context, input *IncrementClickInput) (*IncrementClickOutput, error) {
	key := sessionKey(input.SessionID)

	for attempt := 0; attempt < manualRetries; attempt++ {
		var out *IncrementClickOutput

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			fields, err := tx.HGetAll(ctx, key).Result()
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}

			if len(fields) == 0 {
				return ErrSessionNotFound
			}

			sess, err := sessionFromFields(fields)
			if err != nil {
				return err
			}

			if !sess.Active {
				out = &IncrementClickOutput{Accepted: false, NewCount: sess.CurrentCount}
				return nil
			}

			now := time.Now()

			newCount := sess.CurrentCount + 1
			completed := false
			if sess.TargetCount > 0 && newCount >= sess.TargetCount {
				newCount = sess.TargetCount
				completed = true
			}

			eventJSON, err := marshalClickEvent(input.SessionID, input.UserID, now)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, key, "current_count", newCount, "updated_at", now.Format(time.RFC3339Nano))

				if completed {
					pipe.HSet(ctx, key, "active", "0", "completed_at", now.Format(time.RFC3339Nano))
					pipe.SRem(ctx, activeSessionsKey, input.SessionID)
				}

				if input.ParticipantID != "" {
					pipe.HIncrBy(ctx, participantKey(input.ParticipantID), "click_count", 1)
				}

				pipe.RPush(ctx, clicksKey(input.SessionID), eventJSON)
				return nil
			})
			if err != nil {
				return err
			}

			out = &IncrementClickOutput{Accepted: true, Completed: completed, NewCount: newCount}
			return nil
		}, key)

		if err == redis.TxFailedErr {
			continue
		}

		if err != nil {
			return nil, err
		}

		return out, nil
	}

	return nil, ErrConflict
}
