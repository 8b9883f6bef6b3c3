package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time

	// disableScripting switches the suite onto the manual fallback strategy
	disableScripting bool
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient:      s.client,
		DisableScripting: s.disableScripting,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// TestManualRedisRepositoryTestSuite runs the same suite against the manual
// transaction fallback so both increment strategies honor the same contract.
func TestManualRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RedisRepositoryTestSuite{disableScripting: true})
}

func (s *RedisRepositoryTestSuite) newTestSession(id string, target int) *models.Session {
	return &models.Session{
		ID:              id,
		CreatorID:       "test-creator-id",
		Name:            "Test Session",
		Text:            "سُبْحَانَ اللَّهِ",
		Transliteration: "SubhanAllah",
		Translation:     "Glory be to Allah",
		TargetCount:     target,
		Active:          true,
		Open:            true,
		MaxParticipants: 100,
		CreatedAt:       s.testNow,
		UpdatedAt:       s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) createSession(sess *models.Session) {
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	sess := s.newTestSession("test-session-id", 33)
	s.createSession(sess)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
	s.Equal(sess.CreatorID, retrieved.CreatorID)
	s.Equal(sess.Name, retrieved.Name)
	s.Equal(sess.Text, retrieved.Text)
	s.Equal(sess.TargetCount, retrieved.TargetCount)
	s.Equal(0, retrieved.CurrentCount)
	s.True(retrieved.Active)
	s.True(retrieved.Open)
	s.False(retrieved.Auto)
	s.Nil(retrieved.CompletedAt)
	s.True(sess.CreatedAt.Equal(retrieved.CreatedAt))

	// An active session must be listed
	listed, err := s.repo.ListActiveSessions(context.Background(), &ListActiveSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Sessions, 1)
	s.Equal("test-session-id", listed.Sessions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.newTestSession("test-session-id", 33)
	s.createSession(sess)

	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	listed, err := s.repo.ListActiveSessions(context.Background(), &ListActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(listed.Sessions)
}

func (s *RedisRepositoryTestSuite) TestDeleteSessionNotFound() {
	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestListActiveAutoSessions() {
	user := s.newTestSession("user-session-id", 33)
	s.createSession(user)

	auto := s.newTestSession("auto-session-id", 0)
	auto.Auto = true
	auto.PrayerPeriod = models.PeriodFajrDhuhr
	s.createSession(auto)

	listed, err := s.repo.ListActiveAutoSessions(context.Background(), &ListActiveAutoSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Sessions, 1)
	s.Equal("auto-session-id", listed.Sessions[0].ID)
	s.Equal(models.PeriodFajrDhuhr, listed.Sessions[0].PrayerPeriod)
}

func (s *RedisRepositoryTestSuite) TestIncrementClickClampsAtTarget() {
	sess := s.newTestSession("test-session-id", 5)
	s.createSession(sess)

	completions := 0
	for i := 0; i < 5; i++ {
		out, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
			SessionID: "test-session-id",
			UserID:    "test-user-id",
		})
		s.Require().NoError(err)
		s.True(out.Accepted)
		if out.Completed {
			completions++
			s.Equal(5, out.NewCount)
		}
	}

	// Exactly one click observes the completion transition
	s.Equal(1, completions)

	// The sixth click lands on an inactive session and is rejected without
	// moving the counter
	out, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
		SessionID: "test-session-id",
		UserID:    "test-user-id",
	})
	s.Require().NoError(err)
	s.False(out.Accepted)
	s.False(out.Completed)
	s.Equal(5, out.NewCount)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(5, retrieved.CurrentCount)
	s.False(retrieved.Active)
	s.Require().NotNil(retrieved.CompletedAt)

	// The completed session left the active listing
	listed, err := s.repo.ListActiveSessions(context.Background(), &ListActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(listed.Sessions)

	// Only the five accepted clicks reached the ledger
	entries, err := s.client.LLen(context.Background(), "session:test-session-id:clicks").Result()
	s.Require().NoError(err)
	s.Equal(int64(5), entries)
}

func (s *RedisRepositoryTestSuite) TestIncrementClickUnlimitedTarget() {
	sess := s.newTestSession("test-session-id", 0)
	s.createSession(sess)

	for i := 1; i <= 10; i++ {
		out, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
			SessionID: "test-session-id",
			UserID:    "test-user-id",
		})
		s.Require().NoError(err)
		s.True(out.Accepted)
		s.False(out.Completed)
		s.Equal(i, out.NewCount)
	}
}

func (s *RedisRepositoryTestSuite) TestIncrementClickSessionNotFound() {
	_, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
		SessionID: "missing-session-id",
		UserID:    "test-user-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestIncrementClickBumpsParticipantCounter() {
	sess := s.newTestSession("test-session-id", 33)
	s.createSession(sess)

	// Seed the participant row the counter lives on
	err := s.client.HSet(context.Background(), "participant:test-participant-id",
		"id", "test-participant-id",
		"session_id", "test-session-id",
		"click_count", "0",
	).Err()
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		out, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
			SessionID:     "test-session-id",
			UserID:        "test-user-id",
			ParticipantID: "test-participant-id",
		})
		s.Require().NoError(err)
		s.True(out.Accepted)
	}

	count, err := s.client.HGet(context.Background(), "participant:test-participant-id", "click_count").Result()
	s.Require().NoError(err)
	s.Equal("3", count)
}

func (s *RedisRepositoryTestSuite) TestCreateAutoSessionGuard() {
	first := s.newTestSession("first-auto-id", 0)
	first.Auto = true
	first.PrayerPeriod = models.PeriodFajrDhuhr

	out, err := s.repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: first,
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("first-auto-id", out.SessionID)

	// A concurrent second creation loses the guard and learns the winner
	second := s.newTestSession("second-auto-id", 0)
	second.Auto = true
	second.PrayerPeriod = models.PeriodFajrDhuhr

	out, err = s.repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: second,
	})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal("first-auto-id", out.SessionID)

	// The loser's row was never written
	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "second-auto-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	guard, err := s.repo.GetActiveAutoSessionID(context.Background(), &GetActiveAutoSessionIDInput{})
	s.Require().NoError(err)
	s.Equal("first-auto-id", guard.SessionID)
}

func (s *RedisRepositoryTestSuite) TestCreateAutoSessionRejectsNonAuto() {
	sess := s.newTestSession("test-session-id", 33)

	_, err := s.repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: sess,
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestReleaseAutoSession() {
	auto := s.newTestSession("auto-session-id", 0)
	auto.Auto = true

	_, err := s.repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: auto,
	})
	s.Require().NoError(err)

	// Releasing with a different ID leaves the guard in place
	err = s.repo.ReleaseAutoSession(context.Background(), &ReleaseAutoSessionInput{
		SessionID: "other-session-id",
	})
	s.Require().NoError(err)

	guard, err := s.repo.GetActiveAutoSessionID(context.Background(), &GetActiveAutoSessionIDInput{})
	s.Require().NoError(err)
	s.Equal("auto-session-id", guard.SessionID)

	// Releasing with the matching ID clears the guard
	err = s.repo.ReleaseAutoSession(context.Background(), &ReleaseAutoSessionInput{
		SessionID: "auto-session-id",
	})
	s.Require().NoError(err)

	guard, err = s.repo.GetActiveAutoSessionID(context.Background(), &GetActiveAutoSessionIDInput{})
	s.Require().NoError(err)
	s.Empty(guard.SessionID)
}

func (s *RedisRepositoryTestSuite) TestDeleteAutoSessionReleasesGuard() {
	auto := s.newTestSession("auto-session-id", 0)
	auto.Auto = true

	_, err := s.repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: auto,
	})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "auto-session-id",
	})
	s.Require().NoError(err)

	guard, err := s.repo.GetActiveAutoSessionID(context.Background(), &GetActiveAutoSessionIDInput{})
	s.Require().NoError(err)
	s.Empty(guard.SessionID)
}

// TestIncrementClickConcurrentClientsClampAtTarget drives three clients
// clicking in parallel past a target of five. Whatever the interleaving,
// the stored count must equal the number of accepted clicks, never pass
// the target, and at most one click may observe the completion transition.
func (s *RedisRepositoryTestSuite) TestIncrementClickConcurrentClientsClampAtTarget() {
	sess := s.newTestSession("test-session-id", 5)
	s.createSession(sess)

	const clients = 3
	const clicksPerClient = 2

	type result struct {
		out *IncrementClickOutput
		err error
	}

	results := make(chan result, clients*clicksPerClient)

	var wg sync.WaitGroup
	for c := 0; c < clients; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < clicksPerClient; i++ {
				out, err := s.repo.IncrementClick(context.Background(), &IncrementClickInput{
					SessionID: "test-session-id",
					UserID:    "test-user-id",
				})
				results <- result{out: out, err: err}
			}
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	rejected := 0
	completions := 0
	conflicts := 0
	for res := range results {
		if errors.Is(res.err, ErrConflict) {
			// The fallback strategy may give up under contention; a
			// conflicted click is dropped, never double counted.
			conflicts++
			continue
		}
		s.Require().NoError(res.err)
		if res.out.Accepted {
			accepted++
		} else {
			rejected++
		}
		if res.out.Completed {
			completions++
		}
	}

	s.Equal(clients*clicksPerClient, accepted+rejected+conflicts)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	// The counter moved once per accepted click and stopped at the target
	s.Equal(accepted, retrieved.CurrentCount)
	s.LessOrEqual(retrieved.CurrentCount, 5)

	if retrieved.CurrentCount == 5 {
		s.Equal(1, completions)
		s.False(retrieved.Active)
		s.Require().NotNil(retrieved.CompletedAt)
	} else {
		s.Equal(0, completions)
		s.True(retrieved.Active)
	}

	// Each accepted click left exactly one ledger entry
	entries, err := s.client.LLen(context.Background(), "session:test-session-id:clicks").Result()
	s.Require().NoError(err)
	s.Equal(int64(accepted), entries)
}

// guardVanishHook deletes the auto guard right before the follow-up read,
// reproducing a release landing between a failed claim and that read.
type guardVanishHook struct {
	mr    *miniredis.Miniredis
	fired bool
}

func (h *guardVanishHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *guardVanishHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if !h.fired && cmd.Name() == "get" && len(cmd.Args()) > 1 && cmd.Args()[1] == autoActiveKey {
			h.fired = true
			h.mr.Del(autoActiveKey)
		}
		return next(ctx, cmd)
	}
}

func (h *guardVanishHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// A claim race loser must never report an empty winner: when the guard
// vanishes before the loser reads it back, the fallback path contends for
// the guard again and wins it.
func TestCreateAutoSessionManualReclaimsVanishedGuard(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	client.AddHook(&guardVanishHook{mr: mr})

	repo, err := NewRedis(&Config{
		RedisClient:      client,
		DisableScripting: true,
	})
	require.NoError(t, err)

	require.NoError(t, mr.Set(autoActiveKey, "departing-session-id"))

	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	out, err := repo.CreateAutoSession(context.Background(), &CreateAutoSessionInput{
		Session: &models.Session{
			ID:           "auto-session-id",
			Name:         "Morning Adhkar",
			Text:         "سُبْحَانَ اللَّهِ",
			Active:       true,
			Open:         true,
			Auto:         true,
			PrayerPeriod: models.PeriodFajrDhuhr,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	})
	require.NoError(t, err)
	require.True(t, out.Created)
	require.Equal(t, "auto-session-id", out.SessionID)
}
