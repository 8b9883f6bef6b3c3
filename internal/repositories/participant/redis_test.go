package participant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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
		RedisClient: s.client,
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

func (s *RedisRepositoryTestSuite) newTestParticipant(id, userID string) *models.Participant {
	return &models.Participant{
		ID:        id,
		SessionID: "test-session-id",
		UserID:    userID,
		JoinedAt:  s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndGetParticipant() {
	p := s.newTestParticipant("test-participant-id", "test-user-id")

	out, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyJoined)
	s.Equal("test-participant-id", out.Participant.ID)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "test-participant-id",
	})
	s.Require().NoError(err)
	s.Equal(p.ID, retrieved.ID)
	s.Equal(p.SessionID, retrieved.SessionID)
	s.Equal(p.UserID, retrieved.UserID)
	s.Equal(0, retrieved.ClickCount)
	s.True(p.JoinedAt.Equal(retrieved.JoinedAt))
}

func (s *RedisRepositoryTestSuite) TestAddParticipantIdempotent() {
	first := s.newTestParticipant("first-participant-id", "test-user-id")

	out, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: first,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyJoined)

	// A second join by the same user lands on the existing row
	second := s.newTestParticipant("second-participant-id", "test-user-id")

	out, err = s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: second,
	})
	s.Require().NoError(err)
	s.True(out.AlreadyJoined)
	s.Equal("first-participant-id", out.Participant.ID)

	count, err := s.repo.CountParticipants(context.Background(), &CountParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *RedisRepositoryTestSuite) TestAddAnonymousParticipantsNeverCollapse() {
	// Anonymous rows have no user identity to be idempotent on
	for _, id := range []string{"anon-one", "anon-two"} {
		out, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
			Participant: s.newTestParticipant(id, ""),
		})
		s.Require().NoError(err)
		s.False(out.AlreadyJoined)
	}

	count, err := s.repo.CountParticipants(context.Background(), &CountParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(2, count.Count)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "missing-participant-id",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantByUser() {
	p := s.newTestParticipant("test-participant-id", "test-user-id")

	_, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipantByUser(context.Background(), &GetParticipantByUserInput{
		SessionID: "test-session-id",
		UserID:    "test-user-id",
	})
	s.Require().NoError(err)
	s.Equal("test-participant-id", retrieved.ID)

	_, err = s.repo.GetParticipantByUser(context.Background(), &GetParticipantByUserInput{
		SessionID: "test-session-id",
		UserID:    "other-user-id",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestListParticipants() {
	for _, p := range []*models.Participant{
		s.newTestParticipant("participant-one", "user-one"),
		s.newTestParticipant("participant-two", "user-two"),
		s.newTestParticipant("participant-three", ""),
	} {
		_, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
			Participant: p,
		})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Len(listed.Participants, 3)
}

func (s *RedisRepositoryTestSuite) TestRemoveParticipant() {
	p := s.newTestParticipant("test-participant-id", "test-user-id")

	_, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	err = s.repo.RemoveParticipant(context.Background(), &RemoveParticipantInput{
		SessionID: "test-session-id",
		UserID:    "test-user-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "test-participant-id",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)

	// Removing again reports not found
	err = s.repo.RemoveParticipant(context.Background(), &RemoveParticipantInput{
		SessionID: "test-session-id",
		UserID:    "test-user-id",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)

	// The user can join again after leaving
	rejoined := s.newTestParticipant("rejoined-participant-id", "test-user-id")
	out, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		Participant: rejoined,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyJoined)
}

func (s *RedisRepositoryTestSuite) TestDeleteAllForSession() {
	for _, p := range []*models.Participant{
		s.newTestParticipant("participant-one", "user-one"),
		s.newTestParticipant("participant-two", "user-two"),
	} {
		_, err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
			Participant: p,
		})
		s.Require().NoError(err)
	}

	// user-one holds a private slot for this session
	claim, err := s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "user-one",
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.True(claim.Claimed)

	err = s.repo.DeleteAllForSession(context.Background(), &DeleteAllForSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	count, err := s.repo.CountParticipants(context.Background(), &CountParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Zero(count.Count)

	// The private slot was freed with the membership
	claim, err = s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "user-one",
		SessionID: "another-session-id",
	})
	s.Require().NoError(err)
	s.True(claim.Claimed)

	// Deleting an already-empty session is a no-op
	err = s.repo.DeleteAllForSession(context.Background(), &DeleteAllForSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestClaimPrivateMembership() {
	claim, err := s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "first-session-id",
	})
	s.Require().NoError(err)
	s.True(claim.Claimed)

	// A second private session is rejected and names the holder
	claim, err = s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "second-session-id",
	})
	s.Require().NoError(err)
	s.False(claim.Claimed)
	s.Equal("first-session-id", claim.HeldBySessionID)

	// Rejoining the held session is fine
	claim, err = s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "first-session-id",
	})
	s.Require().NoError(err)
	s.True(claim.Claimed)
}

func (s *RedisRepositoryTestSuite) TestReleasePrivateMembership() {
	_, err := s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "first-session-id",
	})
	s.Require().NoError(err)

	// Releasing for a different session leaves the slot held
	err = s.repo.ReleasePrivateMembership(context.Background(), &ReleasePrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "other-session-id",
	})
	s.Require().NoError(err)

	claim, err := s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "second-session-id",
	})
	s.Require().NoError(err)
	s.False(claim.Claimed)

	// Matching release frees the slot
	err = s.repo.ReleasePrivateMembership(context.Background(), &ReleasePrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "first-session-id",
	})
	s.Require().NoError(err)

	claim, err = s.repo.ClaimPrivateMembership(context.Background(), &ClaimPrivateMembershipInput{
		UserID:    "test-user-id",
		SessionID: "second-session-id",
	})
	s.Require().NoError(err)
	s.True(claim.Claimed)

	// Releasing an unheld slot is a no-op
	err = s.repo.ReleasePrivateMembership(context.Background(), &ReleasePrivateMembershipInput{
		UserID:    "unknown-user-id",
		SessionID: "first-session-id",
	})
	s.Require().NoError(err)
}
