package rotation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hidayahlabs/dhikrd/internal/common/clock/mocks"
	"github.com/hidayahlabs/dhikrd/internal/content"
	contentMocks "github.com/hidayahlabs/dhikrd/internal/content/mocks"
	"github.com/hidayahlabs/dhikrd/internal/models"
	"github.com/hidayahlabs/dhikrd/internal/prayertimes"
	prayerMocks "github.com/hidayahlabs/dhikrd/internal/prayertimes/mocks"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
	sessionMocks "github.com/hidayahlabs/dhikrd/internal/services/session/mocks"
)

type RotationServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSessions *sessionMocks.MockService
	mockResolver *prayerMocks.MockResolver
	mockContent  *contentMocks.MockProvider
	mockClock    *clockMocks.MockClock
	service      Service
	ctx          context.Context

	// Test data
	testTimes      *models.PrayerTimes
	testInvocation *models.Invocation
}

func (s *RotationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.mockResolver = prayerMocks.NewMockResolver(s.mockCtrl)
	s.mockContent = contentMocks.NewMockProvider(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	day := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)
	s.testTimes = &models.PrayerTimes{
		Date:    day,
		Fajr:    day.Add(5 * time.Hour),
		Dhuhr:   day.Add(12 * time.Hour),
		Asr:     day.Add(15*time.Hour + 30*time.Minute),
		Maghrib: day.Add(18*time.Hour + 45*time.Minute),
		Isha:    day.Add(20 * time.Hour),
	}

	s.testInvocation = &models.Invocation{
		Text:            "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ",
		Transliteration: "Asbahna wa asbahal-mulku lillah",
		Translation:     "We have entered the morning and the dominion belongs to Allah",
	}

	service, err := New(&Config{
		Sessions: s.mockSessions,
		Resolver: s.mockResolver,
		Content:  s.mockContent,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *RotationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotationServiceTestSuite))
}

// morning is between Fajr and Dhuhr on the test day
func (s *RotationServiceTestSuite) morning() time.Time {
	return s.testTimes.Date.Add(9 * time.Hour)
}

func (s *RotationServiceTestSuite) expectResolved() {
	s.mockResolver.EXPECT().
		GetTodayPrayerTimes(s.ctx, &prayertimes.GetTodayPrayerTimesInput{}).
		Return(s.testTimes, nil)
}

func (s *RotationServiceTestSuite) TestEnsureKeepsMatchingSession() {
	s.expectResolved()
	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{
			Sessions: []*models.Session{
				{
					ID:           "current-auto-id",
					Auto:         true,
					Active:       true,
					PrayerPeriod: models.PeriodFajrDhuhr,
				},
			},
		}, nil)

	out, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)
	s.Equal("current-auto-id", out.SessionID)
	s.Equal(models.PeriodFajrDhuhr, out.Period)
	s.False(out.Rotated)
}

func (s *RotationServiceTestSuite) TestEnsureIsIdempotentWithinPeriod() {
	// Two calls inside the same period return the same session and never
	// touch the delete or create paths
	for i := 0; i < 2; i++ {
		s.expectResolved()
		s.mockClock.EXPECT().Now().Return(s.morning())
		s.mockSessions.EXPECT().
			ListActiveAutoSessions(s.ctx, gomock.Any()).
			Return(&sessionService.ListActiveAutoSessionsOutput{
				Sessions: []*models.Session{
					{ID: "current-auto-id", Auto: true, PrayerPeriod: models.PeriodFajrDhuhr},
				},
			}, nil)
	}

	first, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)

	second, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)

	s.Equal(first.SessionID, second.SessionID)
}

func (s *RotationServiceTestSuite) TestEnsureRotatesStaleSession() {
	s.expectResolved()
	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{
			Sessions: []*models.Session{
				{
					ID:           "stale-auto-id",
					Auto:         true,
					PrayerPeriod: models.PeriodIshaFajr,
				},
			},
		}, nil)

	// The stale session is deleted with its participants, no grace period
	s.mockSessions.EXPECT().
		DeleteSession(s.ctx, &sessionService.DeleteSessionInput{
			SessionID: "stale-auto-id",
			IsAdmin:   true,
		}).
		Return(&sessionService.DeleteSessionOutput{Success: true}, nil)

	s.mockContent.EXPECT().
		GetRandomInvocation(s.ctx, &content.GetRandomInvocationInput{Period: models.PeriodFajrDhuhr}).
		Return(&content.GetRandomInvocationOutput{Invocation: s.testInvocation}, nil)

	s.mockContent.EXPECT().
		GetPeriodDisplayName(s.ctx, &content.GetPeriodDisplayNameInput{Period: models.PeriodFajrDhuhr}).
		Return(&content.GetPeriodDisplayNameOutput{Name: "Morning Adhkar"}, nil)

	s.mockSessions.EXPECT().
		CreateAutoSession(s.ctx, &sessionService.CreateAutoSessionInput{
			Period:     models.PeriodFajrDhuhr,
			Name:       "Morning Adhkar",
			Invocation: s.testInvocation,
		}).
		Return(&sessionService.CreateAutoSessionOutput{
			SessionID: "fresh-auto-id",
			Created:   true,
		}, nil)

	out, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)
	s.Equal("fresh-auto-id", out.SessionID)
	s.Equal(models.PeriodFajrDhuhr, out.Period)
	s.True(out.Rotated)
}

func (s *RotationServiceTestSuite) TestEnsureCreatesWhenNoneExists() {
	s.expectResolved()
	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{Sessions: []*models.Session{}}, nil)

	s.mockContent.EXPECT().
		GetRandomInvocation(s.ctx, gomock.Any()).
		Return(&content.GetRandomInvocationOutput{Invocation: s.testInvocation}, nil)

	s.mockContent.EXPECT().
		GetPeriodDisplayName(s.ctx, gomock.Any()).
		Return(&content.GetPeriodDisplayNameOutput{Name: "Morning Adhkar"}, nil)

	s.mockSessions.EXPECT().
		CreateAutoSession(s.ctx, gomock.Any()).
		Return(&sessionService.CreateAutoSessionOutput{
			SessionID: "fresh-auto-id",
			Created:   true,
		}, nil)

	out, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)
	s.Equal("fresh-auto-id", out.SessionID)
}

func (s *RotationServiceTestSuite) TestEnsureToleratesCreationRaceLoss() {
	s.expectResolved()
	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{Sessions: []*models.Session{}}, nil)

	s.mockContent.EXPECT().
		GetRandomInvocation(s.ctx, gomock.Any()).
		Return(&content.GetRandomInvocationOutput{Invocation: s.testInvocation}, nil)

	s.mockContent.EXPECT().
		GetPeriodDisplayName(s.ctx, gomock.Any()).
		Return(&content.GetPeriodDisplayNameOutput{Name: "Morning Adhkar"}, nil)

	s.mockSessions.EXPECT().
		CreateAutoSession(s.ctx, gomock.Any()).
		Return(&sessionService.CreateAutoSessionOutput{
			SessionID: "winner-auto-id",
			Created:   false,
		}, nil)

	out, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)
	s.Equal("winner-auto-id", out.SessionID)
	s.False(out.Rotated)
}

func (s *RotationServiceTestSuite) TestEnsureToleratesConcurrentDeletion() {
	s.expectResolved()
	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{
			Sessions: []*models.Session{
				{ID: "stale-auto-id", Auto: true, PrayerPeriod: models.PeriodIshaFajr},
			},
		}, nil)

	// Another instance already rotated this session out
	s.mockSessions.EXPECT().
		DeleteSession(s.ctx, gomock.Any()).
		Return(nil, sessionService.ErrSessionNotFound)

	s.mockContent.EXPECT().
		GetRandomInvocation(s.ctx, gomock.Any()).
		Return(&content.GetRandomInvocationOutput{Invocation: s.testInvocation}, nil)

	s.mockContent.EXPECT().
		GetPeriodDisplayName(s.ctx, gomock.Any()).
		Return(&content.GetPeriodDisplayNameOutput{Name: "Morning Adhkar"}, nil)

	s.mockSessions.EXPECT().
		CreateAutoSession(s.ctx, gomock.Any()).
		Return(&sessionService.CreateAutoSessionOutput{
			SessionID: "fresh-auto-id",
			Created:   true,
		}, nil)

	_, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().NoError(err)
}

func (s *RotationServiceTestSuite) TestEnsureSkipsWhenPeriodUnresolved() {
	s.mockResolver.EXPECT().
		GetTodayPrayerTimes(s.ctx, gomock.Any()).
		Return(nil, errors.New("upstream timeout"))

	_, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{})
	s.Require().ErrorIs(err, ErrPeriodUnresolved)
}

func (s *RotationServiceTestSuite) TestEnsureForwardsLocationOverride() {
	s.mockResolver.EXPECT().
		GetTodayPrayerTimes(s.ctx, &prayertimes.GetTodayPrayerTimesInput{
			Latitude:  51.5074,
			Longitude: -0.1278,
		}).
		Return(s.testTimes, nil)

	s.mockClock.EXPECT().Now().Return(s.morning())

	s.mockSessions.EXPECT().
		ListActiveAutoSessions(s.ctx, gomock.Any()).
		Return(&sessionService.ListActiveAutoSessionsOutput{
			Sessions: []*models.Session{
				{ID: "current-auto-id", Auto: true, PrayerPeriod: models.PeriodFajrDhuhr},
			},
		}, nil)

	_, err := s.service.EnsureAutoSession(s.ctx, &EnsureAutoSessionInput{
		Latitude:  51.5074,
		Longitude: -0.1278,
	})
	s.Require().NoError(err)
}
