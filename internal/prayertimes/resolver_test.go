package prayertimes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hidayahlabs/dhikrd/internal/common/clock/mocks"
)

type ResolverTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	testNow   time.Time
}

func (s *ResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()
}

func (s *ResolverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) newResolver(baseURL string) Resolver {
	resolver, err := New(&Config{
		BaseURL:           baseURL,
		DefaultLatitude:   21.4225,
		DefaultLongitude:  39.8262,
		CalculationMethod: 2,
		Clock:             s.mockClock,
	})
	s.Require().NoError(err)
	return resolver
}

func (s *ResolverTestSuite) TestGetTodayPrayerTimes() {
	var requestedPath string
	var requestedQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		requestedQuery = r.URL.Query()

		s.Require().NoError(json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]interface{}{
				"timings": map[string]string{
					"Fajr":    "05:00",
					"Dhuhr":   "12:00",
					"Asr":     "15:30",
					"Maghrib": "18:45 (+03)",
					"Isha":    "20:00",
				},
			},
		}))
	}))
	defer server.Close()

	resolver := s.newResolver(server.URL)

	times, err := resolver.GetTodayPrayerTimes(context.Background(), &GetTodayPrayerTimesInput{})
	s.Require().NoError(err)

	// Today's date goes into the path, the location into the query
	s.Equal("/timings/19-04-2025", requestedPath)
	s.Equal("2", requestedQuery["method"][0])
	s.NotEmpty(requestedQuery["latitude"])
	s.NotEmpty(requestedQuery["longitude"])

	day := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)
	s.True(times.Date.Equal(day))
	s.True(times.Fajr.Equal(day.Add(5 * time.Hour)))
	s.True(times.Dhuhr.Equal(day.Add(12 * time.Hour)))
	s.True(times.Asr.Equal(day.Add(15*time.Hour + 30*time.Minute)))
	// The timezone suffix on Maghrib is dropped
	s.True(times.Maghrib.Equal(day.Add(18*time.Hour + 45*time.Minute)))
	s.True(times.Isha.Equal(day.Add(20 * time.Hour)))
}

func (s *ResolverTestSuite) TestGetTodayPrayerTimesOverridesLocation() {
	var requestedQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedQuery = r.URL.Query()

		s.Require().NoError(json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]interface{}{
				"timings": map[string]string{
					"Fajr":    "05:00",
					"Dhuhr":   "12:00",
					"Asr":     "15:30",
					"Maghrib": "18:45",
					"Isha":    "20:00",
				},
			},
		}))
	}))
	defer server.Close()

	resolver := s.newResolver(server.URL)

	_, err := resolver.GetTodayPrayerTimes(context.Background(), &GetTodayPrayerTimesInput{
		Latitude:  51.5074,
		Longitude: -0.1278,
	})
	s.Require().NoError(err)
	s.Equal("51.507400", requestedQuery["latitude"][0])
	s.Equal("-0.127800", requestedQuery["longitude"][0])
}

func (s *ResolverTestSuite) TestGetTodayPrayerTimesUpstreamError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := s.newResolver(server.URL)

	_, err := resolver.GetTodayPrayerTimes(context.Background(), &GetTodayPrayerTimesInput{})
	s.Require().ErrorIs(err, ErrUnavailable)
}

func (s *ResolverTestSuite) TestGetTodayPrayerTimesMissingTiming() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]interface{}{
				"timings": map[string]string{
					"Fajr": "05:00",
				},
			},
		}))
	}))
	defer server.Close()

	resolver := s.newResolver(server.URL)

	_, err := resolver.GetTodayPrayerTimes(context.Background(), &GetTodayPrayerTimesInput{})
	s.Require().ErrorIs(err, ErrUnavailable)
}

func (s *ResolverTestSuite) TestGetTodayPrayerTimesUnreachable() {
	resolver := s.newResolver("http://127.0.0.1:1")

	_, err := resolver.GetTodayPrayerTimes(context.Background(), &GetTodayPrayerTimesInput{})
	s.Require().ErrorIs(err, ErrUnavailable)
}
