package prayertimes

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/hidayahlabs/dhikrd/internal/prayertimes Resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/models"
)

// ErrUnavailable is returned when prayer times cannot be resolved. Callers
// treat it as non-fatal and retry on a later invocation.
var ErrUnavailable = errors.New("prayer times unavailable")

// Resolver supplies today's five canonical prayer instants
type Resolver interface {
	// GetTodayPrayerTimes returns today's prayer times for the given
	// location, or for the configured default location when none is given
	GetTodayPrayerTimes(ctx context.Context, input *GetTodayPrayerTimesInput) (*models.PrayerTimes, error)
}

// GetTodayPrayerTimesInput optionally overrides the default location
type GetTodayPrayerTimesInput struct {
	// Latitude and Longitude of the caller; both zero means use the default
	Latitude  float64
	Longitude float64
}

// Config holds configuration for the AlAdhan-backed resolver
type Config struct {
	// BaseURL of the AlAdhan API
	BaseURL string

	// HTTPClient used for requests; defaults to a client with a timeout
	HTTPClient *http.Client

	// DefaultLatitude and DefaultLongitude are used when the caller passes
	// no location
	DefaultLatitude  float64
	DefaultLongitude float64

	// CalculationMethod is the AlAdhan calculation method ID
	CalculationMethod int

	// Clock supplies today's date
	Clock clock.Clock
}

const defaultBaseURL = "https://api.aladhan.com/v1"

// httpResolver implements Resolver against the AlAdhan REST API
type httpResolver struct {
	baseURL string
	client  *http.Client
	lat     float64
	lng     float64
	method  int
	clock   clock.Clock
}

// New creates a new AlAdhan-backed resolver
func New(cfg *Config) (*httpResolver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &httpResolver{
		baseURL: baseURL,
		client:  client,
		lat:     cfg.DefaultLatitude,
		lng:     cfg.DefaultLongitude,
		method:  cfg.CalculationMethod,
		clock:   clk,
	}, nil
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// GetTodayPrayerTimes fetches today's timings from the AlAdhan API
func (r *httpResolver) GetTodayPrayerTimes(ctx context.Context, input *GetTodayPrayerTimesInput) (*models.PrayerTimes, error) {
	lat, lng := r.lat, r.lng
	if input != nil && (input.Latitude != 0 || input.Longitude != 0) {
		lat, lng = input.Latitude, input.Longitude
	}

	now := r.clock.Now()

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", lat))
	query.Set("longitude", fmt.Sprintf("%f", lng))
	query.Set("method", fmt.Sprintf("%d", r.method))

	endpoint := fmt.Sprintf("%s/timings/%s?%s", r.baseURL, now.Format("02-01-2006"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	times := &models.PrayerTimes{
		Date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	for name, dst := range map[string]*time.Time{
		"Fajr":    &times.Fajr,
		"Dhuhr":   &times.Dhuhr,
		"Asr":     &times.Asr,
		"Maghrib": &times.Maghrib,
		"Isha":    &times.Isha,
	} {
		instant, err := parseTiming(body.Data.Timings[name], now)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
		}
		*dst = instant
	}

	return times, nil
}

// parseTiming converts an AlAdhan "HH:MM" value (occasionally suffixed with
// a timezone tag) to an instant on the given day
func parseTiming(value string, day time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("missing timing")
	}

	if idx := strings.IndexByte(value, ' '); idx > 0 {
		value = value[:idx]
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
