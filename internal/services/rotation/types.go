package rotation

import (
	"time"

	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/content"
	"github.com/hidayahlabs/dhikrd/internal/models"
	"github.com/hidayahlabs/dhikrd/internal/prayertimes"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the rotation service
type Config struct {
	// Interval between periodic rotation checks
	Interval time.Duration

	// Service dependencies
	Sessions sessionService.Service
	Resolver prayertimes.Resolver
	Content  content.Provider
	Clock    clock.Clock

	// Logger defaults to the standard logger
	Logger *logrus.Logger
}

// EnsureAutoSessionInput contains parameters for one rotation check
type EnsureAutoSessionInput struct {
	// Latitude and Longitude optionally override the resolver's default
	// location
	Latitude  float64
	Longitude float64
}

// EnsureAutoSessionOutput contains the result of one rotation check
type EnsureAutoSessionOutput struct {
	// SessionID is the automatic session for the current period
	SessionID string

	// Period is the resolved prayer period
	Period models.PrayerPeriod

	// Rotated is true when stale sessions were replaced during this call
	Rotated bool
}
