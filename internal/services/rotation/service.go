package rotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/content"
	"github.com/hidayahlabs/dhikrd/internal/prayertimes"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
)

// ErrPeriodUnresolved is returned when the current prayer period cannot be
// determined; the rotation is skipped and retried on a later invocation
var ErrPeriodUnresolved = errors.New("prayer period could not be resolved")

const defaultInterval = time.Minute

// service implements the Service interface
type service struct {
	interval time.Duration
	sessions sessionService.Service
	resolver prayertimes.Resolver
	content  content.Provider
	clock    clock.Clock
	logger   *logrus.Logger
}

// New creates a new rotation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.Resolver == nil {
		return nil, errors.New("prayer times resolver cannot be nil")
	}

	if cfg.Content == nil {
		return nil, errors.New("content provider cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		interval: interval,
		sessions: cfg.Sessions,
		resolver: cfg.Resolver,
		content:  cfg.Content,
		clock:    cfg.Clock,
		logger:   logger,
	}, nil
}

// EnsureAutoSession converges the store on one automatic session for the
// current period
func (s *service) EnsureAutoSession(ctx context.Context, input *EnsureAutoSessionInput) (*EnsureAutoSessionOutput, error) {
	if input == nil {
		input = &EnsureAutoSessionInput{}
	}

	times, err := s.resolver.GetTodayPrayerTimes(ctx, &prayertimes.GetTodayPrayerTimesInput{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriodUnresolved, err)
	}

	period := prayertimes.CurrentPeriod(s.clock.Now(), times)

	autos, err := s.sessions.ListActiveAutoSessions(ctx, &sessionService.ListActiveAutoSessionsInput{})
	if err != nil {
		return nil, err
	}

	// No churn within a period: an automatic session already carrying the
	// resolved period is up to date
	for _, sess := range autos.Sessions {
		if sess.PrayerPeriod == period {
			return &EnsureAutoSessionOutput{
				SessionID: sess.ID,
				Period:    period,
			}, nil
		}
	}

	// Automatic sessions are ephemeral and scoped to one period. Stale ones
	// are deleted unconditionally, participants included; content from a
	// past period persisting across the boundary is a correctness defect.
	for _, sess := range autos.Sessions {
		if _, err := s.sessions.DeleteSession(ctx, &sessionService.DeleteSessionInput{
			SessionID: sess.ID,
			IsAdmin:   true,
		}); err != nil && !errors.Is(err, sessionService.ErrSessionNotFound) {
			return nil, err
		}

		s.logger.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"old_period": sess.PrayerPeriod,
			"new_period": period,
		}).Info("rotated out stale automatic session")
	}

	invocation, err := s.content.GetRandomInvocation(ctx, &content.GetRandomInvocationInput{Period: period})
	if err != nil {
		return nil, err
	}

	name, err := s.content.GetPeriodDisplayName(ctx, &content.GetPeriodDisplayNameInput{Period: period})
	if err != nil {
		return nil, err
	}

	created, err := s.sessions.CreateAutoSession(ctx, &sessionService.CreateAutoSessionInput{
		Period:     period,
		Name:       name.Name,
		Invocation: invocation.Invocation,
	})
	if err != nil {
		return nil, err
	}

	if !created.Created {
		s.logger.WithFields(logrus.Fields{
			"session_id": created.SessionID,
			"period":     period,
		}).Info("another client created the automatic session first")
	}

	return &EnsureAutoSessionOutput{
		SessionID: created.SessionID,
		Period:    period,
		Rotated:   created.Created,
	}, nil
}

// Run invokes EnsureAutoSession on a periodic tick until the context is
// canceled
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.EnsureAutoSession(ctx, &EnsureAutoSessionInput{}); err != nil {
			// Transient misses self-heal on the next tick
			s.logger.WithError(err).Warn("rotation check failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
