package models

import (
	"time"
)

// PrayerPeriod labels the interval between two consecutive daily prayers.
// Automatic sessions are scoped to exactly one period.
type PrayerPeriod string

const (
	// PeriodFajrDhuhr covers the interval from Fajr until Dhuhr
	PeriodFajrDhuhr PrayerPeriod = "fajr-dhuhr"

	// PeriodDhuhrAsr covers the interval from Dhuhr until Asr
	PeriodDhuhrAsr PrayerPeriod = "dhuhr-asr"

	// PeriodAsrMaghrib covers the interval from Asr until Maghrib
	PeriodAsrMaghrib PrayerPeriod = "asr-maghrib"

	// PeriodMaghribIsha covers the interval from Maghrib until Isha
	PeriodMaghribIsha PrayerPeriod = "maghrib-isha"

	// PeriodIshaFajr covers the night interval from Isha until the next Fajr
	PeriodIshaFajr PrayerPeriod = "isha-fajr"
)

// Session represents a shared dhikr counting activity
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// CreatorID is the user ID who created the session (empty for automatic sessions)
	CreatorID string

	// Name is the display name of the session
	Name string

	// Text is the dhikr text being recited
	Text string

	// Transliteration is the latin-script rendering of the text
	Transliteration string

	// Translation is the translated meaning of the text
	Translation string

	// Reference is the source citation for the text
	Reference string

	// TargetCount is the shared goal; 0 means unlimited
	TargetCount int

	// CurrentCount is the number of accepted clicks so far
	CurrentCount int

	// Active indicates the session still accepts clicks
	Active bool

	// Open indicates the session accepts new joins
	Open bool

	// Private indicates the session is invite-only
	Private bool

	// Auto indicates a system-created session rotated at prayer boundaries
	Auto bool

	// PrayerPeriod is set only for automatic sessions
	PrayerPeriod PrayerPeriod

	// MaxParticipants caps the number of joined participants
	MaxParticipants int

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time

	// CompletedAt is set only when the session reached its target
	CompletedAt *time.Time
}

// Unlimited reports whether the session has no target count.
func (s *Session) Unlimited() bool {
	return s.TargetCount == 0
}
