package models

import (
	"time"
)

// PrayerTimes holds today's five canonical prayer instants
type PrayerTimes struct {
	// Date is the civil day the times belong to
	Date time.Time

	// Fajr is the dawn prayer instant
	Fajr time.Time

	// Dhuhr is the noon prayer instant
	Dhuhr time.Time

	// Asr is the afternoon prayer instant
	Asr time.Time

	// Maghrib is the sunset prayer instant
	Maghrib time.Time

	// Isha is the night prayer instant
	Isha time.Time
}

// Invocation is one piece of period-appropriate dhikr content
type Invocation struct {
	// Text is the Arabic text of the invocation
	Text string

	// Transliteration is the latin-script rendering
	Transliteration string

	// Translation is the translated meaning
	Translation string

	// Reference is the source citation
	Reference string
}
