package prayertimes

import (
	"time"

	"github.com/hidayahlabs/dhikrd/internal/models"
)

// CurrentPeriod derives the prayer period containing now. The ordering is
// cyclic Fajr→Dhuhr→Asr→Maghrib→Isha→Fajr; the night interval after Isha
// and before the next Fajr is "isha-fajr".
func CurrentPeriod(now time.Time, times *models.PrayerTimes) models.PrayerPeriod {
	switch {
	case now.Before(times.Fajr):
		return models.PeriodIshaFajr
	case now.Before(times.Dhuhr):
		return models.PeriodFajrDhuhr
	case now.Before(times.Asr):
		return models.PeriodDhuhrAsr
	case now.Before(times.Maghrib):
		return models.PeriodAsrMaghrib
	case now.Before(times.Isha):
		return models.PeriodMaghribIsha
	default:
		return models.PeriodIshaFajr
	}
}
