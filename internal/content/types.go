package content

import "github.com/hidayahlabs/dhikrd/internal/models"

// GetRandomInvocationInput contains parameters for picking an invocation
type GetRandomInvocationInput struct {
	// Period selects the catalog to pick from
	Period models.PrayerPeriod
}

// GetRandomInvocationOutput contains the picked invocation
type GetRandomInvocationOutput struct {
	Invocation *models.Invocation
}

// GetPeriodDisplayNameInput contains parameters for naming a period
type GetPeriodDisplayNameInput struct {
	Period models.PrayerPeriod
}

// GetPeriodDisplayNameOutput contains the display name
type GetPeriodDisplayNameOutput struct {
	Name string
}
