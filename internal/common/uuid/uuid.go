package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/hidayahlabs/dhikrd/internal/common/uuid UUID

// UUID mints identifiers for sessions, participants and click events. An
// interface so service tests can fix the generated ids.
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random version-4 identifiers.
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a fresh identifier in canonical string form.
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
