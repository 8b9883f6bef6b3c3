package clickevent

import "github.com/hidayahlabs/dhikrd/internal/models"

type AppendClickInput struct {
	Event *models.ClickEvent
}

type ListClicksInput struct {
	SessionID string
}

type ListClicksOutput struct {
	Events []*models.ClickEvent
}

type CountClicksInput struct {
	SessionID string
}

type CountClicksOutput struct {
	Count int
}

type DeleteAllForSessionInput struct {
	SessionID string
}
