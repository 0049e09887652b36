package calendar

import (
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
)

// Config holds configuration for the calendar service
type Config struct {
	// Session repository
	SessionRepo sessionRepo.Repository

	// Fixture repository
	FixtureRepo fixtureRepo.Repository
}

type GetEventsInput struct {
	// StartDate is the inclusive lower bound, formatted as models.DateLayout
	StartDate string

	// EndDate is the inclusive upper bound, formatted as models.DateLayout
	EndDate string
}

type GetEventsOutput struct {
	Events []*models.CalendarEvent
}
