package session

import "github.com/KirkDiggler/claytrack/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
	// Limit is the maximum number of sessions to return
	Limit int

	// Skip is the number of sessions to pass over before collecting
	Skip int
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type ListSessionsByDateRangeInput struct {
	// StartDate is the inclusive lower bound, formatted as models.DateLayout
	StartDate string

	// EndDate is the inclusive upper bound, formatted as models.DateLayout
	EndDate string
}

type ListSessionsByDateRangeOutput struct {
	Sessions []*models.Session
}

type DeleteSessionInput struct {
	SessionID string
}
