package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/claytrack/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/claytrack/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session, inserting or overwriting the whole document
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves sessions ordered by date descending with limit/skip paging
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// ListSessionsByDateRange retrieves sessions with dates inside an inclusive
	// range, ordered by date ascending
	ListSessionsByDateRange(ctx context.Context, input *ListSessionsByDateRangeInput) (*ListSessionsByDateRangeOutput, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
