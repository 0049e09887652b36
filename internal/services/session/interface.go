package session

import "context"

// Service defines the interface for session operations
type Service interface {
	// CreateSession records a new practice session, resolving any fixture link
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions retrieves sessions ordered by date descending with paging
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetRecentSessions retrieves the most recent sessions
	GetRecentSessions(ctx context.Context, input *GetRecentSessionsInput) (*GetRecentSessionsOutput, error)

	// UpdateSession applies a partial update to an existing session
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetStats computes aggregate statistics over all recorded sessions
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
