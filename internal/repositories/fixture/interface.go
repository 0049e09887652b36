package fixture

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/claytrack/internal/repositories/fixture Repository

import (
	"context"

	"github.com/KirkDiggler/claytrack/internal/models"
)

// Repository defines the interface for fixture data persistence
type Repository interface {
	// SaveFixture persists a fixture, inserting or overwriting the whole document
	SaveFixture(ctx context.Context, input *SaveFixtureInput) error

	// GetFixture retrieves a fixture by ID
	GetFixture(ctx context.Context, input *GetFixtureInput) (*models.Fixture, error)

	// ListFixtures retrieves fixtures ordered by date descending with limit/skip paging
	ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error)

	// ListFixturesByDateRange retrieves fixtures with dates inside an inclusive
	// range, ordered by date ascending
	ListFixturesByDateRange(ctx context.Context, input *ListFixturesByDateRangeInput) (*ListFixturesByDateRangeOutput, error)

	// DeleteFixture removes a fixture. Sessions referencing the fixture are
	// not touched and keep their snapshot of its name.
	DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error
}
