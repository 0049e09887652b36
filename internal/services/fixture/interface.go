package fixture

import "context"

// Service defines the interface for fixture operations
type Service interface {
	// CreateFixture schedules a new fixture
	CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error)

	// GetFixture retrieves a fixture by ID
	GetFixture(ctx context.Context, input *GetFixtureInput) (*GetFixtureOutput, error)

	// ListFixtures retrieves fixtures ordered by date descending with paging
	ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error)

	// UpdateFixture applies a partial update to an existing fixture
	UpdateFixture(ctx context.Context, input *UpdateFixtureInput) (*UpdateFixtureOutput, error)

	// DeleteFixture removes a fixture. Sessions that reference it keep
	// their stale link and name snapshot.
	DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error
}
