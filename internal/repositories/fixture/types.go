package fixture

import "github.com/KirkDiggler/claytrack/internal/models"

type SaveFixtureInput struct {
	Fixture *models.Fixture
}

type GetFixtureInput struct {
	FixtureID string
}

type ListFixturesInput struct {
	// Limit is the maximum number of fixtures to return
	Limit int

	// Skip is the number of fixtures to pass over before collecting
	Skip int
}

type ListFixturesOutput struct {
	Fixtures []*models.Fixture
}

type ListFixturesByDateRangeInput struct {
	// StartDate is the inclusive lower bound, formatted as models.DateLayout
	StartDate string

	// EndDate is the inclusive upper bound, formatted as models.DateLayout
	EndDate string
}

type ListFixturesByDateRangeOutput struct {
	Fixtures []*models.Fixture
}

type DeleteFixtureInput struct {
	FixtureID string
}
