package fixture

import (
	"github.com/KirkDiggler/claytrack/internal/common/clock"
	"github.com/KirkDiggler/claytrack/internal/common/uuid"
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
)

// Config holds configuration for the fixture service
type Config struct {
	// Fixture repository
	FixtureRepo fixtureRepo.Repository

	// Clock for creation timestamps
	Clock clock.Clock

	// UUID generator for fixture IDs
	UUIDGenerator uuid.UUID

	// DefaultListLimit is the page size used when a caller supplies none
	DefaultListLimit int
}

// CreateFixtureInput holds the fields for a new fixture
type CreateFixtureInput struct {
	Name       string
	Date       string
	Time       string
	Location   string
	Discipline models.DisciplineType

	Description     *string
	MaxParticipants *int
	EntryFee        *float64
	Organizer       *string
	ContactInfo     *string
	Notes           *string
}

type CreateFixtureOutput struct {
	Fixture *models.Fixture
}

type GetFixtureInput struct {
	FixtureID string
}

type GetFixtureOutput struct {
	Fixture *models.Fixture
}

type ListFixturesInput struct {
	Limit int
	Skip  int
}

type ListFixturesOutput struct {
	Fixtures []*models.Fixture
}

// UpdateFixtureInput holds a partial update. Nil fields are left unchanged;
// set fields overwrite the stored value. Renaming a fixture does not touch
// the name snapshots on sessions that reference it.
type UpdateFixtureInput struct {
	FixtureID string

	Name            *string
	Description     *string
	Date            *string
	Time            *string
	Location        *string
	Discipline      *models.DisciplineType
	MaxParticipants *int
	EntryFee        *float64
	Organizer       *string
	ContactInfo     *string
	Notes           *string
}

// hasFields reports whether any updatable field is present
func (i *UpdateFixtureInput) hasFields() bool {
	return i.Name != nil ||
		i.Description != nil ||
		i.Date != nil ||
		i.Time != nil ||
		i.Location != nil ||
		i.Discipline != nil ||
		i.MaxParticipants != nil ||
		i.EntryFee != nil ||
		i.Organizer != nil ||
		i.ContactInfo != nil ||
		i.Notes != nil
}

type UpdateFixtureOutput struct {
	Fixture *models.Fixture
}

type DeleteFixtureInput struct {
	FixtureID string
}
