package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/claytrack/internal/common/clock"
	"github.com/KirkDiggler/claytrack/internal/common/uuid"
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
)

const defaultListLimit = 50

// service implements the Service interface
type service struct {
	fixtureRepo fixtureRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID

	defaultListLimit int
}

// New creates a new fixture service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.FixtureRepo == nil {
		return nil, ErrNilFixtureRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		fixtureRepo:      cfg.FixtureRepo,
		clock:            cfg.Clock,
		uuid:             cfg.UUIDGenerator,
		defaultListLimit: cfg.DefaultListLimit,
	}

	if s.defaultListLimit <= 0 {
		s.defaultListLimit = defaultListLimit
	}

	return s, nil
}

// CreateFixture schedules a new fixture
func (s *service) CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := validateCreate(input); err != nil {
		return nil, err
	}

	fx := &models.Fixture{
		ID:              s.uuid.NewUUID(),
		Name:            input.Name,
		Description:     input.Description,
		Date:            input.Date,
		Time:            input.Time,
		Location:        input.Location,
		Discipline:      input.Discipline,
		MaxParticipants: input.MaxParticipants,
		EntryFee:        input.EntryFee,
		Organizer:       input.Organizer,
		ContactInfo:     input.ContactInfo,
		Notes:           input.Notes,
		CreatedAt:       s.clock.Now().UTC(),
	}

	err := s.fixtureRepo.SaveFixture(ctx, &fixtureRepo.SaveFixtureInput{
		Fixture: fx,
	})
	if err != nil {
		return nil, err
	}

	return &CreateFixtureOutput{
		Fixture: fx,
	}, nil
}

// GetFixture retrieves a fixture by ID
func (s *service) GetFixture(ctx context.Context, input *GetFixtureInput) (*GetFixtureOutput, error) {
	if input == nil || input.FixtureID == "" {
		return nil, fmt.Errorf("%w: fixture id", ErrMissingField)
	}

	fx, err := s.fixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	return &GetFixtureOutput{
		Fixture: fx,
	}, nil
}

// ListFixtures retrieves fixtures ordered by date descending
func (s *service) ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error) {
	limit := s.defaultListLimit
	skip := 0
	if input != nil {
		if input.Limit > 0 {
			limit = input.Limit
		}
		if input.Skip > 0 {
			skip = input.Skip
		}
	}

	out, err := s.fixtureRepo.ListFixtures(ctx, &fixtureRepo.ListFixturesInput{
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		return nil, err
	}

	return &ListFixturesOutput{
		Fixtures: out.Fixtures,
	}, nil
}

// UpdateFixture applies a partial update to an existing fixture
func (s *service) UpdateFixture(ctx context.Context, input *UpdateFixtureInput) (*UpdateFixtureOutput, error) {
	if input == nil || input.FixtureID == "" {
		return nil, fmt.Errorf("%w: fixture id", ErrMissingField)
	}

	if !input.hasFields() {
		return nil, ErrEmptyUpdate
	}

	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	fx, err := s.fixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	applyUpdate(fx, input)

	err = s.fixtureRepo.SaveFixture(ctx, &fixtureRepo.SaveFixtureInput{
		Fixture: fx,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateFixtureOutput{
		Fixture: fx,
	}, nil
}

// DeleteFixture removes a fixture. Sessions referencing the fixture are left
// untouched, so their fixture link may dangle afterwards.
func (s *service) DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error {
	if input == nil || input.FixtureID == "" {
		return fmt.Errorf("%w: fixture id", ErrMissingField)
	}

	err := s.fixtureRepo.DeleteFixture(ctx, &fixtureRepo.DeleteFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return ErrFixtureNotFound
		}
		return err
	}

	return nil
}

// validateCreate checks required fields and enumerations for a new fixture
func validateCreate(input *CreateFixtureInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if input.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, input.Date)
	}
	if input.Time == "" {
		return fmt.Errorf("%w: time", ErrMissingField)
	}
	if input.Location == "" {
		return fmt.Errorf("%w: location", ErrMissingField)
	}
	if input.Discipline == "" {
		return fmt.Errorf("%w: discipline", ErrMissingField)
	}
	if !input.Discipline.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDiscipline, input.Discipline)
	}
	return nil
}

// validateUpdate checks the shape of any fields present in a partial update
func validateUpdate(input *UpdateFixtureInput) error {
	if input.Date != nil {
		if _, err := time.Parse(models.DateLayout, *input.Date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, *input.Date)
		}
	}
	if input.Discipline != nil && !input.Discipline.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDiscipline, *input.Discipline)
	}
	return nil
}

// applyUpdate copies set fields onto the stored fixture
func applyUpdate(fx *models.Fixture, input *UpdateFixtureInput) {
	if input.Name != nil {
		fx.Name = *input.Name
	}
	if input.Description != nil {
		fx.Description = input.Description
	}
	if input.Date != nil {
		fx.Date = *input.Date
	}
	if input.Time != nil {
		fx.Time = *input.Time
	}
	if input.Location != nil {
		fx.Location = *input.Location
	}
	if input.Discipline != nil {
		fx.Discipline = *input.Discipline
	}
	if input.MaxParticipants != nil {
		fx.MaxParticipants = input.MaxParticipants
	}
	if input.EntryFee != nil {
		fx.EntryFee = input.EntryFee
	}
	if input.Organizer != nil {
		fx.Organizer = input.Organizer
	}
	if input.ContactInfo != nil {
		fx.ContactInfo = input.ContactInfo
	}
	if input.Notes != nil {
		fx.Notes = input.Notes
	}
}
