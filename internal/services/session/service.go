package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/claytrack/internal/common/clock"
	"github.com/KirkDiggler/claytrack/internal/common/uuid"
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
)

const (
	defaultListLimit   = 50
	defaultRecentLimit = 5
	defaultStatsFetch  = 1000
	defaultStreakPct   = 80.0
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	fixtureRepo fixtureRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID

	defaultListLimit   int
	defaultRecentLimit int
	statsFetchLimit    int
	streakThreshold    float64
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
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
		sessionRepo:        cfg.SessionRepo,
		fixtureRepo:        cfg.FixtureRepo,
		clock:              cfg.Clock,
		uuid:               cfg.UUIDGenerator,
		defaultListLimit:   cfg.DefaultListLimit,
		defaultRecentLimit: cfg.DefaultRecentLimit,
		statsFetchLimit:    cfg.StatsFetchLimit,
		streakThreshold:    cfg.StreakThreshold,
	}

	if s.defaultListLimit <= 0 {
		s.defaultListLimit = defaultListLimit
	}
	if s.defaultRecentLimit <= 0 {
		s.defaultRecentLimit = defaultRecentLimit
	}
	if s.statsFetchLimit <= 0 {
		s.statsFetchLimit = defaultStatsFetch
	}
	if s.streakThreshold <= 0 {
		s.streakThreshold = defaultStreakPct
	}

	return s, nil
}

// CreateSession records a new practice session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := validateCreate(input); err != nil {
		return nil, err
	}

	fixtureID := input.FixtureID
	fixtureName := input.FixtureName

	// Resolve the fixture link: snapshot the name on a hit, drop the link
	// entirely on a miss. A stale fixture ID is not an error.
	if fixtureID != nil && *fixtureID != "" {
		fx, err := s.fixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
			FixtureID: *fixtureID,
		})
		switch {
		case err == nil:
			name := fx.Name
			fixtureName = &name
		case errors.Is(err, fixtureRepo.ErrFixtureNotFound):
			fixtureID = nil
			fixtureName = nil
		default:
			return nil, err
		}
	}

	sess := &models.Session{
		ID:            s.uuid.NewUUID(),
		Date:          input.Date,
		Time:          input.Time,
		Location:      input.Location,
		Discipline:    input.Discipline,
		TotalClays:    *input.TotalClays,
		ClaysHit:      *input.ClaysHit,
		Weather:       input.Weather,
		Temperature:   input.Temperature,
		WindSpeed:     input.WindSpeed,
		GunUsed:       input.GunUsed,
		CartridgeType: input.CartridgeType,
		ChokeUsed:     input.ChokeUsed,
		Notes:         input.Notes,
		FixtureID:     fixtureID,
		FixtureName:   fixtureName,
		CreatedAt:     s.clock.Now().UTC(),
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session: sess,
	}, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session id", ErrMissingField)
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionOutput{
		Session: sess,
	}, nil
}

// ListSessions retrieves sessions ordered by date descending
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
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

	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: out.Sessions,
	}, nil
}

// GetRecentSessions retrieves the most recent sessions
func (s *service) GetRecentSessions(ctx context.Context, input *GetRecentSessionsInput) (*GetRecentSessionsOutput, error) {
	limit := s.defaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetRecentSessionsOutput{
		Sessions: out.Sessions,
	}, nil
}

// UpdateSession applies a partial update to an existing session. Only set
// fields are written; everything else keeps its stored value.
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session id", ErrMissingField)
	}

	if !input.hasFields() {
		return nil, ErrEmptyUpdate
	}

	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	applyUpdate(sess, input)

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateSessionOutput{
		Session: sess,
	}, nil
}

// DeleteSession removes a session. Deleting an unknown or already deleted
// session reports not found; deletion is not idempotent.
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return fmt.Errorf("%w: session id", ErrMissingField)
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	return nil
}

// validateCreate checks required fields and enumerations for a new session
func validateCreate(input *CreateSessionInput) error {
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
	if input.TotalClays == nil {
		return fmt.Errorf("%w: total_clays", ErrMissingField)
	}
	if input.ClaysHit == nil {
		return fmt.Errorf("%w: clays_hit", ErrMissingField)
	}
	if input.Weather != nil && !input.Weather.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidWeather, *input.Weather)
	}
	return nil
}

// validateUpdate checks the shape of any fields present in a partial update
func validateUpdate(input *UpdateSessionInput) error {
	if input.Date != nil {
		if _, err := time.Parse(models.DateLayout, *input.Date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, *input.Date)
		}
	}
	if input.Discipline != nil && !input.Discipline.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDiscipline, *input.Discipline)
	}
	if input.Weather != nil && !input.Weather.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidWeather, *input.Weather)
	}
	return nil
}

// applyUpdate copies set fields onto the stored session
func applyUpdate(sess *models.Session, input *UpdateSessionInput) {
	if input.Date != nil {
		sess.Date = *input.Date
	}
	if input.Time != nil {
		sess.Time = *input.Time
	}
	if input.Location != nil {
		sess.Location = *input.Location
	}
	if input.Discipline != nil {
		sess.Discipline = *input.Discipline
	}
	if input.TotalClays != nil {
		sess.TotalClays = *input.TotalClays
	}
	if input.ClaysHit != nil {
		sess.ClaysHit = *input.ClaysHit
	}
	if input.Weather != nil {
		sess.Weather = input.Weather
	}
	if input.Temperature != nil {
		sess.Temperature = input.Temperature
	}
	if input.WindSpeed != nil {
		sess.WindSpeed = input.WindSpeed
	}
	if input.GunUsed != nil {
		sess.GunUsed = input.GunUsed
	}
	if input.CartridgeType != nil {
		sess.CartridgeType = input.CartridgeType
	}
	if input.ChokeUsed != nil {
		sess.ChokeUsed = input.ChokeUsed
	}
	if input.Notes != nil {
		sess.Notes = input.Notes
	}
	if input.FixtureID != nil {
		sess.FixtureID = input.FixtureID
	}
	if input.FixtureName != nil {
		sess.FixtureName = input.FixtureName
	}
}
