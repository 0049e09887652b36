package session

import (
	"github.com/KirkDiggler/claytrack/internal/common/clock"
	"github.com/KirkDiggler/claytrack/internal/common/uuid"
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Session repository
	SessionRepo sessionRepo.Repository

	// Fixture repository, used to resolve fixture links at creation time
	FixtureRepo fixtureRepo.Repository

	// Clock for creation timestamps
	Clock clock.Clock

	// UUID generator for session IDs
	UUIDGenerator uuid.UUID

	// DefaultListLimit is the page size used when a caller supplies none
	DefaultListLimit int

	// DefaultRecentLimit is the count used for recent sessions when the
	// caller supplies none
	DefaultRecentLimit int

	// StatsFetchLimit caps how many sessions the aggregator retrieves.
	// The computation treats the capped result as the full session set.
	StatsFetchLimit int

	// StreakThreshold is the minimum per-session accuracy, in percent,
	// that keeps a streak alive
	StreakThreshold float64
}

// CreateSessionInput holds the fields for a new session. Required fields
// are pointers where the zero value is meaningful, so absence is detectable.
type CreateSessionInput struct {
	Date       string
	Time       string
	Location   string
	Discipline models.DisciplineType
	TotalClays *int
	ClaysHit   *int

	Weather       *models.WeatherCondition
	Temperature   *int
	WindSpeed     *string
	GunUsed       *string
	CartridgeType *string
	ChokeUsed     *string
	Notes         *string

	// FixtureID links the session to a fixture. When set, the fixture's
	// name is snapshotted onto the session; when the fixture does not
	// exist the link is silently dropped.
	FixtureID *string

	// FixtureName is accepted as-is when no FixtureID is supplied
	FixtureName *string
}

type CreateSessionOutput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.Session
}

type ListSessionsInput struct {
	Limit int
	Skip  int
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type GetRecentSessionsInput struct {
	Limit int
}

type GetRecentSessionsOutput struct {
	Sessions []*models.Session
}

// UpdateSessionInput holds a partial update. Nil fields are left unchanged;
// set fields overwrite the stored value.
type UpdateSessionInput struct {
	SessionID string

	Date          *string
	Time          *string
	Location      *string
	Discipline    *models.DisciplineType
	TotalClays    *int
	ClaysHit      *int
	Weather       *models.WeatherCondition
	Temperature   *int
	WindSpeed     *string
	GunUsed       *string
	CartridgeType *string
	ChokeUsed     *string
	Notes         *string

	// FixtureID and FixtureName are written through without resolving the
	// link; the name snapshot is only taken at creation time
	FixtureID   *string
	FixtureName *string
}

// hasFields reports whether any updatable field is present
func (i *UpdateSessionInput) hasFields() bool {
	return i.Date != nil ||
		i.Time != nil ||
		i.Location != nil ||
		i.Discipline != nil ||
		i.TotalClays != nil ||
		i.ClaysHit != nil ||
		i.Weather != nil ||
		i.Temperature != nil ||
		i.WindSpeed != nil ||
		i.GunUsed != nil ||
		i.CartridgeType != nil ||
		i.ChokeUsed != nil ||
		i.Notes != nil ||
		i.FixtureID != nil ||
		i.FixtureName != nil
}

type UpdateSessionOutput struct {
	Session *models.Session
}

type DeleteSessionInput struct {
	SessionID string
}

type GetStatsInput struct {
}

type GetStatsOutput struct {
	Stats *models.SessionStats
}
