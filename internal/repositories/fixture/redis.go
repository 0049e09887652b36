package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/claytrack/internal/models"
)

const (
	// Key prefixes for Redis
	fixtureKeyPrefix = "fixture:"

	// fixtureDateIndexKey is a sorted set of fixture IDs scored by date
	fixtureDateIndexKey = "fixture_dates"
)

// ErrFixtureNotFound is returned when a fixture is not found
var ErrFixtureNotFound = errors.New("fixture not found")

// Config holds configuration for the Redis fixture repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed fixture repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveFixture persists a fixture to Redis and refreshes its date index entry
func (r *redisRepository) SaveFixture(ctx context.Context, input *SaveFixtureInput) error {
	if input == nil || input.Fixture == nil {
		return errors.New("input and fixture cannot be nil")
	}

	fx := input.Fixture

	// Ensure the fixture has an ID
	if fx.ID == "" {
		return errors.New("fixture ID cannot be empty")
	}

	score, err := dateScore(fx.Date)
	if err != nil {
		return err
	}

	// Marshal the fixture to JSON
	fixtureJSON, err := json.Marshal(fx)
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}

	// Save the document and index it by date in one round trip
	pipe := r.client.Pipeline()
	pipe.Set(ctx, fixtureKeyPrefix+fx.ID, fixtureJSON, 0)
	pipe.ZAdd(ctx, fixtureDateIndexKey, redis.Z{Score: score, Member: fx.ID})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save fixture: %w", err)
	}

	return nil
}

// GetFixture retrieves a fixture by ID from Redis
func (r *redisRepository) GetFixture(ctx context.Context, input *GetFixtureInput) (*models.Fixture, error) {
	if input == nil || input.FixtureID == "" {
		return nil, errors.New("input and fixture ID cannot be empty")
	}

	fixtureJSON, err := r.client.Get(ctx, fixtureKeyPrefix+input.FixtureID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	var fx models.Fixture
	if err := json.Unmarshal([]byte(fixtureJSON), &fx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %w", err)
	}

	return &fx, nil
}

// ListFixtures retrieves fixtures ordered by date descending
func (r *redisRepository) ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input cannot be nil and limit must be positive")
	}

	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	start := int64(skip)
	stop := int64(skip + input.Limit - 1)

	fixtureIDs, err := r.client.ZRevRange(ctx, fixtureDateIndexKey, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list fixture IDs: %w", err)
	}

	fixtures, err := r.fetchFixtures(ctx, fixtureIDs)
	if err != nil {
		return nil, err
	}

	return &ListFixturesOutput{
		Fixtures: fixtures,
	}, nil
}

// ListFixturesByDateRange retrieves fixtures inside an inclusive date range,
// ordered by date ascending
func (r *redisRepository) ListFixturesByDateRange(ctx context.Context, input *ListFixturesByDateRangeInput) (*ListFixturesByDateRangeOutput, error) {
	if input == nil || input.StartDate == "" || input.EndDate == "" {
		return nil, errors.New("input and date range cannot be empty")
	}

	minScore, err := dateScore(input.StartDate)
	if err != nil {
		return nil, err
	}

	maxScore, err := dateScore(input.EndDate)
	if err != nil {
		return nil, err
	}

	fixtureIDs, err := r.client.ZRangeByScore(ctx, fixtureDateIndexKey, &redis.ZRangeBy{
		Min: fmt.Sprintf("%.0f", minScore),
		Max: fmt.Sprintf("%.0f", maxScore),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list fixture IDs in range: %w", err)
	}

	fixtures, err := r.fetchFixtures(ctx, fixtureIDs)
	if err != nil {
		return nil, err
	}

	return &ListFixturesByDateRangeOutput{
		Fixtures: fixtures,
	}, nil
}

// DeleteFixture removes a fixture and its index entry
func (r *redisRepository) DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error {
	if input == nil || input.FixtureID == "" {
		return errors.New("input and fixture ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, fixtureKeyPrefix+input.FixtureID)
	pipe.ZRem(ctx, fixtureDateIndexKey, input.FixtureID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete fixture: %w", err)
	}

	// Del reports how many keys existed; deleting an absent fixture is an error
	if delCmd.Val() == 0 {
		return ErrFixtureNotFound
	}

	return nil
}

// fetchFixtures pipelines document reads for the given IDs, preserving the
// index order of the input slice
func (r *redisRepository) fetchFixtures(ctx context.Context, fixtureIDs []string) ([]*models.Fixture, error) {
	fixtures := make([]*models.Fixture, 0, len(fixtureIDs))
	if len(fixtureIDs) == 0 {
		return fixtures, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(fixtureIDs))
	for i, id := range fixtureIDs {
		cmds[i] = pipe.Get(ctx, fixtureKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}

	for i, cmd := range cmds {
		fixtureJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Fixture was deleted between reading the index and fetching the document
				continue
			}
			return nil, fmt.Errorf("failed to get fixture %s: %w", fixtureIDs[i], err)
		}

		var fx models.Fixture
		if err := json.Unmarshal([]byte(fixtureJSON), &fx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fixture %s: %w", fixtureIDs[i], err)
		}

		fixtures = append(fixtures, &fx)
	}

	return fixtures, nil
}

// dateScore converts a YYYY-MM-DD date into a sortable index score,
// e.g. "2024-03-15" becomes 20240315
func dateScore(date string) (float64, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid fixture date %q: %w", date, err)
	}
	return float64(t.Year()*10000 + int(t.Month())*100 + t.Day()), nil
}
