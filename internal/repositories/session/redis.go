package session

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
	sessionKeyPrefix = "session:"

	// sessionDateIndexKey is a sorted set of session IDs scored by date
	sessionDateIndexKey = "session_dates"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// SaveSession persists a session to Redis and refreshes its date index entry
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session

	// Ensure the session has an ID
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	score, err := dateScore(sess.Date)
	if err != nil {
		return err
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Save the document and index it by date in one round trip.
	// ZAdd replaces any previous score, so a date change re-sorts the index.
	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+sess.ID, sessionJSON, 0)
	pipe.ZAdd(ctx, sessionDateIndexKey, redis.Z{Score: score, Member: sess.ID})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListSessions retrieves sessions ordered by date descending
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input cannot be nil and limit must be positive")
	}

	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	start := int64(skip)
	stop := int64(skip + input.Limit - 1)

	sessionIDs, err := r.client.ZRevRange(ctx, sessionDateIndexKey, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session IDs: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// ListSessionsByDateRange retrieves sessions inside an inclusive date range,
// ordered by date ascending
func (r *redisRepository) ListSessionsByDateRange(ctx context.Context, input *ListSessionsByDateRangeInput) (*ListSessionsByDateRangeOutput, error) {
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

	sessionIDs, err := r.client.ZRangeByScore(ctx, sessionDateIndexKey, &redis.ZRangeBy{
		Min: fmt.Sprintf("%.0f", minScore),
		Max: fmt.Sprintf("%.0f", maxScore),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session IDs in range: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &ListSessionsByDateRangeOutput{
		Sessions: sessions,
	}, nil
}

// DeleteSession removes a session and its index entry
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, sessionKeyPrefix+input.SessionID)
	pipe.ZRem(ctx, sessionDateIndexKey, input.SessionID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Del reports how many keys existed; deleting an absent session is an error
	if delCmd.Val() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// fetchSessions pipelines document reads for the given IDs, preserving the
// index order of the input slice
func (r *redisRepository) fetchSessions(ctx context.Context, sessionIDs []string) ([]*models.Session, error) {
	sessions := make([]*models.Session, 0, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return sessions, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKeyPrefix+id)
	}

	// Exec surfaces redis.Nil when any document is missing; that case is
	// handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Session was deleted between reading the index and fetching the document
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}

		sessions = append(sessions, &sess)
	}

	return sessions, nil
}

// dateScore converts a YYYY-MM-DD date into a sortable index score,
// e.g. "2024-03-15" becomes 20240315
func dateScore(date string) (float64, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid session date %q: %w", date, err)
	}
	return float64(t.Year()*10000 + int(t.Month())*100 + t.Day()), nil
}
