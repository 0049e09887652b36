package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/claytrack/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(id, date string) *models.Session {
	return &models.Session{
		ID:         id,
		Date:       date,
		Time:       "10:30",
		Location:   "Melbourne Gun Club",
		Discipline: models.DisciplineTrap,
		TotalClays: 25,
		ClaysHit:   20,
		CreatedAt:  s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	weather := models.WeatherSunny
	notes := "good rhythm on station four"
	sess := s.newSession("test-session-id", "2024-03-15")
	sess.Weather = &weather
	sess.Notes = &notes

	// Save the session
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	// Get the session by ID
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	// Verify the session properties
	s.Equal("test-session-id", retrieved.ID)
	s.Equal("2024-03-15", retrieved.Date)
	s.Equal("10:30", retrieved.Time)
	s.Equal("Melbourne Gun Club", retrieved.Location)
	s.Equal(models.DisciplineTrap, retrieved.Discipline)
	s.Equal(25, retrieved.TotalClays)
	s.Equal(20, retrieved.ClaysHit)
	s.Require().NotNil(retrieved.Weather)
	s.Equal(models.WeatherSunny, *retrieved.Weather)
	s.Require().NotNil(retrieved.Notes)
	s.Equal(notes, *retrieved.Notes)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().Error(err)
	s.Equal(ErrSessionNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionRejectsInvalidDate() {
	sess := s.newSession("bad-date-id", "15/03/2024")

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestListSessionsOrderedByDateDescending() {
	// Save sessions out of date order
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("middle-id", "2024-03-15"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("newest-id", "2024-04-01"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("oldest-id", "2024-02-01"),
	}))

	result, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Require().Len(result.Sessions, 3)

	s.Equal("newest-id", result.Sessions[0].ID)
	s.Equal("middle-id", result.Sessions[1].ID)
	s.Equal("oldest-id", result.Sessions[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListSessionsLimitAndSkip() {
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("first-id", "2024-03-01"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("second-id", "2024-03-02"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("third-id", "2024-03-03"),
	}))

	// First page
	result, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(result.Sessions, 2)
	s.Equal("third-id", result.Sessions[0].ID)
	s.Equal("second-id", result.Sessions[1].ID)

	// Second page
	result, err = s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 2,
		Skip:  2,
	})
	s.Require().NoError(err)
	s.Require().Len(result.Sessions, 1)
	s.Equal("first-id", result.Sessions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListSessionsEmpty() {
	result, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Sessions, 0)
}

func (s *RedisRepositoryTestSuite) TestListSessionsByDateRange() {
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("before-id", "2024-02-28"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("start-id", "2024-03-01"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("end-id", "2024-03-31"),
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("after-id", "2024-04-01"),
	}))

	result, err := s.repo.ListSessionsByDateRange(context.Background(), &ListSessionsByDateRangeInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Sessions, 2)

	// Both boundary dates are included, ordered ascending
	s.Equal("start-id", result.Sessions[0].ID)
	s.Equal("end-id", result.Sessions[1].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionUpdatesDateIndex() {
	sess := s.newSession("moving-id", "2024-03-01")
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.newSession("fixed-id", "2024-03-10"),
	}))

	// Re-save the first session under a later date
	sess.Date = "2024-03-20"
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	}))

	result, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Require().Len(result.Sessions, 2)
	s.Equal("moving-id", result.Sessions[0].ID)
	s.Equal("fixed-id", result.Sessions[1].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.newSession("delete-me-id", "2024-03-15")
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	}))

	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "delete-me-id",
	})
	s.Require().NoError(err)

	// The document is gone
	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "delete-me-id",
	})
	s.Require().Error(err)
	s.Equal(ErrSessionNotFound, err)

	// The index entry is gone too
	result, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Len(result.Sessions, 0)
}

func (s *RedisRepositoryTestSuite) TestDeleteSessionNotFound() {
	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().Error(err)
	s.Equal(ErrSessionNotFound, err)
}
