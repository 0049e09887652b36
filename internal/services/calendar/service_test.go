package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	fixtureMocks "github.com/KirkDiggler/claytrack/internal/repositories/fixture/mocks"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/claytrack/internal/repositories/session/mocks"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockFixtureRepo *fixtureMocks.MockRepository
	calendarService Service
	ctx             context.Context

	testTime time.Time
}

func (s *CalendarServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockFixtureRepo = fixtureMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		SessionRepo: s.mockSessionRepo,
		FixtureRepo: s.mockFixtureRepo,
	})
	s.Require().NoError(err)
	s.calendarService = svc
}

func (s *CalendarServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

func (s *CalendarServiceTestSuite) expectRangeReads(fixtures []*models.Fixture, sessions []*models.Session) {
	s.mockFixtureRepo.EXPECT().
		ListFixturesByDateRange(gomock.Any(), gomock.Any()).
		Return(&fixtureRepo.ListFixturesByDateRangeOutput{
			Fixtures: fixtures,
		}, nil)

	s.mockSessionRepo.EXPECT().
		ListSessionsByDateRange(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.ListSessionsByDateRangeOutput{
			Sessions: sessions,
		}, nil)
}

func (s *CalendarServiceTestSuite) TestGetEvents_MergesAndSorts() {
	fixtures := []*models.Fixture{
		{
			ID:         "fixture-id",
			Name:       "Club Championship",
			Date:       "2024-03-15",
			Time:       "09:00",
			Location:   "National Shooting Ground",
			Discipline: models.DisciplineSportingClays,
			CreatedAt:  s.testTime,
		},
	}
	sessions := []*models.Session{
		{
			ID:         "session-id",
			Date:       "2024-03-15",
			Time:       "10:30",
			Location:   "Melbourne Gun Club",
			Discipline: models.DisciplineTrap,
			TotalClays: 25,
			ClaysHit:   20,
			CreatedAt:  s.testTime,
		},
	}

	s.expectRangeReads(fixtures, sessions)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Events, 2)

	// The 09:00 fixture sorts ahead of the 10:30 session on the same date
	first := output.Events[0]
	s.Equal(models.CalendarEventTypeFixture, first.Type)
	s.Equal("Club Championship", first.Title)
	s.Equal("09:00", first.Time)

	second := output.Events[1]
	s.Equal(models.CalendarEventTypeSession, second.Type)
	s.Equal("Session - Trap", second.Title)
	s.Equal("10:30", second.Time)
	s.Require().NotNil(second.Accuracy)
	s.Equal(80.0, *second.Accuracy)
	s.Require().NotNil(second.ClaysHit)
	s.Equal(20, *second.ClaysHit)
	s.Require().NotNil(second.TotalClays)
	s.Equal(25, *second.TotalClays)
}

func (s *CalendarServiceTestSuite) TestGetEvents_SortsAcrossDates() {
	fixtures := []*models.Fixture{
		{
			ID:         "late-fixture-id",
			Name:       "Monthly Shoot",
			Date:       "2024-03-20",
			Time:       "08:00",
			Location:   "National Shooting Ground",
			Discipline: models.DisciplineSkeet,
		},
	}
	sessions := []*models.Session{
		{
			ID:         "early-session-id",
			Date:       "2024-03-10",
			Time:       "16:00",
			Location:   "Melbourne Gun Club",
			Discipline: models.DisciplineDownTheLine,
			TotalClays: 25,
			ClaysHit:   18,
		},
	}

	s.expectRangeReads(fixtures, sessions)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Events, 2)

	// The earlier date wins regardless of time-of-day
	s.Equal("early-session-id", output.Events[0].ID)
	s.Equal("Session - Down The Line", output.Events[0].Title)
	s.Equal("late-fixture-id", output.Events[1].ID)
}

func (s *CalendarServiceTestSuite) TestGetEvents_FixtureFields() {
	description := "Annual 100-target event"
	organizer := "Victoria Clay Target Association"
	entryFee := 45.50
	fixtures := []*models.Fixture{
		{
			ID:          "fixture-id",
			Name:        "State Championship",
			Description: &description,
			Date:        "2024-03-15",
			Time:        "09:00",
			Location:    "National Shooting Ground",
			Discipline:  models.DisciplineSportingClays,
			EntryFee:    &entryFee,
			Organizer:   &organizer,
		},
	}

	s.expectRangeReads(fixtures, nil)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Events, 1)

	event := output.Events[0]
	s.Equal(description, event.Description)
	s.Equal(organizer, event.Organizer)
	s.Require().NotNil(event.EntryFee)
	s.Equal(45.50, *event.EntryFee)

	// Session-only fields stay unset on fixture events
	s.Nil(event.Accuracy)
	s.Nil(event.ClaysHit)
	s.Nil(event.TotalClays)
}

func (s *CalendarServiceTestSuite) TestGetEvents_SessionFixtureName() {
	fixtureName := "State Championship"
	sessions := []*models.Session{
		{
			ID:          "session-id",
			Date:        "2024-03-15",
			Time:        "10:30",
			Location:    "Melbourne Gun Club",
			Discipline:  models.DisciplineOlympicTrap,
			TotalClays:  25,
			ClaysHit:    19,
			FixtureName: &fixtureName,
		},
	}

	s.expectRangeReads(nil, sessions)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Events, 1)
	s.Equal("Session - Olympic Trap", output.Events[0].Title)
	s.Equal(fixtureName, output.Events[0].FixtureName)
}

func (s *CalendarServiceTestSuite) TestGetEvents_EmptyRange() {
	s.expectRangeReads(nil, nil)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().NoError(err)
	s.Require().NotNil(output.Events)
	s.Len(output.Events, 0)
}

func (s *CalendarServiceTestSuite) TestGetEvents_MissingDateRange() {
	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrMissingDateRange))
	s.Nil(output)
}

func (s *CalendarServiceTestSuite) TestGetEvents_InvalidDate() {
	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "01/03/2024",
		EndDate:   "2024-03-31",
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidDate))
	s.Nil(output)
}

func (s *CalendarServiceTestSuite) TestGetEvents_RepositoryError() {
	expectedError := errors.New("redis timeout")
	s.mockFixtureRepo.EXPECT().
		ListFixturesByDateRange(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	output, err := s.calendarService.GetEvents(s.ctx, &GetEventsInput{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})

	s.Require().Error(err)
	s.Equal(expectedError, err)
	s.Nil(output)
}

func (s *CalendarServiceTestSuite) TestNew_NilConfig() {
	svc, err := New(nil)
	s.Require().Error(err)
	s.Equal(ErrNilConfig, err)
	s.Nil(svc)
}
