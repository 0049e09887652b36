package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/claytrack/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/claytrack/internal/common/uuid/mocks"
	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	fixtureMocks "github.com/KirkDiggler/claytrack/internal/repositories/fixture/mocks"
)

type FixtureServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockFixtureRepo *fixtureMocks.MockRepository
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	fixtureService  Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testFixtureID string

	// Reusable test inputs
	createInput *CreateFixtureInput
}

func (s *FixtureServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFixtureRepo = fixtureMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.testFixtureID = "test-fixture-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.createInput = &CreateFixtureInput{
		Name:       "State Championship",
		Date:       "2024-04-20",
		Time:       "09:00",
		Location:   "National Shooting Ground",
		Discipline: models.DisciplineSportingClays,
	}

	// Create the service with mocked dependencies
	cfg := &Config{
		FixtureRepo:   s.mockFixtureRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	s.fixtureService = svc
}

func (s *FixtureServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFixtureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixtureServiceTestSuite))
}

func (s *FixtureServiceTestSuite) storedFixture() *models.Fixture {
	return &models.Fixture{
		ID:         s.testFixtureID,
		Name:       "State Championship",
		Date:       "2024-04-20",
		Time:       "09:00",
		Location:   "National Shooting Ground",
		Discipline: models.DisciplineSportingClays,
		CreatedAt:  s.testTime,
	}
}

func (s *FixtureServiceTestSuite) TestCreateFixture_HappyPath() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testFixtureID)

	s.mockFixtureRepo.EXPECT().
		SaveFixture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *fixtureRepo.SaveFixtureInput) error {
			s.Equal(s.testFixtureID, input.Fixture.ID)
			s.Equal("State Championship", input.Fixture.Name)
			s.Equal("2024-04-20", input.Fixture.Date)
			s.Equal(s.testTime, input.Fixture.CreatedAt)
			return nil
		})

	output, err := s.fixtureService.CreateFixture(s.ctx, s.createInput)

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(s.testFixtureID, output.Fixture.ID)
}

func (s *FixtureServiceTestSuite) TestCreateFixture_MissingName() {
	s.createInput.Name = ""

	output, err := s.fixtureService.CreateFixture(s.ctx, s.createInput)

	s.Require().Error(err)
	s.True(errors.Is(err, ErrMissingField))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestCreateFixture_InvalidDate() {
	s.createInput.Date = "20-04-2024"

	output, err := s.fixtureService.CreateFixture(s.ctx, s.createInput)

	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidDate))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestCreateFixture_InvalidDiscipline() {
	s.createInput.Discipline = "biathlon"

	output, err := s.fixtureService.CreateFixture(s.ctx, s.createInput)

	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidDiscipline))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestGetFixture_HappyPath() {
	stored := s.storedFixture()

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), &fixtureRepo.GetFixtureInput{
			FixtureID: s.testFixtureID,
		}).
		Return(stored, nil)

	output, err := s.fixtureService.GetFixture(s.ctx, &GetFixtureInput{
		FixtureID: s.testFixtureID,
	})

	s.Require().NoError(err)
	s.Equal(stored, output.Fixture)
}

func (s *FixtureServiceTestSuite) TestGetFixture_NotFound() {
	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(nil, fixtureRepo.ErrFixtureNotFound)

	output, err := s.fixtureService.GetFixture(s.ctx, &GetFixtureInput{
		FixtureID: "missing-id",
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrFixtureNotFound))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestListFixtures_DefaultLimit() {
	s.mockFixtureRepo.EXPECT().
		ListFixtures(gomock.Any(), &fixtureRepo.ListFixturesInput{
			Limit: defaultListLimit,
		}).
		Return(&fixtureRepo.ListFixturesOutput{
			Fixtures: []*models.Fixture{},
		}, nil)

	output, err := s.fixtureService.ListFixtures(s.ctx, &ListFixturesInput{})

	s.Require().NoError(err)
	s.NotNil(output.Fixtures)
}

func (s *FixtureServiceTestSuite) TestUpdateFixture_PartialUpdate() {
	stored := s.storedFixture()

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), &fixtureRepo.GetFixtureInput{
			FixtureID: s.testFixtureID,
		}).
		Return(stored, nil)

	s.mockFixtureRepo.EXPECT().
		SaveFixture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *fixtureRepo.SaveFixtureInput) error {
			s.Equal("Club Championship", input.Fixture.Name)
			// Untouched fields keep their stored values
			s.Equal("2024-04-20", input.Fixture.Date)
			s.Equal("National Shooting Ground", input.Fixture.Location)
			return nil
		})

	name := "Club Championship"
	output, err := s.fixtureService.UpdateFixture(s.ctx, &UpdateFixtureInput{
		FixtureID: s.testFixtureID,
		Name:      &name,
	})

	s.Require().NoError(err)
	s.Equal("Club Championship", output.Fixture.Name)
}

func (s *FixtureServiceTestSuite) TestUpdateFixture_EmptyUpdate() {
	output, err := s.fixtureService.UpdateFixture(s.ctx, &UpdateFixtureInput{
		FixtureID: s.testFixtureID,
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrEmptyUpdate))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestUpdateFixture_NotFound() {
	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(nil, fixtureRepo.ErrFixtureNotFound)

	name := "Club Championship"
	output, err := s.fixtureService.UpdateFixture(s.ctx, &UpdateFixtureInput{
		FixtureID: "missing-id",
		Name:      &name,
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrFixtureNotFound))
	s.Nil(output)
}

func (s *FixtureServiceTestSuite) TestDeleteFixture_HappyPath() {
	s.mockFixtureRepo.EXPECT().
		DeleteFixture(gomock.Any(), &fixtureRepo.DeleteFixtureInput{
			FixtureID: s.testFixtureID,
		}).
		Return(nil)

	err := s.fixtureService.DeleteFixture(s.ctx, &DeleteFixtureInput{
		FixtureID: s.testFixtureID,
	})

	s.Require().NoError(err)
}

func (s *FixtureServiceTestSuite) TestDeleteFixture_NotFound() {
	s.mockFixtureRepo.EXPECT().
		DeleteFixture(gomock.Any(), gomock.Any()).
		Return(fixtureRepo.ErrFixtureNotFound)

	err := s.fixtureService.DeleteFixture(s.ctx, &DeleteFixtureInput{
		FixtureID: "missing-id",
	})

	s.Require().Error(err)
	s.True(errors.Is(err, ErrFixtureNotFound))
}

func (s *FixtureServiceTestSuite) TestNew_NilConfig() {
	svc, err := New(nil)
	s.Require().Error(err)
	s.Equal(ErrNilConfig, err)
	s.Nil(svc)
}
