package calendar

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	fixtureRepo fixtureRepo.Repository
}

// New creates a new calendar service
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

	return &service{
		sessionRepo: cfg.SessionRepo,
		fixtureRepo: cfg.FixtureRepo,
	}, nil
}

// GetEvents merges fixtures and sessions inside the date range into one feed
// sorted ascending by date then by time-of-day string. The two range reads
// are independent; no cross-collection consistency is required.
func (s *service) GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, ErrMissingDateRange
	}
	if _, err := time.Parse(models.DateLayout, input.StartDate); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, input.StartDate)
	}
	if _, err := time.Parse(models.DateLayout, input.EndDate); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, input.EndDate)
	}

	fixtures, err := s.fixtureRepo.ListFixturesByDateRange(ctx, &fixtureRepo.ListFixturesByDateRangeInput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListSessionsByDateRange(ctx, &sessionRepo.ListSessionsByDateRangeInput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	events := make([]*models.CalendarEvent, 0, len(fixtures.Fixtures)+len(sessions.Sessions))
	for _, fx := range fixtures.Fixtures {
		events = append(events, fixtureEvent(fx))
	}
	for _, sess := range sessions.Sessions {
		events = append(events, sessionEvent(sess))
	}

	// Time-of-day is a free-form string compared lexicographically, so
	// callers get correct ordering only for zero-padded 24-hour values.
	// The stable sort keeps fixtures ahead of sessions on full ties.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})

	return &GetEventsOutput{
		Events: events,
	}, nil
}

// fixtureEvent projects a fixture into the uniform event record
func fixtureEvent(fx *models.Fixture) *models.CalendarEvent {
	event := &models.CalendarEvent{
		ID:         fx.ID,
		Title:      fx.Name,
		Date:       fx.Date,
		Time:       fx.Time,
		Type:       models.CalendarEventTypeFixture,
		Discipline: fx.Discipline,
		Location:   fx.Location,
		EntryFee:   fx.EntryFee,
	}

	if fx.Description != nil {
		event.Description = *fx.Description
	}
	if fx.Organizer != nil {
		event.Organizer = *fx.Organizer
	}

	return event
}

// sessionEvent projects a session into the uniform event record
func sessionEvent(sess *models.Session) *models.CalendarEvent {
	accuracy := math.Round(sess.Accuracy()*10) / 10
	claysHit := sess.ClaysHit
	totalClays := sess.TotalClays

	event := &models.CalendarEvent{
		ID:         sess.ID,
		Title:      "Session - " + humanizeDiscipline(sess.Discipline),
		Date:       sess.Date,
		Time:       sess.Time,
		Type:       models.CalendarEventTypeSession,
		Discipline: sess.Discipline,
		Location:   sess.Location,
		Accuracy:   &accuracy,
		ClaysHit:   &claysHit,
		TotalClays: &totalClays,
	}

	if sess.FixtureName != nil {
		event.FixtureName = *sess.FixtureName
	}

	return event
}

// humanizeDiscipline turns an enumeration value into a display name,
// e.g. "sporting_clays" becomes "Sporting Clays"
func humanizeDiscipline(d models.DisciplineType) string {
	words := strings.Split(string(d), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
