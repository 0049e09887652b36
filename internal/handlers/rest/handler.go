package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	calendarService "github.com/KirkDiggler/claytrack/internal/services/calendar"
	fixtureService "github.com/KirkDiggler/claytrack/internal/services/fixture"
	sessionService "github.com/KirkDiggler/claytrack/internal/services/session"
)

// welcomeMessage is returned from the API root
const welcomeMessage = "Clay Tracker Australia - Shooting Performance API"

// Config holds the configuration for the REST handler
type Config struct {
	// Session service
	SessionService sessionService.Service

	// Fixture service
	FixtureService fixtureService.Service

	// Calendar service
	CalendarService calendarService.Service

	// Logger for request logging and encode failures
	Logger zerolog.Logger
}

// Handler exposes the API over HTTP
type Handler struct {
	sessions sessionService.Service
	fixtures fixtureService.Service
	calendar calendarService.Service
	logger   zerolog.Logger
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.FixtureService == nil {
		return nil, errors.New("fixture service cannot be nil")
	}

	if cfg.CalendarService == nil {
		return nil, errors.New("calendar service cannot be nil")
	}

	return &Handler{
		sessions: cfg.SessionService,
		fixtures: cfg.FixtureService,
		calendar: cfg.CalendarService,
		logger:   cfg.Logger,
	}, nil
}

// Routes builds the router for the API surface
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.handleRoot)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.handleCreateSession)
			r.Get("/", h.handleListSessions)
			r.Get("/recent/{limit}", h.handleRecentSessions)
			r.Get("/{id}", h.handleGetSession)
			r.Put("/{id}", h.handleUpdateSession)
			r.Delete("/{id}", h.handleDeleteSession)
		})

		r.Get("/stats", h.handleGetStats)

		r.Route("/fixtures", func(r chi.Router) {
			r.Post("/", h.handleCreateFixture)
			r.Get("/", h.handleListFixtures)
			r.Get("/{id}", h.handleGetFixture)
			r.Put("/{id}", h.handleUpdateFixture)
			r.Delete("/{id}", h.handleDeleteFixture)
		})

		r.Get("/calendar/events", h.handleCalendarEvents)
	})

	return r
}

// handleRoot returns the API welcome message
//
// GET /api/
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, messageResponse{Message: welcomeMessage})
}
