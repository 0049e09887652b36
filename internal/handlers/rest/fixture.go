package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/claytrack/internal/models"
	fixtureService "github.com/KirkDiggler/claytrack/internal/services/fixture"
)

// createFixtureRequest is the wire shape for scheduling a fixture
type createFixtureRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Discipline      string   `json:"discipline"`
	MaxParticipants *int     `json:"max_participants"`
	EntryFee        *float64 `json:"entry_fee"`
	Organizer       *string  `json:"organizer"`
	ContactInfo     *string  `json:"contact_info"`
	Notes           *string  `json:"notes"`
}

// updateFixtureRequest is the wire shape for a partial fixture update;
// absent fields stay untouched
type updateFixtureRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date"`
	Time            *string  `json:"time"`
	Location        *string  `json:"location"`
	Discipline      *string  `json:"discipline"`
	MaxParticipants *int     `json:"max_participants"`
	EntryFee        *float64 `json:"entry_fee"`
	Organizer       *string  `json:"organizer"`
	ContactInfo     *string  `json:"contact_info"`
	Notes           *string  `json:"notes"`
}

// handleCreateFixture schedules a new fixture
//
// POST /api/fixtures
func (h *Handler) handleCreateFixture(w http.ResponseWriter, r *http.Request) {
	var req createFixtureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.fixtures.CreateFixture(r.Context(), &fixtureService.CreateFixtureInput{
		Name:            req.Name,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Discipline:      models.DisciplineType(req.Discipline),
		MaxParticipants: req.MaxParticipants,
		EntryFee:        req.EntryFee,
		Organizer:       req.Organizer,
		ContactInfo:     req.ContactInfo,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, out.Fixture)
}

// handleListFixtures lists fixtures, newest date first
//
// GET /api/fixtures?limit=50&skip=0
func (h *Handler) handleListFixtures(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.intQuery(w, r, "limit", 50)
	if !ok {
		return
	}
	skip, ok := h.intQuery(w, r, "skip", 0)
	if !ok {
		return
	}

	out, err := h.fixtures.ListFixtures(r.Context(), &fixtureService.ListFixturesInput{
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Fixtures)
}

// handleGetFixture returns one fixture
//
// GET /api/fixtures/{id}
func (h *Handler) handleGetFixture(w http.ResponseWriter, r *http.Request) {
	out, err := h.fixtures.GetFixture(r.Context(), &fixtureService.GetFixtureInput{
		FixtureID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Fixture)
}

// handleUpdateFixture applies a partial update
//
// PUT /api/fixtures/{id}
func (h *Handler) handleUpdateFixture(w http.ResponseWriter, r *http.Request) {
	var req updateFixtureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.fixtures.UpdateFixture(r.Context(), &fixtureService.UpdateFixtureInput{
		FixtureID:       chi.URLParam(r, "id"),
		Name:            req.Name,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Discipline:      disciplinePtr(req.Discipline),
		MaxParticipants: req.MaxParticipants,
		EntryFee:        req.EntryFee,
		Organizer:       req.Organizer,
		ContactInfo:     req.ContactInfo,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Fixture)
}

// handleDeleteFixture removes a fixture. Sessions referencing it keep their
// stale name snapshot.
//
// DELETE /api/fixtures/{id}
func (h *Handler) handleDeleteFixture(w http.ResponseWriter, r *http.Request) {
	err := h.fixtures.DeleteFixture(r.Context(), &fixtureService.DeleteFixtureInput{
		FixtureID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Fixture deleted successfully"})
}
