package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/claytrack/internal/models"
	sessionService "github.com/KirkDiggler/claytrack/internal/services/session"
)

// createSessionRequest is the wire shape for creating a session. The count
// fields are pointers so a missing field is distinguishable from zero.
type createSessionRequest struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Location      string  `json:"location"`
	Discipline    string  `json:"discipline"`
	TotalClays    *int    `json:"total_clays"`
	ClaysHit      *int    `json:"clays_hit"`
	Weather       *string `json:"weather"`
	Temperature   *int    `json:"temperature"`
	WindSpeed     *string `json:"wind_speed"`
	GunUsed       *string `json:"gun_used"`
	CartridgeType *string `json:"cartridge_type"`
	ChokeUsed     *string `json:"choke_used"`
	Notes         *string `json:"notes"`
	FixtureID     *string `json:"fixture_id"`
	FixtureName   *string `json:"fixture_name"`
}

// updateSessionRequest is the wire shape for a partial session update;
// absent fields stay untouched
type updateSessionRequest struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Location      *string `json:"location"`
	Discipline    *string `json:"discipline"`
	TotalClays    *int    `json:"total_clays"`
	ClaysHit      *int    `json:"clays_hit"`
	Weather       *string `json:"weather"`
	Temperature   *int    `json:"temperature"`
	WindSpeed     *string `json:"wind_speed"`
	GunUsed       *string `json:"gun_used"`
	CartridgeType *string `json:"cartridge_type"`
	ChokeUsed     *string `json:"choke_used"`
	Notes         *string `json:"notes"`
	FixtureID     *string `json:"fixture_id"`
	FixtureName   *string `json:"fixture_name"`
}

// handleCreateSession records a new session
//
// POST /api/sessions
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.sessions.CreateSession(r.Context(), &sessionService.CreateSessionInput{
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Discipline:    models.DisciplineType(req.Discipline),
		TotalClays:    req.TotalClays,
		ClaysHit:      req.ClaysHit,
		Weather:       weatherPtr(req.Weather),
		Temperature:   req.Temperature,
		WindSpeed:     req.WindSpeed,
		GunUsed:       req.GunUsed,
		CartridgeType: req.CartridgeType,
		ChokeUsed:     req.ChokeUsed,
		Notes:         req.Notes,
		FixtureID:     req.FixtureID,
		FixtureName:   req.FixtureName,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, out.Session)
}

// handleListSessions lists sessions, newest date first
//
// GET /api/sessions?limit=50&skip=0
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.intQuery(w, r, "limit", 50)
	if !ok {
		return
	}
	skip, ok := h.intQuery(w, r, "skip", 0)
	if !ok {
		return
	}

	out, err := h.sessions.ListSessions(r.Context(), &sessionService.ListSessionsInput{
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Sessions)
}

// handleRecentSessions lists the most recent sessions
//
// GET /api/sessions/recent/{limit}
func (h *Handler) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(chi.URLParam(r, "limit"))
	if err != nil {
		h.badRequest(w, "limit must be an integer")
		return
	}

	out, err := h.sessions.GetRecentSessions(r.Context(), &sessionService.GetRecentSessionsInput{
		Limit: limit,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Sessions)
}

// handleGetSession returns one session
//
// GET /api/sessions/{id}
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.sessions.GetSession(r.Context(), &sessionService.GetSessionInput{
		SessionID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Session)
}

// handleUpdateSession applies a partial update
//
// PUT /api/sessions/{id}
func (h *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.sessions.UpdateSession(r.Context(), &sessionService.UpdateSessionInput{
		SessionID:     chi.URLParam(r, "id"),
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Discipline:    disciplinePtr(req.Discipline),
		TotalClays:    req.TotalClays,
		ClaysHit:      req.ClaysHit,
		Weather:       weatherPtr(req.Weather),
		Temperature:   req.Temperature,
		WindSpeed:     req.WindSpeed,
		GunUsed:       req.GunUsed,
		CartridgeType: req.CartridgeType,
		ChokeUsed:     req.ChokeUsed,
		Notes:         req.Notes,
		FixtureID:     req.FixtureID,
		FixtureName:   req.FixtureName,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Session)
}

// handleDeleteSession removes a session
//
// DELETE /api/sessions/{id}
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.DeleteSession(r.Context(), &sessionService.DeleteSessionInput{
		SessionID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Session deleted successfully"})
}

// handleGetStats returns aggregate statistics over all sessions
//
// GET /api/stats
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.sessions.GetStats(r.Context(), &sessionService.GetStatsInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Stats)
}

// intQuery parses an optional integer query parameter, reporting a
// validation error to the client on malformed or negative input
func (h *Handler) intQuery(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		h.badRequest(w, name+" must be an integer")
		return 0, false
	}
	if value < 0 {
		h.badRequest(w, name+" must not be negative")
		return 0, false
	}

	return value, true
}

// weatherPtr converts an optional wire string into the weather enumeration
func weatherPtr(s *string) *models.WeatherCondition {
	if s == nil {
		return nil
	}
	w := models.WeatherCondition(*s)
	return &w
}

// disciplinePtr converts an optional wire string into the discipline enumeration
func disciplinePtr(s *string) *models.DisciplineType {
	if s == nil {
		return nil
	}
	d := models.DisciplineType(*s)
	return &d
}
