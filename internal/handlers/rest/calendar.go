package rest

import (
	"net/http"

	calendarService "github.com/KirkDiggler/claytrack/internal/services/calendar"
)

// handleCalendarEvents returns the merged fixture/session feed for a range
//
// GET /api/calendar/events?start_date=2024-03-01&end_date=2024-03-31
func (h *Handler) handleCalendarEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	out, err := h.calendar.GetEvents(r.Context(), &calendarService.GetEventsInput{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Events)
}
