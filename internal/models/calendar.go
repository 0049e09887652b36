package models

// CalendarEventType tags the source record of a calendar event
type CalendarEventType string

const (
	// CalendarEventTypeFixture indicates the event is a scheduled fixture
	CalendarEventTypeFixture CalendarEventType = "fixture"

	// CalendarEventTypeSession indicates the event is a recorded session
	CalendarEventTypeSession CalendarEventType = "session"
)

// CalendarEvent is the uniform projection of a fixture or session into
// the merged calendar feed. Fixture events carry the descriptive fields;
// session events carry the scoring fields.
type CalendarEvent struct {
	// ID is the identifier of the underlying fixture or session
	ID string `json:"id"`

	// Title is the display title for the event
	Title string `json:"title"`

	// Date is the calendar date, formatted as DateLayout
	Date string `json:"date"`

	// Time is the free-form time of day
	Time string `json:"time"`

	// Type identifies the source record
	Type CalendarEventType `json:"type"`

	// Discipline is the shooting format
	Discipline DisciplineType `json:"discipline"`

	// Location is where the event takes place
	Location string `json:"location"`

	// Description is the fixture description, fixture events only;
	// empty on session events
	Description string `json:"description"`

	// Organizer is the fixture organizer, fixture events only; empty on
	// session events
	Organizer string `json:"organizer"`

	// EntryFee is the fixture entry fee, fixture events only
	EntryFee *float64 `json:"entry_fee,omitempty"`

	// Accuracy is the per-session hit percentage, session events only
	Accuracy *float64 `json:"accuracy,omitempty"`

	// ClaysHit is the targets broken, session events only
	ClaysHit *int `json:"clays_hit,omitempty"`

	// TotalClays is the targets presented, session events only
	TotalClays *int `json:"total_clays,omitempty"`

	// FixtureName is the session's denormalized fixture name, if any;
	// empty when the session has no fixture link
	FixtureName string `json:"fixture_name"`
}
