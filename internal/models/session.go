package models

import (
	"time"
)

// DateLayout is the calendar date format used on the wire and in storage.
// Dates carry no time component and no time zone.
const DateLayout = "2006-01-02"

// WeatherCondition represents the weather during a session
type WeatherCondition string

const (
	// WeatherSunny indicates clear, sunny conditions
	WeatherSunny WeatherCondition = "sunny"

	// WeatherCloudy indicates cloudy conditions
	WeatherCloudy WeatherCondition = "cloudy"

	// WeatherWindy indicates windy conditions
	WeatherWindy WeatherCondition = "windy"

	// WeatherRainy indicates rain
	WeatherRainy WeatherCondition = "rainy"

	// WeatherOvercast indicates overcast conditions
	WeatherOvercast WeatherCondition = "overcast"
)

// Valid reports whether the weather condition is one of the known values
func (w WeatherCondition) Valid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherWindy, WeatherRainy, WeatherOvercast:
		return true
	}
	return false
}

// Session represents a single practice outing with recorded clay counts.
// Sessions are stored as JSON documents, so the field tags describe both
// the wire shape and the storage shape.
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// Date is the calendar date of the session, formatted as DateLayout
	Date string `json:"date"`

	// Time is the free-form time of day, e.g. "14:00"
	Time string `json:"time"`

	// Location is where the session took place
	Location string `json:"location"`

	// Discipline is the shooting format for the session
	Discipline DisciplineType `json:"discipline"`

	// TotalClays is the number of targets presented
	TotalClays int `json:"total_clays"`

	// ClaysHit is the number of targets broken. No invariant ties this
	// to TotalClays; the counts are recorded as given.
	ClaysHit int `json:"clays_hit"`

	// Weather is the optional weather condition
	Weather *WeatherCondition `json:"weather,omitempty"`

	// Temperature is the optional temperature in degrees
	Temperature *int `json:"temperature,omitempty"`

	// WindSpeed is an optional free-form wind description
	WindSpeed *string `json:"wind_speed,omitempty"`

	// GunUsed is the optional gun used
	GunUsed *string `json:"gun_used,omitempty"`

	// CartridgeType is the optional cartridge type
	CartridgeType *string `json:"cartridge_type,omitempty"`

	// ChokeUsed is the optional choke used
	ChokeUsed *string `json:"choke_used,omitempty"`

	// Notes holds optional free-form notes
	Notes *string `json:"notes,omitempty"`

	// FixtureID optionally links the session to a fixture. The link is
	// weak: the fixture may be renamed or deleted afterwards and the
	// session is not touched.
	FixtureID *string `json:"fixture_id,omitempty"`

	// FixtureName is a snapshot of the linked fixture's name, taken at
	// session creation time only
	FixtureName *string `json:"fixture_name,omitempty"`

	// CreatedAt is when the session record was created
	CreatedAt time.Time `json:"created_at"`
}

// Accuracy returns the per-session hit percentage, unrounded.
// A session with no clays presented counts as 0.
func (s *Session) Accuracy() float64 {
	if s.TotalClays <= 0 {
		return 0
	}
	return float64(s.ClaysHit) / float64(s.TotalClays) * 100
}
