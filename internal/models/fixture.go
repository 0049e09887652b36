package models

import (
	"time"
)

// Fixture represents a scheduled competition or club event, independent
// of any recorded session
type Fixture struct {
	// ID is the unique identifier for this fixture
	ID string `json:"id"`

	// Name is the display name of the fixture
	Name string `json:"name"`

	// Description is an optional longer description
	Description *string `json:"description,omitempty"`

	// Date is the calendar date of the fixture, formatted as DateLayout
	Date string `json:"date"`

	// Time is the free-form start time, e.g. "09:00"
	Time string `json:"time"`

	// Location is where the fixture is held
	Location string `json:"location"`

	// Discipline is the shooting format for the fixture
	Discipline DisciplineType `json:"discipline"`

	// MaxParticipants is the optional entry cap
	MaxParticipants *int `json:"max_participants,omitempty"`

	// EntryFee is the optional entry fee
	EntryFee *float64 `json:"entry_fee,omitempty"`

	// Organizer is the optional organizing body or person
	Organizer *string `json:"organizer,omitempty"`

	// ContactInfo is optional contact details for entries
	ContactInfo *string `json:"contact_info,omitempty"`

	// Notes holds optional free-form notes
	Notes *string `json:"notes,omitempty"`

	// CreatedAt is when the fixture record was created
	CreatedAt time.Time `json:"created_at"`
}
