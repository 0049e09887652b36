package calendar

// CalendarError is a custom error type for calendar-related errors
type CalendarError string

// Error implements the error interface
func (e CalendarError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingDateRange CalendarError = "start and end dates are required"
	ErrInvalidDate      CalendarError = "invalid date, expected YYYY-MM-DD"
	ErrNilInput         CalendarError = "input cannot be nil"
	ErrNilConfig        CalendarError = "config cannot be nil"
	ErrNilSessionRepo   CalendarError = "session repository cannot be nil"
	ErrNilFixtureRepo   CalendarError = "fixture repository cannot be nil"
)
