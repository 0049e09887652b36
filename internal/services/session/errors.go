package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   SessionError = "session not found"
	ErrMissingField      SessionError = "missing required field"
	ErrInvalidDate       SessionError = "invalid date, expected YYYY-MM-DD"
	ErrInvalidDiscipline SessionError = "invalid discipline"
	ErrInvalidWeather    SessionError = "invalid weather condition"
	ErrEmptyUpdate       SessionError = "no fields to update"
	ErrNilInput          SessionError = "input cannot be nil"
	ErrNilConfig         SessionError = "config cannot be nil"
	ErrNilSessionRepo    SessionError = "session repository cannot be nil"
	ErrNilFixtureRepo    SessionError = "fixture repository cannot be nil"
	ErrNilClock          SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator  SessionError = "UUID generator cannot be nil"
)
