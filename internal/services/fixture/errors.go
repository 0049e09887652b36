package fixture

// FixtureError is a custom error type for fixture-related errors
type FixtureError string

// Error implements the error interface
func (e FixtureError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrFixtureNotFound   FixtureError = "fixture not found"
	ErrMissingField      FixtureError = "missing required field"
	ErrInvalidDate       FixtureError = "invalid date, expected YYYY-MM-DD"
	ErrInvalidDiscipline FixtureError = "invalid discipline"
	ErrEmptyUpdate       FixtureError = "no fields to update"
	ErrNilInput          FixtureError = "input cannot be nil"
	ErrNilConfig         FixtureError = "config cannot be nil"
	ErrNilFixtureRepo    FixtureError = "fixture repository cannot be nil"
	ErrNilClock          FixtureError = "clock cannot be nil"
	ErrNilUUIDGenerator  FixtureError = "UUID generator cannot be nil"
)
