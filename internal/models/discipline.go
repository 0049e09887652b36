package models

// DisciplineType represents a clay shooting format
type DisciplineType string

const (
	// DisciplineTrap indicates standard trap shooting
	DisciplineTrap DisciplineType = "trap"

	// DisciplineSkeet indicates skeet shooting
	DisciplineSkeet DisciplineType = "skeet"

	// DisciplineSportingClays indicates sporting clays
	DisciplineSportingClays DisciplineType = "sporting_clays"

	// DisciplineDownTheLine indicates down the line shooting
	DisciplineDownTheLine DisciplineType = "down_the_line"

	// DisciplineOlympicTrap indicates olympic trap shooting
	DisciplineOlympicTrap DisciplineType = "olympic_trap"

	// DisciplineAmericanTrap indicates american trap shooting
	DisciplineAmericanTrap DisciplineType = "american_trap"
)

// Valid reports whether the discipline is one of the known formats
func (d DisciplineType) Valid() bool {
	switch d {
	case DisciplineTrap, DisciplineSkeet, DisciplineSportingClays,
		DisciplineDownTheLine, DisciplineOlympicTrap, DisciplineAmericanTrap:
		return true
	}
	return false
}
