package cashbox

// Shift represents the school shift a drawer belongs to
type Shift string

const (
	ShiftMorning   Shift = "M"
	ShiftAfternoon Shift = "T"
)

// IsValid checks if the shift is a valid Shift
func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon:
		return true
	}
	return false
}

// String returns the string representation of Shift
func (s Shift) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the shift
func (s Shift) DisplayName() string {
	switch s {
	case ShiftMorning:
		return "Mañana"
	case ShiftAfternoon:
		return "Tarde"
	default:
		return string(s)
	}
}

// Level represents the school level a drawer belongs to
type Level string

const (
	LevelPrimary   Level = "P"
	LevelSecondary Level = "S"
)

// IsValid checks if the level is a valid Level
func (l Level) IsValid() bool {
	switch l {
	case LevelPrimary, LevelSecondary:
		return true
	}
	return false
}

// String returns the string representation of Level
func (l Level) String() string {
	return string(l)
}

// DisplayName returns a human-readable name for the level
func (l Level) DisplayName() string {
	switch l {
	case LevelPrimary:
		return "Primario"
	case LevelSecondary:
		return "Secundario"
	default:
		return string(l)
	}
}
