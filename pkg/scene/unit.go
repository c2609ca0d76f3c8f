package scene

import (
	"fmt"
	"strings"
)

// Unit is the measurement unit of the room dimensions.
type Unit int

const (
	Meters Unit = iota
	Feet
)

const (
	metersToFeet = 3.28084
	feetToMeters = 0.3048
)

func (u Unit) String() string {
	switch u {
	case Meters:
		return "meters"
	case Feet:
		return "feet"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Abbrev returns the short label used on dimension captions.
func (u Unit) Abbrev() string {
	if u == Feet {
		return "ft"
	}
	return "m"
}

// ParseUnit accepts "meters", "m", "feet", "ft" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meters", "meter", "metres", "m":
		return Meters, nil
	case "feet", "foot", "ft":
		return Feet, nil
	}
	return 0, fmt.Errorf("scene: unknown unit %q", s)
}

// factor converts a value in unit from to unit to.
func factor(from, to Unit) float64 {
	switch {
	case from == to:
		return 1
	case from == Meters && to == Feet:
		return metersToFeet
	default:
		return feetToMeters
	}
}
