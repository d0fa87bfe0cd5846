package world

import (
	"strings"

	"github.com/matzehuels/waypoint/pkg/errors"
)

// Direction is a compass exit. Its integer value is the slot index used in
// the underlying graph.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of exits per location.
const NumDirections = 4

var directionNames = [NumDirections]string{"north", "east", "south", "west"}

// Directions returns all directions in slot order.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool { return d >= 0 && d < NumDirections }

// Opposite returns the direction pointing back: north/south, east/west.
func (d Direction) Opposite() Direction { return (d + 2) % NumDirections }

// ParseDirection parses a direction name or its first letter, ignoring case.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Direction(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q (want north, east, south or west)", s)
}

// ParseDirections parses every element of names with [ParseDirection].
func ParseDirections(names []string) ([]Direction, error) {
	dirs := make([]Direction, len(names))
	for i, name := range names {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, err
		}
		dirs[i] = d
	}
	return dirs, nil
}
