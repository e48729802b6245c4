package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Side names one of the four sides of a rectangle.
// The ordinal values match the engine's enumeration.
type Side uint32

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// ErrInvalidSide is returned when a side name or ordinal is not recognized.
var ErrInvalidSide = errors.New("invalid side")

var sideNames = [...]string{
	SideLeft:   "left",
	SideTop:    "top",
	SideRight:  "right",
	SideBottom: "bottom",
}

// String returns the lowercase side name, or "Side(n)" for unknown ordinals.
func (s Side) String() string {
	if s.Valid() {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", uint32(s))
}

// Valid reports whether s is one of the four named sides.
func (s Side) Valid() bool {
	return s <= SideBottom
}

// ParseSide parses a side name, case-insensitively.
func ParseSide(name string) (Side, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, name)
}
