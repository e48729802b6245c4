// variant.go re-exports the value types from internal/variant.
// Any changes to internal/variant types must be mirrored here.
package godot

import (
	"image"

	"github.com/Sauermann/godot-cpp/internal/variant"
	"github.com/jakecoffman/cp"
)

// Rect2i is an integer axis-aligned rectangle stored as a position and a size.
type Rect2i = variant.Rect2i

// Rect2 is a float32 axis-aligned rectangle.
type Rect2 = variant.Rect2

// Vector2i is a 2D vector with int32 components.
type Vector2i = variant.Vector2i

// Point2i is a Vector2i used as a position.
type Point2i = variant.Point2i

// Size2i is a Vector2i used as an extent.
type Size2i = variant.Size2i

// Vector2 is a 2D vector with float32 components.
type Vector2 = variant.Vector2

// Side names one of the four sides of a rectangle.
type Side = variant.Side

const (
	SideLeft   = variant.SideLeft
	SideTop    = variant.SideTop
	SideRight  = variant.SideRight
	SideBottom = variant.SideBottom
)

var (
	// ErrInvalidSide is returned when a side name or ordinal is not recognized.
	ErrInvalidSide = variant.ErrInvalidSide
	// ErrMalformed is returned when YAML input cannot be decoded into a variant type.
	ErrMalformed = variant.ErrMalformed
)

// NewRect2i creates a Rect2i from its position and size components.
func NewRect2i(x, y, width, height int32) Rect2i {
	return variant.NewRect2i(x, y, width, height)
}

// NewRect2iFromPoints creates a Rect2i from a position and a size.
func NewRect2iFromPoints(position Point2i, size Size2i) Rect2i {
	return variant.NewRect2iFromPoints(position, size)
}

// NewRect2 creates a Rect2 from its position and size components.
func NewRect2(x, y, width, height float32) Rect2 {
	return variant.NewRect2(x, y, width, height)
}

// NewVector2i creates a Vector2i from its components.
func NewVector2i(x, y int32) Vector2i {
	return variant.NewVector2i(x, y)
}

// ParseSide parses a side name, case-insensitively.
func ParseSide(name string) (Side, error) {
	return variant.ParseSide(name)
}

// Rect2iFromBB truncates a physics bounding box into a Rect2i.
func Rect2iFromBB(bb cp.BB) Rect2i {
	return variant.Rect2iFromBB(bb)
}

// Rect2iFromImage converts an image.Rectangle to a Rect2i.
func Rect2iFromImage(r image.Rectangle) Rect2i {
	return variant.Rect2iFromImage(r)
}
