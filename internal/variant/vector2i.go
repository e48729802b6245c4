package variant

import "fmt"

// Vector2i is a 2D vector with int32 components.
type Vector2i struct {
	X, Y int32
}

// Point2i is a Vector2i used as a position.
type Point2i = Vector2i

// Size2i is a Vector2i used as an extent. X is the width and Y the height.
type Size2i = Vector2i

// NewVector2i creates a Vector2i from its components.
func NewVector2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Add returns v offset by other.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v with other subtracted.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{X: v.X - other.X, Y: v.Y - other.Y}
}

// Abs returns v with both components made non-negative.
// math.MinInt32 stays negative, as with any two's complement negation.
func (v Vector2i) Abs() Vector2i {
	return Vector2i{X: abs32(v.X), Y: abs32(v.Y)}
}

// Min returns the component-wise minimum of v and other.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Vector2 widens v to a float vector.
func (v Vector2i) Vector2() Vector2 {
	return Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// String formats v as "(x, y)".
func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
