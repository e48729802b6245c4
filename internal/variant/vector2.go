package variant

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector with float32 components.
type Vector2 struct {
	X, Y float32
}

// Add returns v offset by other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Abs returns v with both components made non-negative.
func (v Vector2) Abs() Vector2 {
	return Vector2{X: math32.Abs(v.X), Y: math32.Abs(v.Y)}
}

// IsEqualApprox reports whether v and other are equal within a relative epsilon.
func (v Vector2) IsEqualApprox(other Vector2) bool {
	return isEqualApprox(v.X, other.X) && isEqualApprox(v.Y, other.Y)
}

// Vector2i truncates both components toward zero.
func (v Vector2) Vector2i() Vector2i {
	return Vector2i{X: int32(v.X), Y: int32(v.Y)}
}

// String formats v as "(x, y)" using the shortest exact representation.
func (v Vector2) String() string {
	return "(" + formatReal(v.X) + ", " + formatReal(v.Y) + ")"
}

const cmpEpsilon = 0.00001

func isEqualApprox(a, b float32) bool {
	if a == b {
		return true
	}
	tolerance := cmpEpsilon * math32.Abs(a)
	if tolerance < cmpEpsilon {
		tolerance = cmpEpsilon
	}
	return math32.Abs(a-b) < tolerance
}

func formatReal(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
