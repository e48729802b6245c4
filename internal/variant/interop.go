package variant

import (
	"image"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/math/fixed"
)

// BB converts r to a physics bounding box.
// The box is built from the normalized rectangle since cp.BB requires L <= R
// and B <= T. The engine's Y axis points down, so B is the smaller Y.
func (r Rect2i) BB() cp.BB {
	n := r.Abs()
	end := n.End()
	return cp.BB{
		L: float64(n.Position.X),
		B: float64(n.Position.Y),
		R: float64(end.X),
		T: float64(end.Y),
	}
}

// Rect2iFromBB truncates a physics bounding box toward zero on each edge.
func Rect2iFromBB(bb cp.BB) Rect2i {
	l, b := int32(bb.L), int32(bb.B)
	return Rect2i{
		Position: Point2i{X: l, Y: b},
		Size:     Size2i{X: int32(bb.R) - l, Y: int32(bb.T) - b},
	}
}

// Fixed converts r to 26.6 fixed-point bounds for text layout.
// Int26_6 holds whole values in [-2^25, 2^25); coordinates outside that range
// are clamped to it.
func (r Rect2i) Fixed() fixed.Rectangle26_6 {
	n := r.Abs()
	end := n.End()
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixedCoord(n.Position.X), Y: fixedCoord(n.Position.Y)},
		Max: fixed.Point26_6{X: fixedCoord(end.X), Y: fixedCoord(end.Y)},
	}
}

const (
	minFixedCoord = -1 << 25
	maxFixedCoord = 1<<25 - 1
)

func fixedCoord(v int32) fixed.Int26_6 {
	return fixed.I(int(min(max(v, minFixedCoord), maxFixedCoord)))
}

// Image converts r to an image.Rectangle.
func (r Rect2i) Image() image.Rectangle {
	n := r.Abs()
	end := n.End()
	return image.Rect(int(n.Position.X), int(n.Position.Y), int(end.X), int(end.Y))
}

// Rect2iFromImage converts an image.Rectangle to a Rect2i.
// Coordinates outside the int32 range wrap.
func Rect2iFromImage(ir image.Rectangle) Rect2i {
	return NewRect2i(int32(ir.Min.X), int32(ir.Min.Y), int32(ir.Dx()), int32(ir.Dy()))
}
