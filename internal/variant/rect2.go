package variant

// Rect2 is a float32 axis-aligned rectangle.
// Only the operations the integer rectangle interoperates with are provided.
type Rect2 struct {
	Position Vector2
	Size     Vector2
}

// NewRect2 creates a Rect2 from its position and size components.
func NewRect2(x, y, width, height float32) Rect2 {
	return Rect2{Position: Vector2{X: x, Y: y}, Size: Vector2{X: width, Y: height}}
}

// End returns the far corner, Position + Size.
func (r Rect2) End() Vector2 {
	return r.Position.Add(r.Size)
}

// Abs returns the equivalent rectangle with a non-negative size.
func (r Rect2) Abs() Rect2 {
	return Rect2{
		Position: Vector2{X: r.Position.X + min(r.Size.X, 0), Y: r.Position.Y + min(r.Size.Y, 0)},
		Size:     r.Size.Abs(),
	}
}

// HasPoint reports whether p lies in the half-open box [Position, End).
func (r Rect2) HasPoint(p Vector2) bool {
	end := r.End()
	return p.X >= r.Position.X && p.Y >= r.Position.Y && p.X < end.X && p.Y < end.Y
}

// Intersects reports whether r and other overlap.
// Unlike Rect2i, rectangles that only share an edge do not intersect.
func (r Rect2) Intersects(other Rect2) bool {
	end, otherEnd := r.End(), other.End()
	return r.Position.X < otherEnd.X && end.X > other.Position.X &&
		r.Position.Y < otherEnd.Y && end.Y > other.Position.Y
}

// IsEqualApprox reports whether both fields match within a relative epsilon.
func (r Rect2) IsEqualApprox(other Rect2) bool {
	return r.Position.IsEqualApprox(other.Position) && r.Size.IsEqualApprox(other.Size)
}

// Rect2i truncates position and size toward zero.
func (r Rect2) Rect2i() Rect2i {
	return Rect2i{Position: r.Position.Vector2i(), Size: r.Size.Vector2i()}
}

// String formats r as "<position>, <size>".
func (r Rect2) String() string {
	return r.Position.String() + ", " + r.Size.String()
}
