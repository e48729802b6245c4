package variant

// Rect2i is an integer axis-aligned rectangle.
//
// Position is the stored corner and Size the extent from it. Size may be
// negative on either axis, in which case Position is not the minimum corner;
// most queries assume a non-negative size and Abs normalizes one. The zero
// value is the empty rectangle at the origin. Rectangles compare with ==.
//
// Arithmetic is int32 and wraps on overflow.
type Rect2i struct {
	Position Point2i
	Size     Size2i
}

// NewRect2i creates a Rect2i from its position and size components.
func NewRect2i(x, y, width, height int32) Rect2i {
	return Rect2i{Position: Point2i{X: x, Y: y}, Size: Size2i{X: width, Y: height}}
}

// NewRect2iFromPoints creates a Rect2i from a position and a size.
func NewRect2iFromPoints(position Point2i, size Size2i) Rect2i {
	return Rect2i{Position: position, Size: size}
}

// Area returns Size.X * Size.Y.
// This is the raw product, so it is negative when exactly one axis is negative.
func (r Rect2i) Area() int32 {
	return r.Size.X * r.Size.Y
}

// HasNoArea returns true if either side length is zero or negative.
func (r Rect2i) HasNoArea() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// End returns the far corner, Position + Size.
func (r Rect2i) End() Point2i {
	return r.Position.Add(r.Size)
}

// SetEnd moves the far corner to end, keeping Position.
func (r *Rect2i) SetEnd(end Point2i) {
	r.Size = end.Sub(r.Position)
}

// Intersects returns true if the two rectangles overlap.
// Rectangles that only share an edge or corner count as intersecting.
func (r Rect2i) Intersects(other Rect2i) bool {
	if r.Position.X > other.Position.X+other.Size.X {
		return false
	}
	if r.Position.X+r.Size.X < other.Position.X {
		return false
	}
	if r.Position.Y > other.Position.Y+other.Size.Y {
		return false
	}
	if r.Position.Y+r.Size.Y < other.Position.Y {
		return false
	}
	return true
}

// Encloses returns true if other lies inside r.
// The far edges of other must be strictly inside r, so a rectangle does not
// enclose itself.
func (r Rect2i) Encloses(other Rect2i) bool {
	return other.Position.X >= r.Position.X && other.Position.Y >= r.Position.Y &&
		other.Position.X+other.Size.X < r.Position.X+r.Size.X &&
		other.Position.Y+other.Size.Y < r.Position.Y+r.Size.Y
}

// Intersection returns the overlap of the two rectangles.
// If they do not intersect, returns the zero Rect2i. Rectangles touching on an
// edge produce a zero-width or zero-height result.
func (r Rect2i) Intersection(other Rect2i) Rect2i {
	if !r.Intersects(other) {
		return Rect2i{}
	}

	position := r.Position.Max(other.Position)
	end := r.End().Min(other.End())

	return Rect2i{Position: position, Size: end.Sub(position)}
}

// Merge returns the smallest rectangle containing both rectangles.
func (r Rect2i) Merge(other Rect2i) Rect2i {
	position := r.Position.Min(other.Position)
	end := r.End().Max(other.End())

	return Rect2i{Position: position, Size: end.Sub(position)}
}

// HasPoint returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom
// edges are outside.
func (r Rect2i) HasPoint(p Point2i) bool {
	if p.X < r.Position.X || p.Y < r.Position.Y {
		return false
	}
	if p.X >= r.Position.X+r.Size.X || p.Y >= r.Position.Y+r.Size.Y {
		return false
	}
	return true
}

// Grow returns a copy expanded by amount on all four sides.
// A negative amount shrinks the rectangle.
func (r Rect2i) Grow(amount int32) Rect2i {
	return r.GrowIndividual(amount, amount, amount, amount)
}

// GrowIndividual returns a copy expanded by a separate amount on each side.
func (r Rect2i) GrowIndividual(left, top, right, bottom int32) Rect2i {
	return Rect2i{
		Position: Point2i{X: r.Position.X - left, Y: r.Position.Y - top},
		Size:     Size2i{X: r.Size.X + left + right, Y: r.Size.Y + top + bottom},
	}
}

// GrowSide returns a copy expanded by amount on a single side.
func (r Rect2i) GrowSide(side Side, amount int32) Rect2i {
	var left, top, right, bottom int32
	switch side {
	case SideLeft:
		left = amount
	case SideTop:
		top = amount
	case SideRight:
		right = amount
	case SideBottom:
		bottom = amount
	}
	return r.GrowIndividual(left, top, right, bottom)
}

// GrowSideBind is GrowSide for callers holding the raw side ordinal.
// Ordinals outside the four sides leave the rectangle unchanged.
func (r Rect2i) GrowSideBind(side uint32, amount int32) Rect2i {
	return r.GrowSide(Side(side), amount)
}

// Expand returns a copy grown to contain p.
func (r Rect2i) Expand(p Point2i) Rect2i {
	r.ExpandTo(p)
	return r
}

// ExpandTo grows r in place so that HasPoint(p) holds.
// Both corners are recomputed before storing back, so Position <= p < End()
// afterwards on each axis even when the size started out negative. The far
// edge is exclusive, so it is placed one past p.
func (r *Rect2i) ExpandTo(p Point2i) {
	begin := r.Position
	end := r.End()

	if p.X < begin.X {
		begin.X = p.X
	}
	if p.Y < begin.Y {
		begin.Y = p.Y
	}
	if p.X >= end.X {
		end.X = p.X + 1
	}
	if p.Y >= end.Y {
		end.Y = p.Y + 1
	}

	r.Position = begin
	r.Size = end.Sub(begin)
}

// Abs returns the equivalent rectangle with a non-negative size.
func (r Rect2i) Abs() Rect2i {
	return Rect2i{
		Position: Point2i{X: r.Position.X + min(r.Size.X, 0), Y: r.Position.Y + min(r.Size.Y, 0)},
		Size:     r.Size.Abs(),
	}
}

// Rect2 widens r to a float rectangle.
func (r Rect2i) Rect2() Rect2 {
	return Rect2{Position: r.Position.Vector2(), Size: r.Size.Vector2()}
}

// String formats r as "<position>, <size>", e.g. "(0, 0), (10, 10)".
// The format is for display only.
func (r Rect2i) String() string {
	return r.Position.String() + ", " + r.Size.String()
}
