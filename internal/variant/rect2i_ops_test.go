package variant

import (
	"math/rand/v2"
	"testing"
)

// randomRects returns a fixed set of rectangles with non-negative sizes.
func randomRects(n int) []Rect2i {
	rng := rand.New(rand.NewPCG(1, 2))
	rects := make([]Rect2i, n)
	for i := range rects {
		rects[i] = NewRect2i(rng.Int32N(41)-20, rng.Int32N(41)-20, rng.Int32N(16), rng.Int32N(16))
	}
	return rects
}

func TestRect2i_Properties(t *testing.T) {
	rects := randomRects(60)

	for _, a := range rects {
		for _, b := range rects {
			if a.Intersects(b) != b.Intersects(a) {
				t.Fatalf("Intersects not symmetric for %v and %v", a, b)
			}

			if !a.Intersects(b) && a.Intersection(b) != (Rect2i{}) {
				t.Fatalf("%v.Intersection(%v) = %v, want zero rect", a, b, a.Intersection(b))
			}

			if a.Intersects(b) {
				in := a.Intersection(b)
				if in.Size.X < 0 || in.Size.Y < 0 {
					t.Fatalf("%v.Intersection(%v) = %v has negative size", a, b, in)
				}
			}

			m := a.Merge(b)
			if m != b.Merge(a) {
				t.Fatalf("Merge not symmetric for %v and %v", a, b)
			}
			for _, r := range []Rect2i{a, b} {
				end, mEnd := r.End(), m.End()
				if r.Position.X < m.Position.X || r.Position.Y < m.Position.Y ||
					end.X > mEnd.X || end.Y > mEnd.Y {
					t.Fatalf("%v.Merge(%v) = %v does not bound %v", a, b, m, r)
				}
			}
		}
	}
}

func TestRect2i_ExpandToContainsPoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		// Sizes here may be negative.
		r := NewRect2i(rng.Int32N(21)-10, rng.Int32N(21)-10, rng.Int32N(21)-10, rng.Int32N(21)-10)
		p := Point2i{X: rng.Int32N(41) - 20, Y: rng.Int32N(41) - 20}

		got := r
		got.ExpandTo(p)
		if !got.HasPoint(p) {
			t.Fatalf("%v.ExpandTo(%v) = %v does not contain the point", r, p, got)
		}
	}
}

func TestRect2i_AbsPreservesRegion(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 200; i++ {
		r := NewRect2i(rng.Int32N(21)-10, rng.Int32N(21)-10, rng.Int32N(21)-10, rng.Int32N(21)-10)
		n := r.Abs()

		if n.Size.X < 0 || n.Size.Y < 0 {
			t.Fatalf("%v.Abs() = %v has negative size", r, n)
		}

		lo := r.Position.Min(r.End())
		hi := r.Position.Max(r.End())
		if n.Position != lo || n.End() != hi {
			t.Fatalf("%v.Abs() = %v covers [%v, %v), want [%v, %v)", r, n, n.Position, n.End(), lo, hi)
		}
	}
}

func TestRect2i_OverflowWraps(t *testing.T) {
	const maxInt32 = 1<<31 - 1

	r := NewRect2i(maxInt32, 0, 1, 1)
	if got := r.End().X; got != -maxInt32-1 {
		t.Errorf("End().X = %d, want wrap to %d", got, -maxInt32-1)
	}

	big := NewRect2i(0, 0, 1<<16, 1<<16)
	if got := big.Area(); got != 0 {
		t.Errorf("Area() = %d, want wrapped 0", got)
	}
}
