package godot

import (
	"errors"
	"image"
	"testing"
)

func TestRect2i_Reexport(t *testing.T) {
	a := NewRect2i(0, 0, 10, 10)
	b := NewRect2iFromPoints(Point2i{X: 5, Y: 5}, Size2i{X: 10, Y: 10})

	if got := a.Intersection(b); got != NewRect2i(5, 5, 5, 5) {
		t.Errorf("Intersection() = %v, want (5, 5), (5, 5)", got)
	}
	if got := a.GrowSide(SideTop, 3); got != NewRect2i(0, -3, 10, 13) {
		t.Errorf("GrowSide(top, 3) = %v", got)
	}
	if got := NewRect2(0.5, 1.5, 10.9, 4).Rect2i(); got != NewRect2i(0, 1, 10, 4) {
		t.Errorf("Rect2.Rect2i() = %v", got)
	}
	if got := Rect2iFromImage(image.Rect(1, 2, 3, 4)); got != NewRect2i(1, 2, 2, 2) {
		t.Errorf("Rect2iFromImage() = %v", got)
	}
	if got := Rect2iFromBB(a.BB()); got != a {
		t.Errorf("Rect2iFromBB(BB()) = %v, want %v", got, a)
	}
	if got := NewVector2i(1, 2).String(); got != "(1, 2)" {
		t.Errorf("Vector2i.String() = %q", got)
	}
}

func TestParseSide_Reexport(t *testing.T) {
	side, err := ParseSide("right")
	if err != nil || side != SideRight {
		t.Errorf("ParseSide(right) = %v, %v", side, err)
	}
	if _, err := ParseSide("nowhere"); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("ParseSide(nowhere) error = %v, want ErrInvalidSide", err)
	}
}
