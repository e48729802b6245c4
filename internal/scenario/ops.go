package scenario

import (
	"sort"

	"github.com/Sauermann/godot-cpp/internal/variant"
)

type opFunc func(s Step) (any, error)

// rectOp adapts a single-rectangle operation.
func rectOp[T any](fn func(r variant.Rect2i) T) opFunc {
	return func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		return fn(r), nil
	}
}

// pairOp adapts an operation on rect and other.
func pairOp[T any](fn func(a, b variant.Rect2i) T) opFunc {
	return func(s Step) (any, error) {
		a, err := s.rect()
		if err != nil {
			return nil, err
		}
		b, err := s.other()
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

// pointOp adapts an operation on rect and point.
func pointOp[T any](fn func(r variant.Rect2i, p variant.Point2i) T) opFunc {
	return func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		p, err := s.point()
		if err != nil {
			return nil, err
		}
		return fn(r, p), nil
	}
}

var ops = map[string]opFunc{
	"area":        rectOp(variant.Rect2i.Area),
	"has_no_area": rectOp(variant.Rect2i.HasNoArea),
	"abs":         rectOp(variant.Rect2i.Abs),
	"end":         rectOp(variant.Rect2i.End),
	"rect2":       rectOp(variant.Rect2i.Rect2),
	"string":      rectOp(variant.Rect2i.String),

	"intersects":   pairOp(variant.Rect2i.Intersects),
	"encloses":     pairOp(variant.Rect2i.Encloses),
	"intersection": pairOp(variant.Rect2i.Intersection),
	"merge":        pairOp(variant.Rect2i.Merge),
	"equal":        pairOp(func(a, b variant.Rect2i) bool { return a == b }),

	"has_point": pointOp(variant.Rect2i.HasPoint),
	"expand":    pointOp(variant.Rect2i.Expand),
	"expand_to": pointOp(func(r variant.Rect2i, p variant.Point2i) variant.Rect2i {
		r.ExpandTo(p)
		return r
	}),
	"set_end": pointOp(func(r variant.Rect2i, p variant.Point2i) variant.Rect2i {
		r.SetEnd(p)
		return r
	}),

	"grow": func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		n, err := s.amount()
		if err != nil {
			return nil, err
		}
		return r.Grow(n), nil
	},
	"grow_individual": func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		e, err := s.edges()
		if err != nil {
			return nil, err
		}
		return r.GrowIndividual(e.Left, e.Top, e.Right, e.Bottom), nil
	},
	"grow_side": func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		side, err := s.side()
		if err != nil {
			return nil, err
		}
		n, err := s.amount()
		if err != nil {
			return nil, err
		}
		return r.GrowSide(side, n), nil
	},
	"grow_side_bind": func(s Step) (any, error) {
		r, err := s.rect()
		if err != nil {
			return nil, err
		}
		ord, err := s.ordinal()
		if err != nil {
			return nil, err
		}
		n, err := s.amount()
		if err != nil {
			return nil, err
		}
		return r.GrowSideBind(ord, n), nil
	},
}

// Ops returns the supported operation names, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
