package variant

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a YAML node cannot be decoded into a variant type.
var ErrMalformed = errors.New("malformed value")

// MarshalYAML encodes v as a flow sequence [x, y].
func (v Vector2i) MarshalYAML() (any, error) {
	return intSeq(v.X, v.Y), nil
}

// UnmarshalYAML decodes v from a sequence [x, y].
func (v *Vector2i) UnmarshalYAML(node *yaml.Node) error {
	vals, err := decodeInts(node, 2)
	if err != nil {
		return fmt.Errorf("variant: vector2i: %w", err)
	}
	*v = Vector2i{X: vals[0], Y: vals[1]}
	return nil
}

// rect2iFields is the mapping form of a Rect2i.
type rect2iFields struct {
	Position Point2i `yaml:"position"`
	Size     Size2i  `yaml:"size"`
}

// MarshalYAML encodes r as a flow sequence [x, y, width, height].
func (r Rect2i) MarshalYAML() (any, error) {
	return intSeq(r.Position.X, r.Position.Y, r.Size.X, r.Size.Y), nil
}

// UnmarshalYAML decodes r from either [x, y, width, height] or a mapping
// with position and size keys.
func (r *Rect2i) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var f rect2iFields
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("variant: rect2i: %w", err)
		}
		*r = Rect2i{Position: f.Position, Size: f.Size}
		return nil
	}

	vals, err := decodeInts(node, 4)
	if err != nil {
		return fmt.Errorf("variant: rect2i: %w", err)
	}
	*r = NewRect2i(vals[0], vals[1], vals[2], vals[3])
	return nil
}

// MarshalYAML encodes s by name.
func (s Side) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("variant: %w: %d", ErrInvalidSide, uint32(s))
	}
	return s.String(), nil
}

// UnmarshalYAML decodes s from its name or its ordinal.
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("variant: side: %w: expected scalar", ErrMalformed)
	}
	if n, err := strconv.ParseUint(node.Value, 10, 32); err == nil {
		if !Side(n).Valid() {
			return fmt.Errorf("variant: %w: %d", ErrInvalidSide, n)
		}
		*s = Side(n)
		return nil
	}
	side, err := ParseSide(node.Value)
	if err != nil {
		return fmt.Errorf("variant: %w", err)
	}
	*s = side
	return nil
}

func intSeq(vals ...int32) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range vals {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(int64(v), 10),
		})
	}
	return node
}

func decodeInts(node *yaml.Node, n int) ([]int32, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected sequence of %d integers", ErrMalformed, n)
	}
	if len(node.Content) != n {
		return nil, fmt.Errorf("%w: expected %d integers, got %d", ErrMalformed, n, len(node.Content))
	}
	vals := make([]int32, n)
	for i, item := range node.Content {
		var v int32
		if item.Kind != yaml.ScalarNode || item.Decode(&v) != nil {
			return nil, fmt.Errorf("%w: element %d %q is not an int32", ErrMalformed, i, item.Value)
		}
		vals[i] = v
	}
	return vals, nil
}
