package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Sauermann/godot-cpp/internal/variant"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned when a scenario file has no steps.
	ErrEmpty = errors.New("scenario has no steps")
	// ErrUnknownOp is reported for a step naming an unsupported operation.
	ErrUnknownOp = errors.New("unknown op")
	// ErrMissingOperand is reported for a step lacking an operand its op needs.
	ErrMissingOperand = errors.New("missing operand")
)

// Scenario is a named list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Edges holds per-side amounts for grow_individual.
type Edges struct {
	Top    int32 `yaml:"top"`
	Right  int32 `yaml:"right"`
	Bottom int32 `yaml:"bottom"`
	Left   int32 `yaml:"left"`
}

// Step is a single operation. Operands an op does not use are ignored.
// Want is left as a raw node and decoded against the result type; a zero Kind
// means the step has no expected value.
type Step struct {
	Op      string           `yaml:"op"`
	Rect    *variant.Rect2i  `yaml:"rect"`
	Other   *variant.Rect2i  `yaml:"other"`
	Point   *variant.Point2i `yaml:"point"`
	Side    *variant.Side    `yaml:"side"`
	Ordinal *uint32          `yaml:"ordinal"`
	Amount  *int32           `yaml:"amount"`
	Edges   *Edges           `yaml:"edges"`
	Want    yaml.Node        `yaml:"want"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmpty
	}
	return &s, nil
}

func (s Step) rect() (variant.Rect2i, error) {
	if s.Rect == nil {
		return variant.Rect2i{}, fmt.Errorf("%w: rect", ErrMissingOperand)
	}
	return *s.Rect, nil
}

func (s Step) other() (variant.Rect2i, error) {
	if s.Other == nil {
		return variant.Rect2i{}, fmt.Errorf("%w: other", ErrMissingOperand)
	}
	return *s.Other, nil
}

func (s Step) point() (variant.Point2i, error) {
	if s.Point == nil {
		return variant.Point2i{}, fmt.Errorf("%w: point", ErrMissingOperand)
	}
	return *s.Point, nil
}

func (s Step) side() (variant.Side, error) {
	if s.Side == nil {
		return 0, fmt.Errorf("%w: side", ErrMissingOperand)
	}
	return *s.Side, nil
}

func (s Step) ordinal() (uint32, error) {
	if s.Ordinal == nil {
		return 0, fmt.Errorf("%w: ordinal", ErrMissingOperand)
	}
	return *s.Ordinal, nil
}

func (s Step) amount() (int32, error) {
	if s.Amount == nil {
		return 0, fmt.Errorf("%w: amount", ErrMissingOperand)
	}
	return *s.Amount, nil
}

func (s Step) edges() (Edges, error) {
	if s.Edges == nil {
		return Edges{}, fmt.Errorf("%w: edges", ErrMissingOperand)
	}
	return *s.Edges, nil
}
