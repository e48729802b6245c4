package scenario

import (
	"fmt"

	"github.com/Sauermann/godot-cpp/internal/variant"
	"github.com/Sauermann/godot-cpp/pkg/debug"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one step.
type Result struct {
	Index int
	Op    string
	Value any

	// Checked is set when the step had a want value.
	Checked bool
	Passed  bool
	Want    string

	Err error
}

// Failed returns true if the step errored or did not match its want value.
func (r Result) Failed() bool {
	return r.Err != nil || (r.Checked && !r.Passed)
}

// Report holds the results of a scenario run in step order.
type Report struct {
	Name    string
	Results []Result
}

// Failures returns the number of failed steps.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// Run evaluates every step of s. A failing step does not stop the run.
func Run(s *Scenario) Report {
	report := Report{Name: s.Name, Results: make([]Result, 0, len(s.Steps))}

	for i, step := range s.Steps {
		res := runStep(i, step)
		debug.Log("scenario %q step %d %s: value=%v checked=%v passed=%v err=%v",
			s.Name, i, step.Op, res.Value, res.Checked, res.Passed, res.Err)
		report.Results = append(report.Results, res)
	}

	return report
}

func runStep(i int, step Step) Result {
	res := Result{Index: i, Op: step.Op}

	fn, ok := ops[step.Op]
	if !ok {
		res.Err = fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
		return res
	}

	value, err := fn(step)
	if err != nil {
		res.Err = err
		return res
	}
	res.Value = value

	if step.Want.Kind != 0 {
		want, passed, err := compare(&step.Want, value)
		if err != nil {
			res.Err = fmt.Errorf("want: %w", err)
			return res
		}
		res.Checked = true
		res.Passed = passed
		res.Want = want
	}

	return res
}

// compare decodes want into the type of got and reports whether they match.
// Float rectangles match within the engine's approximate-equality epsilon.
func compare(want *yaml.Node, got any) (string, bool, error) {
	switch g := got.(type) {
	case bool:
		var w bool
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		return fmt.Sprint(w), w == g, nil
	case int32:
		var w int32
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		return fmt.Sprint(w), w == g, nil
	case string:
		var w string
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		return w, w == g, nil
	case variant.Vector2i:
		var w variant.Vector2i
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		return w.String(), w == g, nil
	case variant.Rect2i:
		var w variant.Rect2i
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		return w.String(), w == g, nil
	case variant.Rect2:
		var w [4]float32
		if err := want.Decode(&w); err != nil {
			return "", false, err
		}
		wr := variant.NewRect2(w[0], w[1], w[2], w[3])
		return wr.String(), wr.IsEqualApprox(g), nil
	default:
		return "", false, fmt.Errorf("cannot compare %T", got)
	}
}
