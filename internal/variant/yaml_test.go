package variant

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRect2i_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(NewRect2i(1, -2, 3, 4))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "[1, -2, 3, 4]" {
		t.Errorf("Marshal() = %q, want %q", got, "[1, -2, 3, 4]")
	}

	doc := struct {
		Bounds Rect2i `yaml:"bounds"`
		Anchor Side   `yaml:"anchor"`
	}{Bounds: NewRect2i(0, 0, 10, 10), Anchor: SideRight}
	out, err = yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := "bounds: [0, 0, 10, 10]\nanchor: right\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}

func TestRect2i_UnmarshalYAML(t *testing.T) {
	type tc struct {
		input    string
		expected Rect2i
		wantErr  bool
	}

	tests := map[string]tc{
		"sequence":        {input: "[1, 2, 3, 4]", expected: NewRect2i(1, 2, 3, 4)},
		"block sequence":  {input: "- -1\n- 0\n- 5\n- 6\n", expected: NewRect2i(-1, 0, 5, 6)},
		"mapping":         {input: "position: [5, 6]\nsize: [7, 8]\n", expected: NewRect2i(5, 6, 7, 8)},
		"partial mapping": {input: "size: [7, 8]\n", expected: NewRect2i(0, 0, 7, 8)},
		"too short":       {input: "[1, 2, 3]", wantErr: true},
		"not integers":    {input: "[1, 2, a, 4]", wantErr: true},
		"float":           {input: "[1.5, 2, 3, 4]", wantErr: true},
		"quoted element":  {input: `["7", 0, 1, 1]`, wantErr: true},
		"quoted position": {input: "position: [\"1\", 2]\nsize: [3, 4]\n", wantErr: true},
		"out of range":    {input: "[4294967296, 2, 3, 4]", wantErr: true},
		"scalar":          {input: "12", wantErr: true},
		"bad size":        {input: "size: [1]\n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got Rect2i
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Unmarshal(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRect2i_YAMLRoundTrip(t *testing.T) {
	for _, r := range randomRects(20) {
		out, err := yaml.Marshal(r)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", r, err)
		}
		var back Rect2i
		if err := yaml.Unmarshal(out, &back); err != nil {
			t.Fatalf("Unmarshal(%q) error: %v", out, err)
		}
		if back != r {
			t.Errorf("round trip %v -> %q -> %v", r, out, back)
		}
	}
}

func TestSide_UnmarshalYAML(t *testing.T) {
	type tc struct {
		input    string
		expected Side
		err      error
	}

	tests := map[string]tc{
		"name":         {input: "top", expected: SideTop},
		"upper name":   {input: "BOTTOM", expected: SideBottom},
		"ordinal":      {input: "2", expected: SideRight},
		"bad ordinal":  {input: "4", err: ErrInvalidSide},
		"unknown name": {input: "center", err: ErrInvalidSide},
		"not a scalar": {input: "[1]", err: ErrMalformed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got Side
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Unmarshal(%q) error = %v, want %v", tt.input, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Unmarshal(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := yaml.Marshal(Side(8)); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("Marshal(Side(8)) error = %v, want ErrInvalidSide", err)
	}
}
