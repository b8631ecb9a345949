package cfg

import (
	"errors"
	"testing"
)

func TestCompileFilter_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `kind == `},
		{"unknown variable", `payload == "x"`},
		{"non-boolean result", `key + value`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileFilter(tt.src)
			if !errors.Is(err, ErrFilterCompile) {
				t.Errorf("CompileFilter(%q) error = %v, want %v",
					tt.src, err, ErrFilterCompile)
			}
		})
	}
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name string
		src  string
		st   Statement
		want bool
	}{
		{
			name: "kind match",
			src:  `kind == "bind"`,
			st:   Bind("mouse1", "+attack"),
			want: true,
		},
		{
			name: "kind mismatch",
			src:  `kind == "bind"`,
			st:   Setting("volume", "0.4"),
			want: false,
		},
		{
			name: "key prefix",
			src:  `key startsWith "cl_"`,
			st:   Setting("cl_righthand", "0"),
			want: true,
		},
		{
			name: "value content",
			src:  `value contains "attack"`,
			st:   Bind("mouse1", "+attack"),
			want: true,
		},
		{
			name: "command has empty value",
			src:  `value == ""`,
			st:   Command("clear"),
			want: true,
		},
		{
			name: "conjunction",
			src:  `kind == "setting" && key matches "^cl_"`,
			st:   Setting("cl_crosshairsize", "3"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.src)
			if err != nil {
				t.Fatalf("CompileFilter(%q) error = %v", tt.src, err)
			}

			got, err := filter.Match(tt.st)
			if err != nil {
				t.Fatalf("Match error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.st, got, tt.want)
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	const src = `kind == "setting"`

	filter, err := CompileFilter(src)
	if err != nil {
		t.Fatalf("CompileFilter error = %v", err)
	}

	if filter.String() != src {
		t.Errorf("String() = %q, want %q", filter.String(), src)
	}
}
