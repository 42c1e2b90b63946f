package mathtool

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/leofalp/toolreason/core/parse"
)

// TestAverage verifies the mean and the empty-list failure.
func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		numbers []float64
		want    float64
		wantErr error
	}{
		{"two numbers", []float64{10, 20}, 15, nil},
		{"single number", []float64{7}, 7, nil},
		{"negative numbers", []float64{-1, -2, -3}, -2, nil},
		{"fractional result", []float64{1, 2}, 1.5, nil},
		{"empty list", []float64{}, 0, ErrEmptyInput},
		{"nil list", nil, 0, ErrEmptyInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Average(context.Background(), AverageInput{Numbers: tc.numbers})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Average() = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestSquareRoot verifies roots and the negative-input domain error.
func TestSquareRoot(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct{ in, want float64 }{{16, 4}, {0, 0}, {2, math.Sqrt2}} {
		got, err := SquareRoot(ctx, SquareRootInput{Number: tc.in})
		if err != nil || got != tc.want {
			t.Errorf("SquareRoot(%v) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}

	got, err := SquareRoot(ctx, SquareRootInput{Number: -4})
	if !errors.Is(err, ErrNegativeInput) {
		t.Errorf("error = %v, want ErrNegativeInput", err)
	}
	if math.IsNaN(got) {
		t.Error("negative input must not yield NaN")
	}
}

// TestCompare verifies every supported operator and the unsupported case.
func TestCompare(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want bool
	}{
		{">", 5, 3, true},
		{">", 3, 5, false},
		{"<", 3, 5, true},
		{"==", 2, 2, true},
		{"==", 2, 3, false},
		{">=", 3, 3, true},
		{"<=", 4, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			got, err := Compare(context.Background(), ComparisonInput{A: tc.a, B: tc.b, Operation: tc.op})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("%v %s %v = %v, want %v", tc.a, tc.op, tc.b, got, tc.want)
			}
		})
	}

	for _, op := range []string{"!=", "", "gt", "=>"} {
		if _, err := Compare(context.Background(), ComparisonInput{A: 1, B: 2, Operation: op}); !errors.Is(err, ErrUnsupportedOperation) {
			t.Errorf("Compare(%q) error = %v, want ErrUnsupportedOperation", op, err)
		}
	}
}

// TestTools_PositionalCalls verifies the tools as invoked from parsed model text.
func TestTools_PositionalCalls(t *testing.T) {
	ctx := context.Background()

	out, err := NewAverageTool().Call(ctx, []parse.Value{parse.List(10, 20)})
	if err != nil || out != "15" {
		t.Errorf("calculate_average = %q, %v; want 15", out, err)
	}

	out, err = NewComparisonTool().Call(ctx, []parse.Value{parse.Number(5), parse.Number(3), parse.String(">")})
	if err != nil || out != "true" {
		t.Errorf("perform_comparison = %q, %v; want true", out, err)
	}

	out, err = NewSquareRootTool().Call(ctx, []parse.Value{parse.Number(2.25)})
	if err != nil || out != "1.5" {
		t.Errorf("calculate_square_root = %q, %v; want 1.5", out, err)
	}

	if _, err := NewAverageTool().Call(ctx, []parse.Value{parse.List()}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty average error = %v, want ErrEmptyInput", err)
	}
}

// TestTools_Entries verifies the catalog lines of the numeric tools.
func TestTools_Entries(t *testing.T) {
	if got := NewAverageTool().Entry().Parameters; got != "numbers" {
		t.Errorf("calculate_average parameters = %q", got)
	}
	if got := NewSquareRootTool().Entry().Parameters; got != "number" {
		t.Errorf("calculate_square_root parameters = %q", got)
	}
	cmp := NewComparisonTool()
	if got := cmp.Entry().Parameters; got != "a, b, operation" {
		t.Errorf("perform_comparison parameters = %q", got)
	}
	if err := cmp.Validate(); err != nil {
		t.Errorf("perform_comparison invalid: %v", err)
	}
	if got := len(cmp.Parameters.Properties["operation"].Enum); got != 5 {
		t.Errorf("operation enum has %d values, want 5", got)
	}
}
