package mathtool

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/leofalp/toolreason/providers/tool"
)

var (
	// ErrEmptyInput is returned when averaging an empty list.
	ErrEmptyInput = errors.New("division by zero: empty list")

	// ErrNegativeInput is returned for the square root of a negative number.
	ErrNegativeInput = errors.New("domain error: square root of a negative number")

	// ErrUnsupportedOperation is returned for a comparison operator outside
	// >, <, ==, >= and <=.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// AverageInput holds the numbers to average.
type AverageInput struct {
	Numbers []float64 `json:"numbers" jsonschema:"description=The numbers to average,required"`
}

// SquareRootInput holds the radicand.
type SquareRootInput struct {
	Number float64 `json:"number" jsonschema:"description=A non-negative number,required"`
}

// ComparisonInput holds two operands and the operator applied as a <op> b.
type ComparisonInput struct {
	A         float64 `json:"a" jsonschema:"description=Left operand,required"`
	B         float64 `json:"b" jsonschema:"description=Right operand,required"`
	Operation string  `json:"operation" jsonschema:"description=Comparison operator,enum=>,enum=<,enum===,enum=>=,enum=<=,required"`
}

// NewAverageTool returns the calculate_average tool.
func NewAverageTool() *tool.Tool[AverageInput, float64] {
	return tool.NewTool[AverageInput, float64](
		"calculate_average",
		Average,
		tool.WithDescription("Calculates the average of a list of numbers."),
	)
}

// NewSquareRootTool returns the calculate_square_root tool.
func NewSquareRootTool() *tool.Tool[SquareRootInput, float64] {
	return tool.NewTool[SquareRootInput, float64](
		"calculate_square_root",
		SquareRoot,
		tool.WithDescription("Calculates the square root of a number."),
	)
}

// NewComparisonTool returns the perform_comparison tool.
func NewComparisonTool() *tool.Tool[ComparisonInput, bool] {
	return tool.NewTool[ComparisonInput, bool](
		"perform_comparison",
		Compare,
		tool.WithDescription("Compares two numbers with an operation ('>', '<', '==', '>=', '<=')."),
	)
}

// Average returns the arithmetic mean of req.Numbers.
//
//	avg, _ := mathtool.Average(ctx, mathtool.AverageInput{Numbers: []float64{10, 20}})
//	fmt.Println(avg) // 15
func Average(_ context.Context, req AverageInput) (float64, error) {
	if len(req.Numbers) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, n := range req.Numbers {
		sum += n
	}
	return sum / float64(len(req.Numbers)), nil
}

// SquareRoot returns the square root of req.Number. Negative input fails with
// ErrNegativeInput rather than producing NaN.
func SquareRoot(_ context.Context, req SquareRootInput) (float64, error) {
	if req.Number < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeInput, req.Number)
	}
	return math.Sqrt(req.Number), nil
}

// Compare evaluates req.A <req.Operation> req.B.
func Compare(_ context.Context, req ComparisonInput) (bool, error) {
	switch req.Operation {
	case ">":
		return req.A > req.B, nil
	case "<":
		return req.A < req.B, nil
	case "==":
		return req.A == req.B, nil
	case ">=":
		return req.A >= req.B, nil
	case "<=":
		return req.A <= req.B, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperation, req.Operation)
	}
}
