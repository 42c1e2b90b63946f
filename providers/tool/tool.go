package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/leofalp/toolreason/core/parse"
	"github.com/leofalp/toolreason/internal/jsonschema"
	"github.com/leofalp/toolreason/providers/observability"
)

// Tool is a typed, callable tool. Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)

	paramNames []string
	schemaErr  error
}

// GenericTool is the type-erased view of a [Tool] held by a [Catalog].
type GenericTool interface {
	// Entry describes the tool as it is listed in a prompt.
	Entry() Entry

	// Call binds positional arguments to the input parameters and runs the
	// tool, returning its JSON-encoded output.
	Call(ctx context.Context, args []parse.Value) (string, error)

	// CallJSON runs the tool with a JSON object as input.
	CallJSON(ctx context.Context, inputJSON string) (string, error)

	// Validate reports whether the tool is fit to be offered.
	Validate() error
}

// Entry is one line of the tool catalog shown to the model.
type Entry struct {
	Name string `json:"name"`
	// Parameters is the comma-separated list of parameter names.
	Parameters  string `json:"parameters"`
	Description string `json:"description"`
}

type funcToolOptions struct {
	Description string
}

// WithDescription sets the one-line description shown to the model.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// NewTool constructs a [Tool] with schemas and parameter names derived from
// I and O by reflection. Problems found while reflecting are reported by
// Validate, and therefore by [NewCatalog].
//
//	square := tool.NewTool("calculate_square_root", sqrt,
//	    tool.WithDescription("Returns the square root of a number."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	newTool := &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Function:    function,
		paramNames:  jsonschema.ParameterNames[I](),
	}

	var err error
	if newTool.Parameters, err = jsonschema.GenerateJSONSchema[I](); err != nil {
		newTool.schemaErr = fmt.Errorf("input schema: %w", err)
	} else if newTool.Output, err = jsonschema.GenerateJSONSchema[O](); err != nil {
		newTool.schemaErr = fmt.Errorf("output schema: %w", err)
	}
	return newTool
}

// Entry returns the catalog line for this tool.
func (t *Tool[I, O]) Entry() Entry {
	return Entry{
		Name:        t.Name,
		Parameters:  strings.Join(t.paramNames, ", "),
		Description: t.Description,
	}
}

// ParameterNames returns the input parameter names in positional order. It is
// nil when the input type is not a struct, in which case the tool takes a
// single argument.
func (t *Tool[I, O]) ParameterNames() []string {
	return append([]string(nil), t.paramNames...)
}

// Validate reports an empty name, a nil function or a schema that could not
// be generated.
func (t *Tool[I, O]) Validate() error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidTool)
	case t.Function == nil:
		return fmt.Errorf("%w: %s has no function", ErrInvalidTool, t.Name)
	case t.schemaErr != nil:
		return fmt.Errorf("%w: %s: %v", ErrInvalidTool, t.Name, t.schemaErr)
	}
	return nil
}

// Call binds args to the input parameters by position and runs the tool. A
// list argument stays a single argument; it is not spread over parameters.
func (t *Tool[I, O]) Call(ctx context.Context, args []parse.Value) (string, error) {
	input, err := t.bind(args)
	if err != nil {
		if span := observability.SpanFromContext(ctx); span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
		}
		return "", err
	}
	return t.CallJSON(ctx, input)
}

// bind renders positional arguments as the JSON input of the tool.
func (t *Tool[I, O]) bind(args []parse.Value) (string, error) {
	if t.paramNames == nil {
		if len(args) != 1 {
			return "", fmt.Errorf("%w: %s takes 1 argument, got %d", ErrArity, t.Name, len(args))
		}
		raw, err := json.Marshal(args[0].Interface())
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return string(raw), nil
	}

	if len(args) != len(t.paramNames) {
		return "", fmt.Errorf("%w: %s takes %d argument(s) (%s), got %d",
			ErrArity, t.Name, len(t.paramNames), strings.Join(t.paramNames, ", "), len(args))
	}

	input := make(map[string]interface{}, len(args))
	for i, name := range t.paramNames {
		input[name] = args[i].Interface()
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return string(raw), nil
}

// CallJSON decodes inputJSON into I, runs the function and returns the output
// encoded as JSON. Span events are emitted when ctx carries a span.
func (t *Tool[I, O]) CallJSON(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJSON),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd,
			observability.String(observability.AttrToolName, t.Name),
		)
	}

	start := time.Now()

	parsedInput, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrInvalidInput, t.Name, err)
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
		}
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return "", err
	}

	encoded, err := encodeOutput(output)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", fmt.Errorf("encode %s output: %w", t.Name, err)
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, encoded),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return encoded, nil
}

// encodeOutput renders output as JSON. Non-finite floats have no JSON form
// and are written as +Inf, -Inf or NaN.
func encodeOutput(output any) (string, error) {
	switch v := reflect.ValueOf(output); v.Kind() {
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsInf(f, 0) || math.IsNaN(f) {
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		}
	}
	raw, err := json.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
