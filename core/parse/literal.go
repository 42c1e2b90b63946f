package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidArguments is returned when tool argument text does not follow the
// literal grammar.
var ErrInvalidArguments = errors.New("invalid tool arguments")

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindString
	KindList
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is one parsed tool argument: a number, a string or a list of numbers.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	List   []float64
}

// Number returns a number value.
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// String returns a string value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// List returns a numeric list value. A nil list is stored as empty.
func List(nums ...float64) Value {
	if nums == nil {
		nums = []float64{}
	}
	return Value{Kind: KindList, List: nums}
}

// Interface returns the value as float64, string or []float64, ready for JSON
// encoding.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindString:
		return v.Text
	case KindList:
		return v.List
	default:
		return nil
	}
}

// String renders the value back in literal syntax.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Text)
	case KindList:
		parts := make([]string, len(v.List))
		for i, n := range v.List {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}

var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

// ParseLiteral parses one literal: a decimal number, a single- or
// double-quoted string, or a bracketed list of numbers. Surrounding
// whitespace is ignored.
func ParseLiteral(text string) (Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Value{}, fmt.Errorf("%w: empty literal", ErrInvalidArguments)
	}

	switch text[0] {
	case '[':
		return parseList(text)
	case '\'', '"':
		s, rest, err := parseQuoted(text)
		if err != nil {
			return Value{}, err
		}
		if strings.TrimSpace(rest) != "" {
			return Value{}, fmt.Errorf("%w: unexpected %q after string", ErrInvalidArguments, rest)
		}
		return String(s), nil
	default:
		n, err := parseNumber(text)
		if err != nil {
			return Value{}, err
		}
		return Number(n), nil
	}
}

func parseNumber(text string) (float64, error) {
	if !numberPattern.MatchString(text) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArguments, text)
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidArguments, text, err)
	}
	return n, nil
}

// parseList reads "[n, n, ...]". Only numbers are allowed as elements; an
// empty list is valid. Text outside the strict grammar, such as a trailing
// comma, is retried through ParseStringAs, which repairs the JSON; the repaired
// list is accepted only if every element decodes to a number.
func parseList(text string) (Value, error) {
	if !strings.HasSuffix(text, "]") {
		return Value{}, fmt.Errorf("%w: unterminated list %q", ErrInvalidArguments, text)
	}

	nums, err := parseNumberList(text)
	if err == nil {
		return List(nums...), nil
	}

	repaired, repairErr := ParseStringAs[[]*float64](text)
	if repairErr != nil {
		return Value{}, err
	}
	nums = make([]float64, 0, len(repaired))
	for _, n := range repaired {
		// null elements would otherwise become zeros.
		if n == nil {
			return Value{}, err
		}
		nums = append(nums, *n)
	}
	return List(nums...), nil
}

func parseNumberList(text string) ([]float64, error) {
	body := strings.TrimSpace(text[1 : len(text)-1])
	if body == "" {
		return []float64{}, nil
	}

	parts := strings.Split(body, ",")
	nums := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty list element in %q", ErrInvalidArguments, text)
		}
		n, err := parseNumber(part)
		if err != nil {
			return nil, fmt.Errorf("list element: %w", err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// parseQuoted reads a quoted string starting at text[0] and returns its
// unescaped contents and whatever follows the closing quote.
func parseQuoted(text string) (string, string, error) {
	quote := text[0]
	var b strings.Builder
	for i := 1; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\':
			if i+1 >= len(text) {
				return "", "", fmt.Errorf("%w: dangling escape in %q", ErrInvalidArguments, text)
			}
			i++
			b.WriteByte(unescape(text[i]))
		case c == quote:
			return b.String(), text[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("%w: unterminated string %q", ErrInvalidArguments, text)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}
