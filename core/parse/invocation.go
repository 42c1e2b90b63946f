package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// Invocation is a tool call recovered from model text.
type Invocation struct {
	// Name is the tool identifier as written by the model.
	Name string
	// Args holds the positional arguments. A bracketed list is a single
	// argument of KindList.
	Args []Value
	// Text is the matched call, e.g. calculate_average([10, 20]).
	Text string
}

var invocationPrefix = regexp.MustCompile(`TOOL:\s*([A-Za-z_]+)\(`)

// ExtractInvocation finds the first tool call of the form TOOL: name(args) in
// raw. Any whitespace, newlines included, may separate TOOL: from the name.
// The argument text must be non-empty, stay on one line and have balanced
// parentheses outside of quoted strings. Candidates that do not meet this are
// skipped and the next one is tried.
//
// It returns (nil, nil) when raw contains no call, and an error wrapping
// ErrInvalidArguments when the first call's arguments cannot be parsed.
func ExtractInvocation(raw string) (*Invocation, error) {
	for _, loc := range invocationPrefix.FindAllStringSubmatchIndex(raw, -1) {
		name := raw[loc[2]:loc[3]]
		open := loc[1] - 1

		closing, ok := matchParen(raw, open)
		if !ok {
			continue
		}
		argText := raw[open+1 : closing]
		if strings.TrimSpace(argText) == "" {
			continue
		}

		inv := &Invocation{Name: name, Text: raw[loc[2] : closing+1]}
		args, err := ParseArguments(argText)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", name, err)
		}
		inv.Args = args
		return inv, nil
	}
	return nil, nil
}

// matchParen returns the index of the parenthesis closing the one at open.
// Parentheses inside quotes are ignored and the scan stops at a newline.
func matchParen(s string, open int) (int, bool) {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		if c == '\n' {
			return 0, false
		}
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// ParseArguments splits argument text on top-level commas (outside quotes and
// brackets) and parses each piece as a literal. Text without a top-level comma
// is a single argument, which covers the bracketed list form.
func ParseArguments(text string) ([]Value, error) {
	pieces, err := splitTopLevel(text)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(pieces))
	for i, piece := range pieces {
		v, err := ParseLiteral(piece)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args = append(args, v)
	}
	return args, nil
}

func splitTopLevel(text string) ([]string, error) {
	var pieces []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidArguments, text)
			}
		case ',':
			if depth == 0 {
				pieces = append(pieces, text[start:i])
				start = i + 1
			}
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated string in %q", ErrInvalidArguments, text)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidArguments, text)
	}
	return append(pieces, text[start:]), nil
}
