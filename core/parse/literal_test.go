package parse

import (
	"errors"
	"reflect"
	"testing"
)

// TestParseLiteral verifies the restricted literal grammar.
func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"integer", "5", Number(5)},
		{"negative decimal", " -3.25 ", Number(-3.25)},
		{"leading dot", ".5", Number(0.5)},
		{"explicit plus", "+7", Number(7)},
		{"exponent", "1e3", Number(1000)},
		{"single quoted", "'hello world'", String("hello world")},
		{"double quoted", `"hi"`, String("hi")},
		{"escaped quote", `'it\'s'`, String("it's")},
		{"escaped newline", `"a\nb"`, String("a\nb")},
		{"quoted comma", "'a, b'", String("a, b")},
		{"unicode string", "'héllo'", String("héllo")},
		{"numeric list", "[10, 20]", List(10, 20)},
		{"empty list", "[]", List()},
		{"list with spaces", "[ 1.5 ,-2 ]", List(1.5, -2)},
		{"list with trailing comma", "[10, 20, 30,]", List(10, 20, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLiteral(tt.input)
			if err != nil {
				t.Fatalf("ParseLiteral(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLiteral(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseLiteral_Rejects verifies that anything outside the grammar is refused.
func TestParseLiteral_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"2 + 3",
		"__import__('os')",
		"NaN",
		"Inf",
		"0x10",
		"hello",
		"'unterminated",
		"'a' 'b'",
		`'dangling\`,
		"[1, 'a']",
		"[x, y]",
		"[1, null]",
		"[1, true]",
		"[1, 2",
		"[[1]]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLiteral(input)
			if !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("ParseLiteral(%q) error = %v, want ErrInvalidArguments", input, err)
			}
		})
	}
}

// TestValue_Interface verifies the JSON-ready form of each kind.
func TestValue_Interface(t *testing.T) {
	if got := Number(2).Interface(); got != float64(2) {
		t.Errorf("number = %#v", got)
	}
	if got := String("x").Interface(); got != "x" {
		t.Errorf("string = %#v", got)
	}
	if got := List(1, 2).Interface(); !reflect.DeepEqual(got, []float64{1, 2}) {
		t.Errorf("list = %#v", got)
	}
	if got := (Value{}).Interface(); got != nil {
		t.Errorf("zero value = %#v", got)
	}
}

// TestValue_String verifies rendering in literal syntax.
func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(15), "15"},
		{Number(0.5), "0.5"},
		{String("a\"b"), `"a\"b"`},
		{List(10, 20), "[10, 20]"},
		{List(), "[]"},
		{Value{}, "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if KindList.String() != "list" || Kind(0).String() != "invalid" {
		t.Error("unexpected Kind names")
	}
}
