package texttool

import (
	"context"
	"strings"
	"unicode"

	"github.com/leofalp/toolreason/providers/tool"
)

// Input holds the text a counting tool operates on.
type Input struct {
	Text string `json:"text" jsonschema:"description=The text to analyse,required"`
}

// NewVowelCountTool returns the count_vowels tool.
func NewVowelCountTool() *tool.Tool[Input, int] {
	return tool.NewTool[Input, int](
		"count_vowels",
		CountVowels,
		tool.WithDescription("Counts the number of vowels in the text."),
	)
}

// NewLetterCountTool returns the count_letters tool.
func NewLetterCountTool() *tool.Tool[Input, int] {
	return tool.NewTool[Input, int](
		"count_letters",
		CountLetters,
		tool.WithDescription("Counts the number of letters in the text."),
	)
}

// NewWordCountTool returns the count_words tool.
func NewWordCountTool() *tool.Tool[Input, int] {
	return tool.NewTool[Input, int](
		"count_words",
		CountWords,
		tool.WithDescription("Counts the number of words in the text."),
	)
}

// CountVowels counts a, e, i, o and u in either case. Accented vowels are
// not counted.
func CountVowels(_ context.Context, req Input) (int, error) {
	count := 0
	for _, r := range req.Text {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count, nil
}

// CountLetters counts runes classified as letters by Unicode.
func CountLetters(_ context.Context, req Input) (int, error) {
	count := 0
	for _, r := range req.Text {
		if unicode.IsLetter(r) {
			count++
		}
	}
	return count, nil
}

// CountWords counts whitespace-separated tokens.
func CountWords(_ context.Context, req Input) (int, error) {
	return len(strings.Fields(req.Text)), nil
}
