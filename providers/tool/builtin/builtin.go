// Package builtin assembles the fixed catalog of tools offered to the model.
package builtin

import (
	"github.com/leofalp/toolreason/providers/tool"
	"github.com/leofalp/toolreason/providers/tool/mathtool"
	"github.com/leofalp/toolreason/providers/tool/texttool"
)

// Catalog returns the six built-in tools in the order they are listed in
// prompts: calculate_average, calculate_square_root, perform_comparison,
// count_vowels, count_letters, count_words.
func Catalog() *tool.Catalog {
	return tool.MustCatalog(
		mathtool.NewAverageTool(),
		mathtool.NewSquareRootTool(),
		mathtool.NewComparisonTool(),
		texttool.NewVowelCountTool(),
		texttool.NewLetterCountTool(),
		texttool.NewWordCountTool(),
	)
}
