// Package mathtool provides the numeric tools: calculate_average,
// calculate_square_root and perform_comparison.
//
// Each tool is exported both as a ready-to-register [tool.Tool] (for example
// [NewAverageTool]) and as the plain function it wraps (for example [Average]),
// for callers that want to skip the tool wrapper.
package mathtool
