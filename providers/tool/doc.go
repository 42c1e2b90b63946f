// Package tool defines typed tools and the fixed, ordered catalog they are
// offered from.
//
// A [Tool] binds a name and description to a Go function taking a struct
// input. Parameter names and order come from the input struct's json tags,
// so a call written by a model as name(a, b) binds a and b to the first and
// second field. Outputs are returned JSON-encoded.
//
// A [Catalog] is built once with [NewCatalog] and never changes afterwards;
// it is safe for concurrent readers.
package tool
