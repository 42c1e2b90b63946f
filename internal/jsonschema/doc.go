// Package jsonschema derives JSON Schema descriptions of Go types using
// reflection.
//
// Tool inputs are plain structs whose field declaration order is also the
// positional argument order a model uses when it writes a tool call as text.
// [GenerateJSONSchema] builds the schema and [ParameterNames] recovers that
// order, which a schema's property map cannot carry.
package jsonschema
