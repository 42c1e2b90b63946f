package tool

import "errors"

var (
	// ErrToolNotFound is returned when a name is not in the catalog.
	ErrToolNotFound = errors.New("tool not found")

	// ErrArity is returned when a call has the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrInvalidInput is returned when arguments do not decode into the
	// tool's input type.
	ErrInvalidInput = errors.New("invalid tool input")

	// ErrInvalidTool is returned by NewCatalog for a tool that cannot be
	// offered: empty or duplicate name, missing function or schema.
	ErrInvalidTool = errors.New("invalid tool")
)
