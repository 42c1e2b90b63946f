package tool

import (
	"fmt"
)

// Catalog is an immutable, ordered set of tools keyed by exact name.
type Catalog struct {
	tools []GenericTool
	index map[string]int
}

// NewCatalog builds a catalog holding tools in the given order. It fails if
// any tool does not validate or if two tools share a name.
func NewCatalog(tools ...GenericTool) (*Catalog, error) {
	c := &Catalog{
		tools: make([]GenericTool, 0, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		if t == nil {
			return nil, fmt.Errorf("%w: nil tool", ErrInvalidTool)
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		name := t.Entry().Name
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidTool, name)
		}
		c.index[name] = len(c.tools)
		c.tools = append(c.tools, t)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is meant for
// catalogs fixed at compile time.
func MustCatalog(tools ...GenericTool) *Catalog {
	c, err := NewCatalog(tools...)
	if err != nil {
		panic(fmt.Sprintf("tool: %v", err))
	}
	return c
}

// Get returns the tool registered under name. Names are case-sensitive.
func (c *Catalog) Get(name string) (GenericTool, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return c.tools[i], nil
}

// Has reports whether a tool named name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Entries returns the prompt listing of every tool, in catalog order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, len(c.tools))
	for i, t := range c.tools {
		entries[i] = t.Entry()
	}
	return entries
}

// Tools returns the tools in catalog order. The slice is a copy.
func (c *Catalog) Tools() []GenericTool {
	return append([]GenericTool(nil), c.tools...)
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}
