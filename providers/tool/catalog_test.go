package tool

import (
	"errors"
	"testing"
)

// TestNewCatalog_Order verifies that entries keep construction order.
func TestNewCatalog_Order(t *testing.T) {
	c, err := NewCatalog(
		NewTool("sum", sum, WithDescription("Adds numbers.")),
		NewTool("perform_comparison", greater),
	)
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	entries := c.Entries()
	if entries[0].Name != "sum" || entries[1].Name != "perform_comparison" {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].Parameters != "numbers" || entries[0].Description != "Adds numbers." {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	tools := c.Tools()
	if len(tools) != 2 || tools[1].Entry().Name != "perform_comparison" {
		t.Errorf("unexpected tools: %v", tools)
	}
}

// TestNewCatalog_Rejects verifies duplicate and invalid tools.
func TestNewCatalog_Rejects(t *testing.T) {
	if _, err := NewCatalog(NewTool("sum", sum), NewTool("sum", sum)); !errors.Is(err, ErrInvalidTool) {
		t.Errorf("duplicate: %v", err)
	}
	if _, err := NewCatalog(NewTool("", sum)); !errors.Is(err, ErrInvalidTool) {
		t.Errorf("empty name: %v", err)
	}
	if _, err := NewCatalog(nil); !errors.Is(err, ErrInvalidTool) {
		t.Errorf("nil tool: %v", err)
	}
}

// TestCatalog_Lookup verifies exact-match lookup.
func TestCatalog_Lookup(t *testing.T) {
	c := MustCatalog(NewTool("sum", sum))

	if got, err := c.Get("sum"); err != nil || got.Entry().Name != "sum" {
		t.Errorf("Get(sum) = %v, %v", got, err)
	}
	if _, err := c.Get("SUM"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Get(SUM) error = %v, want ErrToolNotFound", err)
	}
	if !c.Has("sum") || c.Has("average") {
		t.Error("Has() mismatch")
	}
}

// TestCatalog_ToolsIsCopy verifies callers cannot mutate the catalog.
func TestCatalog_ToolsIsCopy(t *testing.T) {
	c := MustCatalog(NewTool("sum", sum))
	tools := c.Tools()
	tools[0] = nil

	if _, err := c.Get("sum"); err != nil {
		t.Errorf("catalog changed: %v", err)
	}
}

// TestMustCatalog_Panics verifies the panic on a misconfigured catalog.
func TestMustCatalog_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCatalog did not panic")
		}
	}()
	MustCatalog(NewTool("sum", sum), NewTool("sum", sum))
}
