// Package console is the interactive read-query, print-result loop.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leofalp/toolreason/patterns/cot"
	"github.com/leofalp/toolreason/providers/tool"
)

// Fixed console text.
const (
	Title       = "Tool-Enhanced Reasoning Script"
	ExitHint    = "Enter 'exit' to quit"
	InputPrompt = "Enter your query: "
	ResultRule  = "===== Result ====="
	ExitCommand = "exit"
)

// maxLineSize bounds a single query line.
const maxLineSize = 1 << 20

// Answerer turns a query into a result. [cot.Pattern] implements it.
type Answerer interface {
	Execute(ctx context.Context, query string) cot.Result
}

// Console reads queries from an input stream and writes results to an
// output stream.
type Console struct {
	answerer Answerer
	in       io.Reader
	out      io.Writer
	asJSON   bool
	styles   styles
}

type styles struct {
	title lipgloss.Style
	hint  lipgloss.Style
	rule  lipgloss.Style
	label lipgloss.Style
	tool  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97757")),
		hint:  r.NewStyle().Foreground(lipgloss.Color("#7D7D7D")),
		rule:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		tool:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Option configures a Console.
type Option func(*Console)

// WithInput sets the query source (default os.Stdin).
func WithInput(in io.Reader) Option {
	return func(c *Console) {
		c.in = in
	}
}

// WithOutput sets the result destination (default os.Stdout).
func WithOutput(out io.Writer) Option {
	return func(c *Console) {
		c.out = out
	}
}

// WithJSON prints each result as one JSON object instead of the text layout.
func WithJSON(enabled bool) Option {
	return func(c *Console) {
		c.asJSON = enabled
	}
}

// New builds a Console over answerer.
func New(answerer Answerer, opts ...Option) *Console {
	c := &Console{
		answerer: answerer,
		in:       os.Stdin,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = newStyles(c.out)
	return c
}

// Run prints the banner and answers queries until the user types exit (any
// case, surrounding spaces ignored), the input ends, or ctx is done. Blank
// lines are skipped.
func (c *Console) Run(ctx context.Context) error {
	if !c.asJSON {
		if _, err := fmt.Fprintf(c.out, "%s\n%s\n", c.styles.title.Render(Title), c.styles.hint.Render(ExitHint)); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.asJSON {
			if _, err := fmt.Fprint(c.out, "\n"+InputPrompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read query: %w", err)
			}
			if !c.asJSON {
				_, err := fmt.Fprintln(c.out)
				return err
			}
			return nil
		}

		query := strings.TrimSpace(scanner.Text())
		if IsExit(query) {
			return nil
		}
		if query == "" {
			continue
		}
		if err := c.Ask(ctx, query); err != nil {
			return err
		}
	}
}

// Ask answers a single query and prints the result.
func (c *Console) Ask(ctx context.Context, query string) error {
	return c.PrintResult(c.answerer.Execute(ctx, query))
}

// PrintResult writes r in the configured layout.
func (c *Console) PrintResult(r cot.Result) error {
	if c.asJSON {
		return json.NewEncoder(c.out).Encode(r)
	}

	s := c.styles
	var b strings.Builder
	b.WriteString("\n" + s.rule.Render(ResultRule) + "\n")
	b.WriteString(s.label.Render("Query:") + " " + r.Query + "\n")
	b.WriteString("\n" + s.label.Render("Reasoning:") + "\n" + r.Reasoning + "\n")
	b.WriteString("\n" + s.label.Render("Tool Usage:") + " " + r.ToolUsage + "\n")
	b.WriteString("\n" + s.label.Render("Answer:") + " " + r.Answer + "\n")
	_, err := io.WriteString(c.out, b.String())
	return err
}

// PrintTools lists the catalog entries, one per line.
func (c *Console) PrintTools(entries []tool.Entry) error {
	if c.asJSON {
		return json.NewEncoder(c.out).Encode(entries)
	}
	for _, e := range entries {
		line := c.styles.label.Render(e.Name+"("+e.Parameters+")") + " " + c.styles.tool.Render(e.Description)
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return err
		}
	}
	return nil
}

// IsExit reports whether line is the exit command.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), ExitCommand)
}
