// Command toolreason answers natural-language questions with a language model
// that can call a small set of local math and text tools.
//
//	toolreason                 interactive loop
//	toolreason ask <query...>  answer one query
//	toolreason tools           list the available tools
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/toolreason/internal/config"
	"github.com/leofalp/toolreason/internal/console"
	"github.com/leofalp/toolreason/providers/tool/builtin"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "toolreason",
		Short:        "Tool-enhanced chain-of-thought reasoning",
		Long:         "toolreason asks a language model to reason step by step and runs the local tool it requests.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.console.Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a YAML config file")
	flags.String("model", "", "model identifier (default "+config.Default().Model+")")
	flags.Duration("timeout", 0, "per-request timeout, 0 disables it (default "+config.DefaultTimeout.String()+")")
	flags.Bool("json", false, "print results as JSON")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: compact, pretty or json")

	askCmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Answer a single query and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.console.Ask(cmd.Context(), strings.Join(args, " "))
		},
	}

	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools offered to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			c := console.New(nil, console.WithOutput(cmd.OutOrStdout()), console.WithJSON(asJSON))
			return c.PrintTools(builtin.Catalog().Entries())
		},
	}

	root.AddCommand(askCmd, toolsCmd)
	return root
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
