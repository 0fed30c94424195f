package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	popcat "github.com/popcat/popcat-go"
	"github.com/popcat/popcat-go/internal/debug"
	"github.com/popcat/popcat-go/internal/iocontext"
	"github.com/popcat/popcat-go/internal/outfmt"
	"github.com/popcat/popcat-go/internal/resolve"
)

// rootFlags holds global CLI flags
type rootFlags struct {
	Output  string
	JSON    bool
	Query   string
	JQ      string
	Debug   bool
	Timeout time.Duration
	BaseURL string
}

// flags holds the global command flags. This is package-level mutable state
// that MUST be reset at the start of every Execute() call. Tests depend on
// this reset to get clean state; any code that reads flags outside of a
// command's RunE is reading stale data from the previous Execute() call.
var flags = rootFlags{
	Output:  defaultOutput(),
	Timeout: popcat.DefaultTimeout,
	BaseURL: popcat.DefaultBaseURL,
}

func defaultOutput() string {
	value := strings.TrimSpace(os.Getenv("POPCAT_OUTPUT"))
	if value != "" {
		return normalizeOutputFormat(value)
	}
	return "text"
}

func normalizeOutputFormat(value string) string {
	value = strings.TrimSpace(value)
	if value == "ndjson" {
		return "jsonl"
	}
	return value
}

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	// Reset flags to defaults for each execution. This is critical for test
	// isolation - see the invariant comment on the flags declaration above.
	flags = rootFlags{
		Output:  defaultOutput(),
		Timeout: popcat.DefaultTimeout,
		BaseURL: popcat.DefaultBaseURL,
	}

	root := &cobra.Command{
		Use:                "popcat",
		Short:              "CLI for the Popcat meme and utility API",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true, // We provide our own did-you-mean via enhanceUnknownError
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			flags.Output = normalizeOutputFormat(flags.Output)
			if flags.JSON {
				if cmd.Flags().Changed("output") && flags.Output != "json" {
					return fmt.Errorf("--json conflicts with --output %s", flags.Output)
				}
				flags.Output = "json"
			}

			// --jq takes precedence over --query
			jqQuery := flags.JQ
			if jqQuery == "" {
				jqQuery = flags.Query
			}
			if jqQuery != "" && flags.Output == "text" {
				if cmd.Flags().Changed("output") {
					return fmt.Errorf("--jq/--query require --output json or jsonl (or --json)")
				}
				flags.Output = "json"
			}

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}
			ctx = outfmt.WithMode(ctx, mode)
			if jqQuery != "" {
				ctx = outfmt.WithQuery(ctx, jqQuery)
			}

			// Honor streams injected through the context so tests can
			// capture output; fall back to the standard streams.
			ioStreams := iocontext.GetIO(ctx)
			ctx = iocontext.WithIO(ctx, ioStreams)
			cmd.SetOut(ioStreams.Out)
			cmd.SetErr(ioStreams.ErrOut)
			cmd.SetIn(ioStreams.In)

			debug.SetupLogger(flags.Debug)
			ctx = debug.WithDebug(ctx, flags.Debug)

			if flags.Timeout <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetContext(ctx)
	root.SetArgs(args)

	root.PersistentFlags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json|jsonl|ndjson (env POPCAT_OUTPUT)")
	root.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Shorthand for --output json")
	root.PersistentFlags().StringVarP(&flags.Query, "query", "q", "", "JQ expression to filter JSON output")
	root.PersistentFlags().StringVar(&flags.JQ, "jq", "", "Alias for --query")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP request timeout (e.g., 30s, 2m)")
	root.PersistentFlags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "API base URL (for testing against fakes)")

	root.AddCommand(newEndpointsCmd())
	root.AddCommand(newAuthCmd())
	root.AddCommand(newPasteyCmd())
	root.AddCommand(newShortenCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newVersionCmd())
	for _, cmd := range endpointCommands() {
		root.AddCommand(cmd)
	}

	targetCmd, err := root.ExecuteC()
	if err != nil {
		enhanced := enhanceUnknownError(err, root, targetCmd)
		_, _ = fmt.Fprintln(root.ErrOrStderr(), enhanced)
		return err
	}
	return nil
}

// enhanceUnknownError adds "did you mean?" suggestions to unknown command
// errors. targetCmd is the command Cobra resolved before the error (may be
// root itself).
func enhanceUnknownError(err error, root *cobra.Command, targetCmd *cobra.Command) string {
	msg := err.Error()
	if !strings.Contains(msg, "unknown command") {
		return msg
	}

	unknown := extractQuoted(msg)
	if unknown == "" {
		return msg
	}

	var names []string
	for _, c := range root.Commands() {
		if c.IsAvailableCommand() || c.Name() == "help" {
			names = append(names, c.Name())
			names = append(names, c.Aliases...)
		}
	}
	if suggestions := resolve.Suggest(unknown, names, 1); len(suggestions) > 0 {
		return fmt.Sprintf("%s\n\nDid you mean %q?", msg, suggestions[0])
	}
	return fmt.Sprintf("%s\n\nRun %q to see available commands.", msg, root.Name()+" --help")
}

// extractQuoted extracts the first double-quoted substring from s.
func extractQuoted(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return ""
	}
	return s[start+1 : start+1+end]
}

// RunE wraps a command handler so stray errors keep their type for exit-code
// mapping while still surfacing context cancellation.
func RunE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			if errors.Is(err, context.Canceled) {
				return fmt.Errorf("interrupted: %w", err)
			}
			return err
		}
		return nil
	}
}
