package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"csvjson/internal/diagnostic"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if d, ok := diagnostic.As(err); ok {
			_, _ = fmt.Fprint(stderr, d.Block())
		} else {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	settings := DefaultSettings()

	rootCmd := &cobra.Command{
		Use:   "csvjson <input.csv>",
		Short: "Convert a CSV file to JSON",
		Long: `Convert a CSV file to a JSON document of the form {"data": [...]}.

An optional schema config names each column, sets its type (string, integer,
float, date, bool) and the value emitted when a cell cannot be parsed.
Every flag can also be set through a CSVJSON_<FLAG> environment variable.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			// Apply precedence: flag > env > default
			if err := ApplyEnv(cmd.Flags()); err != nil {
				return err
			}

			return settings.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := NewLogger(stderr, settings)

			return Convert(cmd.Context(), logger, settings, args[0], stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	settings.AddFlags(rootCmd.Flags())

	rootCmd.AddCommand(newVersionCmd(stdout))

	return rootCmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(stdout, "csvjson version %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}
