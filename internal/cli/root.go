// Package cli implements the planelp command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planelp"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Output goes to the command's out and
// err writers, so tests can capture it with SetOut / SetErr.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "planelp",
		Short:        "planelp: two-variable linear programs, solved with Seidel's method",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !debug {
				planelp.SetLogger(nil)
				return
			}
			planelp.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "trace the solver step by step on stderr")
	cmd.AddCommand(solveCmd(), listCmd())

	return cmd
}
