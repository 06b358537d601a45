package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the gaseos command tree. Each call returns a fresh
// tree with its own flag state.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gaseos",
		Short: "Gas mixture properties from cubic equations of state",
		Long: `gaseos evaluates compressibility, volume, density and enthalpy of gas
mixtures with the Peng-Robinson and ideal-gas equations of state.

Commands:
  props    - properties of the mixture described by a config file
  roots    - all complex roots of a polynomial
  import   - load ChemSep JSON/YAML databases into SQLite
  version  - build information`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newPropsCommand(),
		newRootsCommand(),
		newImportCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// printf writes to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
