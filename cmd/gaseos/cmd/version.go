package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printf(cmd, "gaseos v%s\n", Version)
			printf(cmd, "  Git Commit: %s\n", GitCommit)
			printf(cmd, "  Build Date: %s\n", BuildDate)
			printf(cmd, "  Go Version: %s\n", runtime.Version())
			printf(cmd, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
