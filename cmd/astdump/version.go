package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// No config is needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			a.log.Debug("version requested")
			fmt.Fprintf(a.stdout, "astdump version %s\n", Version)
			fmt.Fprintf(a.stdout, "go version %s\n", runtime.Version())
		},
	}
}
