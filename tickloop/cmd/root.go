// Package cmd provides the command-line interface for tickloop.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Version is the version printed by the version command.
var Version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tickloop",
		Short: "Tickloop runs discrete-time event scenarios.",
		Long: `Tickloop runs scenario files on a discrete-time event engine. ` +
			`Executions can be recorded into SQLite, traced into CSV, and ` +
			`watched through a web monitor.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
