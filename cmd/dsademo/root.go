package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// execute wires the root command and its per-component subcommands.
func execute(version string) error {
	rootCmd := &cobra.Command{
		Use:          "dsademo",
		Short:        "Console demonstrations of the dsakit data structures and algorithms",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newArrayCmd(),
		newListCmd(),
		newStackCmd(),
		newQueueCmd(),
		newGraphCmd(),
		newSearchCmd(),
		newSortCmd(),
	)

	return rootCmd.Execute()
}
