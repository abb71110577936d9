// Package cmd holds the commands of the cats binary.
package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "cats",
		Short:                 "cats serves a minimal in-memory cats resource over HTTP.",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
}

// NewCatsCLI returns the root command with every subcommand registered.
// The serve command stops when osSignal delivers.
func NewCatsCLI(osSignal <-chan os.Signal) *cobra.Command {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd(osSignal))

	return rootCmd
}

// NewInterruptSignalChannel returns a channel receiving SIGINT and SIGTERM.
func NewInterruptSignalChannel() <-chan os.Signal {
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)

	return osSignal
}

// Execute runs the cats cli.
func Execute() {
	if err := NewCatsCLI(NewInterruptSignalChannel()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
