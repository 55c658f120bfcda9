package main

import "github.com/spf13/cobra"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "livewire",
		Short: "Intelligent-scissors boundary tracing on raster images",
		Long: `Livewire snaps paths between anchor points to the strongest nearby image
edge using a windowed shortest-path solver, so even large images trace in
real time with a fixed-size working set.

This command is a batch stand-in for an interactive shell: anchors that a
user would click are supplied on the command line and replayed in order.`,
		SilenceUsage: true,
	}

	return cmd
}
