// Package cli provides the Cobra command structure for xmldoc.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/xmldoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root xmldoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "xmldoc",
		Short: "Inspect, reformat and decode device XML documents",
		Long: `xmldoc works with the XML documents exchanged by network scanners
and similar devices: capability and status documents, WS-Discovery
announcements and metadata.

It walks documents with a namespace-normalizing cursor, so the same
command line works no matter which prefixes a vendor's firmware
happens to declare.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand(&color))
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newWSDCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
