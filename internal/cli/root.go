// Package cli provides the Cobra command structure for htmldom.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldom/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root htmldom command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "htmldom",
		Short: "A resilient HTML parser and DOM tree tool",
		Long: `htmldom parses HTML documents with a resilient streaming tokenizer and
builds them into a traversable DOM tree.

The parser tolerates malformed markup: missing closing tags, truncated
comments, and unterminated script blocks degrade to incomplete output
rather than an error. Serializing a broken document back out yields
consistent markup with every element explicitly closed.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTreeCommand(opts))
	rootCmd.AddCommand(newEventsCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
