// Package main provides the wikicorpus CLI entry point.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables retrieval progress logging on stderr
var verbose bool

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wikicorpus",
	Short: "Retrieve Wikipedia text and build topic-focused corpora",
	Long: `wikicorpus retrieves Wikipedia article text, category structure, links,
redirects, and templates through the MediaWiki API, and post-processes them
into topic-focused text corpora: section splitting, redirect resolution,
link-graph construction, and seed-page similarity scoring.

All commands output JSON by default for easy scripting; pass --human for
readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log retrieval progress to stderr")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Wikipedia language edition (overrides config)")
	rootCmd.Version = Version
}

// newLogger returns the CLI logger: progress on stderr when --verbose,
// warnings and errors otherwise.
func newLogger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
