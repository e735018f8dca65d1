// Package cmd wires the docsplit command-line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/docsplit/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Set at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from build flags.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docsplit version %s (commit: %s, built: %s)\n", version, commit, date))
}

// Global flags.
var (
	verbose    bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "docsplit",
	Short: "Split markdown documents into chapter files",
	Long: `docsplit splits a heading-delimited markdown document into a directory
tree of chapter files mirroring the heading structure, optionally with a
table of contents.

Environment Variables:
  DOCSPLIT_API_KEY   API key for the HTTP service mode
  DEFAULT_MAX_LEVEL  Default heading level to split on (1-6)
  DEFAULT_OUT_DIR    Default output directory`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: .docsplit.yaml)")
}

// newLogger builds the CLI logger; serve mode uses its own JSON handler.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig merges env defaults with the optional yaml config file.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	path := configFile
	explicit := path != ""
	if !explicit {
		path = ".docsplit.yaml"
	}
	return config.LoadFile(cfg, path, explicit)
}
