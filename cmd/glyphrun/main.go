// glyphrun is a data-driven terminal runtime: every entity, sprite, sound
// and key binding comes from a YAML content document, and all assets are
// generated procedurally at boot.
//
// Usage:
//
//	glyphrun run               - Run the game locally
//	glyphrun validate          - Check a content document without running
//	glyphrun list              - List the configured entity types and assets
//	glyphrun serve             - Serve sessions over SSH
//
// Global flags:
//
//	--config <path>  - Path to custom content YAML
//	--fps <rate>     - Frame rate (default: 60)
//	--no-audio       - Disable audio output
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphrun/internal/content"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagNoAudio bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphrun",
	Short: "glyphrun - a data-driven arcade runtime for your terminal",
	Long: `glyphrun runs a small arcade game whose content is entirely data-driven:
entity stats, sprites, sounds and key bindings all come from one YAML
document, and every asset is synthesized at boot.

Available commands:
  run       - Run the game locally
  validate  - Check a content document without running
  list      - Show the configured entities, assets and bindings
  serve     - Serve sessions over SSH

Examples:
  glyphrun run
  glyphrun run --config ./my-content.yaml --fps 30
  glyphrun validate --config ./my-content.yaml
  glyphrun serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom content YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable audio output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadContent reads and validates the configured content document.
func loadContent() (*content.Config, error) {
	return content.Load(flagConfig)
}

// sessionLogger returns a logger for interactive sessions. The alternate
// screen owns the terminal, so logs go to ~/.glyphrun/glyphrun.log or
// nowhere at all.
func sessionLogger() *log.Logger {
	out := io.Writer(io.Discard)
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".glyphrun")
		if os.MkdirAll(dir, 0o755) == nil {
			path := filepath.Join(dir, "glyphrun.log")
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				out = f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "glyphrun",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
