package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphrun/internal/assets"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a content document without running",
	Long: `Load the content document, validate every cross-reference, and dry-run
the asset pipeline: all sprites and sounds are generated exactly as at
boot, so a generation failure shows up here instead of at play time.

Examples:
  glyphrun validate
  glyphrun validate --config ./my-content.yaml`,
	Run: runValidate,
}

func runValidate(_ *cobra.Command, _ []string) {
	cfg, err := loadContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cache := assets.NewCache()
	if err := cache.Generate(cfg, log.New(io.Discard)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: asset generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Content OK: %d entities, %d sprites, %d sounds, %d bindings, %d triggers\n",
		len(cfg.Entities), len(cfg.Sprites), len(cfg.Sounds), len(cfg.Bindings), len(cfg.Triggers))
}
