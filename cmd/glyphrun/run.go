package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphrun/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game locally",
	Long: `Start the runtime on the current terminal.

Controls follow the content document's bindings. With the default content:
  A/D or arrows  - Move
  Space/J        - Dodge
  Enter          - Confirm
  P              - Pause
  Esc            - Back
  Ctrl+C         - Quit

Examples:
  glyphrun run
  glyphrun run --config ./my-content.yaml
  glyphrun run --fps 30 --no-audio`,
	Run: runRun,
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := loadContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(sessionLogger(), cfg, flagFPS, !flagNoAudio); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
