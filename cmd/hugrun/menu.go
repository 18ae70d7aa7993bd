package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugrun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker and the hall of fame",
	Long: `Start Hug Run in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected variant.
Tab opens the hall of fame. After a round ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Hall of fame (o: fastest/latest, x x: clear times)
  Q            - Quit

Examples:
  hugrun menu
  hugrun menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, opts, store, cleanup, err := localSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// This process owns the hall of fame, so the player may wipe it.
	opts.AllowClear = true
	runErr := tui.RunSession(store, cfg, opts)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
