package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards interactively",
	Long: `Start with the board picker. Choose a preset, or "Custom…" to enter
rows, columns and mines. Esc in a game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play / confirm
  Tab          - Next field in the custom form
  Esc          - Back
  Q            - Quit

Examples:
  mines menu
  mines menu --config ./presets.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	presets := loadPresets()
	logger, closeLog := tuiLogger()

	err := tui.RunMenu(presets, runtimeConfig(), logger)
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
