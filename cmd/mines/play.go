package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagRows  int
	flagCols  int
	flagMines int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start a game on the named preset, or on the default preset when no
name is given. --rows, --cols and --mines start a custom board instead;
rows and cols must be within 5-30 and at most 35% of the cells may be mines.

Controls:
  Arrows/hjkl/WASD  - Move the cursor
  Space/Enter/O     - Reveal
  F/M               - Flag
  Mouse             - Left click reveals, right click flags
  R                 - New game
  P                 - Pause
  Q/Ctrl+C          - Quit

Examples:
  mines play
  mines play medium
  mines play --rows 20 --cols 30 --mines 120
  mines play easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Custom board rows")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Custom board columns")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom board mine count")
}

// choosePreset resolves the board from the arguments and custom flags.
func choosePreset(presets config.Presets, args []string) (config.Preset, error) {
	if flagRows != 0 || flagCols != 0 || flagMines != 0 {
		if len(args) > 0 {
			return config.Preset{}, fmt.Errorf("give either a preset name or --rows/--cols/--mines, not both")
		}
		return presets.Custom.Custom(flagRows, flagCols, flagMines)
	}
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return presets.Lookup(name)
}

func runPlay(_ *cobra.Command, args []string) {
	presets := loadPresets()

	preset, err := choosePreset(presets, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mines presets' to see available presets.")
		os.Exit(1)
	}

	logger, closeLog := tuiLogger()
	logger.Debug("starting game", "preset", preset.String(), "seed", flagSeed)

	runErr := tui.Run(minesweeper.New(preset), runtimeConfig(), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
