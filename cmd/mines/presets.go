package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var flagYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the difficulty presets",
	Long: `Shows the presets loaded from --config, ~/.mines/presets.yaml,
configs/presets.yaml or the built-in defaults, in that order.

--yaml prints the built-in presets file, ready to be edited and saved as
~/.mines/presets.yaml.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if flagYAML {
			cmd.OutOrStdout().Write(config.DefaultYAML())
			return
		}
		printPresets(cmd.OutOrStdout(), loadPresets())
	},
}

func init() {
	presetsCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the built-in presets file")
}

func printPresets(w io.Writer, presets config.Presets) {
	maxNameLen := len("Name")
	for _, p := range presets.List {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %5s  %7s\n", maxNameLen, "Name", "Board", "Mines", "Density")
	fmt.Fprintf(w, "  %-*s  %-7s  %5s  %7s\n", maxNameLen, "----", "-----", "-----", "-------")
	for _, p := range presets.List {
		marker := ""
		if p.Name == presets.Default {
			marker = "  (default)"
		}
		fmt.Fprintf(w, "  %-*s  %-7s  %5d  %6.1f%%%s\n",
			maxNameLen, p.Name, fmt.Sprintf("%dx%d", p.Rows, p.Cols), p.Mines, p.Density()*100, marker)
	}

	l := presets.Custom
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Custom boards: rows and cols %d-%d, at most %.0f%% mines.\n",
		l.MinSize, l.MaxSize, l.MaxDensity*100)
	fmt.Fprintln(w, "Run 'mines play <name>' to play a preset.")
}
