package config

import (
	_ "embed"
)

//go:embed defaults/presets.yaml
var defaultPresetsYAML []byte

// DefaultPresets returns the built-in presets.
func DefaultPresets() Presets {
	return Presets{
		Default: PresetEasy,
		List: []Preset{
			{Name: PresetEasy, Label: "Easy", Rows: 9, Cols: 9, Mines: 10},
			{Name: PresetMedium, Label: "Medium", Rows: 16, Cols: 16, Mines: 40},
			{Name: PresetHard, Label: "Hard", Rows: 16, Cols: 30, Mines: 99},
		},
		Custom: DefaultCustomLimits(),
	}
}

// DefaultYAML returns the embedded presets file.
func DefaultYAML() []byte {
	return defaultPresetsYAML
}
