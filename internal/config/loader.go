package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const presetsFile = "presets.yaml"

// LoadPresets loads the difficulty presets.
// Search order: customPath -> ~/.mines/presets.yaml -> ./configs/presets.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// sources fall through to the next one.
func LoadPresets(customPath string) (Presets, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Presets{}, fmt.Errorf("failed to read presets %s: %w", customPath, err)
		}
		ps, err := ParsePresets(data)
		if err != nil {
			return Presets{}, fmt.Errorf("failed to parse presets %s: %w", customPath, err)
		}
		return ps, nil
	}

	for _, path := range []string{userConfigPath(presetsFile), filepath.Join("configs", presetsFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if ps, err := ParsePresets(data); err == nil {
			return ps, nil
		}
	}

	ps, err := ParsePresets(defaultPresetsYAML)
	if err != nil {
		return DefaultPresets(), nil // Fallback to hardcoded if embed fails
	}
	return ps, nil
}

// ParsePresets decodes and validates a presets document.
func ParsePresets(data []byte) (Presets, error) {
	var ps Presets
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return Presets{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := ps.validate(); err != nil {
		return Presets{}, err
	}
	return ps, nil
}

// userConfigPath returns the path of a file in ~/.mines, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", filename)
}
