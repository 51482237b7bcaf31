// Package config provides the YAML difficulty presets and the limits that
// apply to custom games.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Preset names shipped with the game.
const (
	PresetEasy   = "easy"
	PresetMedium = "medium"
	PresetHard   = "hard"
	PresetCustom = "custom"
)

// Preset is a named board size.
type Preset struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
	Rows  int    `yaml:"rows" json:"rows"`
	Cols  int    `yaml:"cols" json:"cols"`
	Mines int    `yaml:"mines" json:"mines"`
}

// String formats the preset as "easy 9x9/10".
func (p Preset) String() string {
	return fmt.Sprintf("%s %dx%d/%d", p.Name, p.Rows, p.Cols, p.Mines)
}

// Density returns the share of cells holding a mine.
func (p Preset) Density() float64 {
	if p.Rows*p.Cols == 0 {
		return 0
	}
	return float64(p.Mines) / float64(p.Rows*p.Cols)
}

// Validate checks that the engine can start a session with this preset.
func (p Preset) Validate() error {
	if p.Rows < 1 || p.Cols < 1 || p.Mines < 1 || p.Mines >= p.Rows*p.Cols {
		return fmt.Errorf("%w: preset %s", mines.ErrInvalidConfiguration, p)
	}
	return nil
}

// NewEngine starts a session sized by the preset.
func (p Preset) NewEngine(opts ...mines.Option) (*mines.Engine, error) {
	return mines.New(p.Rows, p.Cols, p.Mines, opts...)
}

// Presets is the content of a presets file.
type Presets struct {
	// Default names the preset used when none is given.
	Default string       `yaml:"default" json:"default"`
	List    []Preset     `yaml:"presets" json:"presets"`
	Custom  CustomLimits `yaml:"custom_limits" json:"custom_limits"`
}

// Index returns the position of the named preset, or -1.
func (ps Presets) Index(name string) int {
	for i, p := range ps.List {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Lookup returns the preset with the given name, case-insensitively.
func (ps Presets) Lookup(name string) (Preset, error) {
	if name == "" {
		name = ps.Default
	}
	if i := ps.Index(name); i >= 0 {
		return ps.List[i], nil
	}
	return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(ps.Names(), ", "))
}

// Names returns the preset names in file order.
func (ps Presets) Names() []string {
	names := make([]string, 0, len(ps.List))
	for _, p := range ps.List {
		names = append(names, p.Name)
	}
	return names
}

// validate checks every preset and fills in missing limits.
func (ps *Presets) validate() error {
	if len(ps.List) == 0 {
		return fmt.Errorf("no presets defined")
	}
	seen := make(map[string]bool, len(ps.List))
	for i, p := range ps.List {
		if p.Name == "" {
			return fmt.Errorf("preset %d has no name", i)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[key] = true
		if err := p.Validate(); err != nil {
			return err
		}
		if p.Label == "" {
			ps.List[i].Label = p.Name
		}
	}
	if ps.Default == "" {
		ps.Default = ps.List[0].Name
	} else if !seen[strings.ToLower(ps.Default)] {
		return fmt.Errorf("default preset %q is not defined", ps.Default)
	}

	ps.Custom = ps.Custom.withDefaults()
	return nil
}
