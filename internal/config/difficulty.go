package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// CustomLimits bounds the board sizes a player may ask for.
type CustomLimits struct {
	MinSize    int     `yaml:"min_size" json:"min_size"`
	MaxSize    int     `yaml:"max_size" json:"max_size"`
	MaxDensity float64 `yaml:"max_density" json:"max_density"`
	// Fallback replaces an unreadable field in ParseCustom.
	Fallback int `yaml:"fallback" json:"fallback"`
}

// DefaultCustomLimits returns rows and cols in [5, 30] and at most 35% mines.
func DefaultCustomLimits() CustomLimits {
	return CustomLimits{
		MinSize:    5,
		MaxSize:    30,
		MaxDensity: 0.35,
		Fallback:   10,
	}
}

func (l CustomLimits) withDefaults() CustomLimits {
	d := DefaultCustomLimits()
	if l.MinSize <= 0 {
		l.MinSize = d.MinSize
	}
	if l.MaxSize <= 0 {
		l.MaxSize = d.MaxSize
	}
	if l.MaxDensity <= 0 || l.MaxDensity >= 1 {
		l.MaxDensity = d.MaxDensity
	}
	if l.Fallback <= 0 {
		l.Fallback = d.Fallback
	}
	return l
}

// MaxMines returns the largest mine count allowed for a custom board.
func (l CustomLimits) MaxMines(rows, cols int) int {
	l = l.withDefaults()
	return int(math.Floor(float64(rows*cols) * l.MaxDensity))
}

// Custom validates a custom board against the limits.
func (l CustomLimits) Custom(rows, cols, count int) (Preset, error) {
	l = l.withDefaults()
	if rows < l.MinSize || rows > l.MaxSize {
		return Preset{}, fmt.Errorf("%w: rows %d not in [%d, %d]",
			mines.ErrInvalidConfiguration, rows, l.MinSize, l.MaxSize)
	}
	if cols < l.MinSize || cols > l.MaxSize {
		return Preset{}, fmt.Errorf("%w: cols %d not in [%d, %d]",
			mines.ErrInvalidConfiguration, cols, l.MinSize, l.MaxSize)
	}
	if maxMines := l.MaxMines(rows, cols); count < 1 || count > maxMines {
		return Preset{}, fmt.Errorf("%w: mines %d not in [1, %d] for %dx%d",
			mines.ErrInvalidConfiguration, count, maxMines, rows, cols)
	}
	return Preset{
		Name:  PresetCustom,
		Label: "Custom",
		Rows:  rows,
		Cols:  cols,
		Mines: count,
	}, nil
}

// ParseCustom reads a custom board from text fields. A field that is empty,
// not a number or zero takes the fallback value before validation.
func (l CustomLimits) ParseCustom(rows, cols, count string) (Preset, error) {
	l = l.withDefaults()
	return l.Custom(
		parseOr(rows, l.Fallback),
		parseOr(cols, l.Fallback),
		parseOr(count, l.Fallback),
	)
}

func parseOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
