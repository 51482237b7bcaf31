package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

func setCustomFlags(t *testing.T, rows, cols, count int) {
	t.Helper()
	flagRows, flagCols, flagMines = rows, cols, count
	t.Cleanup(func() { flagRows, flagCols, flagMines = 0, 0, 0 })
}

func TestChoosePreset(t *testing.T) {
	presets := config.DefaultPresets()

	tests := []struct {
		name     string
		args     []string
		custom   [3]int
		expected string
		wantErr  bool
	}{
		{name: "default", expected: "easy 9x9/10"},
		{name: "named", args: []string{"hard"}, expected: "hard 16x30/99"},
		{name: "case insensitive", args: []string{"Medium"}, expected: "medium 16x16/40"},
		{name: "unknown", args: []string{"extreme"}, wantErr: true},
		{name: "custom", custom: [3]int{12, 20, 40}, expected: "custom 12x20/40"},
		{name: "custom too dense", custom: [3]int{5, 5, 9}, wantErr: true},
		{name: "custom and name", args: []string{"easy"}, custom: [3]int{10, 10, 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCustomFlags(t, tt.custom[0], tt.custom[1], tt.custom[2])

			p, err := choosePreset(presets, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("choosePreset error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.String() != tt.expected {
				t.Errorf("choosePreset = %q, expected %q", p.String(), tt.expected)
			}
		})
	}
}

func TestChoosePresetInvalidCustom(t *testing.T) {
	setCustomFlags(t, 40, 10, 10)

	_, err := choosePreset(config.DefaultPresets(), nil)
	if !errors.Is(err, mines.ErrInvalidConfiguration) {
		t.Errorf("choosePreset error = %v, expected ErrInvalidConfiguration", err)
	}
}

func TestPrintPresets(t *testing.T) {
	var buf bytes.Buffer
	printPresets(&buf, config.DefaultPresets())
	out := buf.String()

	for _, want := range []string{"easy", "9x9", "medium", "16x16", "hard", "16x30", "(default)", "5-30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
