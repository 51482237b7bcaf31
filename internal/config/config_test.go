package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	ps, err := ParsePresets(DefaultYAML())
	if err != nil {
		t.Fatalf("ParsePresets(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(ps, DefaultPresets()) {
		t.Errorf("embedded presets = %+v, expected %+v", ps, DefaultPresets())
	}
}

func TestLookup(t *testing.T) {
	ps := DefaultPresets()

	tests := []struct {
		name     string
		expected Preset
		wantErr  bool
	}{
		{"easy", Preset{Name: "easy", Label: "Easy", Rows: 9, Cols: 9, Mines: 10}, false},
		{"MEDIUM", Preset{Name: "medium", Label: "Medium", Rows: 16, Cols: 16, Mines: 40}, false},
		{"hard", Preset{Name: "hard", Label: "Hard", Rows: 16, Cols: 30, Mines: 99}, false},
		{"", Preset{Name: "easy", Label: "Easy", Rows: 9, Cols: 9, Mines: 10}, false},
		{"nightmare", Preset{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ps.Lookup(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if p != tc.expected {
				t.Errorf("Lookup(%q) = %+v, expected %+v", tc.name, p, tc.expected)
			}
		})
	}
}

func TestParsePresetsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"bad yaml", "presets: [:"},
		{"no name", "presets:\n  - rows: 9\n    cols: 9\n    mines: 10\n"},
		{"too many mines", "presets:\n  - name: full\n    rows: 3\n    cols: 3\n    mines: 9\n"},
		{"duplicate", "presets:\n  - {name: a, rows: 5, cols: 5, mines: 3}\n  - {name: A, rows: 6, cols: 6, mines: 3}\n"},
		{"unknown default", "default: x\npresets:\n  - {name: a, rows: 5, cols: 5, mines: 3}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePresets([]byte(tc.yaml)); err == nil {
				t.Errorf("ParsePresets(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestParsePresetsFillsDefaults(t *testing.T) {
	ps, err := ParsePresets([]byte("presets:\n  - {name: tiny, rows: 5, cols: 5, mines: 3}\n"))
	if err != nil {
		t.Fatalf("ParsePresets error: %v", err)
	}
	if ps.Default != "tiny" {
		t.Errorf("Default = %q, expected tiny", ps.Default)
	}
	if ps.List[0].Label != "tiny" {
		t.Errorf("Label = %q, expected tiny", ps.List[0].Label)
	}
	if ps.Custom != DefaultCustomLimits() {
		t.Errorf("Custom = %+v, expected defaults", ps.Custom)
	}
}

func TestLoadPresetsSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ps, err := LoadPresets("")
	if err != nil {
		t.Fatalf("LoadPresets error: %v", err)
	}
	if !reflect.DeepEqual(ps, DefaultPresets()) {
		t.Errorf("without files LoadPresets should return the embedded presets, got %+v", ps)
	}

	userDir := filepath.Join(home, ".mines")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userYAML := "presets:\n  - {name: user, rows: 8, cols: 8, mines: 8}\n"
	if err := os.WriteFile(filepath.Join(userDir, "presets.yaml"), []byte(userYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	ps, err = LoadPresets("")
	if err != nil {
		t.Fatalf("LoadPresets error: %v", err)
	}
	if got := ps.Names(); !reflect.DeepEqual(got, []string{"user"}) {
		t.Errorf("user presets = %v, expected [user]", got)
	}

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	customYAML := "presets:\n  - {name: mine, rows: 6, cols: 7, mines: 5}\n"
	if err := os.WriteFile(custom, []byte(customYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	ps, err = LoadPresets(custom)
	if err != nil {
		t.Fatalf("LoadPresets(custom) error: %v", err)
	}
	if got := ps.Names(); !reflect.DeepEqual(got, []string{"mine"}) {
		t.Errorf("custom presets = %v, expected [mine]", got)
	}
}

func TestLoadPresetsCustomErrors(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPresets with missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("presets: 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPresets(bad); err == nil {
		t.Error("LoadPresets with invalid custom file should fail")
	}
}

func TestCustomLimits(t *testing.T) {
	l := DefaultCustomLimits()

	tests := []struct {
		name              string
		rows, cols, mines int
		ok                bool
	}{
		{"smallest", 5, 5, 1, true},
		{"largest", 30, 30, 315, true},
		{"densest 10x10", 10, 10, 35, true},
		{"too dense", 10, 10, 36, false},
		{"no mines", 10, 10, 0, false},
		{"rows too small", 4, 10, 5, false},
		{"cols too large", 10, 31, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := l.Custom(tc.rows, tc.cols, tc.mines)
			if tc.ok {
				if err != nil {
					t.Fatalf("Custom(%d, %d, %d) error: %v", tc.rows, tc.cols, tc.mines, err)
				}
				if p.Name != PresetCustom || p.Rows != tc.rows || p.Cols != tc.cols || p.Mines != tc.mines {
					t.Errorf("Custom = %+v", p)
				}
				return
			}
			if !errors.Is(err, mines.ErrInvalidConfiguration) {
				t.Errorf("Custom(%d, %d, %d) error = %v, expected ErrInvalidConfiguration",
					tc.rows, tc.cols, tc.mines, err)
			}
		})
	}
}

func TestParseCustomFallback(t *testing.T) {
	l := DefaultCustomLimits()

	p, err := l.ParseCustom("abc", "", " 12 ")
	if err != nil {
		t.Fatalf("ParseCustom error: %v", err)
	}
	expected := Preset{Name: PresetCustom, Label: "Custom", Rows: 10, Cols: 10, Mines: 12}
	if p != expected {
		t.Errorf("ParseCustom = %+v, expected %+v", p, expected)
	}

	if _, err := l.ParseCustom("5", "5", "9"); !errors.Is(err, mines.ErrInvalidConfiguration) {
		t.Errorf("ParseCustom(5, 5, 9) error = %v, expected ErrInvalidConfiguration", err)
	}
}

func TestMaxMines(t *testing.T) {
	tests := []struct {
		rows, cols, expected int
	}{
		{5, 5, 8},
		{9, 9, 28},
		{16, 30, 168},
		{30, 30, 315},
	}

	for _, tc := range tests {
		if got := DefaultCustomLimits().MaxMines(tc.rows, tc.cols); got != tc.expected {
			t.Errorf("MaxMines(%d, %d) = %d, expected %d", tc.rows, tc.cols, got, tc.expected)
		}
	}
}

func TestPresetEngine(t *testing.T) {
	p := DefaultPresets().List[2]
	e, err := p.NewEngine(mines.WithSeed(1))
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	if e.Rows() != 16 || e.Cols() != 30 || e.MineCount() != 99 {
		t.Errorf("engine = %dx%d/%d, expected 16x30/99", e.Rows(), e.Cols(), e.MineCount())
	}
	if p.String() != "hard 16x30/99" {
		t.Errorf("String() = %q", p.String())
	}
}
