package core

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"default", 1, time.Second},
		{"four per second", 4, 250 * time.Millisecond},
		{"zero falls back", 0, time.Second},
		{"negative falls back", -3, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RuntimeConfig{TickRate: tt.rate}
			if got := c.FrameDuration(); got != tt.expected {
				t.Errorf("FrameDuration() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ScreenW != 80 || c.ScreenH != 24 {
		t.Errorf("size = %dx%d, expected 80x24", c.ScreenW, c.ScreenH)
	}
	if c.Seed != 0 {
		t.Errorf("Seed = %d, expected 0", c.Seed)
	}
}
