package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultTetraConfig()

	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("default board %dx%d, want 10x20", cfg.Board.Width, cfg.Board.Height)
	}

	want := []int{0, 40, 100, 300, 1200}
	if len(cfg.Scoring.LinePoints) != len(want) {
		t.Fatalf("LinePoints length=%d, want %d", len(cfg.Scoring.LinePoints), len(want))
	}
	for i, pts := range want {
		if cfg.Scoring.LinePoints[i] != pts {
			t.Errorf("LinePoints[%d]=%d, want %d", i, cfg.Scoring.LinePoints[i], pts)
		}
	}

	if cfg.Scoring.SoftDrop != 1 || cfg.Scoring.HardDrop != 2 {
		t.Errorf("drop bonuses soft=%d hard=%d, want 1 and 2", cfg.Scoring.SoftDrop, cfg.Scoring.HardDrop)
	}

	// Speed curve is strictly decreasing
	intervals := cfg.Gravity.IntervalsMs
	for i := 1; i < len(intervals); i++ {
		if intervals[i] >= intervals[i-1] {
			t.Errorf("interval[%d]=%d not faster than interval[%d]=%d", i, intervals[i], i-1, intervals[i-1])
		}
	}
}

func TestNormalizeFillsInvalidFields(t *testing.T) {
	cfg := TetraConfig{}
	cfg.Normalize()

	def := DefaultTetraConfig()
	if cfg.Board.Width != def.Board.Width || cfg.Board.Height != def.Board.Height {
		t.Errorf("normalized empty board %dx%d, want defaults", cfg.Board.Width, cfg.Board.Height)
	}
	if len(cfg.Gravity.IntervalsMs) == 0 {
		t.Error("normalized config has empty speed curve")
	}
	if cfg.Scoring.SoftDrop != def.Scoring.SoftDrop {
		t.Errorf("SoftDrop=%d, want %d", cfg.Scoring.SoftDrop, def.Scoring.SoftDrop)
	}
	if cfg.Difficulty.StartLevel != 1 {
		t.Errorf("StartLevel=%d, want 1", cfg.Difficulty.StartLevel)
	}
}

func TestNormalizeKeepsValidFields(t *testing.T) {
	cfg := TetraConfig{
		Board:      BoardConfig{Width: 12, Height: 24},
		Gravity:    GravityConfig{IntervalsMs: []int{800, 400}},
		Scoring:    ScoringConfig{LinePoints: []int{0, 50, 150, 400, 1500}, SoftDrop: 2, HardDrop: 3},
		Difficulty: DifficultyConfig{StartLevel: 5},
	}
	cfg.Normalize()

	if cfg.Board.Width != 12 || cfg.Board.Height != 24 {
		t.Errorf("valid board fields replaced: %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if len(cfg.Gravity.IntervalsMs) != 2 || cfg.Gravity.IntervalsMs[0] != 800 {
		t.Errorf("valid speed curve replaced: %v", cfg.Gravity.IntervalsMs)
	}
	if cfg.Scoring.LinePoints[4] != 1500 {
		t.Errorf("valid points table replaced: %v", cfg.Scoring.LinePoints)
	}
	if cfg.Difficulty.StartLevel != 5 {
		t.Errorf("valid start level replaced: %d", cfg.Difficulty.StartLevel)
	}
}

func TestNormalizeRejectsUnplayableWidths(t *testing.T) {
	def := DefaultTetraConfig()

	// The spawn columns need at least 7 columns; anything narrower falls
	// back to the default width
	for _, w := range []int{0, 3, 4, 5, 6} {
		cfg := TetraConfig{Board: BoardConfig{Width: w, Height: 20}}
		cfg.Normalize()
		if cfg.Board.Width != def.Board.Width {
			t.Errorf("width %d normalized to %d, want default %d", w, cfg.Board.Width, def.Board.Width)
		}
	}

	// The narrowest playable width survives
	cfg := TetraConfig{Board: BoardConfig{Width: 7, Height: 20}}
	cfg.Normalize()
	if cfg.Board.Width != 7 {
		t.Errorf("width 7 normalized to %d, want 7", cfg.Board.Width)
	}
}

func TestNormalizeRepairsBadIntervals(t *testing.T) {
	cfg := DefaultTetraConfig()
	cfg.Gravity.IntervalsMs = []int{500, 0, -10}
	cfg.Normalize()

	for i, ms := range cfg.Gravity.IntervalsMs {
		if ms <= 0 {
			t.Errorf("interval[%d]=%d after Normalize, want positive", i, ms)
		}
	}
}

func TestLoadTetraEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no ./configs directory is picked up
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadTetra("")
	if err != nil {
		t.Fatalf("LoadTetra() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("embedded default board %dx%d, want 10x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Scoring.LinePoints[4] != 1200 {
		t.Errorf("embedded default quad award=%d, want 1200", cfg.Scoring.LinePoints[4])
	}
}

func TestLoadTetraCustomPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("board:\n  width: 8\n  height: 16\nscoring:\n  soft_drop: 3\n")
	if err := os.WriteFile(custom, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetra(custom)
	if err != nil {
		t.Fatalf("LoadTetra() failed: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("custom board %dx%d, want 8x16", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Scoring.SoftDrop != 3 {
		t.Errorf("custom SoftDrop=%d, want 3", cfg.Scoring.SoftDrop)
	}
	// Omitted fields come from Normalize
	if len(cfg.Gravity.IntervalsMs) == 0 {
		t.Error("omitted speed curve not normalized")
	}
}

func TestLoadTetraMissingCustomPath(t *testing.T) {
	_, err := LoadTetra(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadTetra with a missing custom path should fail")
	}
}

func TestStartLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 4},
		{DifficultyHard, 7},
		{"nightmare", 0},
	}

	for _, tt := range tests {
		if got := StartLevelForPreset(tt.preset); got != tt.level {
			t.Errorf("StartLevelForPreset(%q)=%d, want %d", tt.preset, got, tt.level)
		}
	}
}

func TestApplyTetraPreset(t *testing.T) {
	cfg := DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.StartLevel != 7 {
		t.Errorf("hard preset StartLevel=%d, want 7", cfg.Difficulty.StartLevel)
	}

	// Unknown preset leaves the config untouched
	ApplyTetraPreset(&cfg, "nightmare")
	if cfg.Difficulty.StartLevel != 7 {
		t.Errorf("unknown preset changed StartLevel to %d", cfg.Difficulty.StartLevel)
	}
}
