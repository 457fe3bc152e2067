package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultTetraYAML []byte

// DefaultTetraConfig returns the default game configuration: a 10x20
// board, the classic scoring table {1:40, 2:100, 3:300, 4:1200}, and a
// speed curve from 1000ms down to a 100ms floor.
func DefaultTetraConfig() TetraConfig {
	return TetraConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			IntervalsMs: []int{1000, 850, 700, 600, 500, 400, 300, 220, 150, 100},
		},
		Scoring: ScoringConfig{
			LinePoints: []int{0, 40, 100, 300, 1200},
			SoftDrop:   1,
			HardDrop:   2,
		},
		Display: DisplayConfig{
			Ghost:   true,
			Preview: true,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}
