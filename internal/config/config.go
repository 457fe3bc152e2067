// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetra platform.
package config

// TetraConfig contains all tunable parameters for the game.
type TetraConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the speed curve: the automatic drop period per
// level. Level N uses IntervalsMs[N-1]; levels past the end stay floored
// at the last (fastest) entry.
type GravityConfig struct {
	IntervalsMs []int `yaml:"intervals_ms"`
}

// ScoringConfig defines the points model.
type ScoringConfig struct {
	// LinePoints[n] is the base award for clearing n rows at once,
	// multiplied by the current level. Index 0 is unused.
	LinePoints []int `yaml:"line_points"`

	// SoftDrop is awarded per row of player-driven descent.
	SoftDrop int `yaml:"soft_drop"`

	// HardDrop is awarded per row of hard-drop distance.
	HardDrop int `yaml:"hard_drop"`
}

// DisplayConfig toggles optional visuals.
type DisplayConfig struct {
	Ghost   bool `yaml:"ghost"`   // Landing-position ghost piece
	Preview bool `yaml:"preview"` // Next-piece preview box
}

// DifficultyConfig selects the starting level.
type DifficultyConfig struct {
	StartLevel int `yaml:"start_level"`
}

// minBoardWidth is the narrowest playfield the spawn columns fit: the I
// piece spawns across columns 3..6.
const minBoardWidth = 7

// Normalize fills invalid or missing fields from the defaults so a partial
// user config cannot produce an unplayable game.
func (c *TetraConfig) Normalize() {
	def := DefaultTetraConfig()

	if c.Board.Width < minBoardWidth {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height <= 4 {
		c.Board.Height = def.Board.Height
	}
	if len(c.Gravity.IntervalsMs) == 0 {
		c.Gravity.IntervalsMs = def.Gravity.IntervalsMs
	}
	for i, ms := range c.Gravity.IntervalsMs {
		if ms <= 0 {
			c.Gravity.IntervalsMs[i] = def.Gravity.IntervalsMs[len(def.Gravity.IntervalsMs)-1]
		}
	}
	if len(c.Scoring.LinePoints) < 5 {
		c.Scoring.LinePoints = def.Scoring.LinePoints
	}
	if c.Scoring.SoftDrop <= 0 {
		c.Scoring.SoftDrop = def.Scoring.SoftDrop
	}
	if c.Scoring.HardDrop <= 0 {
		c.Scoring.HardDrop = def.Scoring.HardDrop
	}
	if c.Difficulty.StartLevel < 1 {
		c.Difficulty.StartLevel = 1
	}
}
