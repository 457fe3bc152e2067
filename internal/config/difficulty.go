package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
// Higher starting levels begin with faster gravity and larger line-clear
// multipliers. Returns 0 for an unknown preset (leave config untouched).
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 0
	}
}
