// Package config provides YAML-based game configuration loading and
// difficulty presets for hugrun.
package config

import "time"

// HugRunConfig contains all configuration for the game scene.
// Distances are in logical canvas units, speeds in units per tick.
type HugRunConfig struct {
	Canvas     CanvasConfig       `yaml:"canvas"`
	Player     PlayerConfig       `yaml:"player"`
	Goal       GoalConfig         `yaml:"goal"`
	SafeZone   SafeZoneConfig     `yaml:"safe_zone"`
	Obstacles  []ObstacleTemplate `yaml:"obstacles"`
	Scoring    ScoringConfig      `yaml:"scoring"`
	Input      InputConfig        `yaml:"input"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// CanvasConfig defines the logical play field size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's start corner, size and speed.
// X is measured from the left edge, BottomOffset from the bottom edge.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
}

// GoalConfig defines the goal position. RightOffset is measured from the
// right edge, Y from the top edge.
type GoalConfig struct {
	RightOffset float64 `yaml:"right_offset"`
	Y           float64 `yaml:"y"`
	Size        float64 `yaml:"size"`
}

// SafeZoneConfig defines the reserved squares around the player start
// (bottom-left) and the goal (top-right).
type SafeZoneConfig struct {
	Size float64 `yaml:"size"`
}

// ObstacleTemplate defines one moving obstacle. Orientation follows the
// aspect ratio: taller than wide moves vertically.
type ObstacleTemplate struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// ScoringMode selects how completed rounds are tracked.
type ScoringMode string

const (
	ScoringHistory ScoringMode = "history" // Last N completion times
	ScoringBest    ScoringMode = "best"    // Last time and best time
)

// ScoringConfig defines score tracking.
type ScoringConfig struct {
	Mode        ScoringMode `yaml:"mode"`
	HistorySize int         `yaml:"history_size"`
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	// KeyHoldMS is how long a direction stays held after its last key
	// press when the terminal cannot report key releases.
	KeyHoldMS int `yaml:"key_hold_ms"`

	// FirstRepeatMS is the hold window right after a press, before the
	// terminal's first auto-repeat. Never shorter than KeyHoldMS.
	FirstRepeatMS int `yaml:"first_repeat_ms"`

	// DragThreshold is the distance below which drag-follow stops moving.
	DragThreshold float64 `yaml:"drag_threshold"`
}

// KeyHold returns KeyHoldMS as a duration.
func (c InputConfig) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMS) * time.Millisecond
}

// FirstRepeat returns FirstRepeatMS as a duration.
func (c InputConfig) FirstRepeat() time.Duration {
	return time.Duration(c.FirstRepeatMS) * time.Millisecond
}

// DifficultyConfig scales obstacle speed.
type DifficultyConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // 1.0 = template speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SpeedMultiplierForPreset returns the obstacle speed multiplier for a preset.
func SpeedMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// return "" which keeps the config file's value.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HugRunConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.SpeedMultiplier = SpeedMultiplierForPreset(preset)
}
