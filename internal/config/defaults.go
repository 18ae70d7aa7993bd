package config

import (
	_ "embed"
)

//go:embed defaults/hugrun.yaml
var defaultHugRunYAML []byte

// DefaultHugRunConfig returns the default scene configuration.
func DefaultHugRunConfig() HugRunConfig {
	return HugRunConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 400,
		},
		Player: PlayerConfig{
			X:            20,
			BottomOffset: 70,
			Size:         50,
			Speed:        5,
		},
		Goal: GoalConfig{
			RightOffset: 70,
			Y:           20,
			Size:        50,
		},
		SafeZone: SafeZoneConfig{
			Size: 100,
		},
		Obstacles: []ObstacleTemplate{
			{Width: 20, Height: 200, Speed: 2, Color: "#FF6B6B"},
			{Width: 200, Height: 20, Speed: 2, Color: "#4ECDC4"},
			{Width: 20, Height: 150, Speed: 3, Color: "#FFD93D"},
		},
		Scoring: ScoringConfig{
			Mode:        ScoringHistory,
			HistorySize: 10,
		},
		Input: InputConfig{
			KeyHoldMS:     150,
			FirstRepeatMS: 300,
			DragThreshold: 1,
		},
		Difficulty: DifficultyConfig{
			SpeedMultiplier: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHugRunYAML
}
