package config

import (
	_ "embed"
)

//go:embed defaults/safari.yaml
var defaultSafariYAML []byte

// DefaultSafariConfig returns the built-in difficulty ladder and animal roster.
func DefaultSafariConfig() SafariConfig {
	return SafariConfig{
		Difficulties: []Difficulty{
			{
				Key: "easy", Label: "Easy",
				MazeWidth: 41, MazeHeight: 37,
				PlayerSpeed: 6.2, PredatorSpeed: 5.2,
				FrightenedDuration: 8.0,
				Lives:              5, Predators: 3,
			},
			{
				Key: "medium", Label: "Medium",
				MazeWidth: 45, MazeHeight: 39,
				PlayerSpeed: 6.2, PredatorSpeed: 6.2,
				FrightenedDuration: 6.0,
				Lives:              4, Predators: 4,
			},
			{
				Key: "hard", Label: "Hard",
				MazeWidth: 47, MazeHeight: 41,
				PlayerSpeed: 6.5, PredatorSpeed: 6.8,
				FrightenedDuration: 4.0,
				Lives:              3, Predators: 4,
				ExtraPredatorAt: 0.5,
			},
			{
				Key: "pro", Label: "Pro",
				MazeWidth: 51, MazeHeight: 45,
				PlayerSpeed: 6.7, PredatorSpeed: 7.2,
				FrightenedDuration: 2.5,
				Lives:              3, Predators: 4,
				ExtraPredatorAt: 0.7,
			},
		},
		Animals: []Animal{
			{
				Key: "chipmunk", Label: "Chipmunk (dash)",
				Ability:  "Dash at 1.4x speed through any terrain",
				Cooldown: 20, Duration: 1.5,
				PassiveSpeed: 1.05, AbilitySpeed: 1.4,
			},
			{
				Key: "frog", Label: "Frog (water hop)",
				Ability:  "Glides over water; hop ignores terrain",
				Cooldown: 18, Duration: 0.8,
				WaterGlide: true,
			},
			{
				Key: "hedgehog", Label: "Hedgehog (shield)",
				Ability:  "Curl up to bounce predators; one free hit per level",
				Cooldown: 22, Duration: 1.2,
				Shields: 1, Reflect: true,
			},
			{
				Key: "hummingbird", Label: "Hummingbird (drift)",
				Ability:  "Drift on the wind; predators scatter away",
				Cooldown: 16, Duration: 1.2,
				Scatter: true,
			},
		},
	}
}
