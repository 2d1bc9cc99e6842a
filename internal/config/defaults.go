package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is the last resort if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:        480,
			Height:       640,
			GroundHeight: 80,
		},
		Physics: Physics{
			Gravity:     0.55,
			Lift:        -8.6,
			ScrollSpeed: 3.2,
		},
		Player: Player{
			Radius: 20,
			StartX: 0.30,
			StartY: 0.50,
		},
		Obstacles: Obstacles{
			ColumnWidth:   90,
			SpawnInterval: 95,
			MinGapHeight:  140,
			MaxGapHeight:  210,
			Margin:        50,
			TopOffset:     40,
		},
		Teeth: Teeth{
			Count:  3,
			Length: 20,
			Inset:  8,
		},
		Audio: Audio{
			Volume: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
