// Package config provides YAML-based game configuration loading and validation
// for Flappy Teeth.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Teeth     Teeth     `yaml:"teeth"`
	Audio     Audio     `yaml:"audio"`
}

// World defines the fixed play area.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Physics defines per-tick motion constants. There is no delta-time: one tick is one frame.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	Lift        float64 `yaml:"lift"` // Velocity set by a flap (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// Player defines the bird.
type Player struct {
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"` // Fraction of world width
	StartY float64 `yaml:"start_y"` // Fraction of world height
}

// Obstacles defines column geometry and spawning.
type Obstacles struct {
	ColumnWidth   float64 `yaml:"column_width"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	MinGapHeight  int     `yaml:"min_gap_height"`
	MaxGapHeight  int     `yaml:"max_gap_height"`
	Margin        float64 `yaml:"margin"`     // Clearance kept above and below every gap
	TopOffset     float64 `yaml:"top_offset"` // Extra clearance below the top edge
}

// Teeth defines the triangles lining each gap.
type Teeth struct {
	Count  int     `yaml:"count"`
	Length float64 `yaml:"length"`
	Inset  float64 `yaml:"inset"`
}

// Audio defines the background track.
type Audio struct {
	Volume float64 `yaml:"volume"`
	Music  string  `yaml:"music"` // Optional mp3/ogg file; empty uses the built-in tune
}

// PlayBottom returns the y-coordinate of the ground line.
func (c FlappyConfig) PlayBottom() float64 {
	return c.World.Height - c.World.GroundHeight
}

// GapYRange returns the interval a gap's top edge is drawn from for a gap of the given height.
func (c FlappyConfig) GapYRange(gapHeight int) (lo, hi float64) {
	lo = c.Obstacles.Margin + c.Obstacles.TopOffset
	hi = c.PlayBottom() - c.Obstacles.Margin - float64(gapHeight)
	return lo, hi
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration can produce a playable game.
// Every random draw must have a non-empty interval, so the tallest gap has to
// fit between the margins above the ground.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("world size %vx%v must be positive", c.World.Width, c.World.Height)
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		fail("ground_height %v must be in [0, height)", c.World.GroundHeight)
	}
	if c.Player.Radius <= 0 {
		fail("player radius %v must be positive", c.Player.Radius)
	}
	if c.Player.StartX < 0 || c.Player.StartX > 1 || c.Player.StartY < 0 || c.Player.StartY > 1 {
		fail("player start (%v, %v) must be fractions in [0, 1]", c.Player.StartX, c.Player.StartY)
	}
	if c.Physics.ScrollSpeed <= 0 {
		fail("scroll_speed %v must be positive", c.Physics.ScrollSpeed)
	}
	if c.Obstacles.ColumnWidth <= 0 {
		fail("column_width %v must be positive", c.Obstacles.ColumnWidth)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		fail("spawn_interval %d must be positive", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.MinGapHeight <= 0 || c.Obstacles.MinGapHeight > c.Obstacles.MaxGapHeight {
		fail("gap heights [%d, %d] must be positive and ordered", c.Obstacles.MinGapHeight, c.Obstacles.MaxGapHeight)
	}
	if lo, hi := c.GapYRange(c.Obstacles.MaxGapHeight); lo > hi {
		fail("gap_y interval [%v, %v] is empty for max_gap_height %d", lo, hi, c.Obstacles.MaxGapHeight)
	}
	if c.Teeth.Count < 1 {
		fail("teeth count %d must be at least 1", c.Teeth.Count)
	}
	if c.Teeth.Length < 0 || c.Teeth.Inset < 0 {
		fail("teeth length %v and inset %v must not be negative", c.Teeth.Length, c.Teeth.Inset)
	}
	if 2*c.Teeth.Length > float64(c.Obstacles.MinGapHeight) {
		fail("two teeth of length %v do not fit min_gap_height %d", c.Teeth.Length, c.Obstacles.MinGapHeight)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		fail("audio volume %v must be in [0, 1]", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
