// Package flappy implements Flappy Teeth: a Flappy Bird-style game where the
// bird threads gaps lined with triangular teeth.
//
// Physics is frame-coupled: every Tick applies the same gravity and scroll
// regardless of wall-clock time, so game speed follows the frame driver's rate.
package flappy

import (
	"github.com/vovakirdan/flappy-teeth/internal/config"
	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// Phase is the lifecycle of a Game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Music is the background track collaborator. Calls are fire-and-forget.
type Music interface {
	LoopStart(volume float64)
	Stop()
	IsPlaying() bool
}

// noMusic is used when no track is supplied.
type noMusic struct{}

func (noMusic) LoopStart(float64) {}
func (noMusic) Stop()             {}
func (noMusic) IsPlaying() bool   { return false }

// Bird is the player. X never changes after a reset.
type Bird struct {
	X, Y   float64
	VY     float64
	Radius float64
}

// Center returns the bird position as a vector.
func (b Bird) Center() core.Vec2 {
	return core.V(b.X, b.Y)
}

// Game implements the Flappy Teeth state machine.
type Game struct {
	cfg   config.FlappyConfig
	rng   Rand
	music Music

	bird       Bird
	columns    []*Column // Spawn order, which is also left-to-right order
	phase      Phase
	score      int
	sinceSpawn int // Ticks since the last column spawned
	tickCount  int // Ticks since the run started
}

// New creates a game in the NotStarted phase. A nil music uses a silent track.
func New(cfg config.FlappyConfig, rng Rand, music Music) *Game {
	if music == nil {
		music = noMusic{}
	}
	g := &Game{
		cfg:   cfg,
		rng:   rng,
		music: music,
	}
	g.reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Teeth"
}

// reset puts the bird at its start position and clears the run.
func (g *Game) reset() {
	g.bird = Bird{
		X:      g.cfg.World.Width * g.cfg.Player.StartX,
		Y:      g.cfg.World.Height * g.cfg.Player.StartY,
		Radius: g.cfg.Player.Radius,
	}
	g.columns = nil
	g.score = 0
	g.sinceSpawn = 0
	g.tickCount = 0
}

// Flap sets the bird's velocity to the lift impulse. Only works while running.
func (g *Game) Flap() {
	if g.phase != PhaseRunning {
		return
	}
	g.bird.VY = g.cfg.Physics.Lift
}

// Restart begins a fresh run from any phase and restarts the music loop.
func (g *Game) Restart() {
	g.reset()
	g.phase = PhaseRunning

	if g.music.IsPlaying() {
		g.music.Stop()
	}
	g.music.LoopStart(g.cfg.Audio.Volume)
}

// Tick advances a running game by one frame. It returns true on the tick the
// run ends.
func (g *Game) Tick() bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.tickCount++

	// Physics
	g.bird.VY += g.cfg.Physics.Gravity
	g.bird.Y += g.bird.VY

	// Spawn
	g.sinceSpawn++
	if g.sinceSpawn >= g.cfg.Obstacles.SpawnInterval {
		g.columns = append(g.columns, NewColumn(g.cfg.World.Width, g.rng, &g.cfg))
		g.sinceSpawn = 0
	}

	// Scroll and score
	for _, c := range g.columns {
		c.Advance()
		if !c.Scored && c.Right() < g.bird.X {
			c.Scored = true
			g.score++
		}
	}

	// Drop columns that left the screen, keeping the survivors in order
	kept := g.columns[:0]
	for _, c := range g.columns {
		if !c.Offscreen() {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(g.columns); i++ {
		g.columns[i] = nil
	}
	g.columns = kept

	if g.OutOfBounds() || g.hitsColumn() {
		g.phase = PhaseGameOver
		if g.music.IsPlaying() {
			g.music.Stop()
		}
		return true
	}
	return false
}

// OutOfBounds reports whether the bird touches the ground band or the top edge.
func (g *Game) OutOfBounds() bool {
	b := g.bird
	return b.Y+b.Radius > g.cfg.PlayBottom() || b.Y-b.Radius < 0
}

// hitsColumn runs the broad check on every column and the narrow check only
// where the broad one passes. The first hit wins.
func (g *Game) hitsColumn() bool {
	center := g.bird.Center()
	for _, c := range g.columns {
		if c.OverlapsHorizontally(g.bird.X, g.bird.Radius) && c.CollidesWithCircle(center, g.bird.Radius) {
			return true
		}
	}
	return false
}

// NextGapCenterY returns the gap midpoint of the nearest column still ahead of
// the bird, or false when there is none.
func (g *Game) NextGapCenterY() (float64, bool) {
	var next *Column
	for _, c := range g.columns {
		if c.X > g.bird.X && (next == nil || c.X < next.X) {
			next = c
		}
	}
	if next == nil {
		return 0, false
	}
	return next.GapCenterY(), true
}

// Step is the frame-driver entry point: it applies the frame's input and then
// advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionFlap) {
		g.Flap()
	}
	ended := g.Tick()
	return core.StepResult{State: g.State(), EnteredGameOver: ended}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Started:  g.phase != PhaseNotStarted,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of columns passed in this run.
func (g *Game) Score() int {
	return g.score
}

// Bird returns a copy of the player.
func (g *Game) Bird() Bird {
	return g.bird
}

// Columns returns the active columns in spawn order. Callers must not modify the slice.
func (g *Game) Columns() []*Column {
	return g.columns
}

// Config returns the game configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
