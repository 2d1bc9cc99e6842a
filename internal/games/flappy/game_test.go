package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-teeth/internal/config"
	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// fakeMusic records calls from the game.
type fakeMusic struct {
	loopStarts int
	stops      int
	playing    bool
	volume     float64
}

func (m *fakeMusic) LoopStart(volume float64) {
	m.loopStarts++
	m.playing = true
	m.volume = volume
}

func (m *fakeMusic) Stop() {
	m.stops++
	m.playing = false
}

func (m *fakeMusic) IsPlaying() bool {
	return m.playing
}

// safeGame returns a running game with no gravity whose columns all leave
// a gap around the bird, so it can tick forever.
func safeGame(t *testing.T) (*Game, *fakeMusic) {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	music := &fakeMusic{}

	// Gap 210 tall at y=195, bird at y=320
	g := New(cfg, fixedRand{n: 70, f: 0.5}, music)
	g.Restart()
	return g, music
}

func TestNewGameNotStarted(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)

	if g.Phase() != PhaseNotStarted {
		t.Errorf("New game should be NotStarted, got %s", g.Phase())
	}
	b := g.Bird()
	if b.X != 144 || b.Y != 320 || b.VY != 0 || b.Radius != 20 {
		t.Errorf("Unexpected start bird: %+v", b)
	}

	if g.Tick() {
		t.Error("Tick should not end a game that has not started")
	}
	if g.Bird() != b {
		t.Error("Tick should not move the bird before the game starts")
	}

	g.Flap()
	if g.Bird().VY != 0 {
		t.Error("Flap should be ignored before the game starts")
	}

	state := g.State()
	if state.Started || state.GameOver || state.Score != 0 {
		t.Errorf("Unexpected state: %+v", state)
	}
}

func TestGameGravity(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)
	g.Restart()
	startY := g.Bird().Y

	for i := 0; i < 10; i++ {
		if g.Tick() {
			t.Fatalf("Game ended early at tick %d", i+1)
		}
	}

	b := g.Bird()
	if math.Abs(b.VY-5.5) > 1e-9 {
		t.Errorf("Expected vy=5.5 after 10 ticks, got %v", b.VY)
	}
	// 0.55 * (1 + 2 + ... + 10)
	if math.Abs((b.Y-startY)-30.25) > 1e-9 {
		t.Errorf("Expected to fall 30.25 after 10 ticks, fell %v", b.Y-startY)
	}
}

func TestGameFlap(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)
	g.Restart()

	g.bird.VY = 3
	g.Flap()
	if g.Bird().VY != -8.6 {
		t.Errorf("Flap should set vy to exactly -8.6, got %v", g.Bird().VY)
	}

	// Flap replaces velocity, it does not add to it
	g.Flap()
	if g.Bird().VY != -8.6 {
		t.Errorf("Second flap should still give -8.6, got %v", g.Bird().VY)
	}

	g.phase = PhaseGameOver
	g.bird.VY = 1
	g.Flap()
	if g.Bird().VY != 1 {
		t.Error("Flap should be ignored after game over")
	}
}

func TestGameHitsGround(t *testing.T) {
	music := &fakeMusic{}
	g := New(config.DefaultFlappyConfig(), fixedRand{}, music)
	g.Restart()

	// Free fall from y=320 crosses 540 on tick 28
	ticks := 0
	for !g.Tick() {
		ticks++
		if ticks > 100 {
			t.Fatal("Bird never reached the ground")
		}
	}
	ticks++

	if ticks != 28 {
		t.Errorf("Expected game over on tick 28, got %d", ticks)
	}
	if g.Phase() != PhaseGameOver || !g.State().GameOver {
		t.Error("Game should be over after hitting the ground")
	}
	if music.stops != 1 || music.playing {
		t.Errorf("Music should stop once on game over, stops=%d playing=%v", music.stops, music.playing)
	}

	// Frozen after game over
	b := g.Bird()
	if g.Tick() || g.Bird() != b {
		t.Error("Tick should do nothing after game over")
	}
}

func TestGameHitsCeiling(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)
	g.Restart()

	flap := core.NewInputFrame()
	flap.Set(core.ActionFlap)

	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step(flap)
	}

	if !g.State().GameOver {
		t.Fatal("Flapping forever should hit the top edge")
	}
	if b := g.Bird(); b.Y-b.Radius >= 0 {
		t.Errorf("Bird should end above the top edge, y=%v", b.Y)
	}
}

func TestGameOutOfBounds(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"middle", 320, false},
		{"resting on ground", 540, false},
		{"into ground", 540.5, true},
		{"touching top", 20, false},
		{"past top", 19.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g.bird.Y = tc.y
			for i := 0; i < 3; i++ {
				if got := g.OutOfBounds(); got != tc.expected {
					t.Errorf("OutOfBounds() at y=%v call %d = %v, expected %v", tc.y, i, got, tc.expected)
				}
			}
		})
	}
}

func TestGameRestart(t *testing.T) {
	music := &fakeMusic{}
	g := New(config.DefaultFlappyConfig(), fixedRand{}, music)

	g.Restart()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Restart should start the game, got %s", g.Phase())
	}
	if music.loopStarts != 1 || music.stops != 0 {
		t.Errorf("First restart should only start music, starts=%d stops=%d", music.loopStarts, music.stops)
	}
	if music.volume != 0.25 {
		t.Errorf("Music should loop at volume 0.25, got %v", music.volume)
	}

	// Die on the ground, with a column and a score on the board
	cfg := g.Config()
	g.columns = append(g.columns, NewColumn(300, fixedRand{}, &cfg))
	g.score = 4
	for i := 0; i < 100 && g.Phase() == PhaseRunning; i++ {
		g.Tick()
	}
	if g.Phase() != PhaseGameOver {
		t.Fatal("Expected game over")
	}

	g.Restart()
	if g.Phase() != PhaseRunning {
		t.Errorf("Restart from game over should run, got %s", g.Phase())
	}
	if len(g.Columns()) != 0 || g.Score() != 0 {
		t.Errorf("Restart should clear the run, columns=%d score=%d", len(g.Columns()), g.Score())
	}
	if b := g.Bird(); b.Y != 320 || b.VY != 0 {
		t.Errorf("Restart should reset the bird, got %+v", b)
	}
	if music.loopStarts != 2 || music.stops != 1 || !music.playing {
		t.Errorf("Expected 2 starts and 1 stop, got starts=%d stops=%d playing=%v",
			music.loopStarts, music.stops, music.playing)
	}

	// Restart while running stops the old loop first
	g.Restart()
	if music.loopStarts != 3 || music.stops != 2 {
		t.Errorf("Restart while playing should stop then start, starts=%d stops=%d",
			music.loopStarts, music.stops)
	}
}

func TestGameSpawnScoreAndCull(t *testing.T) {
	g, _ := safeGame(t)

	for tick := 1; tick <= 400; tick++ {
		before := g.Score()
		if g.Tick() {
			t.Fatalf("Safe game ended at tick %d", tick)
		}
		if d := g.Score() - before; d < 0 || d > 1 {
			t.Fatalf("Score jumped by %d at tick %d", d, tick)
		}

		cols := g.Columns()
		for i := 1; i < len(cols); i++ {
			if cols[i].X <= cols[i-1].X {
				t.Fatalf("Columns out of order at tick %d", tick)
			}
		}

		switch tick {
		case 94:
			if len(cols) != 0 {
				t.Errorf("No column should exist before tick 95, got %d", len(cols))
			}
		case 95:
			if len(cols) != 1 {
				t.Fatalf("Expected first column on tick 95, got %d", len(cols))
			}
			if math.Abs(cols[0].X-476.8) > 1e-9 {
				t.Errorf("New column should scroll on its spawn tick, x=%v", cols[0].X)
			}
		case 190:
			if len(cols) != 2 {
				t.Errorf("Expected second column on tick 190, got %d", len(cols))
			}
		case 227:
			if g.Score() != 0 {
				t.Errorf("First column not yet passed at tick 227, score=%d", g.Score())
			}
		case 228:
			if g.Score() != 1 || !cols[0].Scored {
				t.Errorf("First column passed at tick 228, score=%d", g.Score())
			}
		case 272:
			if len(cols) != 2 {
				t.Errorf("First column should still be on screen at tick 272, got %d columns", len(cols))
			}
		case 273:
			if len(cols) != 1 || cols[0].Scored || cols[0].X < 0 {
				t.Errorf("First column should be culled at tick 273, got %d columns", len(cols))
			}
		}
	}

	// Passed on ticks 228 and 323
	if g.Score() != 2 {
		t.Errorf("Expected score 2 after 400 ticks, got %d", g.Score())
	}
}

func TestGameToothCollision(t *testing.T) {
	g, music := safeGame(t)
	cfg := g.Config()

	// Gap at y=90, middle top apex lands just above the bird
	c := NewColumn(g.Bird().X-45, fixedRand{n: 70, f: 0}, &cfg)
	g.columns = []*Column{c}
	g.bird.Y = 125

	if !g.Tick() {
		t.Fatal("Bird touching a tooth should end the game")
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected GameOver, got %s", g.Phase())
	}
	if music.playing || music.stops != 1 {
		t.Errorf("Music should stop on collision, stops=%d playing=%v", music.stops, music.playing)
	}
}

func TestGameOnlyTeethAreSolid(t *testing.T) {
	g, _ := safeGame(t)
	cfg := g.Config()

	// Same bird height as the collision case, column far to the right
	g.columns = []*Column{NewColumn(400, fixedRand{n: 70, f: 0}, &cfg)}
	g.bird.Y = 125
	if g.Tick() {
		t.Error("Column that does not overlap the bird should not end the game")
	}

	// Inside the upper pillar but clear of the teeth below it
	g.columns = []*Column{NewColumn(g.Bird().X-45, fixedRand{n: 70, f: 0}, &cfg)}
	g.bird.Y = 40
	if g.Tick() {
		t.Error("Pillar body is not a hit; only teeth are")
	}
}

func TestNextGapCenterY(t *testing.T) {
	g, _ := safeGame(t)
	cfg := g.Config()

	if _, ok := g.NextGapCenterY(); ok {
		t.Error("No columns should mean no guide")
	}

	// Gap centres 160, 405 and 300
	behind := NewColumn(100, fixedRand{n: 0, f: 0}, &cfg)
	far := NewColumn(300, fixedRand{n: 70, f: 1}, &cfg)
	near := NewColumn(200, fixedRand{n: 70, f: 0.5}, &cfg)
	g.columns = []*Column{behind, far, near}

	y, ok := g.NextGapCenterY()
	if !ok || y != near.GapCenterY() {
		t.Errorf("NextGapCenterY() = %v, %v; expected %v from the nearest column ahead", y, ok, near.GapCenterY())
	}

	g.columns = []*Column{behind}
	if _, ok := g.NextGapCenterY(); ok {
		t.Error("Column behind the bird should not be picked")
	}
}

func TestGameStep(t *testing.T) {
	music := &fakeMusic{}
	g := New(config.DefaultFlappyConfig(), fixedRand{}, music)

	// Flap alone does not start the game
	flap := core.NewInputFrame()
	flap.Set(core.ActionFlap)
	if res := g.Step(flap); res.State.Started {
		t.Error("Flap should not start the game")
	}

	// Restart and flap on the same frame: restart first, then flap, then tick
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	in.Set(core.ActionFlap)
	res := g.Step(in)

	if !res.State.Started || res.State.GameOver || res.EnteredGameOver {
		t.Errorf("Unexpected state after restart: %+v", res)
	}
	if math.Abs(g.Bird().VY-(-8.6+0.55)) > 1e-9 {
		t.Errorf("Expected one tick after the flap, vy=%v", g.Bird().VY)
	}
	if music.loopStarts != 1 {
		t.Errorf("Restart should start music, got %d starts", music.loopStarts)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	// Flap every 15 ticks to try to stay airborne
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i == 0 {
			inputs[i].Set(core.ActionRestart)
		}
		if i%15 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	run := func() (*Game, int) {
		g := New(cfg, rand.New(rand.NewSource(12345)), nil)
		for i, in := range inputs {
			if g.Step(in).EnteredGameOver {
				return g, i
			}
		}
		return g, len(inputs)
	}

	g1, end1 := run()
	g2, end2 := run()

	if end1 != end2 || g1.Score() != g2.Score() {
		t.Errorf("Runs differ: end %d/%d score %d/%d", end1, end2, g1.Score(), g2.Score())
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Tick counts differ: %d/%d", g1.tickCount, g2.tickCount)
	}
	if len(g1.Columns()) != len(g2.Columns()) {
		t.Fatalf("Column counts differ: %d/%d", len(g1.Columns()), len(g2.Columns()))
	}
	for i := range g1.Columns() {
		if g1.Columns()[i].GapY != g2.Columns()[i].GapY {
			t.Errorf("Column %d gap differs", i)
		}
	}
}

func TestRenderPhases(t *testing.T) {
	g, _ := safeGame(t)
	g.phase = PhaseNotStarted

	canvas := &recordingCanvas{}
	g.Render(canvas)
	if !canvas.hasText("Press R to start (music plays)") || !canvas.hasText("SPACE / click to flap") {
		t.Errorf("Start screen texts missing: %v", canvas.texts)
	}
	if canvas.hasText("0") {
		t.Error("Score should not be shown before the game starts")
	}

	g.phase = PhaseRunning
	cfg := g.Config()
	g.columns = []*Column{NewColumn(300, fixedRand{n: 70, f: 0.5}, &cfg)}
	canvas = &recordingCanvas{}
	g.Render(canvas)
	if !canvas.hasText("0") {
		t.Errorf("Score should be drawn while running: %v", canvas.texts)
	}
	if canvas.lines == 0 {
		t.Error("Guide should be drawn when a column is ahead")
	}
	if canvas.hasText("Game Over") {
		t.Error("Game over text shown while running")
	}

	g.phase = PhaseGameOver
	canvas = &recordingCanvas{}
	g.Render(canvas)
	if !canvas.hasText("Game Over") || !canvas.hasText("Press R to restart") {
		t.Errorf("Game over texts missing: %v", canvas.texts)
	}
}

func TestRenderToScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)

	// 48x64 pixels, one pixel per 10 world units
	screen := core.NewScreen(48, 32, 480, 640)
	g.Render(screen)

	if got := screen.Pixel(0, 0); got != BackgroundColor {
		t.Errorf("Sky pixel = %v, expected background", got)
	}
	if got := screen.Pixel(0, 60); got != GroundColor {
		t.Errorf("Ground pixel = %v, expected ground", got)
	}
	if got := screen.Pixel(14, 32); got == BackgroundColor {
		t.Error("Bird should be drawn at its start position")
	}
}

func TestBirdTilt(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), fixedRand{}, nil)

	tests := []struct {
		vy  float64
		deg float64
	}{
		{0, 0},
		{8, 20},
		{-8, -20},
		{4, 10},
		{16, 40}, // Not clamped
	}

	for _, tc := range tests {
		g.bird.VY = tc.vy
		if got := g.birdTilt() * 180 / math.Pi; math.Abs(got-tc.deg) > 1e-9 {
			t.Errorf("birdTilt() at vy=%v = %v°, expected %v°", tc.vy, got, tc.deg)
		}
	}
}
