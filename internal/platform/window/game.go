// Package window runs the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-teeth/internal/core"
	"github.com/vovakirdan/flappy-teeth/internal/games/flappy"
)

// Options configures the window runner.
type Options struct {
	TickRate      int     // Updates per second
	Scale         float64 // Initial window size multiplier
	ScreenshotDir string  // Defaults to ~/.arcade/screenshots
	Logger        *log.Logger
}

// Game adapts a flappy.Game to ebiten.Game.
type Game struct {
	game    *flappy.Game
	canvas  *Canvas
	input   inputSource
	logger  *log.Logger
	shotDir string

	wantShot bool // Save the next drawn frame
	now      func() time.Time
}

// New creates the ebiten adapter.
func New(game *flappy.Game, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}
	return &Game{
		game:    game,
		canvas:  NewCanvas(),
		input:   ebitenInput{},
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
		now:     time.Now,
	}
}

// Update reads input and advances the simulation by one tick.
func (g *Game) Update() error {
	frame := readInput(g.input)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if frame.Has(core.ActionScreenshot) {
		g.wantShot = true
	}

	res := g.game.Step(frame)
	if frame.Has(core.ActionRestart) {
		g.logger.Info("run started")
	}
	if res.EnteredGameOver {
		g.logger.Info("game over", "score", res.State.Score)
	}
	return nil
}

// Draw renders the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.game.Render(g.canvas)

	if g.wantShot {
		g.wantShot = false
		path, err := g.saveScreenshot(screen)
		if err != nil {
			g.logger.Error("screenshot failed", "error", err)
			return
		}
		g.logger.Info("screenshot saved", "path", path)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w := g.game.Config().World
	return int(w.Width), int(w.Height)
}

// saveScreenshot writes img as a PNG and returns its path.
func (g *Game) saveScreenshot(img image.Image) (string, error) {
	if err := os.MkdirAll(g.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.png", g.game.ID(), g.now().Format("20060102_150405"))
	path := filepath.Join(g.shotDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("cannot encode screenshot: %w", err)
	}
	return path, nil
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	w := game.Config().World
	ebiten.SetWindowSize(int(w.Width*opts.Scale), int(w.Height*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(New(game, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
