package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-teeth/internal/core"
	"github.com/vovakirdan/flappy-teeth/internal/games/flappy"
)

// helpStyle renders the footer under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// footerLines is the number of terminal rows reserved below the playfield.
const footerLines = 1

// Options configures a Model.
type Options struct {
	Width, Height int    // Terminal size in cells
	TickRate      int    // Ticks per second
	ScreenshotDir string // Defaults to ~/.arcade/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	tickRate   int
	shotDir    string
	status     string // One-line message shown in the footer
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	world := game.Config().World
	h := help.New()
	h.Width = opts.Width

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Width, playfieldHeight(opts.Height), world.Width, world.Height),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
		tickRate:   opts.TickRate,
		shotDir:    opts.ScreenshotDir,
	}
}

func playfieldHeight(h int) int {
	return core.Max(h-footerLines, 1)
}

// Init starts the tick loop. The game waits in NotStarted for a restart key.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isClick(msg) {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot(time.Now())
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + path
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies queued input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if restarting {
		m.status = ""
		m.logger.Info("run started")
	}
	if result.EnteredGameOver {
		m.logger.Info("game over", "score", result.State.Score)
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
