package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-teeth/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Flappy Teeth in the terminal. The playfield is drawn with
half-block characters, so a taller terminal gives a sharper picture.

Controls:
  R               - Start / restart
  Space/Up/Click  - Flap
  Ctrl+S          - Save a text screenshot to ~/.arcade/screenshots
  Q/Esc/Ctrl+C    - Quit

Logs go to the --log file so they do not disturb the screen.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Get terminal size before Bubble Tea takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(flagLogPath)
	if err != nil {
		return err
	}
	defer s.Close()

	m := tui.NewModel(s.game, tui.Options{
		Width:    width,
		Height:   height,
		TickRate: s.runtime.TickRate,
		Logger:   s.logger,
	})
	if err := tui.Run(m); err != nil {
		s.logger.Error("terminal session failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
