package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-teeth/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Flappy Teeth in a desktop window.

Controls:
  R               - Start / restart
  Space/Up/Click  - Flap
  Ctrl+S          - Save a PNG screenshot to ~/.arcade/screenshots
  Q/Esc           - Quit

Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession("")
	if err != nil {
		return err
	}
	defer s.Close()

	return window.Run(s.game, window.Options{
		TickRate: s.runtime.TickRate,
		Scale:    flagScale,
		Logger:   s.logger,
	})
}
