// flappy is Flappy Teeth: thread a bird through gaps lined with teeth,
// in the terminal or in a desktop window.
//
// Usage:
//
//	flappy play      - Play in the terminal
//	flappy window    - Play in a desktop window
//	flappy config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Use a custom config YAML
//	--log <path>      - Log file for terminal mode (default: ~/.arcade/flappy.log)
//	--music <path>    - Play an MP3 or Ogg file instead of the built-in melody
//	--mute            - Disable music
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagMusic   string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Teeth - dodge the teeth, count the columns",
	Long: `Flappy Teeth is a single-screen arcade game. Press R to start, flap
with Space (or a mouse click) and pass through the gaps without touching
the teeth, the ground or the top edge.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  flappy play
  flappy window --scale 1.5
  flappy play --seed 42 --mute
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLogPath, "log", "~/.arcade/flappy.log", "Log file used in terminal mode")
	pf.StringVar(&flagMusic, "music", "", "MP3 or Ogg file to loop (overrides audio.music)")
	pf.BoolVar(&flagMute, "mute", false, "Disable music")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
