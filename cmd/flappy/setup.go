package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-teeth/internal/config"
	"github.com/vovakirdan/flappy-teeth/internal/core"
	"github.com/vovakirdan/flappy-teeth/internal/games/flappy"
	"github.com/vovakirdan/flappy-teeth/internal/sound"
)

// session is everything a frontend needs to run one game.
type session struct {
	game    *flappy.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  io.Closer // Log file, if any
}

// Close releases the log file.
func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// newLogger builds the process logger. An empty path logs to w.
func newLogger(path string, w io.Writer) (*log.Logger, io.Closer, error) {
	var closer io.Closer
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	return logger, closer, nil
}

// newSession loads config, opens music and creates the game.
// logPath is where logs go; empty means stderr.
func newSession(logPath string) (*session, error) {
	logger, closer, err := newLogger(logPath, os.Stderr)
	if err != nil {
		return nil, err
	}

	cfg, src, err := config.LoadFlappy(expandHome(flagConfig))
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	logger.Info("config loaded", "source", src)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	logger.Debug("runtime", "fps", runtime.TickRate, "seed", runtime.Seed)

	musicPath := cfg.Audio.Music
	if flagMusic != "" {
		musicPath = flagMusic
	}
	music := sound.OpenOrSilent(expandHome(musicPath), flagMute, logger)

	game := flappy.New(cfg, rand.New(rand.NewSource(runtime.Seed)), music)
	return &session{game: game, runtime: runtime, logger: logger, closer: closer}, nil
}
