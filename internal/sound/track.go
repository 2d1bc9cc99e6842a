package sound

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// player is the part of *oto.Player a Track drives.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Seek(offset int64, whence int) (int64, error)
}

// Track is a looping background track. All methods are safe to call from
// the game loop and never block on the device.
type Track struct {
	mu     sync.Mutex
	player player
	logger *log.Logger
}

// Open prepares a looping track from a music file, or from the built-in
// melody when path is empty. The audio device is opened on first use.
func Open(path string, logger *log.Logger) (*Track, error) {
	var (
		src    io.ReadSeeker
		length int64
	)
	if path == "" {
		src, length = MelodySource()
	} else {
		d, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}
		src, length = d, d.Length()
	}

	ctx, err := outputContext()
	if err != nil {
		return nil, err
	}

	p := ctx.NewPlayer(audio.NewInfiniteLoop(src, length))
	return newTrack(p, logger), nil
}

func newTrack(p player, logger *log.Logger) *Track {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Track{player: p, logger: logger}
}

// LoopStart plays the track from the beginning at the given volume, looping
// until Stop.
func (t *Track) LoopStart(volume float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.player.IsPlaying() {
		t.player.Pause()
	}
	t.rewind()
	t.player.SetVolume(core.ClampF(volume, 0, 1))
	t.player.Play()
	t.logger.Debug("music started", "volume", volume)
}

// Stop pauses playback and rewinds so the next LoopStart begins at the top.
func (t *Track) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.player.Pause()
	t.rewind()
	t.logger.Debug("music stopped")
}

// IsPlaying reports whether the track is currently audible.
func (t *Track) IsPlaying() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.player.IsPlaying()
}

func (t *Track) rewind() {
	if _, err := t.player.Seek(0, io.SeekStart); err != nil {
		t.logger.Warn("cannot rewind music", "error", err)
	}
}

// Silent is a track that never makes a sound. It still tracks whether it
// would be playing so callers see the same state changes as with a real track.
type Silent struct {
	mu      sync.Mutex
	playing bool
}

// LoopStart marks the track as playing.
func (s *Silent) LoopStart(float64) {
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()
}

// Stop marks the track as stopped.
func (s *Silent) Stop() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
}

// IsPlaying reports the last state set by LoopStart or Stop.
func (s *Silent) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Music is what the game needs from a track.
type Music interface {
	LoopStart(volume float64)
	Stop()
	IsPlaying() bool
}

// OpenOrSilent opens the track and never fails. An unusable music file falls
// back to the built-in melody; a missing audio device or mute gives a silent
// track. Failures are logged.
func OpenOrSilent(path string, mute bool, logger *log.Logger) Music {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if mute {
		logger.Info("music muted")
		return &Silent{}
	}

	t, err := Open(path, logger)
	if err != nil && path != "" && !errors.Is(err, ErrNoDevice) {
		logger.Warn("cannot use music file, playing built-in melody", "path", path, "error", err)
		t, err = Open("", logger)
	}
	if err != nil {
		logger.Warn("music disabled", "error", err)
		return &Silent{}
	}
	return t
}
