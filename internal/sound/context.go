// Package sound plays the looping background music.
//
// Playback goes straight to an oto context; ebiten's audio helpers are used
// only for decoding and looping, so no ebiten audio context is ever created.
package sound

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Output format shared by every source in this package: 16-bit signed
// little-endian stereo.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	BytesPerSample = 4 // 2 channels x 2 bytes
)

// ErrNoDevice is wrapped when the audio output cannot be opened.
var ErrNoDevice = errors.New("no audio device")

// oto allows one context per process.
var (
	contextOnce sync.Once
	theContext  *oto.Context
	contextErr  error
)

// outputContext opens the audio device on first use and waits until it is ready.
func outputContext() (*oto.Context, error) {
	contextOnce.Do(func() {
		op := oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, ready, err := oto.NewContext(&op)
		if err != nil {
			contextErr = fmt.Errorf("%w: %w", ErrNoDevice, err)
			return
		}
		<-ready
		theContext = ctx
	})
	return theContext, contextErr
}
