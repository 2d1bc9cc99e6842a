package sound

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Note is one step of a synthesized melody.
type Note struct {
	Freq     float64 // Hz, 0 for a rest
	Duration float64 // Seconds
}

// DefaultMelody is a short arpeggio in C major that loops cleanly.
var DefaultMelody = []Note{
	{261.63, 0.3}, {329.63, 0.3}, {392.00, 0.3}, {523.25, 0.3},
	{493.88, 0.3}, {392.00, 0.3}, {440.00, 0.3}, {349.23, 0.3},
	{293.66, 0.3}, {349.23, 0.3}, {440.00, 0.3}, {587.33, 0.3},
	{523.25, 0.3}, {440.00, 0.3}, {392.00, 0.3}, {0, 0.3},
}

// Synthesis levels in 16-bit sample units.
const (
	leadLevel    = 4200.0
	harmonyLevel = 1800.0
	decayRate    = 3.0
	attackTime   = 0.005 // Short ramp to avoid clicks at note starts
)

// Synthesize renders notes to 16-bit stereo PCM: a sine lead plus a major
// third above it, both with an exponential decay.
func Synthesize(notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += samplesFor(n.Duration)
	}

	buf := make([]byte, total*BytesPerSample)
	off := 0
	for _, n := range notes {
		count := samplesFor(n.Duration)
		for i := 0; i < count; i++ {
			var v float64
			if n.Freq > 0 {
				t := float64(i) / SampleRate
				env := math.Exp(-decayRate*t) * math.Min(1, t/attackTime)
				v = math.Sin(2*math.Pi*n.Freq*t)*leadLevel*env +
					math.Sin(2*math.Pi*n.Freq*1.25*t)*harmonyLevel*env
			}
			sample := uint16(int16(v))
			binary.LittleEndian.PutUint16(buf[off:], sample)
			binary.LittleEndian.PutUint16(buf[off+2:], sample)
			off += BytesPerSample
		}
	}
	return buf
}

func samplesFor(seconds float64) int {
	return int(math.Round(seconds * SampleRate))
}

// MelodySource returns the default melody as a seekable PCM stream and its
// length in bytes.
func MelodySource() (*bytes.Reader, int64) {
	pcm := Synthesize(DefaultMelody)
	return bytes.NewReader(pcm), int64(len(pcm))
}
