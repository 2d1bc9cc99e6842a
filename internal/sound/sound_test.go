package sound

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// fakePlayer stands in for an oto player.
type fakePlayer struct {
	playing bool
	volume  float64
	pos     int64
	plays   int
	pauses  int
	seekErr error
}

func (p *fakePlayer) Play() {
	p.playing = true
	p.plays++
}

func (p *fakePlayer) Pause() {
	p.playing = false
	p.pauses++
}

func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

func (p *fakePlayer) Seek(offset int64, _ int) (int64, error) {
	if p.seekErr != nil {
		return p.pos, p.seekErr
	}
	p.pos = offset
	return offset, nil
}

func TestTrackLoopStartAndStop(t *testing.T) {
	p := &fakePlayer{pos: 1234}
	track := newTrack(p, nil)

	track.LoopStart(0.25)
	if !track.IsPlaying() || p.volume != 0.25 || p.pos != 0 {
		t.Errorf("LoopStart should rewind and play at 0.25, got %+v", p)
	}

	p.pos = 5000
	track.Stop()
	if track.IsPlaying() {
		t.Error("Stop should pause the track")
	}
	if p.pos != 0 {
		t.Errorf("Stop should rewind, position %d", p.pos)
	}

	// Restarting while playing pauses first
	track.LoopStart(0.25)
	pauses := p.pauses
	track.LoopStart(0.25)
	if p.pauses != pauses+1 || p.plays != 3 {
		t.Errorf("Expected one extra pause and 3 plays, got pauses=%d plays=%d", p.pauses, p.plays)
	}
}

func TestTrackVolumeClamped(t *testing.T) {
	p := &fakePlayer{}
	track := newTrack(p, nil)

	track.LoopStart(3)
	if p.volume != 1 {
		t.Errorf("Volume should clamp to 1, got %v", p.volume)
	}
	track.LoopStart(-1)
	if p.volume != 0 {
		t.Errorf("Volume should clamp to 0, got %v", p.volume)
	}
}

func TestTrackSeekErrorStillPlays(t *testing.T) {
	p := &fakePlayer{seekErr: errors.New("boom")}
	track := newTrack(p, nil)

	track.LoopStart(0.5)
	if !track.IsPlaying() {
		t.Error("A failed rewind should not stop playback")
	}
}

func TestSilent(t *testing.T) {
	var s Silent
	if s.IsPlaying() {
		t.Error("Silent should start stopped")
	}
	s.LoopStart(1)
	if !s.IsPlaying() {
		t.Error("Silent should report playing after LoopStart")
	}
	s.Stop()
	if s.IsPlaying() {
		t.Error("Silent should report stopped after Stop")
	}
}

func TestOpenOrSilentMuted(t *testing.T) {
	if _, ok := OpenOrSilent("", true, nil).(*Silent); !ok {
		t.Error("Muted music should be silent")
	}
}

func TestSynthesize(t *testing.T) {
	notes := []Note{{440, 0.1}, {0, 0.05}}
	pcm := Synthesize(notes)

	want := (4410 + 2205) * BytesPerSample
	if len(pcm) != want {
		t.Fatalf("Expected %d bytes, got %d", want, len(pcm))
	}

	peak := 0
	for i := 0; i < 4410; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		if l != r {
			t.Fatalf("Channels differ at sample %d: %d vs %d", i, l, r)
		}
		if a := int(l); a > peak {
			peak = a
		} else if -a > peak {
			peak = -a
		}
	}
	if peak == 0 {
		t.Error("Note should not be silent")
	}
	if peak > leadLevel+harmonyLevel {
		t.Errorf("Peak %d exceeds the mix level", peak)
	}

	for i := 4410; i < 4410+2205; i++ {
		if binary.LittleEndian.Uint32(pcm[i*4:]) != 0 {
			t.Fatalf("Rest should be silent at sample %d", i)
		}
	}

	// First sample starts at zero to avoid a click
	if binary.LittleEndian.Uint32(pcm) != 0 {
		t.Error("Note should start from silence")
	}
}

func TestMelodySource(t *testing.T) {
	src, length := MelodySource()
	if length == 0 || length%BytesPerSample != 0 {
		t.Fatalf("Melody length %d should be a positive multiple of %d", length, BytesPerSample)
	}
	n, err := io.Copy(io.Discard, src)
	if err != nil || n != length {
		t.Errorf("Read %d bytes (%v), expected %d", n, err, length)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("RIFF"), "song.wav"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WAV should be unsupported, got %v", err)
	}
	if _, err := Decode([]byte("not an ogg file"), "song.ogg"); err == nil {
		t.Error("Garbage Ogg data should fail to decode")
	}

	if _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Missing file should wrap ErrNotExist, got %v", err)
	}
}
