package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// ErrUnsupportedFormat is returned for files that are neither MP3 nor Ogg Vorbis.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decoder is a decoded PCM stream in the package output format.
type Decoder interface {
	io.ReadSeeker
	Length() int64
}

// Decode decodes raw file bytes. The format is chosen by the extension of name.
func Decode(raw []byte, name string) (Decoder, error) {
	r := bytes.NewReader(raw)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		d, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", name, err)
		}
		return d, nil
	case ".ogg", ".oga":
		d, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", name, err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeFile reads and decodes a music file from disk.
func DecodeFile(path string) (Decoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read music file: %w", err)
	}
	return Decode(raw, path)
}
