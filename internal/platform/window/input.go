package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// inputSource is the slice of ebiten's input state the game reads.
type inputSource interface {
	KeyJustPressed(k ebiten.Key) bool
	KeyPressed(k ebiten.Key) bool
	MouseJustPressed(b ebiten.MouseButton) bool
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct{}

func (ebitenInput) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) KeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) MouseJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// Key bindings
var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// readInput collects this frame's actions. Only fresh presses count, so
// holding a key flaps once.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()
	anyJustPressed := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if src.KeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	ctrl := src.KeyPressed(ebiten.KeyControl) || src.KeyPressed(ebiten.KeyMeta)

	if anyJustPressed(quitKeys) {
		frame.Set(core.ActionQuit)
	}
	if ctrl && src.KeyJustPressed(ebiten.KeyS) {
		frame.Set(core.ActionScreenshot)
	}
	if anyJustPressed(restartKeys) {
		frame.Set(core.ActionRestart)
	}
	if anyJustPressed(flapKeys) || src.MouseJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionFlap)
	}
	return frame
}
