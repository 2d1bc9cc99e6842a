package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// Scene colours
var (
	BackgroundColor = core.RGB(22, 28, 35)
	GroundColor     = core.RGB(40, 110, 85)
	GuideColor      = core.RGBA(255, 255, 255, 110)
	OverlayColor    = core.RGBA(0, 0, 0, 160)
	TextColor       = core.ColorWhite

	birdBody  = core.RGB(245, 200, 66)
	birdWing  = core.RGB(226, 160, 40)
	birdBeak  = core.RGB(240, 110, 40)
	birdPupil = core.RGB(20, 20, 20)
)

// Guide dashes
const (
	guideDash  = 12.0
	guideSpace = 18.0 // Distance from one dash start to the next
)

// Tilt limits: velocity in [-8, 8] maps to [-20°, 20°].
const (
	tiltVel = 8.0
	tiltDeg = 20.0
)

// Render draws the whole scene. It only reads game state.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	playBottom := g.cfg.PlayBottom()

	dst.Clear(BackgroundColor)
	dst.FillRect(core.NewRect(0, playBottom, w, g.cfg.World.GroundHeight), GroundColor)
	g.drawGuide(dst)

	if g.phase == PhaseNotStarted {
		g.drawBird(dst)
		dst.Text(core.V(w/2, h/2-18), 20, "Press R to start (music plays)", TextColor)
		dst.Text(core.V(w/2, h/2+12), 20, "SPACE / click to flap", TextColor)
		return
	}

	for _, c := range g.columns {
		c.Draw(dst, playBottom)
	}
	g.drawBird(dst)

	dst.Text(core.V(w/2, 60), 36, strconv.Itoa(g.score), TextColor)

	if g.phase == PhaseGameOver {
		dst.FillRect(core.NewRect(0, 0, w, h), OverlayColor)
		dst.Text(core.V(w/2, h/2-26), 36, "Game Over", TextColor)
		dst.Text(core.V(w/2, h/2+10), 20, "Press R to restart", TextColor)
	}
}

// drawGuide draws a dashed line across the play area at the next gap's centre.
func (g *Game) drawGuide(dst core.Canvas) {
	y, ok := g.NextGapCenterY()
	if !ok {
		return
	}
	for x := 0.0; x < g.cfg.World.Width; x += guideSpace {
		dst.Line(core.V(x, y), core.V(x+guideDash, y), 2, GuideColor)
	}
}

// birdTilt returns the sprite rotation in radians for the current velocity.
func (g *Game) birdTilt() float64 {
	deg := core.MapRange(g.bird.VY, -tiltVel, tiltVel, -tiltDeg, tiltDeg)
	return deg * math.Pi / 180
}

// drawBird draws a round bird facing right, rotated by its tilt.
func (g *Game) drawBird(dst core.Canvas) {
	b := g.bird
	r := b.Radius
	angle := g.birdTilt()
	at := func(x, y float64) core.Vec2 {
		return core.V(x, y).Rotate(angle).Add(b.Center())
	}

	dst.FillCircle(b.Center(), r, birdBody)
	dst.FillTriangle(core.Triangle{
		A: at(-r*0.7, -r*0.05),
		B: at(-r*0.05, -r*0.05),
		C: at(-r*0.45, r*0.5),
	}, birdWing)
	dst.FillTriangle(core.Triangle{
		A: at(r*0.75, -r*0.2),
		B: at(r*1.4, r*0.1),
		C: at(r*0.75, r*0.35),
	}, birdBeak)
	dst.FillCircle(at(r*0.35, -r*0.35), r*0.3, core.ColorWhite)
	dst.FillCircle(at(r*0.45, -r*0.35), r*0.13, birdPupil)
}
