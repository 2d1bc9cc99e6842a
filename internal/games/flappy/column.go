package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-teeth/internal/config"
	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// Rand is the randomness a Game needs. *math/rand.Rand satisfies it; tests
// substitute fixed sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Column colours
var (
	PillarColor  = core.RGB(18, 22, 26)
	ToothColor   = core.RGB(255, 255, 255)
	OutlineColor = core.RGBA(255, 255, 255, 60)
)

// Column is a scrolling obstacle: two pillars around a gap, with triangular
// teeth along both gap edges.
type Column struct {
	X         float64 // Left edge, decreases every tick
	GapY      float64 // Top of the gap
	GapHeight float64 // Height of the passable gap
	Scored    bool    // Whether the player has passed this column

	width float64
	speed float64

	// Teeth use column-local x; add X to place them in the world.
	top    []core.Triangle
	bottom []core.Triangle
}

// NewColumn creates a column at x with a random gap and builds its teeth.
func NewColumn(x float64, rng Rand, cfg *config.FlappyConfig) *Column {
	obs := cfg.Obstacles
	gapHeight := obs.MinGapHeight + rng.Intn(obs.MaxGapHeight-obs.MinGapHeight+1)
	lo, hi := cfg.GapYRange(gapHeight)

	c := &Column{
		X:         x,
		GapY:      lo + rng.Float64()*(hi-lo),
		GapHeight: float64(gapHeight),
		width:     obs.ColumnWidth,
		speed:     cfg.Physics.ScrollSpeed,
	}
	c.buildTeeth(cfg.Teeth)
	return c
}

// buildTeeth splits the column width into equal cells, one tooth per cell per row.
// Top teeth hang from the gap's top edge, bottom teeth rise from its bottom edge.
func (c *Column) buildTeeth(t config.Teeth) {
	count := core.Max(1, t.Count)
	cellW := c.width / float64(count)
	inset := math.Min(t.Inset, cellW*0.35)
	gapBottom := c.GapY + c.GapHeight

	c.top = make([]core.Triangle, 0, count)
	c.bottom = make([]core.Triangle, 0, count)
	for i := 0; i < count; i++ {
		left := float64(i)*cellW + inset
		right := float64(i+1)*cellW - inset
		mid := (left + right) / 2

		c.top = append(c.top, core.Triangle{
			A: core.V(left, c.GapY),
			B: core.V(right, c.GapY),
			C: core.V(mid, c.GapY+t.Length),
		})
		c.bottom = append(c.bottom, core.Triangle{
			A: core.V(left, gapBottom),
			B: core.V(right, gapBottom),
			C: core.V(mid, gapBottom-t.Length),
		})
	}
}

// Width returns the column width.
func (c *Column) Width() float64 {
	return c.width
}

// Right returns the x-coordinate of the right edge.
func (c *Column) Right() float64 {
	return c.X + c.width
}

// GapCenterY returns the vertical midpoint of the gap.
func (c *Column) GapCenterY() float64 {
	return c.GapY + c.GapHeight*0.5
}

// Advance scrolls the column left by one tick.
func (c *Column) Advance() {
	c.X -= c.speed
}

// Offscreen returns true once the column has fully left the play area.
func (c *Column) Offscreen() bool {
	return c.Right() < 0
}

// OverlapsHorizontally is the broad check: does a circle at px with radius r
// share any x range with the column?
func (c *Column) OverlapsHorizontally(px, r float64) bool {
	return px+r > c.X && px-r < c.Right()
}

// CollidesWithCircle is the narrow check against every tooth.
func (c *Column) CollidesWithCircle(center core.Vec2, r float64) bool {
	offset := core.V(c.X, 0)
	for _, t := range c.top {
		if core.CircleIntersectsTriangle(center, r, t.Translate(offset)) {
			return true
		}
	}
	for _, t := range c.bottom {
		if core.CircleIntersectsTriangle(center, r, t.Translate(offset)) {
			return true
		}
	}
	return false
}

// TopTeeth returns the top-row teeth in world coordinates.
func (c *Column) TopTeeth() []core.Triangle {
	return c.worldTeeth(c.top)
}

// BottomTeeth returns the bottom-row teeth in world coordinates.
func (c *Column) BottomTeeth() []core.Triangle {
	return c.worldTeeth(c.bottom)
}

func (c *Column) worldTeeth(local []core.Triangle) []core.Triangle {
	out := make([]core.Triangle, len(local))
	offset := core.V(c.X, 0)
	for i, t := range local {
		out[i] = t.Translate(offset)
	}
	return out
}

// pillars returns the solid rectangles above and below the gap.
func (c *Column) pillars(playBottom float64) (core.Rect, core.Rect) {
	gapBottom := c.GapY + c.GapHeight
	return core.NewRect(c.X, 0, c.width, c.GapY),
		core.NewRect(c.X, gapBottom, c.width, playBottom-gapBottom)
}

// Draw renders the pillars, the teeth and a faint outline around both pillars.
func (c *Column) Draw(dst core.Canvas, playBottom float64) {
	upper, lower := c.pillars(playBottom)
	dst.FillRect(upper, PillarColor)
	dst.FillRect(lower, PillarColor)

	for _, t := range c.TopTeeth() {
		dst.FillTriangle(t, ToothColor)
	}
	for _, t := range c.BottomTeeth() {
		dst.FillTriangle(t, ToothColor)
	}

	dst.StrokeRect(upper, 1, OutlineColor)
	dst.StrokeRect(lower, 1, OutlineColor)
}
