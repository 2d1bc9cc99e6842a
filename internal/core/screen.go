package core

import (
	"math"
	"strings"
)

// HalfBlock is the glyph used to show two stacked pixels in one terminal cell:
// the foreground paints the upper pixel and the background the lower one.
const HalfBlock = '▀'

// shadeRamp maps brightness to plain characters for uncoloured dumps.
const shadeRamp = " .:-=+*#%@"

// Cell is one terminal character with its colours, ready for styling.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is a terminal-sized raster that implements Canvas.
// Every cell holds two square-ish pixels (upper and lower half), which roughly
// doubles vertical resolution. World coordinates are scaled uniformly to fit
// and centred, leaving letterbox bars on the longer axis.
type Screen struct {
	width  int // cells
	height int // cells
	worldW float64
	worldH float64

	pixels    []Color // width * height*2
	text      []rune  // width * height, 0 means no glyph
	textColor []Color

	scale float64
	offX  float64
	offY  float64
}

// NewScreen creates a screen of width x height cells showing a worldW x worldH play area.
func NewScreen(width, height int, worldW, worldH float64) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: worldW,
		worldH: worldH,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// allocate creates the underlying pixel and glyph storage and recomputes the fit.
func (s *Screen) allocate() {
	s.width = Max(s.width, 1)
	s.height = Max(s.height, 1)
	s.pixels = make([]Color, s.width*s.height*2)
	s.text = make([]rune, s.width*s.height)
	s.textColor = make([]Color, s.width*s.height)

	pw, ph := float64(s.width), float64(s.height*2)
	s.scale = math.Min(pw/s.worldW, ph/s.worldH)
	s.offX = (pw - s.worldW*s.scale) / 2
	s.offY = (ph - s.worldH*s.scale) / 2
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelWidth returns the raster width in pixels.
func (s *Screen) PixelWidth() int {
	return s.width
}

// PixelHeight returns the raster height in pixels (two per cell row).
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Scale returns how many pixels one world unit covers.
func (s *Screen) Scale() float64 {
	return s.scale
}

// Resize changes the screen dimensions. Content is discarded; the next frame redraws it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorBlack)
}

// ToPixel converts a world point into fractional pixel coordinates.
func (s *Screen) ToPixel(p Vec2) (float64, float64) {
	return p.X*s.scale + s.offX, p.Y*s.scale + s.offY
}

// pixelCenter returns the world position sampled by pixel (px, py).
func (s *Screen) pixelCenter(px, py int) Vec2 {
	return Vec2{
		X: (float64(px) + 0.5 - s.offX) / s.scale,
		Y: (float64(py) + 0.5 - s.offY) / s.scale,
	}
}

// pixelBounds returns the clipped pixel range [x0,x1) x [y0,y1) covering r.
func (s *Screen) pixelBounds(r Rect) (x0, y0, x1, y1 int) {
	ax, ay := s.ToPixel(Vec2{X: r.X, Y: r.Y})
	bx, by := s.ToPixel(Vec2{X: r.Right(), Y: r.Bottom()})
	x0 = Clamp(int(math.Floor(ax)), 0, s.PixelWidth())
	y0 = Clamp(int(math.Floor(ay)), 0, s.PixelHeight())
	x1 = Clamp(int(math.Ceil(bx)), 0, s.PixelWidth())
	y1 = Clamp(int(math.Ceil(by)), 0, s.PixelHeight())
	return x0, y0, x1, y1
}

// blend composites c onto a single pixel. Out-of-bounds coordinates are ignored.
func (s *Screen) blend(px, py int, c Color) {
	if px < 0 || px >= s.PixelWidth() || py < 0 || py >= s.PixelHeight() {
		return
	}
	i := py*s.width + px
	s.pixels[i] = c.Over(s.pixels[i])
}

// Pixel returns the colour of a pixel, or black when out of bounds.
func (s *Screen) Pixel(px, py int) Color {
	if px < 0 || px >= s.PixelWidth() || py < 0 || py >= s.PixelHeight() {
		return ColorBlack
	}
	return s.pixels[py*s.width+px]
}

// Clear fills the entire screen with c and removes all text.
func (s *Screen) Clear(c Color) {
	c = c.Over(ColorBlack)
	for i := range s.pixels {
		s.pixels[i] = c
	}
	for i := range s.text {
		s.text[i] = 0
	}
}

// FillRect fills every pixel whose centre lies inside r.
func (s *Screen) FillRect(r Rect, c Color) {
	x0, y0, x1, y1 := s.pixelBounds(r)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if r.Contains(s.pixelCenter(px, py)) {
				s.blend(px, py, c)
			}
		}
	}
}

// StrokeRect outlines r. Strokes are always one pixel wide at terminal resolution.
func (s *Screen) StrokeRect(r Rect, _ float64, c Color) {
	ax, ay := s.ToPixel(Vec2{X: r.X, Y: r.Y})
	bx, by := s.ToPixel(Vec2{X: r.Right(), Y: r.Bottom()})
	left, top := int(math.Round(ax)), int(math.Round(ay))
	right, bottom := int(math.Round(bx))-1, int(math.Round(by))-1
	if right < left || bottom < top {
		return
	}

	for px := left; px <= right; px++ {
		s.blend(px, top, c)
		if bottom != top {
			s.blend(px, bottom, c)
		}
	}
	for py := top + 1; py < bottom; py++ {
		s.blend(left, py, c)
		if right != left {
			s.blend(right, py, c)
		}
	}
}

// FillTriangle fills every pixel whose centre is inside t.
// Triangles smaller than a pixel still mark the pixel under their centroid.
func (s *Screen) FillTriangle(t Triangle, c Color) {
	x0, y0, x1, y1 := s.pixelBounds(t.Bounds())
	covered := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if PointInTriangle(s.pixelCenter(px, py), t.A, t.B, t.C) {
				s.blend(px, py, c)
				covered = true
			}
		}
	}
	if !covered {
		cx, cy := s.ToPixel(t.Centroid())
		s.blend(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

// FillCircle fills every pixel whose centre is within radius of center.
func (s *Screen) FillCircle(center Vec2, radius float64, c Color) {
	x0, y0, x1, y1 := s.pixelBounds(NewRect(center.X-radius, center.Y-radius, radius*2, radius*2))
	covered := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if Dist(s.pixelCenter(px, py), center) <= radius {
				s.blend(px, py, c)
				covered = true
			}
		}
	}
	if !covered {
		cx, cy := s.ToPixel(center)
		s.blend(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

// Line draws a one-pixel segment from a to b.
func (s *Screen) Line(a, b Vec2, _ float64, c Color) {
	ax, ay := s.ToPixel(a)
	bx, by := s.ToPixel(b)
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		s.blend(int(math.Floor(ax)), int(math.Floor(ay)), c)
		return
	}

	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(ax + (bx-ax)*t))
		py := int(math.Floor(ay + (by-ay)*t))
		if px == lastX && py == lastY {
			continue
		}
		s.blend(px, py, c)
		lastX, lastY = px, py
	}
}

// Text writes s centred horizontally on at, in the cell row containing at.
// Glyphs outside the screen are clipped; size is ignored.
func (s *Screen) Text(at Vec2, _ float64, str string, c Color) {
	px, py := s.ToPixel(at)
	runes := []rune(str)
	col := int(math.Round(px)) - len(runes)/2
	row := int(math.Floor(py / 2))
	if row < 0 || row >= s.height {
		return
	}
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= s.width {
			continue
		}
		s.text[row*s.width+x] = r
		s.textColor[row*s.width+x] = c
	}
}

// GetCell returns the glyph and colours for a terminal cell.
// Text cells sit on the average of the two pixels beneath them.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	top := s.pixels[(y*2)*s.width+x]
	bottom := s.pixels[(y*2+1)*s.width+x]

	if r := s.text[y*s.width+x]; r != 0 {
		bg := RGBA(bottom.R, bottom.G, bottom.B, 128).Over(top)
		return Cell{Rune: r, Fg: s.textColor[y*s.width+x].Over(bg), Bg: bg}
	}
	return Cell{Rune: HalfBlock, Fg: top, Bg: bottom}
}

// String converts the screen to plain text: glyphs where text was drawn and a
// brightness ramp elsewhere. Used for screenshots and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns a plain-text rendering of one cell row.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		cell := s.GetCell(x, y)
		if cell.Rune != HalfBlock {
			sb.WriteRune(cell.Rune)
			continue
		}
		lum := (cell.Fg.Luminance() + cell.Bg.Luminance()) / 2
		idx := Clamp(int(lum*float64(len(shadeRamp))), 0, len(shadeRamp)-1)
		sb.WriteByte(shadeRamp[idx])
	}
	return sb.String()
}
