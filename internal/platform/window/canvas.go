package window

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/flappy-teeth/internal/core"
)

// DrawTriangles needs a source image; a white pixel tinted by vertex colour
// gives solid fills.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(core.ColorWhite)
}

// Canvas draws core shapes onto an ebiten image in world coordinates.
// The window layout matches the world size, so no transform is applied.
type Canvas struct {
	dst   *ebiten.Image
	fonts *fontCache
}

// NewCanvas creates a canvas. Call SetTarget before each frame.
func NewCanvas() *Canvas {
	return &Canvas{fonts: newFontCache()}
}

// SetTarget sets the image the next draw calls go to.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the whole target.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(col)
}

// FillRect fills r.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, true)
}

// StrokeRect outlines r.
func (c *Canvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), col, true)
}

// FillTriangle fills t.
func (c *Canvas) FillTriangle(t core.Triangle, col core.Color) {
	var path vector.Path
	path.MoveTo(float32(t.A.X), float32(t.A.Y))
	path.LineTo(float32(t.B.X), float32(t.B.Y))
	path.LineTo(float32(t.C.X), float32(t.C.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(c.dst, vs, is, col)
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col, true)
}

// Line strokes a segment.
func (c *Canvas) Line(a, b core.Vec2, width float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
}

// Text draws s centred on at, horizontally and vertically.
func (c *Canvas) Text(at core.Vec2, size float64, s string, col core.Color) {
	face := c.fonts.face(size)
	x, y := textOrigin(at, text.BoundString(face, s))
	text.Draw(c.dst, s, face, x, y, col)
}

// textOrigin returns the dot position that centres a string with the given
// bounds (relative to its dot) on at.
func textOrigin(at core.Vec2, b image.Rectangle) (int, int) {
	x := int(math.Round(at.X - float64(b.Min.X+b.Max.X)/2))
	y := int(math.Round(at.Y - float64(b.Min.Y+b.Max.Y)/2))
	return x, y
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, col core.Color) {
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// fontCache builds one face per requested size from the bundled Go Bold font.
type fontCache struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

func newFontCache() *fontCache {
	fc := &fontCache{faces: make(map[float64]font.Face)}
	if f, err := opentype.Parse(gobold.TTF); err == nil {
		fc.font = f
	}
	return fc
}

// face returns a face of the given pixel size, or the fixed 7x13 bitmap
// font when the TrueType font is unavailable.
func (fc *fontCache) face(size float64) font.Face {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if f, ok := fc.faces[size]; ok {
		return f
	}
	var f font.Face = basicfont.Face7x13
	if fc.font != nil {
		tt, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			f = tt
		}
	}
	fc.faces[size] = f
	return f
}
