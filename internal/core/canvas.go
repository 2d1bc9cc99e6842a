package core

// Canvas is the drawing surface games render into.
// Coordinates are world units; each backend maps them onto its own pixels or cells.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// StrokeRect outlines a rectangle with the given stroke width.
	StrokeRect(r Rect, width float64, c Color)

	// FillTriangle fills a triangle of any winding.
	FillTriangle(t Triangle, c Color)

	// FillCircle fills a disc.
	FillCircle(center Vec2, radius float64, c Color)

	// Line draws a straight segment.
	Line(a, b Vec2, width float64, c Color)

	// Text draws s centred on at. Size is the nominal glyph height in world units;
	// cell-based backends may ignore it.
	Text(at Vec2, size float64, s string, c Color)
}
