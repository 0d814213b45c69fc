package bramble

// Canvas is the paint backend. All coordinates are absolute within the
// tree's frame. The core only calls a Canvas from inside Paint and keeps no
// state about it between frames.
type Canvas interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	Line(x0, y0, x1, y1 float64, c Color)
	FillPolygon(points []Vec2, c Color)
	Text(s string, x, y float64, f Font, c Color)
}

// Painter is handed to paint hooks. It draws in the current node's local
// frame and forwards translated primitives to the backend Canvas.
type Painter struct {
	canvas Canvas
	ox, oy float64
	color  Color
	font   Font
	buf    []Vec2
}

// NewPainter returns a Painter drawing to canvas with its origin at (0, 0).
func NewPainter(canvas Canvas) *Painter {
	return &Painter{canvas: canvas, color: ColorWhite}
}

// Origin returns the absolute position of the current local frame.
func (p *Painter) Origin() (x, y float64) { return p.ox, p.oy }

// SetColor sets the color for subsequent primitives.
func (p *Painter) SetColor(c Color) { p.color = c }

// Color returns the current color.
func (p *Painter) Color() Color { return p.color }

// SetFont sets the font for subsequent Text calls.
func (p *Painter) SetFont(f Font) { p.font = f }

// Font returns the current font.
func (p *Painter) Font() Font { return p.font }

// FillRect fills a rectangle given in local coordinates.
func (p *Painter) FillRect(x, y, w, h float64) {
	p.canvas.FillRect(Rect{p.ox + x, p.oy + y, w, h}, p.color)
}

// StrokeRect outlines a rectangle given in local coordinates.
func (p *Painter) StrokeRect(x, y, w, h float64) {
	p.canvas.StrokeRect(Rect{p.ox + x, p.oy + y, w, h}, p.color)
}

// Line draws a line segment between two local points.
func (p *Painter) Line(x0, y0, x1, y1 float64) {
	p.canvas.Line(p.ox+x0, p.oy+y0, p.ox+x1, p.oy+y1, p.color)
}

// FillPolygon fills the polygon through the given local points.
func (p *Painter) FillPolygon(points ...Vec2) {
	p.buf = p.buf[:0]
	for _, pt := range points {
		p.buf = append(p.buf, Vec2{p.ox + pt.X, p.oy + pt.Y})
	}
	p.canvas.FillPolygon(p.buf, p.color)
}

// Text draws s with its top-left corner at the local point (x, y). It is a
// no-op when no font is set.
func (p *Painter) Text(s string, x, y float64) {
	if p.font == nil || s == "" {
		return
	}
	p.canvas.Text(s, p.ox+x, p.oy+y, p.font, p.color)
}

// Paint walks the subtree rooted at n depth-first. For each visible node it
// translates into the node's frame, paints the background, then the
// children in insertion order, then the foreground, and restores the frame.
// Later siblings therefore draw over earlier ones, the inverse of HitTest's
// precedence.
func Paint(n *Node, canvas Canvas) {
	if n == nil {
		return
	}
	paintNode(n, NewPainter(canvas))
}

func paintNode(n *Node, p *Painter) {
	if !n.Visible {
		return
	}
	ox, oy := p.ox, p.oy
	p.ox += n.x
	p.oy += n.y

	if bp, ok := n.Widget.(BackgroundPainter); ok {
		bp.PaintBackground(n, p)
	}
	for _, c := range n.snapshot() {
		paintNode(c, p)
	}
	if fp, ok := n.Widget.(ForegroundPainter); ok {
		fp.PaintForeground(n, p)
	}

	p.ox, p.oy = ox, oy
}
