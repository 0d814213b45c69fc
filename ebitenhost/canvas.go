package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bramble"
)

// Canvas paints into an *ebiten.Image. Tree coordinates are multiplied by
// Scale before drawing.
type Canvas struct {
	Target *ebiten.Image
	Scale  float64

	verts []ebiten.Vertex
	inds  []uint16
	faces map[*bramble.FaceFont]*text.GoXFace
}

// NewCanvas returns a Canvas drawing to target at scale 1.
func NewCanvas(target *ebiten.Image) *Canvas {
	return &Canvas{Target: target, Scale: 1}
}

func (c *Canvas) s(v float64) float32 { return float32(v * c.Scale) }

// FillRect fills r with clr.
func (c *Canvas) FillRect(r bramble.Rect, clr bramble.Color) {
	vector.DrawFilledRect(c.Target, c.s(r.X), c.s(r.Y), c.s(r.Width), c.s(r.Height), toRGBA(clr), false)
}

// StrokeRect outlines r with a one unit wide line drawn inside it.
func (c *Canvas) StrokeRect(r bramble.Rect, clr bramble.Color) {
	w := c.s(1)
	vector.StrokeRect(c.Target, c.s(r.X)+w/2, c.s(r.Y)+w/2, c.s(r.Width)-w, c.s(r.Height)-w, w, toRGBA(clr), false)
}

// Line draws a one unit wide segment.
func (c *Canvas) Line(x0, y0, x1, y1 float64, clr bramble.Color) {
	vector.StrokeLine(c.Target, c.s(x0), c.s(y0), c.s(x1), c.s(y1), c.s(1), toRGBA(clr), false)
}

// FillPolygon fills a convex polygon using fan triangulation.
func (c *Canvas) FillPolygon(points []bramble.Vec2, clr bramble.Color) {
	c.verts, c.inds = buildPolygonFan(c.verts[:0], c.inds[:0], points, c.Scale, clr)
	if len(c.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	c.Target.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &op)
}

// Text draws s with its top-left corner at (x, y). TTFFont and
// bramble.FaceFont are rasterized with their own faces; any other Font
// falls back to the default face.
func (c *Canvas) Text(s string, x, y float64, f bramble.Font, clr bramble.Color) {
	face, lh := c.face(f)
	op := &text.DrawOptions{}
	op.GeoM.Scale(c.Scale, c.Scale)
	op.GeoM.Translate(x*c.Scale, y*c.Scale)
	op.ColorScale.ScaleWithColor(toRGBA(clr))
	op.LineSpacing = lh
	text.Draw(c.Target, s, face, op)
}

func (c *Canvas) face(f bramble.Font) (text.Face, float64) {
	switch ff := f.(type) {
	case *TTFFont:
		return ff.face, ff.lh
	case *bramble.FaceFont:
		return c.goXFace(ff), ff.LineHeight()
	}
	def := bramble.DefaultFont()
	return c.goXFace(def), def.LineHeight()
}

func (c *Canvas) goXFace(f *bramble.FaceFont) *text.GoXFace {
	if c.faces == nil {
		c.faces = make(map[*bramble.FaceFont]*text.GoXFace)
	}
	if xf, ok := c.faces[f]; ok {
		return xf
	}
	xf := text.NewGoXFace(f.Face())
	c.faces[f] = xf
	return xf
}

// buildPolygonFan appends a triangle fan over points to verts and inds.
// Fewer than 3 points produce nothing.
func buildPolygonFan(verts []ebiten.Vertex, inds []uint16, points []bramble.Vec2, scale float64, clr bramble.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	r, g, b, a := premultiplied(clr)
	for _, p := range points {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X * scale),
			DstY:   float32(p.Y * scale),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	for i := 1; i < n-1; i++ {
		inds = append(inds, base, base+uint16(i), base+uint16(i+1))
	}
	return verts, inds
}

// --- White pixel singleton (single-threaded, like the rest of the host) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// --- Color conversion ---

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func premultiplied(c bramble.Color) (r, g, b, a float32) {
	al := clamp01(c.A)
	return float32(clamp01(c.R) * al), float32(clamp01(c.G) * al), float32(clamp01(c.B) * al), float32(al)
}

// toRGBA converts a bramble Color to a premultiplied color.RGBA.
func toRGBA(c bramble.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}
