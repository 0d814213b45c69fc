package bramble

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font is the text-metrics capability. Widgets use it to size themselves and
// pass it to the Painter; backends decide how to rasterize it.
type Font interface {
	// MeasureString returns the pixel width and height of s. Multi-line
	// strings are as wide as their widest line.
	MeasureString(s string) (width, height float64)
	// LineHeight returns the vertical distance between baselines.
	LineHeight() float64
}

// FaceFont adapts a golang.org/x/image font.Face to Font.
type FaceFont struct {
	face font.Face
	lh   float64 // cached line height
	asc  float64
}

// NewFaceFont wraps face. The face is not closed by FaceFont.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	lh := fixedToFloat(m.Height)
	if lh <= 0 {
		lh = fixedToFloat(m.Ascent + m.Descent)
	}
	return &FaceFont{face: face, lh: lh, asc: fixedToFloat(m.Ascent)}
}

// DefaultFont returns a FaceFont over the 7x13 fixed-width face from
// golang.org/x/image/font/basicfont.
func DefaultFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// Face returns the wrapped face, for backends that rasterize it directly.
func (f *FaceFont) Face() font.Face { return f.face }

// Ascent returns the distance from the top of a line to its baseline.
func (f *FaceFont) Ascent() float64 { return f.asc }

// MeasureString returns the advance width of the widest line and the height
// of all lines.
func (f *FaceFont) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = math.Max(width, fixedToFloat(font.MeasureString(f.face, line)))
	}
	return width, f.lh * float64(len(lines))
}

// LineHeight returns the face's line height.
func (f *FaceFont) LineHeight() float64 {
	return f.lh
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
