package teahost

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/bramble"
)

// cell is one terminal character. A zero ch marks the trailing half of a
// wide rune.
type cell struct {
	ch    rune
	fg    bramble.Color
	bg    bramble.Color
	hasBg bool
}

type styleKey struct {
	fg, bg bramble.Color
	hasBg  bool
}

// CellCanvas is a bramble.Canvas that rasterizes primitives onto a grid of
// terminal cells. A cell is covered by a shape when the cell's centre lies
// inside it.
type CellCanvas struct {
	// Background fills every cell on Clear. A zero alpha leaves the
	// terminal's own background showing.
	Background bramble.Color

	cols, rows int
	cw, ch     float64
	cells      []cell
	styles     map[styleKey]lipgloss.Style
}

// NewCellCanvas creates a cols by rows canvas where each cell covers cw by ch
// tree units.
func NewCellCanvas(cols, rows int, cw, ch float64) *CellCanvas {
	c := &CellCanvas{cw: cw, ch: ch, styles: make(map[styleKey]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Size returns the grid dimensions in cells.
func (c *CellCanvas) Size() (cols, rows int) { return c.cols, c.rows }

// Resize changes the grid dimensions and clears it.
func (c *CellCanvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	c.Clear()
}

// Clear blanks every cell.
func (c *CellCanvas) Clear() {
	blank := cell{ch: ' ', bg: c.Background, hasBg: c.Background.A > 0}
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *CellCanvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// span converts a tree-unit interval to the half-open range of cells whose
// centres it covers.
func span(start, length, size float64) (int, int) {
	return int(math.Floor(start/size + 0.5)), int(math.Floor((start+length)/size + 0.5))
}

// clipCols limits a half-open column range to the grid.
func (c *CellCanvas) clipCols(lo, hi int) (int, int) { return max(lo, 0), min(hi, c.cols) }

// clipRows limits a half-open row range to the grid.
func (c *CellCanvas) clipRows(lo, hi int) (int, int) { return max(lo, 0), min(hi, c.rows) }

// FillRect sets the background of every covered cell and blanks its text.
func (c *CellCanvas) FillRect(r bramble.Rect, clr bramble.Color) {
	if clr.A <= 0 {
		return
	}
	x0, x1 := c.clipCols(span(r.X, r.Width, c.cw))
	y0, y1 := c.clipRows(span(r.Y, r.Height, c.ch))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			cl := c.at(col, row)
			cl.bg = blend(cl.bg, cl.hasBg, clr)
			cl.hasBg = true
			cl.ch = ' '
		}
	}
}

// StrokeRect draws a box-drawing frame on the outermost covered cells.
func (c *CellCanvas) StrokeRect(r bramble.Rect, clr bramble.Color) {
	x0, x1 := span(r.X, r.Width, c.cw)
	y0, y1 := span(r.Y, r.Height, c.ch)
	if x1-x0 < 1 || y1-y0 < 1 {
		return
	}
	last := func(a, b int) bool { return b-a == 1 }
	switch {
	case last(y0, y1):
		lo, hi := c.clipCols(x0, x1)
		for col := lo; col < hi; col++ {
			c.put(col, y0, '─', clr)
		}
		return
	case last(x0, x1):
		lo, hi := c.clipRows(y0, y1)
		for row := lo; row < hi; row++ {
			c.put(x0, row, '│', clr)
		}
		return
	}
	// Edges may lie off the grid; only the on-grid stretch is walked.
	lo, hi := c.clipCols(x0+1, x1-1)
	for col := lo; col < hi; col++ {
		c.put(col, y0, '─', clr)
		c.put(col, y1-1, '─', clr)
	}
	lo, hi = c.clipRows(y0+1, y1-1)
	for row := lo; row < hi; row++ {
		c.put(x0, row, '│', clr)
		c.put(x1-1, row, '│', clr)
	}
	c.put(x0, y0, '┌', clr)
	c.put(x1-1, y0, '┐', clr)
	c.put(x0, y1-1, '└', clr)
	c.put(x1-1, y1-1, '┘', clr)
}

// Line draws horizontal and vertical segments with box-drawing runes and
// anything else as dots. Cells that already hold text are inverted instead
// of overwritten, so a caret line reads as a block cursor.
func (c *CellCanvas) Line(x0, y0, x1, y1 float64, clr bramble.Color) {
	col0, row0 := int(math.Floor(x0/c.cw)), int(math.Floor(y0/c.ch))
	col1, row1 := int(math.Floor(x1/c.cw)), int(math.Floor(y1/c.ch))
	switch {
	case col0 == col1:
		lo, hi := c.clipRows(cellRange(min(y0, y1), max(y0, y1), c.ch))
		for row := lo; row < hi; row++ {
			c.mark(col0, row, '│', clr)
		}
	case row0 == row1:
		lo, hi := c.clipCols(cellRange(min(x0, x1), max(x0, x1), c.cw))
		for col := lo; col < hi; col++ {
			c.mark(col, row0, '─', clr)
		}
	default:
		// Bresenham over cell coordinates.
		dx, dy := abs(col1-col0), -abs(row1-row0)
		sx, sy := sign(col1-col0), sign(row1-row0)
		e := dx + dy
		for col, row := col0, row0; ; {
			c.mark(col, row, '•', clr)
			if col == col1 && row == row1 {
				break
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				col += sx
			}
			if e2 <= dx {
				e += dx
				row += sy
			}
		}
	}
}

// cellRange returns the half-open range of cells touched by [lo, hi]. An
// end that falls exactly on a cell boundary does not reach into the next
// cell.
func cellRange(lo, hi, size float64) (int, int) {
	first := int(math.Floor(lo / size))
	last := int(math.Ceil(hi/size)) - 1
	return first, max(first, last) + 1
}

// FillPolygon sets the background of every cell whose centre lies inside
// the polygon.
func (c *CellCanvas) FillPolygon(points []bramble.Vec2, clr bramble.Color) {
	if len(points) < 3 || clr.A <= 0 {
		return
	}
	poly := bramble.HitPolygon{Points: points}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0, x1 := c.clipCols(span(minX, maxX-minX, c.cw))
	y0, y1 := c.clipRows(span(minY, maxY-minY, c.ch))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			cx, cy := (float64(col)+0.5)*c.cw, (float64(row)+0.5)*c.ch
			if !poly.Contains(cx, cy) {
				continue
			}
			cl := c.at(col, row)
			cl.bg = blend(cl.bg, cl.hasBg, clr)
			cl.hasBg = true
			cl.ch = ' '
		}
	}
}

// Text writes s starting at the cell nearest (x, y), keeping each
// cell's background. Wide runes take two cells; zero-width runes are
// dropped.
func (c *CellCanvas) Text(s string, x, y float64, _ bramble.Font, clr bramble.Color) {
	col0 := int(math.Floor(x/c.cw + 0.5))
	row := int(math.Floor(y/c.ch + 0.5))
	for _, line := range strings.Split(s, "\n") {
		col := col0
		for _, r := range line {
			w := lipgloss.Width(string(r))
			if w == 0 {
				continue
			}
			c.put(col, row, r, clr)
			if w == 2 {
				c.put(col+1, row, 0, clr)
			}
			col += w
		}
		row++
	}
}

func (c *CellCanvas) put(col, row int, r rune, clr bramble.Color) {
	if cl := c.at(col, row); cl != nil {
		cl.ch = r
		cl.fg = clr
	}
}

func (c *CellCanvas) mark(col, row int, r rune, clr bramble.Color) {
	cl := c.at(col, row)
	if cl == nil {
		return
	}
	if cl.ch != ' ' && cl.ch != 0 {
		bg := cl.bg
		if !cl.hasBg {
			bg = bramble.ColorBlack
		}
		cl.fg, cl.bg, cl.hasBg = bg, clr, true
		return
	}
	cl.ch = r
	cl.fg = clr
}

// String returns the grid's runes without styling, one line per row.
func (c *CellCanvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range c.cells[row*c.cols : (row+1)*c.cols] {
			if cl.ch != 0 {
				sb.WriteRune(cl.ch)
			}
		}
	}
	return sb.String()
}

// Render returns the grid styled with lipgloss. Adjacent cells sharing
// colors are rendered as one run.
func (c *CellCanvas) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		cells := c.cells[row*c.cols : (row+1)*c.cols]
		var key styleKey
		for i, cl := range cells {
			k := styleKey{fg: cl.fg, bg: cl.bg, hasBg: cl.hasBg}
			if i > 0 && k != key {
				sb.WriteString(c.style(key).Render(run.String()))
				run.Reset()
			}
			key = k
			if cl.ch != 0 {
				run.WriteRune(cl.ch)
			}
		}
		if run.Len() > 0 {
			sb.WriteString(c.style(key).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

func (c *CellCanvas) style(k styleKey) lipgloss.Style {
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hexColor(k.fg))
	if k.hasBg {
		s = s.Background(hexColor(k.bg))
	}
	c.styles[k] = s
	return s
}

// --- Color helpers ---

// blend composites src over dst. An unset dst counts as black.
func blend(dst bramble.Color, hasDst bool, src bramble.Color) bramble.Color {
	a := clamp01(src.A)
	if a >= 1 {
		return bramble.Color{R: src.R, G: src.G, B: src.B, A: 1}
	}
	if !hasDst {
		dst = bramble.ColorBlack
	}
	return bramble.Color{
		R: src.R*a + dst.R*(1-a),
		G: src.G*a + dst.G*(1-a),
		B: src.B*a + dst.B*(1-a),
		A: 1,
	}
}

func hexColor(c bramble.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B)))
}

func to8(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
