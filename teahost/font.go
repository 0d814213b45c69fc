package teahost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCellFont matches the default RunConfig cell size.
var DefaultCellFont = CellFont{CellWidth: 8, CellHeight: 16}

// CellFont measures text in terminal cells scaled to tree units. Widths
// come from lipgloss.Width, so wide runes take two cells.
type CellFont struct {
	CellWidth  float64
	CellHeight float64
}

// MeasureString returns the width of the widest line and the height of all
// lines, in tree units.
func (f CellFont) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, float64(lipgloss.Width(line))*f.CellWidth)
	}
	return width, float64(len(lines)) * f.CellHeight
}

// LineHeight returns one cell height.
func (f CellFont) LineHeight() float64 { return f.CellHeight }
