package bramble

import "math"

// Box is a linear container that packs its children along one axis.
// Non-expanding children receive their minimum main-axis extent; the space
// left over is split equally between expanding children. Every child is
// stretched across the cross axis.
//
// When non-expanding children already exceed the available space the share
// for expanding children is negative. The share is still applied with
// SetRect, which clamps each expanding child to its own minimum; the cursor
// advances by the size the child actually took, so children never overlap.
type Box struct {
	Orientation Orientation
	Spacing     float64

	// Background, when non-zero, fills the box before its children paint.
	Background Color
}

// NewBox creates a container node laying out children along o.
func NewBox(id string, o Orientation) *Node {
	return NewWidget(id, &Box{Orientation: o})
}

// NewHBox creates a horizontal Box container with the given spacing.
func NewHBox(id string, spacing float64) *Node {
	return NewWidget(id, &Box{Orientation: Horizontal, Spacing: spacing})
}

// NewVBox creates a vertical Box container with the given spacing.
func NewVBox(id string, spacing float64) *Node {
	return NewWidget(id, &Box{Orientation: Vertical, Spacing: spacing})
}

// axis projects horizontal/vertical quantities onto a main and cross axis.
type axis Orientation

func (a axis) main(x, y float64) float64 {
	if Orientation(a) == Horizontal {
		return x
	}
	return y
}

func (a axis) cross(x, y float64) float64 {
	if Orientation(a) == Horizontal {
		return y
	}
	return x
}

// point converts main/cross values back to x/y.
func (a axis) point(main, cross float64) (x, y float64) {
	if Orientation(a) == Horizontal {
		return main, cross
	}
	return cross, main
}

func (a axis) mainInsets(i Insets) (start, end float64) {
	if Orientation(a) == Horizontal {
		return i.Left, i.Right
	}
	return i.Top, i.Bottom
}

func (a axis) crossInsets(i Insets) (start, end float64) {
	if Orientation(a) == Horizontal {
		return i.Top, i.Bottom
	}
	return i.Left, i.Right
}

// packed returns the children that take part in packing.
func packed(n *Node) []*Node {
	kids := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.Visible {
			kids = append(kids, c)
		}
	}
	return kids
}

// CalcMinSize sums children's minimum extents along the main axis and takes
// the largest along the cross axis, adding margins, spacing and padding.
func (b *Box) CalcMinSize(n *Node) (w, h float64) {
	ax := axis(b.Orientation)
	kids := packed(n)
	var mainSum, crossMax float64
	for _, c := range kids {
		cw, ch := c.MinSize()
		ms, me := ax.mainInsets(c.Margin)
		cs, ce := ax.crossInsets(c.Margin)
		mainSum += ax.main(cw, ch) + ms + me
		crossMax = math.Max(crossMax, ax.cross(cw, ch)+cs+ce)
	}
	if len(kids) > 1 {
		mainSum += b.Spacing * float64(len(kids)-1)
	}
	ps, pe := ax.mainInsets(n.Padding)
	qs, qe := ax.crossInsets(n.Padding)
	return ax.point(mainSum+ps+pe, crossMax+qs+qe)
}

// Layout places children inside n's current rectangle.
func (b *Box) Layout(n *Node) {
	ax := axis(b.Orientation)
	kids := packed(n)
	if len(kids) == 0 {
		return
	}

	ps, pe := ax.mainInsets(n.Padding)
	qs, qe := ax.crossInsets(n.Padding)
	crossAvail := ax.cross(n.w, n.h) - qs - qe

	// Pass 1: slack left for expanding children.
	rest := ax.main(n.w, n.h) - ps - pe - b.Spacing*float64(len(kids)-1)
	nexp := 0
	mins := make([]float64, len(kids))
	for i, c := range kids {
		cw, ch := c.MinSize()
		mins[i] = ax.main(cw, ch)
		ms, me := ax.mainInsets(c.Margin)
		rest -= ms + me
		if c.Expand {
			nexp++
		} else {
			rest -= mins[i]
		}
	}

	// Pass 2: place.
	cursor := ps
	for i, c := range kids {
		ms, me := ax.mainInsets(c.Margin)
		cs, ce := ax.crossInsets(c.Margin)
		extent := mins[i]
		if c.Expand {
			extent = rest / float64(nexp)
		}
		x, y := ax.point(cursor+ms, qs+cs)
		w, h := ax.point(extent, crossAvail-cs-ce)
		c.SetRect(x, y, w, h)
		cursor += ms + ax.main(c.w, c.h) + me + b.Spacing
	}
}

// PaintBackground fills the box with its background color, if any.
func (b *Box) PaintBackground(n *Node, p *Painter) {
	if b.Background.A == 0 {
		return
	}
	p.SetColor(b.Background)
	p.FillRect(0, 0, n.w, n.h)
}
