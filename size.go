package bramble

import "math"

// SetMinSize sets explicit minimum size overrides. Pass Unset for a
// dimension to let the widget compute it.
func (n *Node) SetMinSize(w, h float64) {
	n.minW, n.minH = w, h
	n.markLayoutDirty()
}

// SetMaxSize sets explicit maximum size overrides. Pass Unset for a
// dimension to fall back to the parent's bounds.
func (n *Node) SetMaxSize(w, h float64) {
	n.maxW, n.maxH = w, h
	n.markLayoutDirty()
}

// MinSize returns the smallest size the node accepts. Explicit overrides
// win; missing dimensions come from the widget's CalcMinSize, or (1, 1).
func (n *Node) MinSize() (w, h float64) {
	if n.minW >= 0 && n.minH >= 0 {
		return n.minW, n.minH
	}
	w, h = 1, 1
	if ms, ok := n.Widget.(MinSizer); ok {
		w, h = ms.CalcMinSize(n)
	}
	if n.minW >= 0 {
		w = n.minW
	}
	if n.minH >= 0 {
		h = n.minH
	}
	return w, h
}

// MaxSize returns the largest size the node accepts. Explicit overrides
// win; missing dimensions come from the widget's CalcMaxSize, or else the
// parent's MaxSize minus this node's position. A parentless node is bounded
// by its viewport.
func (n *Node) MaxSize() (w, h float64) {
	if n.maxW >= 0 && n.maxH >= 0 {
		return n.maxW, n.maxH
	}
	if ms, ok := n.Widget.(MaxSizer); ok {
		w, h = ms.CalcMaxSize(n)
	} else {
		w, h = n.defaultMaxSize()
	}
	if n.maxW >= 0 {
		w = n.maxW
	}
	if n.maxH >= 0 {
		h = n.maxH
	}
	return w, h
}

func (n *Node) defaultMaxSize() (w, h float64) {
	if n.parent == nil {
		return n.viewportW, n.viewportH
	}
	pw, ph := n.parent.MaxSize()
	return math.Max(pw-n.x, 0), math.Max(ph-n.y, 0)
}

// setViewport bounds a parentless node.
func (n *Node) setViewport(w, h float64) {
	n.viewportW, n.viewportH = w, h
}

// clampSize clamps (w, h) into [MinSize, MaxSize]. When the range is
// inverted the minimum wins.
func (n *Node) clampSize(w, h float64) (float64, float64) {
	minW, minH := n.MinSize()
	maxW, maxH := n.MaxSize()
	return math.Max(math.Min(w, maxW), minW), math.Max(math.Min(h, maxH), minH)
}

// X returns the x position relative to the parent.
func (n *Node) X() float64 { return n.x }

// Y returns the y position relative to the parent.
func (n *Node) Y() float64 { return n.y }

// Width returns the current width.
func (n *Node) Width() float64 { return n.w }

// Height returns the current height.
func (n *Node) Height() float64 { return n.h }

// Rect returns the node's parent-relative rectangle.
func (n *Node) Rect() Rect { return Rect{n.x, n.y, n.w, n.h} }

// Bounds returns the node's rectangle in its own local frame.
func (n *Node) Bounds() Rect { return Rect{0, 0, n.w, n.h} }

// SetSize changes the size, clamped into [MinSize, MaxSize]. The layout
// hook runs only when the rectangle actually changed.
func (n *Node) SetSize(w, h float64) {
	n.SetRect(n.x, n.y, w, h)
}

// SetPosition moves the node within its parent. The size is re-clamped
// because MaxSize depends on position.
func (n *Node) SetPosition(x, y float64) {
	n.SetRect(x, y, n.w, n.h)
}

// SetRect sets position and size in one step. The size is clamped into
// [MinSize, MaxSize] after the position is applied. Setting an unchanged
// rectangle is a no-op.
func (n *Node) SetRect(x, y, w, h float64) {
	ox, oy := n.x, n.y
	n.x, n.y = x, y
	w, h = n.clampSize(w, h)
	if x == ox && y == oy && w == n.w && h == n.h {
		return
	}
	n.w, n.h = w, h
	n.layout()
}

// Fit sizes the node to its minimum size.
func (n *Node) Fit() {
	w, h := n.MinSize()
	n.SetSize(w, h)
}

// Relayout runs the node's layout hook unconditionally.
func (n *Node) Relayout() {
	n.layout()
}

func (n *Node) layout() {
	if l, ok := n.Widget.(Layouter); ok {
		l.Layout(n)
	}
}

// markLayoutDirty flags n and its ancestors for the next frame's layout pass.
func (n *Node) markLayoutDirty() {
	for p := n; p != nil && !p.layoutDirty; p = p.parent {
		p.layoutDirty = true
	}
}

// NeedsLayout reports whether n or a descendant changed since its last layout.
func (n *Node) NeedsLayout() bool { return n.layoutDirty }

// layoutDirtyTree re-clamps flagged nodes and re-runs their layout hooks,
// outermost first. Flags are only cleared here, so a flagged node always has
// flagged ancestors and the walk can stop at the first clean node.
func layoutDirtyTree(n *Node) {
	if !n.layoutDirty {
		return
	}
	n.layoutDirty = false
	// Overrides or widget content may have moved the size range since the
	// parent last placed n, and a parent without a Layouter never will.
	n.w, n.h = n.clampSize(n.w, n.h)
	n.layout()
	for _, c := range n.snapshot() {
		layoutDirtyTree(c)
	}
}
