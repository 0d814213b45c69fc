package bramble

// HitTest finds the topmost node under (x, y), where the point is given in
// n's parent frame. It returns the hit node and the point translated into
// that node's local frame.
//
// Disabled and hidden nodes never match, and neither does anything beneath
// them. Children are tested last-to-first, mirroring paint order, so the
// child painted last wins. A node whose children all miss is itself the
// hit, provided its HitShape (if any) contains the point.
func HitTest(n *Node, x, y float64) (hit *Node, lx, ly float64, ok bool) {
	if n == nil || !n.Enabled || !n.Visible {
		return nil, 0, 0, false
	}
	lx, ly = x-n.x, y-n.y
	if !n.Bounds().Contains(lx, ly) {
		return nil, 0, 0, false
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit, hx, hy, ok := HitTest(n.children[i], lx, ly); ok {
			return hit, hx, hy, true
		}
	}
	if n.HitShape != nil && !n.HitShape.Contains(lx, ly) {
		return nil, 0, 0, false
	}
	return n, lx, ly, true
}

// HitTest runs HitTest from this context's root using tree coordinates.
func (c *RunContext) HitTest(x, y float64) (*Node, float64, float64, bool) {
	return HitTest(c.root, x, y)
}
