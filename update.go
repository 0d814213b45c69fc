package bramble

// updateTree calls the update hooks of visible nodes in pre-order. Hidden
// subtrees are frozen.
func updateTree(n *Node, dt float64) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if u, ok := n.Widget.(Updater); ok {
		u.Update(n, dt)
	}
	for _, child := range n.snapshot() {
		// A hook may have detached the child.
		if child.parent != n {
			continue
		}
		updateTree(child, dt)
	}
}
