package bramble

// maxFocusHandoffs bounds how many times loss handlers may pass focus on
// before a single SetFocus gives up waiting for them to settle.
const maxFocusHandoffs = 16

// SetFocus moves keyboard focus to n, or clears it when n is nil, and
// returns the previous holder so callers can restore it later. The previous
// holder is notified of the loss before n is notified of the gain. Focusing
// the node that already holds focus re-notifies it: it receives a loss
// followed by a gain. When a loss handler moves focus elsewhere, that
// intermediate holder is notified of its own loss before n gains focus.
func (c *RunContext) SetFocus(n *Node) *Node {
	prev := c.focus
	for i := 0; c.focus != nil; i++ {
		if i == maxFocusHandoffs {
			c.logger.Warn("bramble: focus handlers did not settle", "node", c.focus.ID)
			c.focus.hasFocus = false
			c.focus = nil
			break
		}
		c.loseFocus()
	}
	c.focus = n
	if n != nil {
		n.hasFocus = true
		if n.OnFocusGained != nil {
			n.OnFocusGained()
		}
		c.emit(InteractionEvent{Type: EventFocusGained, NodeID: n.ID})
	}
	if c.debug {
		c.logger.Debug("bramble: focus", "from", nodeID(prev), "to", nodeID(n))
	}
	return prev
}

// loseFocus clears the current holder and notifies it. Its handler may set
// a new holder.
func (c *RunContext) loseFocus() {
	old := c.focus
	old.hasFocus = false
	c.focus = nil
	if old.OnFocusLost != nil {
		old.OnFocusLost()
	}
	c.emit(InteractionEvent{Type: EventFocusLost, NodeID: old.ID})
}

// FocusNext moves focus to the next focusable node in tree order, or the
// previous one when reverse is true, wrapping around at the ends. It
// returns the newly focused node, or nil when nothing can take focus.
func (c *RunContext) FocusNext(reverse bool) *Node {
	if c.root == nil {
		return nil
	}
	var order []*Node
	collectFocusable(c.root, &order)
	if len(order) == 0 {
		return nil
	}
	idx := -1
	for i, n := range order {
		if n == c.focus {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && reverse:
		next = len(order) - 1
	case idx < 0:
		next = 0
	case reverse:
		next = (idx - 1 + len(order)) % len(order)
	default:
		next = (idx + 1) % len(order)
	}
	c.SetFocus(order[next])
	return order[next]
}

// collectFocusable appends focusable nodes in pre-order. Disabled and
// hidden subtrees are skipped, matching what the pointer can reach.
func collectFocusable(n *Node, buf *[]*Node) {
	if !n.Enabled || !n.Visible {
		return
	}
	if n.CanFocus {
		*buf = append(*buf, n)
	}
	for _, child := range n.children {
		collectFocusable(child, buf)
	}
}

func nodeID(n *Node) string {
	if n == nil {
		return ""
	}
	return n.ID
}
