package bramble

// --- Device entry points ---
//
// Hosts call these once per device event, in arrival order. Pointer
// coordinates are in device pixels and are divided by the context's scale
// to obtain tree coordinates.

// PointerDown routes a button press. Without an active capture the press
// is hit-tested; a focusable hit takes focus unless it already holds it, and
// the hit node captures the pointer until the next PointerUp. With a capture
// active (a second button going down mid-drag) the press goes to the
// capture target.
func (c *RunContext) PointerDown(x, y float64, button MouseButton) {
	if !c.running {
		return
	}
	c.dropDetached()
	c.pointerX, c.pointerY = x, y
	tx, ty := c.toTree(x, y)
	mods := c.Modifiers()

	if c.capture != nil {
		c.firePointer(EventPointerDown, c.capture, tx-c.captureX, ty-c.captureY, tx, ty, button, mods)
		return
	}

	hit, lx, ly, ok := HitTest(c.root, tx, ty)
	if !ok {
		return
	}
	if hit.CanFocus && hit != c.focus {
		c.SetFocus(hit)
		// A focus handler may have detached the hit node.
		if !c.running || !c.attached(hit) {
			return
		}
	}
	c.capture = hit
	c.press = hit
	c.button = button
	c.captureX, c.captureY = hit.AbsolutePosition()
	if c.debug {
		c.logger.Debug("bramble: capture start", "node", hit.ID, "x", tx, "y", ty)
	}
	c.firePointer(EventPointerDown, hit, lx, ly, tx, ty, button, mods)
}

// PointerMove routes pointer motion. A captured pointer goes straight to the
// capture target, translated by the position recorded at press time, so a
// drag never falls through to whatever is under the cursor now. Otherwise
// the move is hit-tested, enter/leave fire when the hovered node changes,
// and the move goes to the new hover target.
func (c *RunContext) PointerMove(x, y float64) {
	if !c.running {
		return
	}
	c.dropDetached()
	c.pointerX, c.pointerY = x, y
	tx, ty := c.toTree(x, y)
	mods := c.Modifiers()

	if c.capture != nil {
		c.firePointer(EventPointerMove, c.capture, tx-c.captureX, ty-c.captureY, tx, ty, c.button, mods)
		return
	}

	hit, lx, ly, _ := HitTest(c.root, tx, ty)
	if hit != c.hover {
		if old := c.hover; old != nil {
			c.restoreCursor()
			ax, ay := old.AbsolutePosition()
			c.hover = nil
			c.firePointer(EventPointerLeave, old, tx-ax, ty-ay, tx, ty, MouseButtonLeft, mods)
		}
		c.hover = hit
		if hit != nil {
			if c.debug {
				c.logger.Debug("bramble: hover", "node", hit.ID)
			}
			c.applyCursor(hit)
			c.firePointer(EventPointerEnter, hit, lx, ly, tx, ty, MouseButtonLeft, mods)
		}
	}
	if hit != nil {
		c.firePointer(EventPointerMove, hit, lx, ly, tx, ty, MouseButtonLeft, mods)
	}
}

// PointerUp routes a button release to the capture target and then releases
// the capture, wherever the release lands. A release that hit-tests to the
// node that received the press also fires a click. Without a capture the
// release is dropped.
func (c *RunContext) PointerUp(x, y float64, button MouseButton) {
	if !c.running {
		return
	}
	c.dropDetached()
	c.pointerX, c.pointerY = x, y
	target, press := c.capture, c.press
	if target == nil {
		return
	}
	tx, ty := c.toTree(x, y)
	mods := c.Modifiers()
	lx, ly := tx-c.captureX, ty-c.captureY

	c.firePointer(EventPointerUp, target, lx, ly, tx, ty, button, mods)
	if c.running && press != nil {
		if hit, hx, hy, ok := HitTest(c.root, tx, ty); ok && hit == press {
			c.firePointer(EventClick, hit, hx, hy, tx, ty, button, mods)
		}
	}

	c.capture = nil
	c.press = nil
	if c.debug {
		c.logger.Debug("bramble: capture release", "node", target.ID)
	}
}

// Wheel routes scroll deltas to the capture target, or else to the node
// under the last known pointer position.
func (c *RunContext) Wheel(dx, dy float64) {
	if !c.running {
		return
	}
	c.dropDetached()
	tx, ty := c.toTree(c.pointerX, c.pointerY)
	target := c.capture
	var lx, ly float64
	if target != nil {
		lx, ly = tx-c.captureX, ty-c.captureY
	} else {
		var ok bool
		target, lx, ly, ok = HitTest(c.root, tx, ty)
		if !ok {
			return
		}
	}
	ev := WheelEvent{Node: target, DX: dx, DY: dy, X: lx, Y: ly, Modifiers: c.Modifiers()}
	if target.OnWheel != nil {
		target.OnWheel(ev)
	}
	c.emit(InteractionEvent{
		Type: EventWheel, NodeID: target.ID, X: lx, Y: ly,
		DeltaX: dx, DeltaY: dy, Modifiers: ev.Modifiers,
	})
}

// KeyDown routes a key press. Modifier keys only update the modifier state.
// Other keys go to the focus target with the current modifiers; with no
// focus target the key is dropped.
func (c *RunContext) KeyDown(key Key, code int) {
	c.routeKey(key, code, true)
}

// KeyUp routes a key release; see KeyDown.
func (c *RunContext) KeyUp(key Key, code int) {
	c.routeKey(key, code, false)
}

func (c *RunContext) routeKey(key Key, code int, down bool) {
	if !c.running {
		return
	}
	if key.IsModifier() {
		c.mods.set(key, down)
		return
	}
	c.dropDetached()
	mods := c.Modifiers()
	if c.TabNavigation && key == KeyTab {
		if down {
			c.FocusNext(mods.Has(ModShift))
		}
		return
	}
	target := c.focus
	if target == nil {
		return
	}
	ev := KeyEvent{Node: target, Key: key, Code: code, Modifiers: mods}
	typ := EventKeyDown
	if down {
		if target.OnKeyDown != nil {
			target.OnKeyDown(ev)
		}
	} else {
		typ = EventKeyUp
		if target.OnKeyUp != nil {
			target.OnKeyUp(ev)
		}
	}
	c.emit(InteractionEvent{Type: typ, NodeID: target.ID, Key: key, Modifiers: mods})
}

// TextInput routes committed text verbatim to the focus target.
func (c *RunContext) TextInput(s string) {
	if !c.running || s == "" {
		return
	}
	c.dropDetached()
	target := c.focus
	if target == nil {
		return
	}
	if target.OnText != nil {
		target.OnText(TextEvent{Node: target, Text: s})
	}
	c.emit(InteractionEvent{Type: EventText, NodeID: target.ID, Text: s, Modifiers: c.Modifiers()})
}

// --- Helpers ---

func (c *RunContext) toTree(x, y float64) (float64, float64) {
	return x / c.scale, y / c.scale
}

// dropDetached forgets targets that were removed from the tree by a handler
// since the last event.
func (c *RunContext) dropDetached() {
	if c.capture != nil && !c.attached(c.capture) {
		if c.debug {
			c.logger.Debug("bramble: dropping detached capture", "node", c.capture.ID)
		}
		c.capture = nil
		c.press = nil
	}
	if c.hover != nil && !c.attached(c.hover) {
		c.restoreCursor()
		c.hover = nil
	}
	if c.focus != nil && !c.attached(c.focus) {
		if c.debug {
			c.logger.Debug("bramble: dropping detached focus", "node", c.focus.ID)
		}
		c.SetFocus(nil)
	}
}

func (c *RunContext) firePointer(typ EventType, n *Node, lx, ly, tx, ty float64, button MouseButton, mods Modifiers) {
	ev := PointerEvent{Node: n, X: lx, Y: ly, TreeX: tx, TreeY: ty, Button: button, Modifiers: mods}
	var fn func(PointerEvent)
	switch typ {
	case EventPointerDown:
		fn = n.OnPointerDown
	case EventPointerUp:
		fn = n.OnPointerUp
	case EventPointerMove:
		fn = n.OnPointerMove
	case EventPointerEnter:
		fn = n.OnPointerEnter
	case EventPointerLeave:
		fn = n.OnPointerLeave
	case EventClick:
		fn = n.OnClick
	}
	if fn != nil {
		fn(ev)
	}
	c.emit(InteractionEvent{
		Type: typ, NodeID: n.ID, X: lx, Y: ly, TreeX: tx, TreeY: ty,
		Button: button, Modifiers: mods,
	})
}

func (c *RunContext) applyCursor(n *Node) {
	if c.cursor == nil || n.Cursor == CursorDefault {
		return
	}
	prev := c.cursor.SetCursor(n.Cursor)
	if !c.curSet {
		c.prevCur = prev
		c.curSet = true
	}
}

func (c *RunContext) restoreCursor() {
	if !c.curSet || c.cursor == nil {
		return
	}
	c.cursor.SetCursor(c.prevCur)
	c.curSet = false
}
