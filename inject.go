package bramble

// InputKind identifies the device event carried by an Event.
type InputKind uint8

const (
	InputPointerDown InputKind = iota
	InputPointerUp
	InputPointerMove
	InputWheel
	InputKeyDown
	InputKeyUp
	InputText
	InputResize
)

// Event is a queued host event. Only the fields relevant to Kind are read:
// X and Y for pointer events, Button for presses and releases, Key and Code
// for keys, Text for text input, DX and DY for the wheel, W and H for resize.
type Event struct {
	Kind   InputKind
	X, Y   float64
	Button MouseButton
	Key    Key
	Code   int
	Text   string
	DX, DY float64
	W, H   float64
}

// Post queues ev for dispatch on the next Update. Hosts that poll devices
// once per frame can post everything they saw and let Update route it in
// arrival order.
func (c *RunContext) Post(ev Event) {
	c.queue = append(c.queue, ev)
}

// Pending returns the number of queued events.
func (c *RunContext) Pending() int { return len(c.queue) }

// InjectClick queues a left-button press followed by a release at the given
// device coordinates.
func (c *RunContext) InjectClick(x, y float64) {
	c.Post(Event{Kind: InputPointerDown, X: x, Y: y, Button: MouseButtonLeft})
	c.Post(Event{Kind: InputPointerUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectDrag queues a full drag: a press at (fromX, fromY), steps linearly
// interpolated moves, then a move and a release at (toX, toY).
func (c *RunContext) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 0 {
		steps = 0
	}
	c.Post(Event{Kind: InputPointerDown, X: fromX, Y: fromY, Button: MouseButtonLeft})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.Post(Event{
			Kind: InputPointerMove,
			X:    fromX + (toX-fromX)*t,
			Y:    fromY + (toY-fromY)*t,
		})
	}
	c.Post(Event{Kind: InputPointerMove, X: toX, Y: toY})
	c.Post(Event{Kind: InputPointerUp, X: toX, Y: toY, Button: MouseButtonLeft})
}

// InjectKey queues a press and release of key.
func (c *RunContext) InjectKey(key Key) {
	c.Post(Event{Kind: InputKeyDown, Key: key})
	c.Post(Event{Kind: InputKeyUp, Key: key})
}

// InjectText queues committed text.
func (c *RunContext) InjectText(s string) {
	c.Post(Event{Kind: InputText, Text: s})
}

// drainQueue dispatches queued events in arrival order. Events posted by
// handlers during the drain are dispatched in the same pass. Draining stops
// early if a handler stops the context.
func (c *RunContext) drainQueue() {
	for i := 0; i < len(c.queue) && c.running; i++ {
		c.dispatch(c.queue[i])
	}
	c.queue = c.queue[:0]
}

func (c *RunContext) dispatch(ev Event) {
	switch ev.Kind {
	case InputPointerDown:
		c.PointerDown(ev.X, ev.Y, ev.Button)
	case InputPointerUp:
		c.PointerUp(ev.X, ev.Y, ev.Button)
	case InputPointerMove:
		c.PointerMove(ev.X, ev.Y)
	case InputWheel:
		c.Wheel(ev.DX, ev.DY)
	case InputKeyDown:
		c.KeyDown(ev.Key, ev.Code)
	case InputKeyUp:
		c.KeyUp(ev.Key, ev.Code)
	case InputText:
		c.TextInput(ev.Text)
	case InputResize:
		c.Resize(ev.W, ev.H)
	}
}
