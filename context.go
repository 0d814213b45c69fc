package bramble

import (
	"errors"
	"log/slog"
	"time"
)

// ErrNotRunning is returned when an operation needs a started RunContext.
var ErrNotRunning = errors.New("bramble: run context not started")

// RunContext is the dispatch state for one running tree: the root being
// driven, the capture, hover and focus targets, modifier key state and the
// viewport scale. Several contexts can run side by side; none of them is
// safe for concurrent use, and all calls belong on the host loop's thread.
type RunContext struct {
	root    *Node
	running bool

	// Targets
	capture            *Node
	captureX, captureY float64 // capture target's absolute position at press time
	hover              *Node
	focus              *Node
	press              *Node       // node that received the current press, for clicks
	button             MouseButton // button held for the current capture

	mods     modifierKeys
	scale    float64
	pointerX float64 // last device pointer position
	pointerY float64
	viewW    float64 // viewport in device pixels
	viewH    float64

	// TabNavigation makes Tab and Shift+Tab move focus instead of reaching
	// the focus target.
	TabNavigation bool

	queue   []Event
	tweens  []*TweenGroup
	script  *ScriptRunner
	sink    EventSink
	cursor  CursorHinter
	prevCur CursorShape
	curSet  bool

	logger *slog.Logger
	debug  bool
}

// NewRunContext creates an idle context with a scale of 1.
func NewRunContext() *RunContext {
	return &RunContext{scale: 1, logger: slog.Default()}
}

// Start attaches root and sizes it to the viewport (in device pixels).
// A previously running root is stopped first.
func (c *RunContext) Start(root *Node, viewportW, viewportH float64) error {
	if root == nil {
		return ErrNilNode
	}
	if c.running {
		c.Stop()
	}
	c.root = root
	c.running = true
	if c.debug {
		c.debugCheckTree(root)
	}
	c.Resize(viewportW, viewportH)
	layoutDirtyTree(root)
	return nil
}

// Stop clears every target and detaches the root. The tree is left intact.
func (c *RunContext) Stop() {
	c.restoreCursor()
	if c.focus != nil {
		c.focus.hasFocus = false
	}
	c.capture, c.hover, c.focus, c.press = nil, nil, nil, nil
	c.mods = 0
	c.queue = c.queue[:0]
	c.tweens = c.tweens[:0]
	c.root = nil
	c.running = false
}

// Running reports whether a root is attached.
func (c *RunContext) Running() bool { return c.running }

// Root returns the node being driven, or nil.
func (c *RunContext) Root() *Node { return c.root }

// Capture returns the node receiving pointer events exclusively, or nil.
func (c *RunContext) Capture() *Node { return c.capture }

// Hover returns the node last reported under the pointer, or nil.
func (c *RunContext) Hover() *Node { return c.hover }

// Focus returns the node holding keyboard focus, or nil.
func (c *RunContext) Focus() *Node { return c.focus }

// Modifiers returns the current composite modifier state.
func (c *RunContext) Modifiers() Modifiers { return c.mods.composite() }

// Scale returns the device-to-tree scale factor.
func (c *RunContext) Scale() float64 { return c.scale }

// SetScale changes the device-to-tree scale factor and re-fits the root to
// the current viewport. Non-positive values are ignored.
func (c *RunContext) SetScale(s float64) {
	if s <= 0 {
		return
	}
	c.scale = s
	if c.running {
		c.Resize(c.viewW, c.viewH)
	}
}

// SetEventSink sets the optional interaction observer.
func (c *RunContext) SetEventSink(sink EventSink) { c.sink = sink }

// SetCursorHinter sets the optional cursor capability.
func (c *RunContext) SetCursorHinter(h CursorHinter) { c.cursor = h }

// SetLogger replaces the debug logger. A nil logger restores slog.Default.
func (c *RunContext) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	c.logger = l
}

// SetDebugMode enables or disables debug logging of dispatch transitions,
// tree shape warnings and per-frame timings.
func (c *RunContext) SetDebugMode(enabled bool) { c.debug = enabled }

// Resize fits the root to a new viewport given in device pixels.
func (c *RunContext) Resize(w, h float64) {
	c.viewW, c.viewH = w, h
	if !c.running {
		return
	}
	tw, th := w/c.scale, h/c.scale
	c.root.setViewport(tw, th)
	c.root.SetRect(0, 0, tw, th)
}

// Update runs one frame's non-paint work: pending events are dispatched in
// arrival order, layout is refreshed for changed subtrees, then update hooks
// and tweens advance by dt seconds.
func (c *RunContext) Update(dt float64) error {
	if !c.running {
		return ErrNotRunning
	}
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	if c.script != nil {
		if err := c.script.Step(c); err != nil {
			c.logger.Warn("bramble: input script", "err", err)
		}
	}
	c.drainQueue()
	if c.running {
		layoutDirtyTree(c.root)
		updateTree(c.root, dt)
		c.updateTweens(dt)
	}

	if c.debug {
		c.logger.Debug("bramble: update", "dt", dt, "elapsed", time.Since(t0))
	}
	return nil
}

// Draw paints the tree once. Canvas coordinates are in tree units; backends
// apply Scale themselves.
func (c *RunContext) Draw(canvas Canvas) error {
	if !c.running {
		return ErrNotRunning
	}
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}
	Paint(c.root, canvas)
	if c.debug {
		c.logger.Debug("bramble: draw", "elapsed", time.Since(t0))
	}
	return nil
}

// attached reports whether n is still part of the running tree.
func (c *RunContext) attached(n *Node) bool {
	return n != nil && c.root != nil && n.Root() == c.root
}
