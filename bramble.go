package bramble

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite and ColorBlack are the default foreground and clear colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vec2 is a 2D vector used for points and polygon vertices.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The rectangle is half-open: the left and top edges are inside, the right
// and bottom edges are not, so adjacent rectangles never share a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Insets is a four-sided inset used for margins and padding.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) Insets {
	return Insets{v, v, v, v}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Orientation selects the main axis of a Box.
type Orientation uint8

const (
	Horizontal Orientation = iota // children are packed left to right
	Vertical                      // children are packed top to bottom
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of routed interaction.
type EventType uint8

const (
	EventPointerDown  EventType = iota // pointer button pressed
	EventPointerUp                     // pointer button released
	EventPointerMove                   // pointer moved
	EventPointerEnter                  // pointer entered a node
	EventPointerLeave                  // pointer left a node
	EventClick                         // press then release over the same node
	EventWheel                         // wheel scrolled
	EventKeyDown                       // non-modifier key pressed
	EventKeyUp                         // non-modifier key released
	EventText                          // text input
	EventFocusGained                   // node received keyboard focus
	EventFocusLost                     // node lost keyboard focus
)

var eventTypeNames = [...]string{
	"pointer-down", "pointer-up", "pointer-move", "pointer-enter", "pointer-leave",
	"click", "wheel", "key-down", "key-up", "text", "focus-gained", "focus-lost",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// CursorShape is a mouse cursor icon a node may request while hovered.
type CursorShape uint8

const (
	CursorDefault   CursorShape = iota // host default arrow
	CursorText                         // I-beam
	CursorPointer                      // pointing hand
	CursorCrosshair                    // crosshair
	CursorEWResize                     // horizontal resize
	CursorNSResize                     // vertical resize
)

// CursorHinter lets widgets change the mouse cursor. SetCursor applies shape
// and returns the shape that was active before the call.
type CursorHinter interface {
	SetCursor(shape CursorShape) CursorShape
}

// HitShape is a custom hit region in a node's local coordinates. It refines
// whether the node itself is hit; it never extends the node's bounds.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle, with the same
// half-open edges as Rect.
func (r HitRect) Contains(x, y float64) bool {
	return Rect(r).Contains(x, y)
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
