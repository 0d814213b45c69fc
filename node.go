package bramble

import (
	"errors"
	"iter"
)

// Structural errors returned by tree operations.
var (
	ErrNilNode    = errors.New("bramble: nil node")
	ErrHasParent  = errors.New("bramble: node already has a parent")
	ErrCycle      = errors.New("bramble: adding child would create a cycle")
	ErrIndexRange = errors.New("bramble: child index out of range")
)

// Unset marks a min/max size override dimension as not set.
const Unset = -1.0

// defaultViewportSize bounds parentless nodes until a RunContext assigns a
// real viewport. It is finite so downstream arithmetic stays finite.
const defaultViewportSize = 4096

// --- Event contexts ---

// PointerEvent carries pointer event data. X and Y are in the receiving
// node's local frame; TreeX and TreeY are root-relative.
type PointerEvent struct {
	Node         *Node
	X, Y         float64
	TreeX, TreeY float64
	Button       MouseButton
	Modifiers    Modifiers
}

// WheelEvent carries scroll wheel deltas.
type WheelEvent struct {
	Node      *Node
	DX, DY    float64
	X, Y      float64
	Modifiers Modifiers
}

// KeyEvent carries a non-modifier key press or release. Code is the host's
// raw key code, or 0 when the host has none.
type KeyEvent struct {
	Node      *Node
	Key       Key
	Code      int
	Modifiers Modifiers
}

// TextEvent carries committed text input.
type TextEvent struct {
	Node *Node
	Text string
}

// --- Capabilities ---

// MinSizer computes a node's content-driven minimum size.
type MinSizer interface {
	CalcMinSize(n *Node) (w, h float64)
}

// MaxSizer computes a node's maximum size.
type MaxSizer interface {
	CalcMaxSize(n *Node) (w, h float64)
}

// Layouter re-flows a node's children after its rectangle changed.
type Layouter interface {
	Layout(n *Node)
}

// BackgroundPainter paints beneath a node's children.
type BackgroundPainter interface {
	PaintBackground(n *Node, p *Painter)
}

// ForegroundPainter paints above a node's children.
type ForegroundPainter interface {
	PaintForeground(n *Node, p *Painter)
}

// Updater advances time-based state once per frame.
type Updater interface {
	Update(n *Node, dt float64)
}

// --- Node ---

// Node is one widget instance in the retained tree. A single struct is used
// for every widget; behavior that differs per widget kind lives in Widget,
// which may implement any of the capability interfaces above.
type Node struct {
	// Identity
	ID string

	// Hierarchy
	parent   *Node
	children []*Node

	// Geometry (parent-relative; sizes always clamped by the setters)
	x, y, w, h float64

	// Explicit size overrides; Unset dimensions defer to the widget.
	minW, minH float64
	maxW, maxH float64

	// viewport bounds MaxSize for a parentless node.
	viewportW, viewportH float64

	// Style
	Enabled  bool
	Visible  bool
	Expand   bool
	CanFocus bool
	Margin   Insets
	Padding  Insets
	Cursor   CursorShape
	HitShape HitShape

	hasFocus    bool
	layoutDirty bool

	// Widget holds the per-kind behavior.
	Widget   any
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerEvent)
	OnPointerUp    func(PointerEvent)
	OnPointerMove  func(PointerEvent)
	OnPointerEnter func(PointerEvent)
	OnPointerLeave func(PointerEvent)
	OnClick        func(PointerEvent)
	OnWheel        func(WheelEvent)
	OnKeyDown      func(KeyEvent)
	OnKeyUp        func(KeyEvent)
	OnText         func(TextEvent)
	OnFocusGained  func()
	OnFocusLost    func()
	OnUpdate       func(dt float64)
}

// NewNode creates an enabled, visible node with no widget behavior.
func NewNode(id string) *Node {
	return &Node{
		ID:        id,
		Enabled:   true,
		Visible:   true,
		minW:      Unset,
		minH:      Unset,
		maxW:      Unset,
		maxH:      Unset,
		viewportW: defaultViewportSize,
		viewportH: defaultViewportSize,
	}
}

// NewWidget creates a node whose behavior is provided by w.
func NewWidget(id string, w any) *Node {
	n := NewNode(id)
	n.Widget = w
	return n
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// HasFocus reports whether the node currently holds keyboard focus.
func (n *Node) HasFocus() bool { return n.hasFocus }

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// A child that already belongs to another node is rejected with
// ErrHasParent; detach it with RemoveFromParent first. Adding a child that
// already belongs to n moves it to the end.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	return n.AddChildAt(child, len(n.children)-n.ownIndexOffset(child))
}

// ownIndexOffset is 1 when child is already one of n's children, so that
// appending an existing child computes the index after its removal.
func (n *Node) ownIndexOffset(child *Node) int {
	if child.parent == n {
		return 1
	}
	return 0
}

// AddChildAt inserts child at the given index.
// Same ownership and cycle rules as AddChild. When child already belongs to
// n, index refers to the list after child has been taken out.
func (n *Node) AddChildAt(child *Node, index int) error {
	if child == nil {
		return ErrNilNode
	}
	if child.parent != nil && child.parent != n {
		return ErrHasParent
	}
	if isAncestor(child, n) {
		return ErrCycle
	}
	size := len(n.children) - n.ownIndexOffset(child)
	if index < 0 || index > size {
		return ErrIndexRange
	}
	if child.parent == n {
		n.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.markLayoutDirty()
	return nil
}

// RemoveChild detaches child from this node. The second result is false
// when child is not one of n's children.
func (n *Node) RemoveChild(child *Node) (*Node, bool) {
	if child == nil || child.parent != n {
		return nil, false
	}
	if !n.removeChildByPtr(child) {
		return nil, false
	}
	child.parent = nil
	n.markLayoutDirty()
	return child, true
}

// RemoveChildAt removes and returns the child at the given index. The
// second result is false when index is out of bounds.
func (n *Node) RemoveChildAt(index int) (*Node, bool) {
	if index < 0 || index >= len(n.children) {
		return nil, false
	}
	return n.RemoveChild(n.children[index])
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.markLayoutDirty()
}

// Children returns a sequence over the current children in insertion order,
// or in reverse when reversed is true. Each iteration walks a snapshot taken
// when it starts, so handlers may detach nodes while it runs.
func (n *Node) Children(reversed bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		snap := n.snapshot()
		if reversed {
			for i := len(snap) - 1; i >= 0; i-- {
				if !yield(snap[i]) {
					return
				}
			}
			return
		}
		for _, c := range snap {
			if !yield(c) {
				return
			}
		}
	}
}

// snapshot copies the child list.
func (n *Node) snapshot() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	snap := make([]*Node, len(n.children))
	copy(snap, n.children)
	return snap
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index, or nil when out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// IndexOf returns child's index among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// FindByID searches the subtree rooted at n. Descendants are checked before
// the node itself, and earlier siblings before later ones, so the deepest
// first match wins.
func (n *Node) FindByID(id string) (*Node, bool) {
	for _, c := range n.children {
		if found, ok := c.FindByID(id); ok {
			return found, true
		}
	}
	if n.ID == id {
		return n, true
	}
	return nil, false
}

// Root returns the topmost ancestor of n (n itself when detached).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AbsolutePosition sums positions up the parent chain.
func (n *Node) AbsolutePosition() (x, y float64) {
	for p := n; p != nil; p = p.parent {
		x += p.x
		y += p.y
	}
	return x, y
}

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}
