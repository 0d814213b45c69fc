package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 properties of a Node together. Create
// one with TweenPosition or TweenSize and either call Update(dt) yourself or
// hand it to RunContext.Animate. Values are written through the node's
// setters, so size clamping and relayout apply to every step.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(a, b float64)
	target *Node
	Done   bool
}

// Update advances the group by dt seconds and applies the new values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	a, doneA := g.tweens[0].Update(dt)
	b, doneB := g.tweens[1].Update(dt)
	g.apply(float64(a), float64(b))
	g.Done = doneA && doneB
}

// Cancel stops the group where it is.
func (g *TweenGroup) Cancel() { g.Done = true }

// Target returns the animated node.
func (g *TweenGroup) Target() *Node { return g.target }

// TweenPosition creates a TweenGroup that moves node to (toX, toY) in its
// parent's frame over duration seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.tweens[0] = gween.New(float32(node.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.y), float32(toY), duration, fn)
	g.apply = func(x, y float64) { node.SetPosition(x, y) }
	return g
}

// TweenSize creates a TweenGroup that resizes node to (toW, toH) over
// duration seconds. The node's min/max range still applies.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.tweens[0] = gween.New(float32(node.w), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(node.h), float32(toH), duration, fn)
	g.apply = func(w, h float64) { node.SetSize(w, h) }
	return g
}

// Animate registers g to be advanced by Update until it is done.
func (c *RunContext) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	c.tweens = append(c.tweens, g)
}

func (c *RunContext) updateTweens(dt float64) {
	live := c.tweens[:0]
	for _, g := range c.tweens {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(c.tweens[len(live):])
	c.tweens = live
}
