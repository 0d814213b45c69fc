package bramble

import (
	"fmt"
	"reflect"
	"testing"
)

// recordCanvas is a Canvas that records every call as a string.
type recordCanvas struct {
	ops []string
}

func (c *recordCanvas) FillRect(r Rect, _ Color) {
	c.ops = append(c.ops, fmt.Sprintf("fill %v,%v %vx%v", r.X, r.Y, r.Width, r.Height))
}

func (c *recordCanvas) StrokeRect(r Rect, _ Color) {
	c.ops = append(c.ops, fmt.Sprintf("stroke %v,%v %vx%v", r.X, r.Y, r.Width, r.Height))
}

func (c *recordCanvas) Line(x0, y0, x1, y1 float64, _ Color) {
	c.ops = append(c.ops, fmt.Sprintf("line %v,%v-%v,%v", x0, y0, x1, y1))
}

func (c *recordCanvas) FillPolygon(pts []Vec2, _ Color) {
	c.ops = append(c.ops, fmt.Sprintf("poly %v", pts))
}

func (c *recordCanvas) Text(s string, x, y float64, _ Font, _ Color) {
	c.ops = append(c.ops, fmt.Sprintf("text %q %v,%v", s, x, y))
}

// stubFont measures every rune as 10x20.
type stubFont struct{}

func (stubFont) MeasureString(s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	return float64(len([]rune(s))) * 10, 20
}

func (stubFont) LineHeight() float64 { return 20 }

// paintLog records paint hook order into a shared log.
type paintLog struct {
	log *[]string
}

func (p paintLog) PaintBackground(n *Node, _ *Painter) { *p.log = append(*p.log, "bg:"+n.ID) }
func (p paintLog) PaintForeground(n *Node, _ *Painter) { *p.log = append(*p.log, "fg:"+n.ID) }

func TestPaintOrder(t *testing.T) {
	var log []string
	root := NewWidget("root", paintLog{&log})
	a := NewWidget("a", paintLog{&log})
	a1 := NewWidget("a1", paintLog{&log})
	b := NewWidget("b", paintLog{&log})
	_ = root.AddChild(a)
	_ = a.AddChild(a1)
	_ = root.AddChild(b)

	Paint(root, &recordCanvas{})
	want := []string{"bg:root", "bg:a", "bg:a1", "fg:a1", "fg:a", "bg:b", "fg:b", "fg:root"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("paint order = %v, want %v", log, want)
	}
}

func TestPaintSkipsHidden(t *testing.T) {
	var log []string
	root := NewWidget("root", paintLog{&log})
	hidden := NewWidget("hidden", paintLog{&log})
	child := NewWidget("child", paintLog{&log})
	hidden.Visible = false
	_ = root.AddChild(hidden)
	_ = hidden.AddChild(child)

	Paint(root, &recordCanvas{})
	want := []string{"bg:root", "fg:root"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("paint order = %v, want %v", log, want)
	}
}

// originProbe fills its local bounds and records the painter origin.
type originProbe struct {
	ox, oy float64
}

func (o *originProbe) PaintBackground(n *Node, p *Painter) {
	o.ox, o.oy = p.Origin()
	p.FillRect(0, 0, n.Width(), n.Height())
}

func TestPaintTranslatesAndRestores(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	probe := &originProbe{}
	leaf := NewWidget("leaf", probe)
	after := &originProbe{}
	sibling := NewWidget("sibling", after)
	_ = root.AddChild(mid)
	_ = mid.AddChild(leaf)
	_ = root.AddChild(sibling)
	root.SetRect(0, 0, 200, 200)
	mid.SetRect(10, 20, 100, 100)
	leaf.SetRect(5, 5, 10, 10)
	sibling.SetRect(50, 60, 10, 10)

	canvas := &recordCanvas{}
	Paint(root, canvas)
	if probe.ox != 15 || probe.oy != 25 {
		t.Errorf("leaf origin = (%v, %v), want (15, 25)", probe.ox, probe.oy)
	}
	if after.ox != 50 || after.oy != 60 {
		t.Errorf("sibling origin = (%v, %v), want (50, 60); frame not restored", after.ox, after.oy)
	}
	want := []string{"fill 15,25 10x10", "fill 50,60 10x10"}
	if !reflect.DeepEqual(canvas.ops, want) {
		t.Errorf("ops = %v, want %v", canvas.ops, want)
	}
}

func TestPaintHitInversion(t *testing.T) {
	var log []string
	root := NewNode("root")
	a := NewWidget("a", paintLog{&log})
	b := NewWidget("b", paintLog{&log})
	_ = root.AddChild(a)
	_ = root.AddChild(b)
	root.SetRect(0, 0, 100, 100)
	a.SetRect(0, 0, 50, 50)
	b.SetRect(0, 0, 50, 50)

	Paint(root, &recordCanvas{})
	last := log[len(log)-1]
	hit, _, _, _ := HitTest(root, 10, 10)
	if last != "fg:"+hit.ID {
		t.Errorf("last painted %q, but hit %q", last, hit.ID)
	}
}

func TestPainterPrimitives(t *testing.T) {
	canvas := &recordCanvas{}
	p := NewPainter(canvas)
	p.ox, p.oy = 10, 20

	p.Text("ignored", 0, 0) // no font yet
	p.SetFont(stubFont{})
	p.Text("", 0, 0) // empty text
	p.Text("hi", 1, 2)
	p.StrokeRect(0, 0, 5, 5)
	p.Line(0, 0, 3, 4)
	p.FillPolygon(Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1})

	want := []string{
		`text "hi" 11,22`,
		"stroke 10,20 5x5",
		"line 10,20-13,24",
		"poly [{10 20} {11 20} {10 21}]",
	}
	if !reflect.DeepEqual(canvas.ops, want) {
		t.Errorf("ops = %v, want %v", canvas.ops, want)
	}
	if p.Color() != ColorWhite {
		t.Errorf("default color = %v, want white", p.Color())
	}
}
