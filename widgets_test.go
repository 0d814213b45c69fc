package bramble

import (
	"strings"
	"testing"
)

func TestLabelMinSizeAndPaint(t *testing.T) {
	n := NewLabel("l", "abc")
	l := n.Widget.(*Label)
	l.Font = stubFont{}
	n.Padding = Insets{Left: 2, Top: 1, Right: 2, Bottom: 1}
	if w, h := n.MinSize(); w != 34 || h != 22 {
		t.Errorf("MinSize = (%v, %v), want (34, 22)", w, h)
	}

	n.SetRect(5, 5, 40, 30)
	canvas := &recordCanvas{}
	Paint(n, canvas)
	if len(canvas.ops) != 1 || canvas.ops[0] != `text "abc" 7,6` {
		t.Errorf("ops = %v", canvas.ops)
	}

	n.SetRect(0, 0, 34, 22)
	layoutDirtyTree(n)
	l.SetText(n, "abcdef")
	if !n.NeedsLayout() {
		t.Error("SetText should schedule relayout")
	}
}

func TestButtonActivation(t *testing.T) {
	c, root, _, _ := inputTree(t)
	var activations int
	btn := NewButton("btn", "Go", func() { activations++ })
	_ = root.AddChild(btn)
	btn.SetRect(10, 10, 50, 20)
	root.RemoveChild(root.ChildAt(0))
	root.RemoveChild(root.ChildAt(0))

	c.PointerMove(20, 20)
	b := btn.Widget.(*Button)
	if !b.Hovered() {
		t.Error("button should be hovered")
	}
	c.PointerDown(20, 20, MouseButtonLeft)
	if !b.Pressed() || !btn.HasFocus() {
		t.Error("button should be pressed and focused")
	}
	c.PointerUp(20, 20, MouseButtonLeft)
	if b.Pressed() || activations != 1 {
		t.Errorf("after click: pressed %v, activations %d", b.Pressed(), activations)
	}

	c.KeyDown(KeyEnter, 0)
	c.KeyDown(KeySpace, 0)
	c.KeyDown(KeyA, 0)
	if activations != 3 {
		t.Errorf("activations = %d, want 3", activations)
	}

	// Release outside: no activation.
	c.PointerDown(20, 20, MouseButtonLeft)
	c.PointerUp(150, 90, MouseButtonLeft)
	if activations != 3 || b.Pressed() {
		t.Errorf("release outside: activations %d, pressed %v", activations, b.Pressed())
	}
	c.PointerMove(150, 90)
	if b.Hovered() {
		t.Error("button should not be hovered after the pointer leaves")
	}
}

func TestButtonPaintsFocusBorder(t *testing.T) {
	c, root, _, _ := inputTree(t)
	btn := NewButton("btn", "Go", nil)
	btn.Widget.(*Button).Font = stubFont{}
	_ = root.AddChild(btn)
	btn.SetRect(0, 0, 40, 30)
	c.SetFocus(btn)

	canvas := &recordCanvas{}
	Paint(btn, canvas)
	want := []string{"fill 0,0 40x30", "stroke 0,0 40x30", `text "Go" 10,5`}
	if strings.Join(canvas.ops, "|") != strings.Join(want, "|") {
		t.Errorf("ops = %v, want %v", canvas.ops, want)
	}
	btn.Widget.(*Button).activate() // nil OnActivate is fine
}

func TestTextEntryEditing(t *testing.T) {
	n := NewTextEntry("e", 10)
	e := n.Widget.(*TextEntry)
	var changes int
	e.OnChange = func(string) { changes++ }

	steps := []struct {
		name  string
		do    func()
		text  string
		caret int
	}{
		{"insert", func() { n.OnText(TextEvent{Text: "héllo"}) }, "héllo", 5},
		{"left", func() { n.OnKeyDown(KeyEvent{Key: KeyLeft}) }, "héllo", 4},
		{"backspace", func() { n.OnKeyDown(KeyEvent{Key: KeyBackspace}) }, "hélo", 3},
		{"home", func() { n.OnKeyDown(KeyEvent{Key: KeyHome}) }, "hélo", 0},
		{"backspace at start", func() { n.OnKeyDown(KeyEvent{Key: KeyBackspace}) }, "hélo", 0},
		{"delete", func() { n.OnKeyDown(KeyEvent{Key: KeyDelete}) }, "élo", 0},
		{"insert mid", func() { n.OnText(TextEvent{Text: "X"}) }, "Xélo", 1},
		{"control chars dropped", func() { n.OnText(TextEvent{Text: "\t\n"}) }, "Xélo", 1},
		{"end", func() { n.OnKeyDown(KeyEvent{Key: KeyEnd}) }, "Xélo", 4},
		{"delete at end", func() { n.OnKeyDown(KeyEvent{Key: KeyDelete}) }, "Xélo", 4},
		{"right at end", func() { n.OnKeyDown(KeyEvent{Key: KeyRight}) }, "Xélo", 4},
	}
	for _, st := range steps {
		st.do()
		if e.Text() != st.text || e.Caret() != st.caret {
			t.Errorf("%s: text %q caret %d, want %q caret %d", st.name, e.Text(), e.Caret(), st.text, st.caret)
		}
	}
	if changes != 4 {
		t.Errorf("changes = %d, want 4", changes)
	}

	e.SetText("reset")
	if e.Text() != "reset" || e.Caret() != 5 {
		t.Errorf("SetText: %q caret %d", e.Text(), e.Caret())
	}
}

func TestTextEntryThroughContext(t *testing.T) {
	c, root, _, _ := inputTree(t)
	entry := NewTextEntry("name", 8)
	_ = root.AddChild(entry)
	entry.SetRect(0, 0, 80, 20)

	c.PointerDown(5, 5, MouseButtonLeft)
	c.PointerUp(5, 5, MouseButtonLeft)
	c.TextInput("Ada")
	c.KeyDown(KeyBackspace, 0)
	if got := entry.Widget.(*TextEntry).Text(); got != "Ad" {
		t.Errorf("text = %q, want %q", got, "Ad")
	}
}

func TestTextEntryMinSizeAndCaret(t *testing.T) {
	n := NewTextEntry("e", 4)
	e := n.Widget.(*TextEntry)
	e.Font = stubFont{}
	if w, h := n.MinSize(); w != 46 || h != 26 {
		t.Errorf("MinSize = (%v, %v), want (46, 26)", w, h)
	}
	e.SetText("ab")
	n.SetRect(0, 0, 46, 26)

	canvas := &recordCanvas{}
	Paint(n, canvas)
	for _, op := range canvas.ops {
		if strings.HasPrefix(op, "line") {
			t.Error("caret should not paint without focus")
		}
	}

	n.hasFocus = true
	canvas = &recordCanvas{}
	Paint(n, canvas)
	last := canvas.ops[len(canvas.ops)-1]
	if last != "line 23,3-23,23" {
		t.Errorf("caret op = %q, want %q", last, "line 23,3-23,23")
	}
}

func TestPanelFillsContent(t *testing.T) {
	p := NewPanel("p")
	p.Padding = UniformInsets(5)
	child := fixedNode("child", 20, 10)
	child.Margin = Insets{Left: 1, Top: 2}
	_ = p.AddChild(child)

	if w, h := p.MinSize(); w != 31 || h != 22 {
		t.Errorf("MinSize = (%v, %v), want (31, 22)", w, h)
	}
	p.SetRect(0, 0, 100, 60)
	if r := child.Rect(); r != (Rect{6, 7, 89, 48}) {
		t.Errorf("child rect = %v, want {6 7 89 48}", r)
	}

	canvas := &recordCanvas{}
	Paint(p, canvas)
	if len(canvas.ops) != 2 || canvas.ops[0] != "fill 0,0 100x60" || canvas.ops[1] != "stroke 0,0 100x60" {
		t.Errorf("ops = %v", canvas.ops)
	}
}
