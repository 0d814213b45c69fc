package bramble

import (
	"math"
	"unicode/utf8"
)

// Default widget colors.
var (
	colorFace    = Color{0.22, 0.24, 0.28, 1}
	colorHover   = Color{0.30, 0.33, 0.38, 1}
	colorPressed = Color{0.16, 0.17, 0.20, 1}
	colorFocus   = Color{0.36, 0.60, 0.95, 1}
	colorField   = Color{0.10, 0.11, 0.13, 1}
	colorBorder  = Color{0.40, 0.42, 0.46, 1}
)

// textFont returns f, or the default font when f is nil.
func textFont(f Font) Font {
	if f == nil {
		return DefaultFont()
	}
	return f
}

// --- Label ---

// Label displays a string. Its minimum size is the measured text plus the
// node's padding.
type Label struct {
	Text  string
	Font  Font
	Color Color
}

// NewLabel creates a label node.
func NewLabel(id, text string) *Node {
	return NewWidget(id, &Label{Text: text, Color: ColorWhite})
}

// SetText changes the label text and schedules relayout of n.
func (l *Label) SetText(n *Node, text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	n.markLayoutDirty()
}

func (l *Label) CalcMinSize(n *Node) (w, h float64) {
	tw, th := textFont(l.Font).MeasureString(l.Text)
	return math.Max(1, tw+n.Padding.Horizontal()), math.Max(1, th+n.Padding.Vertical())
}

func (l *Label) PaintForeground(n *Node, p *Painter) {
	p.SetFont(textFont(l.Font))
	p.SetColor(l.Color)
	p.Text(l.Text, n.Padding.Left, n.Padding.Top)
}

// --- Button ---

// Button is a focusable push button. It activates on a click, or on Enter
// or Space while focused.
type Button struct {
	Label
	OnActivate func()

	hovered bool
	pressed bool
}

// NewButton creates a focusable button node. Handlers on the returned node
// drive the button's state; replace them only to extend it.
func NewButton(id, text string, onActivate func()) *Node {
	b := &Button{Label: Label{Text: text, Color: ColorWhite}, OnActivate: onActivate}
	n := NewWidget(id, b)
	n.CanFocus = true
	n.Cursor = CursorPointer
	n.Padding = Insets{8, 4, 8, 4}
	n.OnPointerEnter = func(PointerEvent) { b.hovered = true }
	n.OnPointerLeave = func(PointerEvent) { b.hovered = false }
	n.OnPointerDown = func(PointerEvent) { b.pressed = true }
	n.OnPointerUp = func(PointerEvent) { b.pressed = false }
	n.OnClick = func(PointerEvent) { b.activate() }
	n.OnKeyDown = func(ev KeyEvent) {
		if ev.Key == KeyEnter || ev.Key == KeySpace {
			b.activate()
		}
	}
	return n
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) activate() {
	if b.OnActivate != nil {
		b.OnActivate()
	}
}

func (b *Button) PaintBackground(n *Node, p *Painter) {
	switch {
	case b.pressed:
		p.SetColor(colorPressed)
	case b.hovered:
		p.SetColor(colorHover)
	default:
		p.SetColor(colorFace)
	}
	p.FillRect(0, 0, n.w, n.h)
	if n.hasFocus {
		p.SetColor(colorFocus)
	} else {
		p.SetColor(colorBorder)
	}
	p.StrokeRect(0, 0, n.w, n.h)
}

func (b *Button) PaintForeground(n *Node, p *Painter) {
	f := textFont(b.Font)
	tw, th := f.MeasureString(b.Text)
	p.SetFont(f)
	p.SetColor(b.Color)
	p.Text(b.Text, math.Floor((n.w-tw)/2), math.Floor((n.h-th)/2))
}

// --- TextEntry ---

// TextEntry is a single-line editable text field. Committed text is
// inserted at the caret; Backspace, Delete, Left, Right, Home and End edit
// and move it.
type TextEntry struct {
	Font    Font
	Color   Color
	Columns int // minimum visible width in characters
	// OnChange, when set, is called after every edit with the new text.
	OnChange func(text string)

	text  []rune
	caret int
}

// NewTextEntry creates a focusable text entry node.
func NewTextEntry(id string, columns int) *Node {
	e := &TextEntry{Color: ColorWhite, Columns: columns}
	n := NewWidget(id, e)
	n.CanFocus = true
	n.Cursor = CursorText
	n.Padding = UniformInsets(3)
	n.OnText = func(ev TextEvent) { e.Insert(ev.Text) }
	n.OnKeyDown = func(ev KeyEvent) { e.handleKey(ev.Key) }
	return n
}

// Text returns the current contents.
func (e *TextEntry) Text() string { return string(e.text) }

// Caret returns the caret position in runes.
func (e *TextEntry) Caret() int { return e.caret }

// SetText replaces the contents and moves the caret to the end.
func (e *TextEntry) SetText(s string) {
	e.text = []rune(s)
	e.caret = len(e.text)
	e.changed()
}

// Insert inserts s at the caret. Control characters are dropped.
func (e *TextEntry) Insert(s string) {
	ins := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if r >= 0x20 && r != 0x7f {
			ins = append(ins, r)
		}
	}
	if len(ins) == 0 {
		return
	}
	e.text = append(e.text[:e.caret], append(ins, e.text[e.caret:]...)...)
	e.caret += len(ins)
	e.changed()
}

func (e *TextEntry) handleKey(k Key) {
	switch k {
	case KeyBackspace:
		if e.caret > 0 {
			e.text = append(e.text[:e.caret-1], e.text[e.caret:]...)
			e.caret--
			e.changed()
		}
	case KeyDelete:
		if e.caret < len(e.text) {
			e.text = append(e.text[:e.caret], e.text[e.caret+1:]...)
			e.changed()
		}
	case KeyLeft:
		e.caret = max(0, e.caret-1)
	case KeyRight:
		e.caret = min(len(e.text), e.caret+1)
	case KeyHome:
		e.caret = 0
	case KeyEnd:
		e.caret = len(e.text)
	}
}

func (e *TextEntry) changed() {
	if e.OnChange != nil {
		e.OnChange(string(e.text))
	}
}

func (e *TextEntry) CalcMinSize(n *Node) (w, h float64) {
	f := textFont(e.Font)
	cw, _ := f.MeasureString("0")
	cols := max(e.Columns, 1)
	return cw*float64(cols) + n.Padding.Horizontal(), f.LineHeight() + n.Padding.Vertical()
}

func (e *TextEntry) PaintBackground(n *Node, p *Painter) {
	p.SetColor(colorField)
	p.FillRect(0, 0, n.w, n.h)
	if n.hasFocus {
		p.SetColor(colorFocus)
	} else {
		p.SetColor(colorBorder)
	}
	p.StrokeRect(0, 0, n.w, n.h)
}

func (e *TextEntry) PaintForeground(n *Node, p *Painter) {
	f := textFont(e.Font)
	p.SetFont(f)
	p.SetColor(e.Color)
	p.Text(string(e.text), n.Padding.Left, n.Padding.Top)
	if !n.hasFocus {
		return
	}
	cx, _ := f.MeasureString(string(e.text[:e.caret]))
	x := n.Padding.Left + cx
	p.Line(x, n.Padding.Top, x, n.Padding.Top+f.LineHeight())
}

// --- Panel ---

// Panel is a framed container. Each visible child fills the panel's
// content rectangle (its rectangle minus padding and the child's margin),
// so a Panel usually holds a single Box.
type Panel struct {
	Background Color
	Border     Color
}

// NewPanel creates a panel node with the default colors.
func NewPanel(id string) *Node {
	return NewWidget(id, &Panel{Background: colorFace, Border: colorBorder})
}

func (pl *Panel) CalcMinSize(n *Node) (w, h float64) {
	for _, c := range n.children {
		if !c.Visible {
			continue
		}
		cw, ch := c.MinSize()
		w = math.Max(w, cw+c.Margin.Horizontal())
		h = math.Max(h, ch+c.Margin.Vertical())
	}
	return math.Max(1, w+n.Padding.Horizontal()), math.Max(1, h+n.Padding.Vertical())
}

func (pl *Panel) Layout(n *Node) {
	for _, c := range n.snapshot() {
		if !c.Visible {
			continue
		}
		c.SetRect(
			n.Padding.Left+c.Margin.Left,
			n.Padding.Top+c.Margin.Top,
			n.w-n.Padding.Horizontal()-c.Margin.Horizontal(),
			n.h-n.Padding.Vertical()-c.Margin.Vertical(),
		)
	}
}

func (pl *Panel) PaintBackground(n *Node, p *Painter) {
	if pl.Background.A != 0 {
		p.SetColor(pl.Background)
		p.FillRect(0, 0, n.w, n.h)
	}
	if pl.Border.A != 0 {
		p.SetColor(pl.Border)
		p.StrokeRect(0, 0, n.w, n.h)
	}
}
