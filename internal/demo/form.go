// Package demo builds the sample form shared by the brambledemo hosts.
package demo

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/bramble"
)

// maxGreetings is how many greetings fill the progress bar.
const maxGreetings = 5

// Options adapts the form to a host's units.
type Options struct {
	// Font measures and draws every widget. Nil uses bramble.DefaultFont.
	Font bramble.Font
	// PadX and PadY pad buttons and text entries.
	PadX, PadY float64
	// Spacing separates rows and the widgets inside them.
	Spacing float64
	// BarHeight is the height of the progress bar.
	BarHeight float64
}

// WindowOptions suits a pixel-based host.
func WindowOptions() Options {
	return Options{PadX: 8, PadY: 4, Spacing: 6, BarHeight: 6}
}

// CellOptions suits a host whose cells are cw by ch units and whose text is
// measured with font.
func CellOptions(font bramble.Font, cw, ch float64) Options {
	return Options{Font: font, PadX: cw, PadY: ch, BarHeight: ch}
}

// Form is a name prompt with greet and clear buttons, a status line and a
// progress bar that grows with each greeting.
type Form struct {
	Root *bramble.Node

	nameNode   *bramble.Node
	name       *bramble.TextEntry
	statusNode *bramble.Node
	status     *bramble.Label
	track      *bramble.Node
	bar        *bramble.Node
	barH       float64

	ctx       *bramble.RunContext
	pulse     *bramble.TweenGroup
	greetings int
}

// Build creates the form tree.
func Build(opts Options) *Form {
	f := &Form{barH: opts.BarHeight}

	f.Root = bramble.NewPanel("root")
	f.Root.Padding = bramble.UniformInsets(opts.Spacing)
	col := bramble.NewVBox("form", opts.Spacing)
	mustAdd(f.Root, col)

	title := bramble.NewLabel("title", "bramble demo")
	setFont(title, opts.Font)
	mustAdd(col, title)

	row := bramble.NewHBox("name-row", opts.Spacing)
	prompt := bramble.NewLabel("name-label", "Name:")
	setFont(prompt, opts.Font)
	f.nameNode = bramble.NewTextEntry("name", 16)
	f.nameNode.Padding = bramble.Insets{Left: opts.PadX, Top: opts.PadY, Right: opts.PadX, Bottom: opts.PadY}
	f.nameNode.Expand = true
	f.name = f.nameNode.Widget.(*bramble.TextEntry)
	f.name.Font = opts.Font
	edit := f.nameNode.OnKeyDown
	f.nameNode.OnKeyDown = func(ev bramble.KeyEvent) {
		if ev.Key == bramble.KeyEnter {
			f.Greet()
			return
		}
		edit(ev)
	}
	mustAdd(row, prompt, f.nameNode)
	mustAdd(col, row)

	actions := bramble.NewHBox("actions", opts.Spacing)
	greet := bramble.NewButton("greet", "Greet", f.Greet)
	clearBtn := bramble.NewButton("clear", "Clear", f.Clear)
	for _, b := range []*bramble.Node{greet, clearBtn} {
		b.Padding = f.nameNode.Padding
		b.Widget.(*bramble.Button).Font = opts.Font
	}
	spacer := bramble.NewNode("spacer")
	spacer.Expand = true
	mustAdd(actions, greet, clearBtn, spacer)
	mustAdd(col, actions)

	f.statusNode = bramble.NewLabel("status", promptText)
	f.status = f.statusNode.Widget.(*bramble.Label)
	f.status.Font = opts.Font
	f.status.Color = bramble.Color{R: 0.75, G: 0.8, B: 0.85, A: 1}
	mustAdd(col, f.statusNode)

	f.track = bramble.NewWidget("progress", &fill{color: bramble.Color{R: 0.12, G: 0.13, B: 0.15, A: 1}})
	f.track.SetMinSize(0, opts.BarHeight)
	f.bar = bramble.NewWidget("progress-bar", &fill{color: bramble.Color{R: 0.36, G: 0.6, B: 0.95, A: 1}})
	f.bar.SetMinSize(0, 0)
	mustAdd(f.track, f.bar)
	mustAdd(col, f.track)

	return f
}

const promptText = "Type a name and press Greet."

// Attach binds the form to the context that drives it and focuses the name
// entry. Without a context, bar changes apply immediately.
func (f *Form) Attach(ctx *bramble.RunContext) {
	f.ctx = ctx
	ctx.SetFocus(f.nameNode)
}

// Name returns the entered name.
func (f *Form) Name() string { return f.name.Text() }

// Status returns the status line.
func (f *Form) Status() string { return f.status.Text }

// Greetings returns how many greetings have been made since the last clear.
func (f *Form) Greetings() int { return f.greetings }

// Bar returns the progress bar node.
func (f *Form) Bar() *bramble.Node { return f.bar }

// Greet greets the entered name and advances the progress bar.
func (f *Form) Greet() {
	name := strings.TrimSpace(f.name.Text())
	if name == "" {
		f.status.SetText(f.statusNode, "Type a name first.")
		return
	}
	f.greetings = min(f.greetings+1, maxGreetings)
	f.status.SetText(f.statusNode, fmt.Sprintf("Hello, %s!", name))
	f.growBar()
}

// Clear empties the name, resets the bar and returns focus to the entry.
func (f *Form) Clear() {
	f.name.SetText("")
	f.greetings = 0
	f.status.SetText(f.statusNode, promptText)
	f.growBar()
	if f.ctx != nil {
		f.ctx.SetFocus(f.nameNode)
	}
}

func (f *Form) growBar() {
	w := f.track.Width() * float64(f.greetings) / maxGreetings
	if f.pulse != nil {
		f.pulse.Cancel()
		f.pulse = nil
	}
	if f.ctx == nil {
		f.bar.SetSize(w, f.barH)
		return
	}
	f.pulse = bramble.TweenSize(f.bar, w, f.barH, 0.4, ease.OutCubic)
	f.ctx.Animate(f.pulse)
}

// fill paints its node with a flat color.
type fill struct {
	color bramble.Color
}

func (fl *fill) PaintBackground(n *bramble.Node, p *bramble.Painter) {
	p.SetColor(fl.color)
	p.FillRect(0, 0, n.Width(), n.Height())
}

func setFont(n *bramble.Node, font bramble.Font) {
	n.Widget.(*bramble.Label).Font = font
}

// mustAdd appends children to a parent built in this file; the tree shape
// is fixed, so a failure is a programming error.
func mustAdd(parent *bramble.Node, children ...*bramble.Node) {
	for _, c := range children {
		if err := parent.AddChild(c); err != nil {
			panic(fmt.Sprintf("demo: add %s to %s: %v", c.ID, parent.ID, err))
		}
	}
}
