package teahost

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/bramble"
)

// RunConfig configures a terminal session created by Run or NewModel.
type RunConfig struct {
	// CellWidth and CellHeight are the tree units covered by one terminal
	// cell. Zero means 8 by 16, matching DefaultCellFont.
	CellWidth  float64
	CellHeight float64
	// TPS sets update ticks per second. Zero means 30.
	TPS int
	// Background fills the grid before each draw. A zero alpha keeps the
	// terminal's background.
	Background bramble.Color
	// TabNavigation makes Tab and Shift+Tab move focus.
	TabNavigation bool
	// Debug enables the context's debug logging.
	Debug  bool
	Logger *slog.Logger
	// OnStart, when set, runs once the context has started on the first
	// window size.
	OnStart func(ctx *bramble.RunContext)
}

func (c *RunConfig) defaults() {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellFont.CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellFont.CellHeight
	}
	if c.TPS <= 0 {
		c.TPS = 30
	}
}

// Run drives root in the terminal's alternate screen until Ctrl+C.
func Run(root *bramble.Node, cfg RunConfig) error {
	m, err := NewModel(root, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	m.ctx.Stop()
	if err != nil {
		return err
	}
	return m.Err()
}

// tickMsg advances the tree by one update.
type tickMsg time.Time

// Model adapts a bramble RunContext to tea.Model. The context starts on the
// first WindowSizeMsg, which Bubble Tea sends when the program starts.
type Model struct {
	ctx    *bramble.RunContext
	root   *bramble.Node
	canvas *CellCanvas
	cfg    RunConfig
	err    error

	lastX, lastY     float64
	held             bramble.MouseButton
	shift, ctrl, alt bool
}

// NewModel creates a Model for root.
func NewModel(root *bramble.Node, cfg RunConfig) (*Model, error) {
	if root == nil {
		return nil, bramble.ErrNilNode
	}
	cfg.defaults()
	ctx := bramble.NewRunContext()
	ctx.TabNavigation = cfg.TabNavigation
	ctx.SetLogger(cfg.Logger)
	ctx.SetDebugMode(cfg.Debug)
	canvas := NewCellCanvas(0, 0, cfg.CellWidth, cfg.CellHeight)
	canvas.Background = cfg.Background
	return &Model{
		ctx:    ctx,
		root:   root,
		canvas: canvas,
		cfg:    cfg,
		lastX:  -1,
		lastY:  -1,
	}, nil
}

// Context returns the RunContext driven by the model.
func (m *Model) Context() *bramble.RunContext { return m.ctx }

// Err returns the error that ended the session, if any.
func (m *Model) Err() error { return m.err }

// Init starts the update ticker.
func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.TPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update routes one message into the tree.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.resize(msg.Width, msg.Height); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.routeKey(msg)
	case tea.MouseMsg:
		m.routeMouse(msg)
	case tickMsg:
		if m.ctx.Running() {
			if err := m.ctx.Update(1 / float64(m.cfg.TPS)); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// View paints the tree onto the cell grid.
func (m *Model) View() string {
	if !m.ctx.Running() {
		return ""
	}
	m.canvas.Clear()
	if err := m.ctx.Draw(m.canvas); err != nil {
		return ""
	}
	return m.canvas.Render()
}

func (m *Model) resize(cols, rows int) error {
	m.canvas.Resize(cols, rows)
	w, h := float64(cols)*m.cfg.CellWidth, float64(rows)*m.cfg.CellHeight
	if m.ctx.Running() {
		m.ctx.Resize(w, h)
		return nil
	}
	if err := m.ctx.Start(m.root, w, h); err != nil {
		return err
	}
	if m.cfg.OnStart != nil {
		m.cfg.OnStart(m.ctx)
	}
	return nil
}

// --- Routing ---

func (m *Model) routeKey(msg tea.KeyMsg) {
	ks, ok := translateKey(msg)
	if !ok {
		return
	}
	m.syncMods(ks.shift, ks.ctrl, msg.Alt)
	if ks.key != bramble.KeyUnknown && !msg.Paste {
		m.ctx.KeyDown(ks.key, int(msg.Type))
		m.ctx.KeyUp(ks.key, int(msg.Type))
	}
	if ks.text != "" && !msg.Alt {
		m.ctx.TextInput(ks.text)
	}
	m.syncMods(false, false, false)
}

func (m *Model) routeMouse(msg tea.MouseMsg) {
	m.syncMods(msg.Shift, msg.Ctrl, msg.Alt)
	x := (float64(msg.X) + 0.5) * m.cfg.CellWidth
	y := (float64(msg.Y) + 0.5) * m.cfg.CellHeight
	btn, dx, dy, isButton := translateButton(msg.Button)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.moveTo(x, y)
	case tea.MouseActionPress:
		m.moveTo(x, y)
		if dx != 0 || dy != 0 {
			m.ctx.Wheel(dx, dy)
			return
		}
		if isButton {
			m.held = btn
			m.ctx.PointerDown(x, y, btn)
		}
	case tea.MouseActionRelease:
		// Some terminal protocols do not say which button was released.
		if !isButton {
			btn = m.held
		}
		m.moveTo(x, y)
		m.ctx.PointerUp(x, y, btn)
	}
}

func (m *Model) moveTo(x, y float64) {
	if x == m.lastX && y == m.lastY {
		return
	}
	m.lastX, m.lastY = x, y
	m.ctx.PointerMove(x, y)
}

// syncMods replays modifier transitions so the context's modifier state
// matches what the terminal reported with the current message.
func (m *Model) syncMods(shift, ctrl, alt bool) {
	m.setMod(&m.shift, shift, bramble.KeyShiftLeft)
	m.setMod(&m.ctrl, ctrl, bramble.KeyControlLeft)
	m.setMod(&m.alt, alt, bramble.KeyAltLeft)
}

func (m *Model) setMod(state *bool, down bool, key bramble.Key) {
	if *state == down {
		return
	}
	*state = down
	if down {
		m.ctx.KeyDown(key, 0)
	} else {
		m.ctx.KeyUp(key, 0)
	}
}
