package ebitenhost

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bramble"
)

// RunConfig configures a window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Scale is the device pixels per tree unit. Zero means 1.
	Scale float64
	// TPS sets ticks per second. Zero keeps Ebitengine's default.
	TPS int
	// ClearColor fills the screen before each draw. The zero value is black.
	ClearColor bramble.Color
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// TabNavigation makes Tab and Shift+Tab move focus.
	TabNavigation bool
	// Debug enables the context's debug logging.
	Debug  bool
	Logger *slog.Logger
	// OnStart, when set, runs once the context has started and before the
	// first frame.
	OnStart func(ctx *bramble.RunContext)
}

// Run starts a RunContext on root and blocks running the game loop until the
// window closes.
func Run(root *bramble.Node, cfg RunConfig) error {
	if root == nil {
		return bramble.ErrNilNode
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 640, 480
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g, err := NewGame(root, cfg)
	if err != nil {
		return err
	}
	g.ctx.SetCursorHinter(newCursorHinter())
	if err := g.ctx.Start(root, float64(w), float64(h)); err != nil {
		return err
	}
	defer g.ctx.Stop()
	if cfg.OnStart != nil {
		cfg.OnStart(g.ctx)
	}
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Game adapts a bramble RunContext to ebiten.Game.
type Game struct {
	ctx    *bramble.RunContext
	canvas *Canvas
	cfg    RunConfig
	fps    fpsOverlay

	outW, outH int
	lastX      int
	lastY      int
	keys       []ebiten.Key
	chars      []rune
}

// NewGame creates a Game over a fresh, unstarted RunContext. Start the
// context before handing the game to ebiten.RunGame; Run does both.
func NewGame(root *bramble.Node, cfg RunConfig) (*Game, error) {
	if root == nil {
		return nil, bramble.ErrNilNode
	}
	ctx := bramble.NewRunContext()
	if cfg.Scale > 0 {
		ctx.SetScale(cfg.Scale)
	}
	ctx.TabNavigation = cfg.TabNavigation
	ctx.SetLogger(cfg.Logger)
	ctx.SetDebugMode(cfg.Debug)
	return &Game{
		ctx:    ctx,
		canvas: &Canvas{Scale: ctx.Scale()},
		cfg:    cfg,
		lastX:  -1,
		lastY:  -1,
	}, nil
}

// Context returns the RunContext driven by the game.
func (g *Game) Context() *bramble.RunContext { return g.ctx }

// Update polls devices, routes what changed into the tree, and advances one
// tick.
func (g *Game) Update() error {
	if !g.ctx.Running() {
		return nil
	}
	g.pollPointer()
	g.pollKeys()
	g.fps.update(1 / float64(ebiten.TPS()))
	return g.ctx.Update(1 / float64(ebiten.TPS()))
}

func (g *Game) pollPointer() {
	mx, my := ebiten.CursorPosition()
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.ctx.PointerMove(float64(mx), float64(my))
	}
	x, y := float64(mx), float64(my)
	for _, eb := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		b, _ := translateButton(eb)
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.ctx.PointerDown(x, y, b)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.ctx.PointerUp(x, y, b)
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.ctx.Wheel(dx, dy)
	}
}

func (g *Game) pollKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if bk := translateKey(k); bk != bramble.KeyUnknown {
			g.ctx.KeyDown(bk, int(k))
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.ctx.TextInput(string(g.chars))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if bk := translateKey(k); bk != bramble.KeyUnknown {
			g.ctx.KeyUp(bk, int(k))
		}
	}
}

// Draw paints the tree onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.ClearColor))
	g.canvas.Target = screen
	g.canvas.Scale = g.ctx.Scale()
	_ = g.ctx.Draw(g.canvas)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
}

// Layout keeps the tree sized to the window. The logical screen matches the
// window in device pixels; the context's scale maps it to tree units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.ctx.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
