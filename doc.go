// Package bramble is a retained-mode widget toolkit that sits on top of a
// host application's render and input loop.
//
// Bramble provides the widget tree, min/max size negotiation, linear box
// layout, hit-testing, painting, and the input routing and focus state that
// every non-trivial interface needs. Hosts supply device events and a
// [Canvas]; backends for [Ebitengine] and for terminals via [Bubble Tea]
// live in the ebitenhost and teahost packages.
//
// # Quick start
//
// Build a tree, hand it to a [RunContext], and call the entry points from
// the host loop:
//
//	root := bramble.NewVBox("root", 4)
//	root.Padding = bramble.UniformInsets(8)
//	_ = root.AddChild(bramble.NewLabel("title", "Hello"))
//	_ = root.AddChild(bramble.NewButton("ok", "OK", func() { fmt.Println("ok") }))
//
//	ctx := bramble.NewRunContext()
//	_ = ctx.Start(root, 640, 480)
//
//	// each frame:
//	ctx.PointerMove(mx, my)
//	_ = ctx.Update(dt)
//	_ = ctx.Draw(canvas)
//
// Or let ebitenhost drive everything:
//
//	ebitenhost.Run(root, ebitenhost.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Widget tree
//
// Every widget is a [Node]. Positions are relative to the parent; there is
// no rotation or scaling. Behavior comes from two places: per-node callback
// fields such as [Node.OnClick] and [Node.OnKeyDown], and the optional
// [Node.Widget] value, which may implement [MinSizer], [MaxSizer],
// [Layouter], [BackgroundPainter], [ForegroundPainter] and [Updater].
//
// # Layout
//
// A node's size always stays within [Node.MinSize] and [Node.MaxSize].
// [Box] packs children along one axis: fixed children get their minimum,
// expanding children split what is left. Geometry changes mark ancestors
// for relayout, which [RunContext.Update] performs once per frame.
//
// # Input
//
// The [RunContext] owns the capture, hover and focus targets. A press
// captures the pointer for the node under it until release; keys and text
// go to the focus target. An optional [EventSink] sees every routed
// interaction, which is how the ecs module publishes them into a
// [Donburi] world. Tweens (via [gween]) animate position and size.
//
// [Ebitengine]: https://ebitengine.org
// [Bubble Tea]: https://github.com/charmbracelet/bubbletea
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bramble
