// Package teahost runs a bramble tree inside a terminal using Bubble Tea.
//
// The terminal is a grid of cells. Each cell covers CellWidth by CellHeight
// tree units, so widgets lay out in the same units they would use in a
// window and the [CellCanvas] snaps their drawing to whole cells. Text must
// be measured with a [CellFont] for labels and buttons to line up with the
// grid.
//
//	root := bramble.NewVBox("root", 8)
//	// ... build the tree with widgets using teahost.DefaultCellFont ...
//	if err := teahost.Run(root, teahost.RunConfig{TabNavigation: true}); err != nil {
//		log.Fatal(err)
//	}
//
// Mouse presses, motion and wheel ticks are reported at the centre of the
// cell under the pointer. Terminals do not report key releases, so each key
// press is routed as a KeyDown immediately followed by a KeyUp. Shift, Ctrl
// and Alt state arrives with each message and is replayed as modifier key
// transitions before the message is routed. Ctrl+C quits.
package teahost
