// Package ebitenhost drives a bramble widget tree from an [Ebitengine] game
// loop.
//
// [Run] opens a window and handles everything. For full control, create a
// [Game] and embed it in your own ebiten.Game, or use [Canvas] on its own to
// paint a tree into any *ebiten.Image.
//
//	root := bramble.NewVBox("root", 4)
//	// ... add widgets ...
//	if err := ebitenhost.Run(root, ebitenhost.RunConfig{
//		Title: "Form", Width: 640, Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
