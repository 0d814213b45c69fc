package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

// cursorHinter implements bramble.CursorHinter with ebiten.SetCursorShape.
type cursorHinter struct {
	current bramble.CursorShape
	set     func(ebiten.CursorShapeType)
}

func newCursorHinter() *cursorHinter {
	return &cursorHinter{set: ebiten.SetCursorShape}
}

func (h *cursorHinter) SetCursor(shape bramble.CursorShape) bramble.CursorShape {
	prev := h.current
	h.current = shape
	h.set(cursorShape(shape))
	return prev
}

func cursorShape(s bramble.CursorShape) ebiten.CursorShapeType {
	switch s {
	case bramble.CursorText:
		return ebiten.CursorShapeText
	case bramble.CursorPointer:
		return ebiten.CursorShapePointer
	case bramble.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case bramble.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case bramble.CursorNSResize:
		return ebiten.CursorShapeNSResize
	}
	return ebiten.CursorShapeDefault
}
