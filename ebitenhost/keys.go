package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

// keyMap translates Ebitengine keys to bramble keys.
var keyMap = map[ebiten.Key]bramble.Key{
	ebiten.KeyShiftLeft:    bramble.KeyShiftLeft,
	ebiten.KeyShiftRight:   bramble.KeyShiftRight,
	ebiten.KeyControlLeft:  bramble.KeyControlLeft,
	ebiten.KeyControlRight: bramble.KeyControlRight,
	ebiten.KeyAltLeft:      bramble.KeyAltLeft,
	ebiten.KeyAltRight:     bramble.KeyAltRight,
	ebiten.KeyEnter:        bramble.KeyEnter,
	ebiten.KeyNumpadEnter:  bramble.KeyEnter,
	ebiten.KeyEscape:       bramble.KeyEscape,
	ebiten.KeyBackspace:    bramble.KeyBackspace,
	ebiten.KeyDelete:       bramble.KeyDelete,
	ebiten.KeyTab:          bramble.KeyTab,
	ebiten.KeySpace:        bramble.KeySpace,
	ebiten.KeyArrowLeft:    bramble.KeyLeft,
	ebiten.KeyArrowRight:   bramble.KeyRight,
	ebiten.KeyArrowUp:      bramble.KeyUp,
	ebiten.KeyArrowDown:    bramble.KeyDown,
	ebiten.KeyHome:         bramble.KeyHome,
	ebiten.KeyEnd:          bramble.KeyEnd,
	ebiten.KeyPageUp:       bramble.KeyPageUp,
	ebiten.KeyPageDown:     bramble.KeyPageDown,
	ebiten.KeyInsert:       bramble.KeyInsert,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keyMap[k] = bramble.KeyA + bramble.Key(i)
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		keyMap[k] = bramble.Key0 + bramble.Key(i)
	}
	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		keyMap[k] = bramble.KeyF1 + bramble.Key(i)
	}
}

// translateKey returns the bramble key for k, or KeyUnknown.
func translateKey(k ebiten.Key) bramble.Key {
	if bk, ok := keyMap[k]; ok {
		return bk
	}
	return bramble.KeyUnknown
}

// translateButton maps an Ebitengine mouse button.
func translateButton(b ebiten.MouseButton) (bramble.MouseButton, bool) {
	switch b {
	case ebiten.MouseButtonLeft:
		return bramble.MouseButtonLeft, true
	case ebiten.MouseButtonRight:
		return bramble.MouseButtonRight, true
	case ebiten.MouseButtonMiddle:
		return bramble.MouseButtonMiddle, true
	}
	return 0, false
}
