package teahost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/bramble"
)

// keyMap translates Bubble Tea key types that name a single key.
var keyMap = map[tea.KeyType]bramble.Key{
	tea.KeyEnter:     bramble.KeyEnter,
	tea.KeyEsc:       bramble.KeyEscape,
	tea.KeyBackspace: bramble.KeyBackspace,
	tea.KeyDelete:    bramble.KeyDelete,
	tea.KeyTab:       bramble.KeyTab,
	tea.KeyLeft:      bramble.KeyLeft,
	tea.KeyRight:     bramble.KeyRight,
	tea.KeyUp:        bramble.KeyUp,
	tea.KeyDown:      bramble.KeyDown,
	tea.KeyHome:      bramble.KeyHome,
	tea.KeyEnd:       bramble.KeyEnd,
	tea.KeyPgUp:      bramble.KeyPageUp,
	tea.KeyPgDown:    bramble.KeyPageDown,
	tea.KeyInsert:    bramble.KeyInsert,
	tea.KeyF1:        bramble.KeyF1,
	tea.KeyF2:        bramble.KeyF2,
	tea.KeyF3:        bramble.KeyF3,
	tea.KeyF4:        bramble.KeyF4,
	tea.KeyF5:        bramble.KeyF5,
	tea.KeyF6:        bramble.KeyF6,
	tea.KeyF7:        bramble.KeyF7,
	tea.KeyF8:        bramble.KeyF8,
	tea.KeyF9:        bramble.KeyF9,
	tea.KeyF10:       bramble.KeyF10,
	tea.KeyF11:       bramble.KeyF11,
	tea.KeyF12:       bramble.KeyF12,
}

// keyStroke is one translated key press with the modifiers terminals fold
// into the key itself.
type keyStroke struct {
	key   bramble.Key
	shift bool
	ctrl  bool
	text  string // committed text, if any
}

// translateKey maps a key message. ok is false for keys bramble has no name
// for and that carry no text.
func translateKey(msg tea.KeyMsg) (ks keyStroke, ok bool) {
	switch {
	case msg.Type == tea.KeyShiftTab:
		return keyStroke{key: bramble.KeyTab, shift: true}, true
	case msg.Type == tea.KeySpace:
		return keyStroke{key: bramble.KeySpace, text: " "}, true
	case msg.Type == tea.KeyRunes:
		ks.text = string(msg.Runes)
		ks.key = bramble.KeyUnknown
		if len(msg.Runes) == 1 {
			ks.key = runeKey(msg.Runes[0])
		}
		return ks, ks.text != ""
	}
	if k, found := keyMap[msg.Type]; found {
		return keyStroke{key: k}, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return keyStroke{key: bramble.KeyA + bramble.Key(msg.Type-tea.KeyCtrlA), ctrl: true}, true
	}
	return keyStroke{}, false
}

// runeKey names the key that types r, or KeyUnknown.
func runeKey(r rune) bramble.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return bramble.KeyA + bramble.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return bramble.KeyA + bramble.Key(r-'A')
	case r >= '0' && r <= '9':
		return bramble.Key0 + bramble.Key(r-'0')
	}
	return bramble.KeyUnknown
}

// translateButton maps a Bubble Tea mouse button. Wheel buttons report
// their scroll delta instead.
func translateButton(b tea.MouseButton) (btn bramble.MouseButton, dx, dy float64, ok bool) {
	switch b {
	case tea.MouseButtonLeft:
		return bramble.MouseButtonLeft, 0, 0, true
	case tea.MouseButtonRight:
		return bramble.MouseButtonRight, 0, 0, true
	case tea.MouseButtonMiddle:
		return bramble.MouseButtonMiddle, 0, 0, true
	case tea.MouseButtonWheelUp:
		return 0, 0, 1, false
	case tea.MouseButtonWheelDown:
		return 0, 0, -1, false
	case tea.MouseButtonWheelLeft:
		return 0, 1, 0, false
	case tea.MouseButtonWheelRight:
		return 0, -1, 0, false
	}
	return 0, 0, 0, false
}
