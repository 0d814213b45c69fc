package bramble

import (
	"strconv"
	"strings"
)

// Key is the logical identity of a keyboard key. Hosts translate their own
// key codes into Key values; the raw host code travels alongside in KeyEvent.
type Key uint16

const (
	KeyUnknown Key = iota

	// Modifier keys. Each physical side is a distinct key.
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight

	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown:      "unknown",
	KeyShiftLeft:    "shift-left",
	KeyShiftRight:   "shift-right",
	KeyControlLeft:  "control-left",
	KeyControlRight: "control-right",
	KeyAltLeft:      "alt-left",
	KeyAltRight:     "alt-right",
	KeyEnter:        "enter",
	KeyEscape:       "escape",
	KeyBackspace:    "backspace",
	KeyDelete:       "delete",
	KeyTab:          "tab",
	KeySpace:        "space",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyPageUp:       "pageup",
	KeyPageDown:     "pagedown",
	KeyInsert:       "insert",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKey returns the Key whose String form equals name (case-insensitive).
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(name)
	for k, s := range keyNames {
		if s == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// IsModifier reports whether k is a shift, control or alt key on either side.
func (k Key) IsModifier() bool {
	return k >= KeyShiftLeft && k <= KeyAltRight
}

// Modifiers is a bitmask of keyboard modifier state.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota // either Shift key
	ModCtrl                        // either Control key
	ModAlt                         // either Alt / Option key
)

// Has reports whether every bit in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// modifierKeys tracks which physical modifier keys are held. Each side is
// tracked separately so releasing one Shift while the other is held keeps
// ModShift set.
type modifierKeys uint8

func modifierBit(k Key) modifierKeys {
	return 1 << (k - KeyShiftLeft)
}

func (s *modifierKeys) set(k Key, down bool) {
	if down {
		*s |= modifierBit(k)
	} else {
		*s &^= modifierBit(k)
	}
}

func (s modifierKeys) composite() Modifiers {
	var m Modifiers
	if s&(modifierBit(KeyShiftLeft)|modifierBit(KeyShiftRight)) != 0 {
		m |= ModShift
	}
	if s&(modifierBit(KeyControlLeft)|modifierBit(KeyControlRight)) != 0 {
		m |= ModCtrl
	}
	if s&(modifierBit(KeyAltLeft)|modifierBit(KeyAltRight)) != 0 {
		m |= ModAlt
	}
	return m
}
