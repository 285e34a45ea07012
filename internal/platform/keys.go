package platform

import (
	"fmt"
	"maps"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyNames maps the raylib keys the game listens to onto the lowercase identifiers the binding
// store uses. Names follow the browser KeyboardEvent.key spelling so persisted bindings stay
// portable, except modifiers, which take the KeyboardEvent.code spelling so each side is held
// and released on its own.
var keyNames = map[int32]string{
	rl.KeySpace:        "space",
	rl.KeyEscape:       "escape",
	rl.KeyEnter:        "enter",
	rl.KeyTab:          "tab",
	rl.KeyBackspace:    "backspace",
	rl.KeyUp:           "arrowup",
	rl.KeyDown:         "arrowdown",
	rl.KeyLeft:         "arrowleft",
	rl.KeyRight:        "arrowright",
	rl.KeyLeftShift:    "shiftleft",
	rl.KeyRightShift:   "shiftright",
	rl.KeyLeftControl:  "controlleft",
	rl.KeyRightControl: "controlright",
	rl.KeyLeftAlt:      "altleft",
	rl.KeyRightAlt:     "altright",
	rl.KeyComma:        ",",
	rl.KeyPeriod:       ".",
	rl.KeySlash:        "/",
	rl.KeySemicolon:    ";",
	rl.KeyMinus:        "-",
	rl.KeyEqual:        "=",
}

func init() {
	for k := int32(rl.KeyA); k <= rl.KeyZ; k++ {
		keyNames[k] = string(rune('a' + k - rl.KeyA))
	}
	for k := int32(rl.KeyZero); k <= rl.KeyNine; k++ {
		keyNames[k] = string(rune('0' + k - rl.KeyZero))
	}
	for k := int32(rl.KeyF1); k <= rl.KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", k-rl.KeyF1+1)
	}
	keyCodes = slices.Sorted(maps.Keys(keyNames))
}

// keyCodes lists the keys of keyNames in ascending order so same-frame edges are reported in a
// stable order.
var keyCodes []int32

// KeyName returns the identifier for a raylib key code, or "" if the game does not track it.
func KeyName(key int32) string {
	return keyNames[key]
}
