package keybind

import "strings"

// Action is a logical gameplay intent, decoupled from the physical key that triggers it.
type Action string

const (
	MoveForward     Action = "moveForward"
	MoveBackward    Action = "moveBackward"
	MoveLeft        Action = "moveLeft"
	MoveRight       Action = "moveRight"
	Interact        Action = "interact"
	ToggleInventory Action = "toggleInventory"
	ToggleControls  Action = "toggleControls"
)

// actions is the fixed, ordered set of bindable actions. Order drives display and merge order.
var actions = []Action{
	MoveForward,
	MoveBackward,
	MoveLeft,
	MoveRight,
	Interact,
	ToggleInventory,
	ToggleControls,
}

// labels are the human-readable names shown in the rebinding panel.
var labels = map[Action]string{
	MoveForward:     "Move forward",
	MoveBackward:    "Move backward",
	MoveLeft:        "Move left",
	MoveRight:       "Move right",
	Interact:        "Interact",
	ToggleInventory: "Inventory",
	ToggleControls:  "Controls guide",
}

// Actions returns all bindable actions in display order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	_, ok := labels[a]
	return ok
}

// Label returns the display name of a, or the raw id for unknown actions.
func (a Action) Label() string {
	if l, ok := labels[a]; ok {
		return l
	}
	return string(a)
}

// NormalizeKey lowercases and trims a physical key identifier. Keys compare case-insensitively.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Defaults returns the compiled-in bindings.
func Defaults() map[Action]string {
	return map[Action]string{
		MoveForward:     "w",
		MoveBackward:    "s",
		MoveLeft:        "a",
		MoveRight:       "d",
		Interact:        "e",
		ToggleInventory: "i",
		ToggleControls:  "h",
	}
}
