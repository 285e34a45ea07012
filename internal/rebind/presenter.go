// Package rebind is the presenter behind the key binding panel. It owns the open/armed state
// and forwards captured keys to the binding store; drawing lives in the view package.
package rebind

import (
	"log/slog"
	"strconv"

	"ruins-game/internal/keybind"
)

const (
	OpenKey  = "f1"
	CloseKey = "escape"
)

// Binder is the part of keybind.Store the panel needs.
type Binder interface {
	Bindings() map[keybind.Action]string
	Update(action keybind.Action, key string)
}

// Row is one line of the panel.
type Row struct {
	Index  int
	Action keybind.Action
	Label  string
	Key    string
	Armed  bool
}

// Presenter tracks whether the panel is open and which action, if any, is waiting for a key.
// At most one action is armed at a time.
type Presenter struct {
	store Binder
	log   *slog.Logger

	open     bool
	armed    keybind.Action
	hasArmed bool
}

func NewPresenter(store Binder, log *slog.Logger) *Presenter {
	if log == nil {
		log = slog.Default()
	}
	return &Presenter{store: store, log: log}
}

func (p *Presenter) IsOpen() bool { return p.open }

func (p *Presenter) Open() {
	p.open = true
}

// Close hides the panel and drops any pending arm. Bindings already applied stay applied.
func (p *Presenter) Close() {
	p.open = false
	p.Disarm()
}

func (p *Presenter) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// Arm puts action into the awaiting-key state, replacing whatever was armed before.
// It returns false if the panel is closed or the action is unknown.
func (p *Presenter) Arm(action keybind.Action) bool {
	if !p.open || !action.Valid() {
		return false
	}
	if p.hasArmed && p.armed != action {
		p.log.Debug("rebind: cancelled", "action", p.armed)
	}
	p.armed, p.hasArmed = action, true
	p.log.Debug("rebind: awaiting key", "action", action)
	return true
}

// ArmIndex arms the n-th action (1-based) in panel order.
func (p *Presenter) ArmIndex(n int) bool {
	all := keybind.Actions()
	if n < 1 || n > len(all) {
		return false
	}
	return p.Arm(all[n-1])
}

func (p *Presenter) Disarm() {
	p.armed, p.hasArmed = "", false
}

// Armed returns the action waiting for a key.
func (p *Presenter) Armed() (keybind.Action, bool) {
	return p.armed, p.hasArmed
}

// HandleKey offers a keydown to the panel before gameplay sees it and reports whether it was
// consumed. While an action is armed every key is consumed and becomes its new binding. While
// the panel is open and idle, number keys arm rows and CloseKey closes it. OpenKey toggles
// the panel.
func (p *Presenter) HandleKey(key string) bool {
	key = keybind.NormalizeKey(key)
	if key == "" {
		return false
	}

	if p.hasArmed {
		action := p.armed
		p.Disarm()
		p.store.Update(action, key)
		return true
	}

	if key == OpenKey {
		p.Toggle()
		return true
	}
	if !p.open {
		return false
	}
	if key == CloseKey {
		p.Close()
		return true
	}
	if n, err := strconv.Atoi(key); err == nil {
		return p.ArmIndex(n)
	}
	return false
}

// ClickOutside handles a pointer press outside the panel.
func (p *Presenter) ClickOutside() {
	if p.open {
		p.Close()
	}
}

// Rows returns the panel lines in action order.
func (p *Presenter) Rows() []Row {
	bindings := p.store.Bindings()
	rows := make([]Row, 0, len(bindings))
	for i, a := range keybind.Actions() {
		rows = append(rows, Row{
			Index:  i + 1,
			Action: a,
			Label:  a.Label(),
			Key:    bindings[a],
			Armed:  p.hasArmed && p.armed == a,
		})
	}
	return rows
}
