package keybind

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"

	"ruins-game/internal/storage"
)

// StorageKey is the fixed key the binding map is persisted under.
const StorageKey = "keyBindings"

// Store is the single source of truth for action → key bindings. It is constructed once at
// startup and shared by the input controller and the rebinding panel. Every mutation is
// persisted immediately; persistence failures are logged and the in-memory map stays
// authoritative for the session.
//
// Store is not safe for concurrent use; the game mutates it between ticks on the loop thread.
type Store struct {
	bindings map[Action]string
	backend  storage.Store
	log      *slog.Logger
}

// NewStore loads persisted overrides from backend on top of Defaults(). backend may be nil, in
// which case nothing is loaded or saved. log may be nil.
func NewStore(backend storage.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		bindings: Defaults(),
		backend:  backend,
		log:      log,
	}
	s.load()
	return s
}

// Bindings returns a copy of the current bindings.
func (s *Store) Bindings() map[Action]string {
	return maps.Clone(s.bindings)
}

// DefaultBindings returns the compiled-in defaults, unaffected by overrides.
func (s *Store) DefaultBindings() map[Action]string {
	return Defaults()
}

// Key returns the key bound to action, or "" for unknown actions.
func (s *Store) Key(action Action) string {
	return s.bindings[action]
}

// ActionFor returns the action bound to key, if any.
func (s *Store) ActionFor(key string) (Action, bool) {
	key = NormalizeKey(key)
	for _, a := range actions {
		if s.bindings[a] == key {
			return a, true
		}
	}
	return "", false
}

// Update binds action to key. If key already belongs to another action, that action takes over
// action's previous key, so no two actions share a key. Unknown actions and empty keys are
// ignored. The result is persisted before Update returns.
func (s *Store) Update(action Action, key string) {
	if !action.Valid() {
		s.log.Warn("ignoring rebind of unknown action", "action", string(action))
		return
	}
	key = NormalizeKey(key)
	if key == "" {
		s.log.Warn("ignoring rebind to empty key", "action", string(action))
		return
	}
	if !s.assign(action, key) {
		return
	}
	s.log.Info("key binding updated", "action", string(action), "key", key)
	s.save()
}

// Reset restores Defaults() and persists them.
func (s *Store) Reset() {
	s.bindings = Defaults()
	s.log.Info("key bindings reset to defaults")
	s.save()
}

// assign applies the swap-on-collision rule and reports whether anything changed.
func (s *Store) assign(action Action, key string) bool {
	prev := s.bindings[action]
	if prev == key {
		return false
	}
	for _, other := range actions {
		if other != action && s.bindings[other] == key {
			s.bindings[other] = prev
			break
		}
	}
	s.bindings[action] = key
	return true
}

// load merges the persisted object onto the defaults field by field. Unknown fields, non-string
// values and empty strings are skipped; a malformed document leaves the defaults in place.
func (s *Store) load() {
	if s.backend == nil {
		return
	}
	raw, ok, err := s.backend.Get(StorageKey)
	if err != nil {
		s.log.Warn("failed to load key bindings, using defaults", "error", err)
		return
	}
	if !ok {
		return
	}
	overrides, err := decodeOverrides(raw)
	if err != nil {
		s.log.Warn("persisted key bindings are malformed, using defaults", "error", err)
		return
	}
	for field := range overrides.skipped {
		s.log.Warn("ignoring invalid persisted key binding", "field", field)
	}
	for _, a := range actions {
		if key, ok := overrides.keys[a]; ok {
			s.assign(a, key)
		}
	}
}

func (s *Store) save() {
	if s.backend == nil {
		return
	}
	data, err := encodeBindings(s.bindings)
	if err != nil {
		s.log.Warn("failed to encode key bindings", "error", err)
		return
	}
	if err := s.backend.Set(StorageKey, data); err != nil {
		s.log.Warn("failed to persist key bindings", "error", err)
	}
}

type overrides struct {
	keys    map[Action]string
	skipped map[string]struct{}
}

func decodeOverrides(raw string) (overrides, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return overrides{}, fmt.Errorf("decode bindings: %w", err)
	}
	out := overrides{keys: make(map[Action]string), skipped: make(map[string]struct{})}
	for field, value := range doc {
		a := Action(field)
		if !a.Valid() {
			out.skipped[field] = struct{}{}
			continue
		}
		var key string
		if err := json.Unmarshal(value, &key); err != nil {
			out.skipped[field] = struct{}{}
			continue
		}
		if key = NormalizeKey(key); key != "" {
			out.keys[a] = key
		}
	}
	return out, nil
}

func encodeBindings(b map[Action]string) (string, error) {
	doc := make(map[string]string, len(b))
	for a, k := range b {
		doc[string(a)] = k
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
