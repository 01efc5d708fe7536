// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the interactive list
// ABOUTME: Config overrides replace an action's default keys; conflicts are reported

package keybindings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Action is something the interactive list can do.
type Action string

// List actions.
const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionToggle Action = "toggle"
	ActionFilter Action = "filter"
	ActionClear  Action = "clear"
	ActionQuit   Action = "quit"
)

var allActions = []Action{ActionUp, ActionDown, ActionToggle, ActionFilter, ActionClear, ActionQuit}

// ErrUnknownAction is returned for an override naming no action.
var ErrUnknownAction = errors.New("unknown key action")

// Defaults returns the built-in bindings. Keys use Bubble Tea key names.
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionUp:     {"up", "k"},
		ActionDown:   {"down", "j"},
		ActionToggle: {"enter", " "},
		ActionFilter: {"/"},
		ActionClear:  {"esc"},
		ActionQuit:   {"q", "ctrl+c"},
	}
}

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action
}

// New merges overrides (action name to keys) onto the defaults.
func New(overrides map[string][]string) (*Manager, error) {
	kb := Defaults()
	for name, keys := range overrides {
		a := Action(name)
		if !slices.Contains(allActions, a) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		normalized := make([]string, len(keys))
		for i, k := range keys {
			normalized[i] = normalizeKey(k)
		}
		kb[a] = normalized
	}

	m := &Manager{bindings: kb}
	m.buildLookup()
	return m, nil
}

// Default returns a Manager with the built-in bindings.
func Default() *Manager {
	m := &Manager{bindings: Defaults()}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to key, or "" if unbound.
func (m *Manager) ActionFor(key string) Action {
	return m.lookup[key]
}

// Keys returns a copy of the keys bound to a.
func (m *Manager) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// Conflicts detects keys bound to multiple actions, ordered by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, a := range allActions {
		for _, k := range m.bindings[a] {
			keyActions[k] = append(keyActions[k], a)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		if actions := keyActions[k]; len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// FormatAll returns a table of all keybindings.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("Keybindings:\n\n")
	for _, a := range allActions {
		keys := m.bindings[a]
		if len(keys) == 0 {
			continue
		}
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = displayKey(k)
		}
		fmt.Fprintf(&b, "  %-20s %s\n", strings.Join(names, ", "), a)
	}
	return b.String()
}

// buildLookup indexes keys; on conflict the earlier action wins.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for _, a := range allActions {
		for _, k := range m.bindings[a] {
			if _, taken := m.lookup[k]; !taken {
				m.lookup[k] = a
			}
		}
	}
}

// normalizeKey maps config spellings onto Bubble Tea key names.
func normalizeKey(k string) string {
	switch strings.ToLower(k) {
	case "space":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	return k
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
