// Package hotkeys composes declarative keyboard shortcuts around renderable
// units. A unit declares which semantic actions it handles; Compose wraps it
// so that, once the unit is active, its declared handlers are handed to a
// key dispatch unit together with a static action-to-key map. The dispatch
// unit itself is an external collaborator: this package only builds its
// property bag and instantiates it around the target.
package hotkeys

import tea "github.com/charmbracelet/bubbletea"

// Action is a semantic identifier for a user-triggerable operation,
// decoupled from any particular key.
type Action string

// KeySpec is a single key (length 1) or an ordered multi-key sequence.
type KeySpec []string

// KeyMap maps actions to one or more key specifications. Specs are passed to
// the dispatch unit untouched; what counts as a valid spec is the
// dispatcher's concern, not this package's.
type KeyMap map[Action][]KeySpec

// Handler is the callback a unit wants invoked when the dispatch unit
// matches its action.
type Handler func() tea.Cmd

// HandlerMap maps actions to handlers. It does not have to cover every
// action present in a KeyMap.
type HandlerMap map[Action]Handler

// Unit is a renderable unit.
type Unit interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Provider is the capability a target unit exposes so its handlers can be
// picked up after activation. Any unit satisfying it can be wrapped; there
// is no base type to embed.
type Provider interface {
	HotKeyHandlers() HandlerMap
}
