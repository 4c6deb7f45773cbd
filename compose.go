package hotkeys

import tea "github.com/charmbracelet/bubbletea"

// Compose returns a function that wraps any target unit so the handler map
// it declares is registered with the dispatch unit once the target becomes
// active. The wrapper is a drop-in replacement for the target: every message
// it receives reaches the target unchanged, routed through the dispatch
// unit.
//
// keyMap and options are captured by reference and shared by every wrapper
// the returned function creates; mutating either afterwards is observed by
// all of them. Compose performs no validation and has no side effects.
func Compose(dispatch DispatchFactory, keyMap KeyMap, options Props) func(Unit) Unit {
	return func(target Unit) Unit {
		return &wrapper{
			dispatch: dispatch,
			keyMap:   keyMap,
			options:  options,
			target:   target,
		}
	}
}

// activatedMsg announces that a wrapper's target has joined the live tree.
// It is addressed to a single wrapper; every other unit lets it pass.
type activatedMsg struct {
	owner *wrapper
}

type wrapper struct {
	dispatch DispatchFactory
	keyMap   KeyMap
	options  Props
	target   Unit

	// handlers is read off the target exactly once, at activation. It stays
	// nil when the target never declares any. Key input arriving before the
	// activation message lands reaches the dispatch unit without handlers
	// and resolves to a no-op there.
	handlers  HandlerMap
	activated bool
}

func (w *wrapper) Init() tea.Cmd {
	return tea.Batch(w.target.Init(), func() tea.Msg {
		return activatedMsg{owner: w}
	})
}

func (w *wrapper) Update(msg tea.Msg) tea.Cmd {
	if activated, ok := msg.(activatedMsg); ok && activated.owner == w {
		if !w.activated {
			w.activated = true
			if provider, ok := w.target.(Provider); ok {
				w.handlers = provider.HotKeyHandlers()
			}
		}
		return nil
	}
	return w.compose().Update(msg)
}

func (w *wrapper) View() string {
	return w.compose().View()
}

// compose instantiates the dispatch unit around the target for the current
// wrapper state.
func (w *wrapper) compose() Unit {
	return w.dispatch(w.props(), w.target)
}

func (w *wrapper) props() Props {
	props := Props{
		PropKeyMap:    w.keyMap,
		PropHandlers:  w.handlers,
		PropComponent: ComponentPassthrough,
	}
	// Compose-time options are applied last and win on collision, even over
	// the three entries above.
	for name, value := range w.options {
		props[name] = value
	}
	return props
}
