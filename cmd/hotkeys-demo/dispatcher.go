package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuikeys/hotkeys"
)

// newChordDispatcher is the demo's dispatch collaborator. All key matching
// is delegated to bubbles' key.Matches, so only single-chord specs are
// honored; multi-key sequences are skipped.
func newChordDispatcher(props hotkeys.Props, target hotkeys.Unit) hotkeys.Unit {
	d := &chordDispatcher{target: target, component: hotkeys.ComponentPassthrough}

	if keyMap, ok := props[hotkeys.PropKeyMap].(hotkeys.KeyMap); ok {
		d.bindings = make(map[hotkeys.Action]key.Binding, len(keyMap))
		for action, specs := range keyMap {
			var keys []string
			for _, spec := range specs {
				if len(spec) == 1 {
					keys = append(keys, spec[0])
				}
			}
			if len(keys) == 0 {
				continue
			}
			d.bindings[action] = key.NewBinding(key.WithKeys(keys...))
		}
	}
	if handlers, ok := props[hotkeys.PropHandlers].(hotkeys.HandlerMap); ok {
		d.handlers = handlers
	}
	if component, ok := props[hotkeys.PropComponent].(string); ok {
		d.component = component
	}

	return d
}

type chordDispatcher struct {
	target    hotkeys.Unit
	bindings  map[hotkeys.Action]key.Binding
	handlers  hotkeys.HandlerMap
	component string
}

func (d *chordDispatcher) Init() tea.Cmd {
	return d.target.Init()
}

func (d *chordDispatcher) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		for action, binding := range d.bindings {
			if !key.Matches(keyMsg, binding) {
				continue
			}
			if handler, ok := d.handlers[action]; ok {
				return handler()
			}
			// Bound key without a handler yet: swallowed, not an error.
			return nil
		}
	}
	return d.target.Update(msg)
}

func (d *chordDispatcher) View() string {
	view := d.target.View()
	if d.component == hotkeys.ComponentPassthrough {
		return view
	}
	// Any other component value renders a visible container.
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(view)
}
