package helpkeys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tuikeys/hotkeys"
)

// KeyMap adapts an action key map to bubbles' help.KeyMap contract.
type KeyMap struct {
	bindings []key.Binding
}

// NewKeyMap builds a help keymap from an action key map.
func NewKeyMap(km hotkeys.KeyMap, descs map[hotkeys.Action]string) KeyMap {
	return KeyMap{bindings: Bindings(km, descs)}
}

// ShortHelp returns every binding on a single row.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp returns the bindings in columns of four.
func (k KeyMap) FullHelp() [][]key.Binding {
	const rows = 4
	var columns [][]key.Binding
	for start := 0; start < len(k.bindings); start += rows {
		end := start + rows
		if end > len(k.bindings) {
			end = len(k.bindings)
		}
		columns = append(columns, k.bindings[start:end])
	}
	return columns
}
