package hotkeys

import tea "github.com/charmbracelet/bubbletea"

// Model adapts a Unit to bubbletea's top-level model contract so a wrapped
// unit can be handed straight to tea.NewProgram.
func Model(u Unit) tea.Model {
	return adapter{unit: u}
}

type adapter struct {
	unit Unit
}

func (a adapter) Init() tea.Cmd {
	return a.unit.Init()
}

func (a adapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.unit.Update(msg)
}

func (a adapter) View() string {
	return a.unit.View()
}
