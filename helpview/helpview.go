// Package helpview renders an action key map as a filterable help page. It
// is itself a renderable unit, so applications can mount it like any other
// view.
package helpview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/tuikeys/hotkeys"
	"github.com/tuikeys/hotkeys/helpkeys"
)

type Styles struct {
	Title  lipgloss.Style
	Key    lipgloss.Style
	Desc   lipgloss.Style
	Filter lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Desc:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

type Model struct {
	title   string
	entries []helpkeys.Entry
	targets []string
	filter  string
	width   int
	Styles  Styles
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.Styles = styles
	}
}

// New builds a help page for the given key map.
func New(km hotkeys.KeyMap, descs map[hotkeys.Action]string, opts ...Option) *Model {
	entries := helpkeys.Build(km, descs)
	targets := make([]string, len(entries))
	for i, entry := range entries {
		targets[i] = string(entry.Action) + " " + entry.Desc
	}
	m := &Model{
		title:   "keys",
		entries: entries,
		targets: targets,
		Styles:  DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.filter = ""
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				runes := []rune(m.filter)
				m.filter = string(runes[:len(runes)-1])
			}
		case tea.KeyRunes:
			m.filter += string(msg.Runes)
		}
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.Styles.Title.Render(m.title))
	if m.filter != "" {
		b.WriteString("  ")
		b.WriteString(m.Styles.Filter.Render("/" + m.filter))
	}
	b.WriteString("\n\n")

	labelWidth := 0
	visible := m.visible()
	for _, entry := range visible {
		if w := lipgloss.Width(entry.Label); w > labelWidth {
			labelWidth = w
		}
	}
	for _, entry := range visible {
		label := entry.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(entry.Label))
		b.WriteString(m.Styles.Key.Render(label))
		b.WriteString("  ")
		b.WriteString(m.Styles.Desc.Render(entry.Desc))
		b.WriteString("\n")
	}
	return b.String()
}

// visible applies the fuzzy filter over action names and descriptions.
func (m *Model) visible() []helpkeys.Entry {
	if m.filter == "" {
		return m.entries
	}
	matches := fuzzy.Find(m.filter, m.targets)
	filtered := make([]helpkeys.Entry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.entries[match.Index])
	}
	return filtered
}
