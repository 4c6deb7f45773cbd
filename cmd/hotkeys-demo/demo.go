package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuikeys/hotkeys"
	"github.com/tuikeys/hotkeys/helpkeys"
	"github.com/tuikeys/hotkeys/helpview"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// demo is the wrapped target: a log console that declares its hotkey
// handlers and lets the wrapper register them.
type demo struct {
	lines    []string
	helpKeys helpkeys.KeyMap
	helpBar  help.Model
	helpPage *helpview.Model
	showHelp bool
}

func newDemo(keyMap hotkeys.KeyMap, descs map[hotkeys.Action]string) *demo {
	return &demo{
		helpKeys: helpkeys.NewKeyMap(keyMap, descs),
		helpBar:  help.New(),
		helpPage: helpview.New(keyMap, descs, helpview.WithTitle("all bindings")),
	}
}

// HotKeyHandlers declares what this view does for each action it supports.
// The bound methods need the constructed instance, which is why the wrapper
// reads this after mount rather than at composition time.
func (d *demo) HotKeyHandlers() hotkeys.HandlerMap {
	return hotkeys.HandlerMap{
		"logConsole": d.logLine,
		"clearLog":   d.clearLog,
		"toggleHelp": d.toggleHelp,
		"quit":       func() tea.Cmd { return tea.Quit },
	}
}

func (d *demo) logLine() tea.Cmd {
	d.lines = append(d.lines, fmt.Sprintf("%s  log entry #%d", time.Now().Format("15:04:05"), len(d.lines)+1))
	return nil
}

func (d *demo) clearLog() tea.Cmd {
	d.lines = nil
	return nil
}

func (d *demo) toggleHelp() tea.Cmd {
	d.showHelp = !d.showHelp
	return nil
}

func (d *demo) Init() tea.Cmd {
	return nil
}

func (d *demo) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.helpBar.Width = msg.Width
		return d.helpPage.Update(msg)
	}
	if d.showHelp {
		return d.helpPage.Update(msg)
	}
	return nil
}

func (d *demo) View() string {
	if d.showHelp {
		return d.helpPage.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("hotkeys demo"))
	b.WriteString("\n\n")
	if len(d.lines) == 0 {
		b.WriteString(dimStyle.Render("log is empty"))
		b.WriteString("\n")
	}
	for _, line := range d.lines {
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(d.helpBar.View(d.helpKeys))
	return b.String()
}
