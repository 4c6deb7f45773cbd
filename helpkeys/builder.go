// Package helpkeys derives help entries and bubbles key bindings from an
// action key map, so wrapped applications can surface their shortcuts in
// help views without re-declaring them.
package helpkeys

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tuikeys/hotkeys"
)

// Entry is a help line rendered as "key  description".
type Entry struct {
	Action hotkeys.Action
	Label  string
	Desc   string
}

// Build returns one entry per action, sorted by action name for stable
// display. descs supplies per-action descriptions; a missing description is
// derived from the action name.
func Build(km hotkeys.KeyMap, descs map[hotkeys.Action]string) []Entry {
	entries := make([]Entry, 0, len(km))
	for action, specs := range km {
		label := Label(specs)
		if label == "" {
			continue
		}
		entries = append(entries, Entry{
			Action: action,
			Label:  label,
			Desc:   describe(action, descs),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Action < entries[j].Action
	})
	return entries
}

// Label renders key specs for display: alternatives joined with "/",
// sequence keys with spaces.
func Label(specs []hotkeys.KeySpec) string {
	alternatives := make([]string, 0, len(specs))
	for _, spec := range specs {
		keys := make([]string, 0, len(spec))
		for _, k := range spec {
			keys = append(keys, NormalizeDisplayKey(k))
		}
		if len(keys) == 0 {
			continue
		}
		alternatives = append(alternatives, strings.Join(keys, " "))
	}
	return strings.Join(alternatives, "/")
}

// NormalizeDisplayKey maps raw key names to their display form.
func NormalizeDisplayKey(k string) string {
	k = strings.TrimSpace(k)
	switch strings.ToLower(k) {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// describe prefers the declared description and otherwise derives one from
// the action token (last dot segment, underscores become spaces).
func describe(action hotkeys.Action, descs map[hotkeys.Action]string) string {
	if desc := strings.TrimSpace(descs[action]); desc != "" {
		return desc
	}
	token := string(action)
	if idx := strings.LastIndexByte(token, '.'); idx >= 0 && idx < len(token)-1 {
		token = token[idx+1:]
	}
	return strings.ReplaceAll(token, "_", " ")
}

// Bindings returns bubbles key bindings for the key map, one per action. A
// sequence spec contributes only its display label; its individual keys are
// not bound, since chord matching is the dispatch unit's job.
func Bindings(km hotkeys.KeyMap, descs map[hotkeys.Action]string) []key.Binding {
	entries := Build(km, descs)
	bindings := make([]key.Binding, 0, len(entries))
	for _, entry := range entries {
		keys := make([]string, 0, len(km[entry.Action]))
		for _, spec := range km[entry.Action] {
			if len(spec) == 1 {
				keys = append(keys, spec[0])
			}
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(entry.Label, entry.Desc),
		))
	}
	return bindings
}
