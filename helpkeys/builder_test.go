package helpkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuikeys/hotkeys"
)

func TestBuildSortsByAction(t *testing.T) {
	entries := Build(hotkeys.KeyMap{
		"zoom":  {{"z"}},
		"abort": {{"esc"}},
		"move":  {{"m"}},
	}, nil)

	require.Len(t, entries, 3)
	assert.Equal(t, hotkeys.Action("abort"), entries[0].Action)
	assert.Equal(t, hotkeys.Action("move"), entries[1].Action)
	assert.Equal(t, hotkeys.Action("zoom"), entries[2].Action)
}

func TestLabelRendering(t *testing.T) {
	assert.Equal(t, "j/↓", Label([]hotkeys.KeySpec{{"j"}, {"down"}}))
	assert.Equal(t, "g p", Label([]hotkeys.KeySpec{{"g", "p"}}))
	assert.Equal(t, "space", Label([]hotkeys.KeySpec{{" "}}))
	assert.Equal(t, "", Label(nil))
}

func TestDescriptionFallsBackToActionToken(t *testing.T) {
	entries := Build(hotkeys.KeyMap{
		"log.clear_console": {{"c"}},
	}, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "clear console", entries[0].Desc)

	entries = Build(hotkeys.KeyMap{
		"log.clear_console": {{"c"}},
	}, map[hotkeys.Action]string{"log.clear_console": "wipe the log"})
	assert.Equal(t, "wipe the log", entries[0].Desc)
}

func TestBindingsBindSingleKeysOnly(t *testing.T) {
	bindings := Bindings(hotkeys.KeyMap{
		"push": {{"g", "p"}, {"P"}},
	}, nil)

	require.Len(t, bindings, 1)
	assert.Equal(t, []string{"P"}, bindings[0].Keys())
	assert.Equal(t, "g p/P", bindings[0].Help().Key)
}

func TestFullHelpChunksIntoColumns(t *testing.T) {
	km := make(hotkeys.KeyMap)
	for _, action := range []hotkeys.Action{"a", "b", "c", "d", "e", "f"} {
		km[action] = []hotkeys.KeySpec{{string(action)}}
	}

	full := NewKeyMap(km, nil).FullHelp()
	require.Len(t, full, 2)
	assert.Len(t, full[0], 4)
	assert.Len(t, full[1], 2)
}
