package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuikeys/hotkeys"
)

func TestMergeUserBindingShadowsDefaults(t *testing.T) {
	base := &Config{Bindings: []BindingConfig{
		{Action: "moveUp", Key: StringList{"up", "k"}},
		{Action: "quit", Key: StringList{"q"}},
	}}
	overlay := &Config{Bindings: []BindingConfig{
		{Action: "moveUp", Key: StringList{"w"}},
	}}

	merged := Merge(base, overlay)

	km := merged.KeyMap()
	require.Equal(t, []hotkeys.KeySpec{{"w"}}, km["moveUp"])
	require.Equal(t, []hotkeys.KeySpec{{"q"}}, km["quit"])
}

func TestMergeOptionsWinPerKey(t *testing.T) {
	base := &Config{Options: map[string]any{"component": "span", "foo": "bar"}}
	overlay := &Config{Options: map[string]any{"component": "passthrough"}}

	merged := Merge(base, overlay)

	require.Equal(t, "passthrough", merged.Options["component"])
	require.Equal(t, "bar", merged.Options["foo"])
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	base := &Config{
		Bindings: []BindingConfig{{Action: "quit", Key: StringList{"q"}}},
		Options:  map[string]any{"foo": "bar"},
	}
	overlay := &Config{
		Bindings: []BindingConfig{{Action: "quit", Key: StringList{"x"}}},
		Options:  map[string]any{"foo": "baz"},
	}

	Merge(base, overlay)

	require.Equal(t, StringList{"q"}, base.Bindings[0].Key)
	require.Equal(t, "bar", base.Options["foo"])
}

func TestMergeNilInputs(t *testing.T) {
	merged := Merge(nil, &Config{Bindings: []BindingConfig{{Action: "a", Key: StringList{"x"}}}})
	require.Len(t, merged.Bindings, 1)

	merged = Merge(&Config{}, nil)
	require.Empty(t, merged.Bindings)
}
