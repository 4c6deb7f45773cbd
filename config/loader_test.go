package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuikeys/hotkeys"
)

func TestParseTOML(t *testing.T) {
	cfg, err := Parse(".toml", []byte(`
[[bindings]]
action = "logConsole"
key = "down"

[[bindings]]
action = "moveUp"
key = ["up", "k"]
desc = "move up"

[[bindings]]
action = "gitPush"
seq = ["g", "p"]

[options]
component = "span"
`))
	require.NoError(t, err)

	km := cfg.KeyMap()
	require.Equal(t, []hotkeys.KeySpec{{"down"}}, km["logConsole"])
	require.Equal(t, []hotkeys.KeySpec{{"up"}, {"k"}}, km["moveUp"])
	require.Equal(t, []hotkeys.KeySpec{{"g", "p"}}, km["gitPush"])

	require.Equal(t, hotkeys.Props{"component": "span"}, cfg.Props())
	require.Equal(t, "move up", cfg.Descriptions()["moveUp"])
}

func TestParseYAML(t *testing.T) {
	cfg, err := Parse(".yaml", []byte(`
bindings:
  - action: logConsole
    key: down
  - action: moveUp
    key: [up, k]
  - action: gitPush
    seq: [g, p]
options:
  foo: bar
`))
	require.NoError(t, err)

	km := cfg.KeyMap()
	require.Equal(t, []hotkeys.KeySpec{{"down"}}, km["logConsole"])
	require.Equal(t, []hotkeys.KeySpec{{"up"}, {"k"}}, km["moveUp"])
	require.Equal(t, []hotkeys.KeySpec{{"g", "p"}}, km["gitPush"])
	require.Equal(t, "bar", cfg.Props()["foo"])
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	_, err := Parse(".json", []byte(`{}`))
	require.Error(t, err)
}

func TestValidateRejectsBadBindings(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "missing action",
			toml: "[[bindings]]\nkey = \"a\"\n",
		},
		{
			name: "both key and seq",
			toml: "[[bindings]]\naction = \"x\"\nkey = \"a\"\nseq = [\"g\", \"p\"]\n",
		},
		{
			name: "neither key nor seq",
			toml: "[[bindings]]\naction = \"x\"\n",
		},
		{
			name: "single element seq",
			toml: "[[bindings]]\naction = \"x\"\nseq = [\"g\"]\n",
		},
		{
			name: "empty key",
			toml: "[[bindings]]\naction = \"x\"\nkey = \"\"\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(".toml", []byte(tc.toml))
			require.Error(t, err)
		})
	}
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "bindings.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[bindings]]\naction = \"a\"\nkey = \"x\"\n"), 0o644))
	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	require.Len(t, cfg.Bindings, 1)

	yamlPath := filepath.Join(dir, "bindings.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("bindings:\n  - action: a\n    key: x\n"), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	require.Len(t, cfg.Bindings, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
