// Package config loads key-binding declarations and dispatch options from
// TOML or YAML files, merging user configuration over shipped defaults.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tuikeys/hotkeys"
)

// StringList allows values to be specified as a string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = StringList(out)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	var single string
	if err := value.Decode(&single); err == nil {
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := value.Decode(&many); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*l = StringList(many)
	return nil
}

// BindingConfig declares the keys for one action. Exactly one of Key and Seq
// must be set: Key lists alternative single keys, Seq one ordered multi-key
// sequence.
type BindingConfig struct {
	Action string     `toml:"action" yaml:"action"`
	Key    StringList `toml:"key" yaml:"key"`
	Seq    StringList `toml:"seq" yaml:"seq"`
	Desc   string     `toml:"desc" yaml:"desc"`
}

func (b BindingConfig) validate() error {
	if strings.TrimSpace(b.Action) == "" {
		return fmt.Errorf("binding action is required")
	}

	hasKey := len(b.Key) > 0
	hasSeq := len(b.Seq) > 0
	if hasKey == hasSeq {
		return fmt.Errorf("binding %q must set exactly one of key or seq", b.Action)
	}

	for _, key := range b.Key {
		if key == "" {
			return fmt.Errorf("binding %q contains empty key", b.Action)
		}
	}
	for _, seqKey := range b.Seq {
		if seqKey == "" {
			return fmt.Errorf("binding %q contains empty sequence key", b.Action)
		}
	}
	if len(b.Seq) == 1 {
		return fmt.Errorf("binding %q has seq with only one key; use key instead", b.Action)
	}

	return nil
}

// Config is a parsed key-binding file.
type Config struct {
	Bindings []BindingConfig `toml:"bindings" yaml:"bindings"`
	Options  map[string]any  `toml:"options" yaml:"options"`
}

// Validate checks the structure of every binding. Whether an action name
// means anything is the dispatch unit's concern and is not checked here.
func (c *Config) Validate() error {
	for i, binding := range c.Bindings {
		if err := binding.validate(); err != nil {
			return fmt.Errorf("invalid binding at index %d: %w", i, err)
		}
	}
	return nil
}

// KeyMap collapses the bindings into the action key map handed to Compose.
// Alternative single keys become separate one-key specs; a seq becomes one
// ordered spec.
func (c *Config) KeyMap() hotkeys.KeyMap {
	if len(c.Bindings) == 0 {
		return nil
	}
	km := make(hotkeys.KeyMap, len(c.Bindings))
	for _, binding := range c.Bindings {
		action := hotkeys.Action(strings.TrimSpace(binding.Action))
		if action == "" {
			continue
		}
		if len(binding.Seq) > 0 {
			km[action] = append(km[action], hotkeys.KeySpec(binding.Seq))
			continue
		}
		for _, key := range binding.Key {
			km[action] = append(km[action], hotkeys.KeySpec{key})
		}
	}
	return km
}

// Props returns the compose-time overrides from the options table.
func (c *Config) Props() hotkeys.Props {
	if len(c.Options) == 0 {
		return nil
	}
	props := make(hotkeys.Props, len(c.Options))
	for name, value := range c.Options {
		props[name] = value
	}
	return props
}

// Descriptions returns the per-action descriptions declared in the file,
// keyed by action. Later bindings win when an action repeats.
func (c *Config) Descriptions() map[hotkeys.Action]string {
	if len(c.Bindings) == 0 {
		return nil
	}
	descs := make(map[hotkeys.Action]string, len(c.Bindings))
	for _, binding := range c.Bindings {
		action := hotkeys.Action(strings.TrimSpace(binding.Action))
		if action == "" {
			continue
		}
		if desc := strings.TrimSpace(binding.Desc); desc != "" {
			descs[action] = desc
		}
	}
	return descs
}
