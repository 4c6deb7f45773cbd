package config

import "strings"

// Merge overlays user configuration over base. A user binding shadows every
// base binding for the same action, so rebinding an action in a user file
// fully replaces its default keys. Options win per key. Neither input is
// modified.
func Merge(base, overlay *Config) *Config {
	if base == nil {
		base = &Config{}
	}
	if overlay == nil {
		overlay = &Config{}
	}

	shadowed := make(map[string]struct{}, len(overlay.Bindings))
	for _, binding := range overlay.Bindings {
		action := strings.TrimSpace(binding.Action)
		if action == "" {
			continue
		}
		shadowed[action] = struct{}{}
	}

	merged := &Config{}
	for _, binding := range base.Bindings {
		if _, ok := shadowed[strings.TrimSpace(binding.Action)]; ok {
			continue
		}
		merged.Bindings = append(merged.Bindings, binding)
	}
	merged.Bindings = append(merged.Bindings, overlay.Bindings...)

	if len(base.Options) > 0 || len(overlay.Options) > 0 {
		merged.Options = make(map[string]any, len(base.Options)+len(overlay.Options))
		for name, value := range base.Options {
			merged.Options[name] = value
		}
		for name, value := range overlay.Options {
			merged.Options[name] = value
		}
	}

	return merged
}
