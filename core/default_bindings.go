package core

import "strings"

// DefaultKeyBindings is the stock binding table for the demo frame: global
// app actions plus per-variant extras. Action names double as command IDs
// where a command exists.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+s"}, Action: "save", Description: "save file", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+o"}, Action: "open", Description: "open file", Scopes: []string{"*"}},
		{Keys: []string{"f1", "?"}, Action: "help", Description: "help", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "container", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "enhanced", Scopes: []string{"*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "dynamic", Scopes: []string{"*"}},
		{Keys: []string{"t"}, Action: "tick-status", Description: "tick status", Scopes: []string{"tab:dynamic"}},
		{Keys: []string{"e"}, Action: "fail-status", Description: "simulate error", Scopes: []string{"tab:dynamic"}},
		{Keys: []string{"r"}, Action: "reset-status", Description: "reset status", Scopes: []string{"tab:dynamic"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:help"}},
	}
}

// ApplyActionKeybindings rebinds actions to the keys in actionKeys, leaving
// untouched actions on their defaults. Used for config overrides.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

// KeybindingsByAction reports the first key set per action, for writing a
// config file back out.
func KeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}
