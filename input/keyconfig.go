package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ascii3d/terminal"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"period":    '.',
	"dot":       '.',
	"slash":     '/',
}

// LoadKeyConfig parses key name → action name bindings into a sparse override KeyTable
// Named keys (arrows, ctrl_c) go to Keys, single characters and aliases to Runes
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[terminal.Key]Intent),
		Runes: make(map[rune]Intent),
	}

	for keyStr, actionName := range bindings {
		in, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if k, ok := terminal.KeyByName(strings.ToLower(keyStr)); ok {
			kt.Keys[k] = in
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		kt.Runes[r] = in
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected key name, single character or alias)", s)
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := IntentByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
