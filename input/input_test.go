package input

import (
	"testing"

	"github.com/lixenwraith/ascii3d/terminal"
)

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestDefaultKeyTable_Lookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   terminal.Event
		want Intent
	}{
		{"Arrow up", keyEvent(terminal.KeyUp), IntentRotateUp},
		{"Arrow down", keyEvent(terminal.KeyDown), IntentRotateDown},
		{"Arrow left", keyEvent(terminal.KeyLeft), IntentRotateLeft},
		{"Arrow right", keyEvent(terminal.KeyRight), IntentRotateRight},
		{"w alias", runeEvent('w'), IntentRotateUp},
		{"l alias", runeEvent('l'), IntentRotateRight},
		{"Roll z", runeEvent('z'), IntentRollLeft},
		{"Roll x", runeEvent('x'), IntentRollRight},
		{"Speed down", runeEvent('.'), IntentSpeedDown},
		{"Speed up", runeEvent('/'), IntentSpeedUp},
		{"Menu", runeEvent('m'), IntentMenu},
		{"Quit q", runeEvent('q'), IntentQuit},
		{"Quit Ctrl+C", keyEvent(terminal.KeyCtrlC), IntentQuit},
		{"Select sphere", runeEvent('2'), IntentSelectSphere},
		{"Unbound rune", runeEvent('?'), IntentUnknown},
		{"Unbound key", keyEvent(terminal.KeyTab), IntentUnknown},
		{"Resize", terminal.Event{Type: terminal.EventResize, Width: 80, Height: 24}, IntentNone},
		{"Input closed", terminal.Event{Type: terminal.EventClosed}, IntentQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntentNames(t *testing.T) {
	for name, in := range actionNames {
		got, ok := IntentByName(name)
		if !ok || got != in {
			t.Errorf("IntentByName(%q) = %v, %v", name, got, ok)
		}
		if in.String() != name {
			t.Errorf("Expected String() %q, got %q", name, in.String())
		}
	}
	if IntentUnknown.String() != "unknown" {
		t.Errorf("Expected unknown, got %q", IntentUnknown.String())
	}
}

func TestIsRotation(t *testing.T) {
	for _, in := range []Intent{IntentRotateUp, IntentRotateDown, IntentRotateLeft, IntentRotateRight, IntentRollLeft, IntentRollRight} {
		if !in.IsRotation() {
			t.Errorf("Expected %v to be a rotation", in)
		}
	}
	for _, in := range []Intent{IntentNone, IntentSpeedUp, IntentMenu, IntentQuit, IntentUnknown} {
		if in.IsRotation() {
			t.Errorf("Expected %v not to be a rotation", in)
		}
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"up":    "speed_up",
		"space": "menu",
		"e":     "roll_right",
		"q":     "none",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	if kt.Keys[terminal.KeyUp] != IntentSpeedUp {
		t.Errorf("Expected up → speed_up, got %v", kt.Keys[terminal.KeyUp])
	}
	if kt.Runes[' '] != IntentMenu {
		t.Errorf("Expected space → menu, got %v", kt.Runes[' '])
	}
	if kt.Runes['e'] != IntentRollRight {
		t.Errorf("Expected e → roll_right, got %v", kt.Runes['e'])
	}

	merged := MergeKeyTable(DefaultKeyTable(), kt)
	if _, ok := merged.Runes['q']; ok {
		t.Error("Expected q to be unbound after merge")
	}
	if merged.Lookup(keyEvent(terminal.KeyUp)) != IntentSpeedUp {
		t.Error("Expected override to replace arrow binding")
	}
	if merged.Lookup(runeEvent('w')) != IntentRotateUp {
		t.Error("Expected untouched default to survive merge")
	}

	// Base must not be mutated
	base := DefaultKeyTable()
	MergeKeyTable(base, kt)
	if base.Runes['q'] != IntentQuit {
		t.Error("MergeKeyTable mutated base table")
	}
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"Unknown action", map[string]string{"w": "jump"}},
		{"Invalid key", map[string]string{"notakey": "quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig(tt.bindings); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
