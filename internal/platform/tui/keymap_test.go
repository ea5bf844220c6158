package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/inertia/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"w is up", runeKey('w'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s is down", runeKey('s'), core.ActionDown, false},
		{"a is left", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space is brake", tea.KeyMsg{Type: tea.KeySpace}, core.ActionBrake, false},
		{"p is pause", runeKey('p'), core.ActionPause, false},
		{"r is restart", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.want || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), action, quit, tc.want, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('d'), &frame); quit {
		t.Error("movement key reported as quit")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("frame missing the mapped action")
	}

	// Unbound keys leave the frame untouched
	before := len(frame.Actions)
	km.MapKeyToFrame(runeKey('z'), &frame)
	if len(frame.Actions) != before {
		t.Error("unbound key modified the frame")
	}
}
