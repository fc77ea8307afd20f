package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestResolveVocabulary(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{key(' '), ActionTogglePlay},
		{key('e'), ActionEccentricityUp},
		{key('E'), ActionEccentricityUp},
		{key('q'), ActionEccentricityDown},
		{key('Q'), ActionEccentricityDown},
		{key('z'), ActionZoomIn},
		{key('Z'), ActionZoomIn},
		{key('x'), ActionZoomOut},
		{key('X'), ActionZoomOut},
		{key('c'), ActionToggleCenterMoon},
		{key('C'), ActionToggleCenterMoon},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), ActionQuit},
		{key('w'), ActionNone},
		{key('1'), ActionNone},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionNone},
	}
	for _, c := range cases {
		if got := Resolve(c.ev); got != c.want {
			t.Errorf("Resolve(%v %q) = %v, want %v", c.ev.Key(), c.ev.Rune(), got, c.want)
		}
	}
}

func TestActionNames(t *testing.T) {
	if got := ActionTogglePlay.String(); got != "toggle-play" {
		t.Errorf("ActionTogglePlay.String() = %q", got)
	}
	if got := Action(99).String(); got != "unknown" {
		t.Errorf("out-of-range action name = %q", got)
	}
}
