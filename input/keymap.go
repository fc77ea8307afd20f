// Package input decodes terminal key events into simulation actions.
package input

import "github.com/gdamore/tcell/v2"

// Action is a decoded user intent.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePlay
	ActionEccentricityUp
	ActionEccentricityDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleCenterMoon
)

var actionNames = [...]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionTogglePlay:       "toggle-play",
	ActionEccentricityUp:   "eccentricity-up",
	ActionEccentricityDown: "eccentricity-down",
	ActionZoomIn:           "zoom-in",
	ActionZoomOut:          "zoom-out",
	ActionToggleCenterMoon: "toggle-center-moon",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Resolve maps a key event to an action. Keys outside the vocabulary map to
// ActionNone.
func Resolve(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ActionTogglePlay
		case 'e', 'E':
			return ActionEccentricityUp
		case 'q', 'Q':
			return ActionEccentricityDown
		case 'z', 'Z':
			return ActionZoomIn
		case 'x', 'X':
			return ActionZoomOut
		case 'c', 'C':
			return ActionToggleCenterMoon
		}
	}
	return ActionNone
}
