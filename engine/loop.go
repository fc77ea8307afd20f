// Package engine runs the single-threaded event loop tying input, the
// simulation state, and the renderer together.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/libration/audio"
	"github.com/lixenwraith/libration/input"
	"github.com/lixenwraith/libration/render"
	"github.com/lixenwraith/libration/sim"
)

// tickInterval paces the animation at roughly 33 Hz. Ticks cannot overlap:
// the loop only selects the next one after the previous frame finished.
const tickInterval = 30 * time.Millisecond

// Loop owns the simulation state. All mutation happens on the goroutine
// running Run; the render pass is a pure read between mutations.
type Loop struct {
	screen   tcell.Screen
	state    *sim.State
	cfg      sim.Config
	clock    sim.Clock
	renderer *render.Renderer
	sounds   *audio.Player
}

// New wires a loop over an initialized screen.
func New(screen tcell.Screen, state *sim.State, cfg sim.Config, clock sim.Clock, sounds *audio.Player) *Loop {
	return &Loop{
		screen:   screen,
		state:    state,
		cfg:      cfg,
		clock:    clock,
		renderer: render.New(screen, cfg),
		sounds:   sounds,
	}
}

// Run blocks until the user quits.
func (l *Loop) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- l.screen.PollEvent()
		}
	}()

	l.renderer.Draw(l.state)
	for {
		select {
		case ev := <-events:
			if !l.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			l.state.Tick(l.clock.Now())
			l.renderer.Draw(l.state)
		}
	}
}

func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.apply(input.Resolve(ev))
	case *tcell.EventResize:
		l.screen.Sync()
		l.renderer.Draw(l.state)
	}
	return true
}

// apply mutates the state for one action and redraws. It returns false on
// quit.
func (l *Loop) apply(a input.Action) bool {
	switch a {
	case input.ActionQuit:
		return false
	case input.ActionTogglePlay:
		l.state.TogglePlay()
		l.sounds.Play(audio.CueToggle)
	case input.ActionEccentricityUp:
		l.cueAdjust(l.state.AdjustEccentricity(sim.EccentricityStep))
	case input.ActionEccentricityDown:
		l.cueAdjust(l.state.AdjustEccentricity(-sim.EccentricityStep))
	case input.ActionZoomIn:
		l.state.ZoomIn()
		l.sounds.Play(audio.CueAdjust)
	case input.ActionZoomOut:
		l.state.ZoomOut()
		l.sounds.Play(audio.CueAdjust)
	case input.ActionToggleCenterMoon:
		if l.cfg.AllowCenterMoon {
			l.state.ToggleCenterMoon()
			l.sounds.Play(audio.CueToggle)
		}
	case input.ActionNone:
	}
	l.renderer.Draw(l.state)
	return true
}

func (l *Loop) cueAdjust(changed bool) {
	if changed {
		l.sounds.Play(audio.CueAdjust)
	} else {
		l.sounds.Play(audio.CueClamp)
	}
}
