package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/libration/audio"
	"github.com/lixenwraith/libration/engine"
	"github.com/lixenwraith/libration/sim"
)

var (
	periodFlag  = flag.Float64("period", sim.DefaultPeriod, "wall-clock seconds per full orbit")
	eccFlag     = flag.Float64("ecc", 0, "initial eccentricity, clamped to [0, 0.99]")
	scaleFlag   = flag.Float64("scale", sim.DefaultScale, "world units across the smaller viewport dimension")
	noIndicator = flag.Bool("no-indicator", false, "hide the synchronous-rotation indicator arrow")
	noLine      = flag.Bool("no-line", false, "hide the earth-moon connecting line")
	noCenter    = flag.Bool("no-center", false, "disable the center-on-moon toggle")
	mute        = flag.Bool("mute", false, "disable audio cues")
)

func main() {
	flag.Parse()

	state := sim.NewState()
	if *periodFlag > 0 {
		state.Period = *periodFlag
	}
	if *scaleFlag > 0 {
		state.Scale = *scaleFlag
	}
	state.AdjustEccentricity(*eccFlag)

	cfg := sim.Config{
		ShowIndicator:     !*noIndicator,
		ShowEarthMoonLine: !*noLine,
		AllowCenterMoon:   !*noCenter,
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash, so the trace is
	// readable after the screen resets.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "libration crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sounds, err := audio.NewPlayer(*mute)
	if err != nil {
		// Non-fatal, the animation runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Close()

	engine.New(screen, state, cfg, sim.SystemClock{}, sounds).Run()
}
