package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/libration/orbit"
	"github.com/lixenwraith/libration/sim"
)

// World-space sizes of the drawn bodies and the indicator arrow.
const (
	EarthRadius        = 5.0
	MoonRadius         = 1.5
	IndicatorLength    = 20.0
	IndicatorArrowSize = 2.0
)

var (
	earthStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	moonStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(179, 179, 179))
	indicatorStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(204, 0, 0))
	lineStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(128, 255, 255))
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Orbit path gradient endpoints: dim at periapsis, bright at apoapsis,
	// tracking the orbital slowdown away from the focus.
	periapsisColor = colorful.Color{R: 0.35, G: 0.35, B: 0.4}
	apoapsisColor  = colorful.Color{R: 0.85, G: 0.85, B: 0.9}
)

// Renderer assembles one frame of drawing calls from the simulation state.
type Renderer struct {
	surface Surface
	cfg     sim.Config
}

// New creates a renderer over the given surface with the overlay config.
func New(surface Surface, cfg sim.Config) *Renderer {
	return &Renderer{surface: surface, cfg: cfg}
}

// Draw renders one frame. It only reads the state.
func (r *Renderer) Draw(st *sim.State) {
	r.surface.Clear()

	w, h := r.surface.Size()
	cam := NewCamera(w, h, st.Scale)
	eph := orbit.Position(st.Phase, st.Eccentricity)
	if st.CenterMoon {
		cam.Follow(eph.X, eph.Y)
	}
	p := NewPainter(r.surface, cam)

	if r.cfg.ShowEarthMoonLine {
		p.StrokeLine(0, 0, eph.X, eph.Y, '·', lineStyle)
	}

	p.FillCircle(0, 0, EarthRadius, '█', earthStyle)
	r.drawOrbitPath(p, st.Eccentricity)
	p.FillCircle(eph.X, eph.Y, MoonRadius, '█', moonStyle)

	if r.cfg.ShowIndicator {
		// The arrow turns at the constant synchronous-rotation rate while
		// the orbital angle does not, which is the libration being shown.
		p.StrokeArrow(eph.X, eph.Y, -st.Phase*2*math.Pi,
			IndicatorLength, IndicatorArrowSize, '*', indicatorStyle)
	}

	r.drawStatus(st)
	r.surface.Show()
}

// drawOrbitPath strokes the sampled ellipse, blending each segment's color
// by its distance from the focus.
func (r *Renderer) drawOrbitPath(p *Painter, ecc float64) {
	rMin := orbit.Radius(orbit.MoonOrbitRadius, 0, ecc)
	rMax := orbit.Radius(orbit.MoonOrbitRadius, math.Pi, ecc)

	s := orbit.NewPathSampler(ecc, orbit.DefaultPathStep)
	for {
		seg, ok := s.Next()
		if !ok {
			return
		}
		t := 0.0
		if rMax > rMin {
			d := math.Hypot(seg.X1, seg.Y1)
			t = (d - rMin) / (rMax - rMin)
		}
		c := periapsisColor.BlendLuv(apoapsisColor, clamp01(t))
		ri, gi, bi := c.RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(ri), int32(gi), int32(bi)))
		p.StrokeLine(seg.X1, seg.Y1, seg.X2, seg.Y2, '·', style)
	}
}

func (r *Renderer) drawStatus(st *sim.State) {
	state := "paused"
	if st.Playing {
		state = "playing"
	}
	framing := "earth"
	if st.CenterMoon {
		framing = "moon"
	}
	text := fmt.Sprintf(" e=%.2f  period=%.1fs  scale=%.1f  [%s/%s]  space:play e/q:ecc z/x:zoom c:center",
		st.Eccentricity, st.Period, st.Scale, state, framing)

	w, h := r.surface.Size()
	if h == 0 {
		return
	}
	for i, ch := range text {
		if i >= w {
			break
		}
		r.surface.SetContent(i, h-1, ch, nil, statusStyle)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
