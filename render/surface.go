// Package render turns the simulation state into terminal drawing calls:
// camera transform, fill/stroke primitives, and per-frame scene assembly.
package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderer draws through. A full
// tcell.Screen satisfies it; tests substitute an in-memory grid.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Clear()
	Show()
}
