// Package field renders the attention grid: a lattice of small rectangles
// that turn toward the pointer and stretch as it approaches.
package field

import (
	"math"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
)

// PointerState is the last pointer position in canvas space
type PointerState struct {
	X, Y float64
}

// Away is the sentinel for "no pointer over the canvas"
func Away() PointerState {
	return PointerState{X: cfg.Field.OffscreenX, Y: cfg.Field.OffscreenY}
}

// Inside reports whether the pointer lies strictly within a w by h canvas
func (p PointerState) Inside(w, h float64) bool {
	return p.X > 0 && p.X < w && p.Y > 0 && p.Y < h
}

// CellTransform is the deformation of one lattice cell
type CellTransform struct {
	Angle  float64
	ScaleX float64
	ScaleY float64
}

// Grid is the lattice laid over the canvas
type Grid struct {
	Cols, Rows int
	Width      float64
	Height     float64
}

// Resize recomputes the lattice for a w by h canvas
func (g *Grid) Resize(w, h float64) {
	gap := cfg.Field.Gap
	g.Width, g.Height = w, h
	g.Cols = int(math.Ceil(w / gap))
	g.Rows = int(math.Ceil(h / gap))
	if g.Cols < 0 {
		g.Cols = 0
	}
	if g.Rows < 0 {
		g.Rows = 0
	}
}

// Center returns the canvas position of lattice point (ix, iy)
func (g *Grid) Center(ix, iy int) (float64, float64) {
	gap := cfg.Field.Gap
	return float64(ix)*gap + gap/2, float64(iy)*gap + gap/2
}

// Cell computes the deformation of the cell at lattice (ix, iy) centered at
// (cx, cy). Inside the influence radius the cell faces the pointer and
// stretches with a linear falloff; outside it sways with time at unit scale.
func Cell(ix, iy int, cx, cy float64, p PointerState, seconds float64) CellTransform {
	f := cfg.Field
	dx, dy := p.X-cx, p.Y-cy
	dist := math.Hypot(dx, dy)

	if dist < f.Radius {
		intensity := 1 - dist/f.Radius
		return CellTransform{
			Angle:  math.Atan2(dy, dx),
			ScaleX: 1 + f.StretchX*intensity,
			ScaleY: 1 - f.SquashY*intensity,
		}
	}

	phase := seconds + float64(ix)*f.SwayIndexFactor + float64(iy)*f.SwayIndexFactor
	return CellTransform{
		Angle:  math.Sin(phase) * f.SwayAmplitude,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// Simulation owns the grid and produces one frame of commands per Step
type Simulation struct {
	grid Grid
	list *render.List
}

// NewSimulation returns a field with an empty lattice. The first Step sizes it.
func NewSimulation() *Simulation {
	return &Simulation{list: render.NewList(256)}
}

// Grid returns the current lattice
func (s *Simulation) Grid() Grid {
	return s.grid
}

// Step draws the field for one frame. The lattice follows the canvas size.
func (s *Simulation) Step(fc render.FrameContext, p PointerState) *render.List {
	f := cfg.Field
	if fc.CanvasWidth != s.grid.Width || fc.CanvasHeight != s.grid.Height {
		s.grid.Resize(fc.CanvasWidth, fc.CanvasHeight)
	}

	s.list.Reset()
	s.list.Add(render.Clear(render.LayerBackground, f.BackgroundColor))

	seconds := fc.ElapsedMs / 1000
	half := f.CellSize / 2
	for ix := 0; ix < s.grid.Cols; ix++ {
		for iy := 0; iy < s.grid.Rows; iy++ {
			cx, cy := s.grid.Center(ix, iy)
			ct := Cell(ix, iy, cx, cy, p, seconds)
			tr := render.At(cx, cy).Rotated(ct.Angle).Scaled(ct.ScaleX, ct.ScaleY)
			s.list.Add(render.Rect(render.LayerGrid, -half, -half, f.CellSize, f.CellSize).
				WithTransform(tr).
				WithFill(f.CellColor))
		}
	}

	if p.Inside(fc.CanvasWidth, fc.CanvasHeight) {
		size := f.CrosshairSize
		s.list.Add(
			render.Line(render.LayerOverlay, p.X-size, p.Y, p.X+size, p.Y).WithStroke(f.CrosshairColor, f.CrosshairWidth),
			render.Line(render.LayerOverlay, p.X, p.Y-size, p.X, p.Y+size).WithStroke(f.CrosshairColor, f.CrosshairWidth),
		)
	}

	return s.list
}
