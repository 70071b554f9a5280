package field

import (
	"math"
	"testing"

	"github.com/automoto/poetics/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridResize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		cols, rows int
	}{
		{name: "exact multiple", w: 800, h: 600, cols: 20, rows: 15},
		{name: "partial cells round up", w: 801, h: 39, cols: 21, rows: 1},
		{name: "empty", w: 0, h: 0, cols: 0, rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			g.Resize(1000, 1000)
			g.Resize(tt.w, tt.h)
			assert.Equal(t, tt.cols, g.Cols)
			assert.Equal(t, tt.rows, g.Rows)
		})
	}
}

func TestGridCenter(t *testing.T) {
	var g Grid
	x, y := g.Center(0, 0)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 20.0, y)
	x, y = g.Center(3, 1)
	assert.Equal(t, 140.0, x)
	assert.Equal(t, 60.0, y)
}

func TestCellOutsideRadiusIsIdentityScale(t *testing.T) {
	for _, dist := range []float64{400, 400.0001, 650, 5000} {
		for _, seconds := range []float64{0, 1.3, 90} {
			ct := Cell(2, 7, 100, 100, PointerState{X: 100 + dist, Y: 100}, seconds)
			assert.Equal(t, 1.0, ct.ScaleX, "dist %v", dist)
			assert.Equal(t, 1.0, ct.ScaleY, "dist %v", dist)
			assert.InDelta(t, math.Sin(seconds+0.2+0.7)*0.1, ct.Angle, 1e-12)
		}
	}
}

func TestCellInsideRadiusFalloff(t *testing.T) {
	prev := Cell(0, 0, 0, 0, PointerState{}, 0)
	assert.Equal(t, 3.0, prev.ScaleX, "full stretch on top of the pointer")
	assert.InDelta(t, 0.3, prev.ScaleY, 1e-12)

	for dist := 10.0; dist < 400; dist += 10 {
		ct := Cell(0, 0, 0, 0, PointerState{X: 0, Y: dist}, 0)
		assert.Less(t, ct.ScaleX, prev.ScaleX, "ScaleX decreases with distance")
		assert.Greater(t, ct.ScaleY, prev.ScaleY, "ScaleY increases with distance")
		assert.InDelta(t, math.Pi/2, ct.Angle, 1e-12, "faces the pointer")
		prev = ct
	}

	edge := Cell(0, 0, 0, 0, PointerState{X: 399.999999}, 0)
	assert.InDelta(t, 1, edge.ScaleX, 1e-6)
	assert.InDelta(t, 1, edge.ScaleY, 1e-6)
}

func TestPointerInside(t *testing.T) {
	assert.False(t, Away().Inside(800, 600))
	assert.True(t, PointerState{X: 1, Y: 1}.Inside(800, 600))
	assert.False(t, PointerState{X: 0, Y: 10}.Inside(800, 600), "edges are outside")
	assert.False(t, PointerState{X: 800, Y: 10}.Inside(800, 600))
}

func TestStep(t *testing.T) {
	s := NewSimulation()
	fc := render.FrameContext{CanvasWidth: 120, CanvasHeight: 80, ElapsedMs: 500}

	list := s.Step(fc, Away())
	assert.Equal(t, 3, s.Grid().Cols)
	assert.Equal(t, 2, s.Grid().Rows)
	assert.Equal(t, 6, list.Count(render.LayerGrid))
	assert.Zero(t, list.Count(render.LayerOverlay), "no crosshair while the pointer is away")

	list = s.Step(fc, PointerState{X: 60, Y: 40})
	require.Equal(t, 2, list.Count(render.LayerOverlay))
	cmds := list.Commands()
	assert.Equal(t, render.KindClear, cmds[0].Kind)

	cell := cmds[1]
	assert.Equal(t, 20.0, cell.Transform.X)
	assert.Equal(t, 20.0, cell.Transform.Y)
	assert.Equal(t, -6.0, cell.X)
	assert.Equal(t, 12.0, cell.W)
}

func TestStepFollowsResize(t *testing.T) {
	s := NewSimulation()
	s.Step(render.FrameContext{CanvasWidth: 400, CanvasHeight: 400}, Away())
	list := s.Step(render.FrameContext{CanvasWidth: 80, CanvasHeight: 40}, Away())
	assert.Equal(t, 2, list.Count(render.LayerGrid), "stale dimensions are not reused")
}
