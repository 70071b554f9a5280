package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/poetics/render"
	"github.com/stretchr/testify/assert"
)

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(10, 20, 4, 2, 0, 4)
	want := []point{{14, 20}, {10, 22}, {6, 20}, {10, 18}}
	for i := range want {
		assert.InDelta(t, want[i].x, pts[i].x, 1e-9)
		assert.InDelta(t, want[i].y, pts[i].y, 1e-9)
	}

	rotated := ellipsePoints(0, 0, 4, 2, math.Pi/2, 4)
	assert.InDelta(t, 0, rotated[0].x, 1e-9, "major axis turns with the angle")
	assert.InDelta(t, 4, rotated[0].y, 1e-9)
}

func TestSegmentsFor(t *testing.T) {
	assert.Equal(t, 12, segmentsFor(0))
	assert.Equal(t, 12, segmentsFor(6))
	assert.Equal(t, 30, segmentsFor(20))
	assert.Equal(t, 96, segmentsFor(1000))
}

func TestStrokeWidth(t *testing.T) {
	assert.Equal(t, 1.0, strokeWidth(0, render.Identity()), "unset width draws a hairline")
	assert.InDelta(t, 3.0, strokeWidth(1.5, render.Identity().Scaled(2, 2)), 1e-9)
}

func TestVertexColor(t *testing.T) {
	tests := []struct {
		name       string
		c          color.RGBA
		alpha      float64
		r, g, b, a float32
	}{
		{name: "opaque", c: color.RGBA{R: 255, G: 68, A: 255}, alpha: 1, r: 1, g: 68.0 / 255, a: 1},
		{name: "faded", c: color.RGBA{B: 255, A: 255}, alpha: 0.25, b: 1, a: 0.25},
		{name: "clamped", c: color.RGBA{A: 51}, alpha: 4, a: 0.2},
		{name: "negative", c: color.RGBA{A: 255}, alpha: -1, a: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := vertexColor(tt.c, tt.alpha)
			assert.InDelta(t, tt.r, r, 1e-6)
			assert.InDelta(t, tt.g, g, 1e-6)
			assert.InDelta(t, tt.b, b, 1e-6)
			assert.InDelta(t, tt.a, a, 1e-6)
		})
	}
}

func TestDrawWithoutScreenIsNoop(t *testing.T) {
	l := render.NewList(1)
	l.Add(render.Circle(render.LayerBall, 0, 0, 6).WithFill(color.RGBA{A: 255}))
	assert.NotPanics(t, func() {
		New().Execute(nil, l)
		New().Execute(nil, nil)
	})
}
