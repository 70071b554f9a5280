package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name   string
		tr     Transform
		x, y   float64
		wx, wy float64
	}{
		{name: "identity", tr: Identity(), x: 3, y: 4, wx: 3, wy: 4},
		{name: "translate", tr: At(10, 20), x: 1, y: 1, wx: 11, wy: 21},
		{name: "quarter turn", tr: Identity().Rotated(math.Pi / 2), x: 1, y: 0, wx: 0, wy: 1},
		{name: "scale then rotate then translate", tr: At(5, 5).Scaled(2, 1).Rotated(math.Pi), x: 1, y: 0, wx: 3, wy: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := tt.tr.Apply(tt.x, tt.y)
			assert.InDelta(t, tt.wx, gx, 1e-9)
			assert.InDelta(t, tt.wy, gy, 1e-9)
		})
	}
}

func TestListOrdersBackToFront(t *testing.T) {
	l := NewList(8)
	l.Add(
		Circle(LayerBall, 0, 0, 6),
		Rect(LayerPlatform, 0, 0, 10, 2),
		Ellipse(LayerButterfly, 0, 0, 1, 1, 0),
		Rect(LayerPlatform, 5, 0, 10, 2),
		Line(LayerFloor, 0, 0, 10, 0),
	)

	want := []Layer{LayerPlatform, LayerFloor, LayerButterfly, LayerBall}
	if diff := cmp.Diff(want, l.Layers()); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}

	cmds := l.Commands()
	assert.Equal(t, 0.0, cmds[0].X, "insertion order kept within a layer")
	assert.Equal(t, 5.0, cmds[1].X)
	assert.Equal(t, 2, l.Count(LayerPlatform))
}

func TestCommandBuilders(t *testing.T) {
	ink := color.RGBA{R: 17, G: 17, B: 17, A: 255}
	c := Line(LayerFlower, 0, 0, 0, -30).WithStroke(ink, 1.5).WithRoundCap().WithAlpha(0.5)

	assert.True(t, c.Stroked)
	assert.False(t, c.Filled)
	assert.True(t, c.RoundCap)
	assert.Equal(t, 1.5, c.LineWidth)
	assert.Equal(t, 0.5, c.Alpha)
	assert.Equal(t, Identity(), c.Transform)
}

func TestPathBuilder(t *testing.T) {
	p := Path(nil).MoveTo(0, -6).CubicTo(4, -4, 4, 4, 0, 6).Close()

	assert.Len(t, p, 3)
	assert.Equal(t, OpCubicTo, p[1].Op)
	assert.Equal(t, [6]float64{4, -4, 4, 4, 0, 6}, p[1].P)
	assert.Equal(t, OpClose, p[2].Op)
}

func TestNilListIsEmpty(t *testing.T) {
	var l *List
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Commands())
}
