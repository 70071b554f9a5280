// Package render holds the drawing commands a simulation step produces.
//
// Commands are plain data so that simulations can be tested without a
// drawing surface; the canvas package executes them against Ebiten.
package render

import (
	"image/color"
	"math"
	"sort"
)

// Layer orders commands back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlatform
	LayerFloor
	LayerFlower
	LayerSeed
	LayerButterfly
	LayerBall
	LayerOverlay
)

// LayerGrid is where the attention field draws its cells.
const LayerGrid = LayerPlatform

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerPlatform:
		return "platform"
	case LayerFloor:
		return "floor"
	case LayerFlower:
		return "flower"
	case LayerSeed:
		return "seed"
	case LayerButterfly:
		return "butterfly"
	case LayerBall:
		return "ball"
	case LayerOverlay:
		return "overlay"
	}
	return "unknown"
}

// Kind is the primitive a command draws.
type Kind int

const (
	KindClear Kind = iota // fill the whole surface with Fill
	KindRect
	KindCircle
	KindEllipse
	KindLine
	KindPath
)

// Transform maps local coordinates to surface coordinates:
// scale first, then rotate, then translate.
type Transform struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
}

// Identity leaves coordinates unchanged.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// At is an unrotated, unscaled transform placed at (x, y).
func At(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Rotated returns t with its rotation set to r.
func (t Transform) Rotated(r float64) Transform {
	t.Rotation = r
	return t
}

// Scaled returns t with its scale multiplied by (sx, sy).
func (t Transform) Scaled(sx, sy float64) Transform {
	t.ScaleX *= sx
	t.ScaleY *= sy
	return t
}

// Apply maps a local point to surface space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	x *= t.ScaleX
	y *= t.ScaleY
	sin, cos := math.Sincos(t.Rotation)
	return x*cos - y*sin + t.X, x*sin + y*cos + t.Y
}

// LinearScale is the factor applied to lengths such as stroke widths.
func (t Transform) LinearScale() float64 {
	return math.Sqrt(math.Abs(t.ScaleX * t.ScaleY))
}

// SegmentOp is a path instruction.
type SegmentOp int

const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpCubicTo
	OpClose
)

// Segment is one path instruction. MoveTo and LineTo use P[0..1];
// CubicTo uses all six values as two control points and an end point.
type Segment struct {
	Op SegmentOp
	P  [6]float64
}

// Path is a sequence of segments in local coordinates.
type Path []Segment

func (p Path) MoveTo(x, y float64) Path {
	return append(p, Segment{Op: OpMoveTo, P: [6]float64{x, y}})
}

func (p Path) LineTo(x, y float64) Path {
	return append(p, Segment{Op: OpLineTo, P: [6]float64{x, y}})
}

func (p Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, Segment{Op: OpCubicTo, P: [6]float64{c1x, c1y, c2x, c2y, x, y}})
}

func (p Path) Close() Path {
	return append(p, Segment{Op: OpClose})
}

// Command is a single draw instruction.
//
// Geometry is in local coordinates:
//   - Rect: top-left (X, Y), size (W, H)
//   - Circle: center (X, Y), radius W
//   - Ellipse: center (X, Y), radii (W, H), rotated by Angle
//   - Line: from (X, Y) to (X2, Y2)
//   - Path: Path
type Command struct {
	Layer     Layer
	Kind      Kind
	Transform Transform

	X, Y, W, H float64
	X2, Y2     float64
	Angle      float64
	Path       Path

	Fill      color.RGBA
	Filled    bool
	Stroke    color.RGBA
	Stroked   bool
	LineWidth float64
	RoundCap  bool
	Alpha     float64
}

func newCommand(layer Layer, kind Kind) Command {
	return Command{Layer: layer, Kind: kind, Transform: Identity(), Alpha: 1}
}

// Clear fills the whole surface.
func Clear(layer Layer, c color.RGBA) Command {
	cmd := newCommand(layer, KindClear)
	cmd.Fill = c
	cmd.Filled = true
	return cmd
}

func Rect(layer Layer, x, y, w, h float64) Command {
	cmd := newCommand(layer, KindRect)
	cmd.X, cmd.Y, cmd.W, cmd.H = x, y, w, h
	return cmd
}

func Circle(layer Layer, x, y, r float64) Command {
	cmd := newCommand(layer, KindCircle)
	cmd.X, cmd.Y, cmd.W = x, y, r
	return cmd
}

func Ellipse(layer Layer, x, y, rx, ry, angle float64) Command {
	cmd := newCommand(layer, KindEllipse)
	cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Angle = x, y, rx, ry, angle
	return cmd
}

func Line(layer Layer, x1, y1, x2, y2 float64) Command {
	cmd := newCommand(layer, KindLine)
	cmd.X, cmd.Y, cmd.X2, cmd.Y2 = x1, y1, x2, y2
	return cmd
}

func PathCommand(layer Layer, p Path) Command {
	cmd := newCommand(layer, KindPath)
	cmd.Path = p
	return cmd
}

func (c Command) WithFill(col color.RGBA) Command {
	c.Fill = col
	c.Filled = true
	return c
}

func (c Command) WithStroke(col color.RGBA, width float64) Command {
	c.Stroke = col
	c.Stroked = true
	c.LineWidth = width
	return c
}

func (c Command) WithRoundCap() Command {
	c.RoundCap = true
	return c
}

func (c Command) WithTransform(t Transform) Command {
	c.Transform = t
	return c
}

func (c Command) WithAlpha(a float64) Command {
	c.Alpha = a
	return c
}

// List collects commands for one frame.
type List struct {
	cmds []Command
}

// NewList returns an empty list with room for n commands.
func NewList(n int) *List {
	return &List{cmds: make([]Command, 0, n)}
}

func (l *List) Add(cmds ...Command) {
	l.cmds = append(l.cmds, cmds...)
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cmds)
}

// Commands returns the commands ordered back to front. Commands within a
// layer keep their insertion order.
func (l *List) Commands() []Command {
	if l == nil {
		return nil
	}
	sort.SliceStable(l.cmds, func(i, j int) bool {
		return l.cmds[i].Layer < l.cmds[j].Layer
	})
	return l.cmds
}

// Count returns how many commands sit on layer.
func (l *List) Count(layer Layer) int {
	if l == nil {
		return 0
	}
	n := 0
	for i := range l.cmds {
		if l.cmds[i].Layer == layer {
			n++
		}
	}
	return n
}

// Layers returns the distinct layers in back-to-front order of appearance.
func (l *List) Layers() []Layer {
	var out []Layer
	for _, c := range l.Commands() {
		if len(out) == 0 || out[len(out)-1] != c.Layer {
			out = append(out, c.Layer)
		}
	}
	return out
}
