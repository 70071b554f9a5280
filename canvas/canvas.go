// Package canvas executes render command lists against an Ebiten image.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/automoto/poetics/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas draws command lists. It reuses its triangle buffers between frames,
// so a Canvas must not be shared between goroutines.
type Canvas struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func New() *Canvas {
	return &Canvas{}
}

// Execute runs list back to front onto screen
func (c *Canvas) Execute(screen *ebiten.Image, list *render.List) {
	if screen == nil || list == nil {
		return
	}
	for _, cmd := range list.Commands() {
		c.drawCommand(screen, cmd)
	}
}

func (c *Canvas) drawCommand(screen *ebiten.Image, cmd render.Command) {
	if cmd.Alpha <= 0 {
		return
	}

	switch cmd.Kind {
	case render.KindClear:
		r, g, b, a := vertexColor(cmd.Fill, cmd.Alpha)
		screen.Fill(color.NRGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: uint8(a * 255)})
		return
	case render.KindLine:
		if cmd.Stroked {
			path := polyline(cmd.Transform, []point{{cmd.X, cmd.Y}, {cmd.X2, cmd.Y2}}, false)
			c.stroke(screen, path, cmd)
		}
		return
	}

	path := c.pathFor(cmd)
	if path == nil {
		return
	}
	if cmd.Filled {
		c.fill(screen, path, cmd.Fill, cmd.Alpha)
	}
	if cmd.Stroked {
		c.stroke(screen, path, cmd)
	}
}

func (c *Canvas) pathFor(cmd render.Command) *vector.Path {
	tr := cmd.Transform
	switch cmd.Kind {
	case render.KindRect:
		return polyline(tr, rectPoints(cmd.X, cmd.Y, cmd.W, cmd.H), true)
	case render.KindCircle:
		return polyline(tr, ellipsePoints(cmd.X, cmd.Y, cmd.W, cmd.W, 0, segmentsFor(cmd.W*tr.LinearScale())), true)
	case render.KindEllipse:
		r := math.Max(cmd.W, cmd.H) * tr.LinearScale()
		return polyline(tr, ellipsePoints(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Angle, segmentsFor(r)), true)
	case render.KindPath:
		return transformedPath(tr, cmd.Path)
	}
	return nil
}

func (c *Canvas) fill(screen *ebiten.Image, path *vector.Path, col color.RGBA, alpha float64) {
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(screen, col, alpha, ebiten.FillRuleNonZero)
}

func (c *Canvas) stroke(screen *ebiten.Image, path *vector.Path, cmd render.Command) {
	op := &vector.StrokeOptions{
		Width:    float32(strokeWidth(cmd.LineWidth, cmd.Transform)),
		LineJoin: vector.LineJoinRound,
	}
	if cmd.RoundCap {
		op.LineCap = vector.LineCapRound
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawTriangles(screen, cmd.Stroke, cmd.Alpha, ebiten.FillRuleFillAll)
}

func (c *Canvas) drawTriangles(screen *ebiten.Image, col color.RGBA, alpha float64, rule ebiten.FillRule) {
	if len(c.indices) == 0 {
		return
	}
	r, g, b, a := vertexColor(col, alpha)
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	screen.DrawTriangles(c.vertices, c.indices, white(), op)
}

type point struct {
	x, y float64
}

func polyline(tr render.Transform, pts []point, closed bool) *vector.Path {
	var path vector.Path
	for i, p := range pts {
		x, y := tr.Apply(p.x, p.y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
			continue
		}
		path.LineTo(float32(x), float32(y))
	}
	if closed {
		path.Close()
	}
	return &path
}

// transformedPath maps every segment through tr. Control points of a cubic
// map with the same affine transform, so curves stay exact.
func transformedPath(tr render.Transform, segs render.Path) *vector.Path {
	var path vector.Path
	for _, s := range segs {
		switch s.Op {
		case render.OpMoveTo:
			x, y := tr.Apply(s.P[0], s.P[1])
			path.MoveTo(float32(x), float32(y))
		case render.OpLineTo:
			x, y := tr.Apply(s.P[0], s.P[1])
			path.LineTo(float32(x), float32(y))
		case render.OpCubicTo:
			c1x, c1y := tr.Apply(s.P[0], s.P[1])
			c2x, c2y := tr.Apply(s.P[2], s.P[3])
			x, y := tr.Apply(s.P[4], s.P[5])
			path.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
		case render.OpClose:
			path.Close()
		}
	}
	return &path
}

func rectPoints(x, y, w, h float64) []point {
	return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// ellipsePoints approximates an ellipse centered at (cx, cy) whose axes are
// rotated by angle.
func ellipsePoints(cx, cy, rx, ry, angle float64, segments int) []point {
	pts := make([]point, segments)
	sinA, cosA := math.Sincos(angle)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segments)
		sinT, cosT := math.Sincos(t)
		ex, ey := rx*cosT, ry*sinT
		pts[i] = point{cx + ex*cosA - ey*sinA, cy + ex*sinA + ey*cosA}
	}
	return pts
}

// segmentsFor picks a polygon resolution for a curve of on-screen radius r
func segmentsFor(r float64) int {
	n := int(math.Ceil(r * 1.5))
	if n < 12 {
		return 12
	}
	if n > 96 {
		return 96
	}
	return n
}

func strokeWidth(w float64, tr render.Transform) float64 {
	if w <= 0 {
		w = 1
	}
	return w * tr.LinearScale()
}

// vertexColor converts c to straight-alpha vertex components with alpha
// multiplied in.
func vertexColor(c color.RGBA, alpha float64) (r, g, b, a float32) {
	if alpha > 1 {
		alpha = 1
	}
	if alpha < 0 {
		alpha = 0
	}
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(float64(c.A) / 0xff * alpha)
}
