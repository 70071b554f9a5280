package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlowerKind selects one of the procedural flora shapes
type FlowerKind int

const (
	FlowerBulb FlowerKind = iota
	FlowerFork
	FlowerVine
	FlowerFern
	FlowerTulip
)

// FlowerData is a decorative growth spawned on a hard landing
type FlowerData struct {
	X, Y  float64
	Age   int
	Kind  FlowerKind
	Color color.RGBA
	Scale float64

	Growth  *gween.Tween // 0 -> 1 over the grow window
	Fade    *gween.Tween // 1 -> 0 over the trailing fade window
	Grown   float64      // current growth factor
	Opacity float64      // current opacity
}

var Flower = donburi.NewComponentType[FlowerData]()
