package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BallData is the player-controlled body. X/Y is the center.
type BallData struct {
	X, Y   float64
	Radius float64
	Jumps  int // remaining jump charges
	Color  color.RGBA
}

var Ball = donburi.NewComponentType[BallData]()
