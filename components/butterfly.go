package components

import "github.com/yohamta/donburi"

// ButterflyData is the autonomous follower
type ButterflyData struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
	Timer  float64 // flutter phase
}

var Butterfly = donburi.NewComponentType[ButterflyData]()
