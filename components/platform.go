package components

import "github.com/yohamta/donburi"

// PlatformData is a static one-way ledge. X/Y is the top-left corner.
type PlatformData struct {
	X, Y, W, H float64
}

var Platform = donburi.NewComponentType[PlatformData]()
