package components

import (
	"math/rand/v2"

	"github.com/automoto/poetics/render"
	"github.com/yohamta/donburi"
)

// FrameData is the per-frame context of a session (singleton component)
type FrameData struct {
	Width     float64
	Height    float64
	ElapsedMs float64 // simulated time since the session started
	Tick      int     // frames stepped
	FloorY    float64

	Palette int // index into the palette; advanced on seed pickup
	Rand    *rand.Rand
	List    *render.List
}

var Frame = donburi.NewComponentType[FrameData]()
