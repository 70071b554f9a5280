package components

import "github.com/yohamta/donburi"

// SeedData is a collectible. A collected seed is hidden and ignored until it respawns.
type SeedData struct {
	X, Y        float64
	Collected   bool
	CollectedAt float64 // simulated milliseconds at pickup
}

var Seed = donburi.NewComponentType[SeedData]()
