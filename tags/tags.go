package tags

import "github.com/yohamta/donburi"

var (
	Ball      = donburi.NewTag().SetName("Ball")
	Platform  = donburi.NewTag().SetName("Platform")
	Seed      = donburi.NewTag().SetName("Seed")
	Flower    = donburi.NewTag().SetName("Flower")
	Butterfly = donburi.NewTag().SetName("Butterfly")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlatform = "platform"
	ResolvSeed     = "seed"
	ResolvSensor   = "sensor"
)
