package systems

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateButterfly steers the follower toward a point above the ball with a
// damped pursuit and adds a small flutter.
func UpdateButterfly(e *ecs.ECS) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	entry, ok := components.Butterfly.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	b := components.Butterfly.Get(entry)
	g := cfg.Garden

	b.Timer += g.ButterflyTimerStep

	b.SpeedX += (ball.X - b.X) * g.ButterflyGain
	b.SpeedY += ((ball.Y - g.ButterflyLift) - b.Y) * g.ButterflyGain

	if math.Hypot(b.SpeedX, b.SpeedY) > g.ButterflyMaxSpeed {
		b.SpeedX *= g.ButterflyDrag
		b.SpeedY *= g.ButterflyDrag
	}

	b.X += b.SpeedX + math.Sin(b.Timer)*g.ButterflyFlutter
	b.Y += b.SpeedY + math.Cos(b.Timer*1.3)*g.ButterflyFlutter
}
