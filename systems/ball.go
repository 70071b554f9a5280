package systems

import (
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall applies horizontal input and handles the jump rising edge.
// Must run AFTER UpdateFrame and BEFORE UpdatePhysics.
func UpdateBall(e *ecs.ECS) {
	entry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)
	physics := components.Physics.Get(entry)
	input := GetInput(e)

	if input.Current.MoveLeft {
		physics.SpeedX -= cfg.Garden.Acceleration
	}
	if input.Current.MoveRight {
		physics.SpeedX += cfg.Garden.Acceleration
	}

	if input.JumpJustPressed() {
		tryJump(e, ball, physics)
	}
}

// tryJump spends a charge if one is left. A jump with no charges does nothing.
func tryJump(e *ecs.ECS, ball *components.BallData, physics *components.PhysicsData) bool {
	if ball.Jumps <= 0 {
		return false
	}
	physics.SpeedY = cfg.Garden.JumpSpeed
	ball.Jumps--
	QueueCue(e, cfg.CueJump)
	recallButterfly(e, ball)
	return true
}

// recallButterfly moves a butterfly that wandered off canvas back above the ball.
func recallButterfly(e *ecs.ECS, ball *components.BallData) {
	frame := GetFrame(e)
	entry, ok := components.Butterfly.First(e.World)
	if !ok || frame == nil {
		return
	}
	b := components.Butterfly.Get(entry)
	edge := cfg.Garden.ButterflyOffscreen
	if b.X < -edge || b.X > frame.Width+edge {
		b.X = ball.X
		b.Y = ball.Y - cfg.Garden.ButterflyRespawnGap
	}
}
