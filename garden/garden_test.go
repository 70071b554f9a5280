package garden

import (
	"testing"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
	"github.com/automoto/poetics/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type recordingCues struct {
	played []cfg.CueID
}

func (r *recordingCues) Play(cue cfg.CueID) {
	r.played = append(r.played, cue)
}

func frameAt(tick int) render.FrameContext {
	return render.FrameContext{CanvasWidth: 800, CanvasHeight: 600, ElapsedMs: float64(tick) * 1000 / 60}
}

func ballOf(t *testing.T, s *Simulation) (*components.BallData, *components.PhysicsData) {
	t.Helper()
	require.NotNil(t, s.ecs)
	entry, ok := components.Ball.First(s.ecs.World)
	require.True(t, ok)
	return components.Ball.Get(entry), components.Physics.Get(entry)
}

// settle runs frames with no input until the ball rests on the floor
func settle(t *testing.T, s *Simulation, from int) int {
	t.Helper()
	for tick := from; tick < from+600; tick++ {
		s.Step(frameAt(tick), components.InputState{})
		ball, physics := ballOf(t, s)
		require.LessOrEqual(t, ball.Jumps, cfg.Garden.MaxJumps)
		require.GreaterOrEqual(t, ball.Jumps, 0)
		if physics.Grounded && physics.SpeedY == 0 {
			return tick + 1
		}
	}
	t.Fatal("ball never came to rest")
	return 0
}

func TestStateMachine(t *testing.T) {
	s := NewSimulation(nil, WithSeed(1, 2))
	assert.Equal(t, Idle, s.State())
	assert.Zero(t, s.Step(frameAt(0), components.InputState{}).Len(), "idle steps draw nothing")

	assert.False(t, s.HandleEscape(), "escape while idle is ignored")

	s.Start(800, 600)
	assert.Equal(t, Running, s.State())

	assert.False(t, s.HandleWheel(50), "a small scroll does not trap or exit")
	assert.False(t, s.HandleWheel(-12))
	assert.Equal(t, Running, s.State())

	assert.True(t, s.HandleWheel(-51))
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.ecs, "the world is dropped on exit")

	s.Start(800, 600)
	assert.True(t, s.HandleEscape())
	assert.Equal(t, Idle, s.State())

	s.Start(800, 600)
	s.Exit()
	assert.Equal(t, Idle, s.State())
	s.Exit()
}

func TestStartResetsSession(t *testing.T) {
	s := NewSimulation(nil, WithSeed(3, 4))
	s.Start(800, 600)
	for tick := 0; tick < 30; tick++ {
		s.Step(frameAt(tick), components.InputState{MoveRight: true})
	}
	ball, _ := ballOf(t, s)
	require.NotEqual(t, 400.0, ball.X)

	s.Exit()
	s.Start(1000, 700)
	ball, physics := ballOf(t, s)
	assert.Equal(t, 500.0, ball.X)
	assert.Equal(t, 350.0, ball.Y)
	assert.Zero(t, physics.SpeedX)
	assert.Equal(t, cfg.Garden.BallColor, ball.Color)

	var platforms []components.PlatformData
	seeds := 0
	components.Platform.Each(s.ecs.World, func(e *donburi.Entry) {
		platforms = append(platforms, *components.Platform.Get(e))
	})
	components.Seed.Each(s.ecs.World, func(e *donburi.Entry) {
		assert.False(t, components.Seed.Get(e).Collected)
		seeds++
	})
	assert.Len(t, platforms, 5)
	assert.Contains(t, platforms, components.PlatformData{X: 100, Y: 525, W: 250, H: 2},
		"layout comes from the new canvas size")
	assert.Equal(t, 4, seeds)
}

func TestBallRestsThenDoubleJumps(t *testing.T) {
	cues := &recordingCues{}
	s := NewSimulation(cues, WithSeed(5, 6))
	s.Start(800, 600)

	tick := settle(t, s, 0)
	ball, physics := ballOf(t, s)
	assert.InDelta(t, 500-ball.Radius, ball.Y, 1e-9, "rests on the floor 100px above the bottom")
	assert.Equal(t, 2, ball.Jumps)

	cues.played = nil
	jump := components.InputState{JumpPressed: true}

	s.Step(frameAt(tick), jump)
	assert.Equal(t, 1, ball.Jumps)
	assert.InDelta(t, cfg.Garden.JumpSpeed+cfg.Garden.Gravity, physics.SpeedY, 1e-9)

	s.Step(frameAt(tick+1), jump)
	assert.Equal(t, 1, ball.Jumps, "holding jump does not fire again")

	s.Step(frameAt(tick+2), components.InputState{})
	s.Step(frameAt(tick+3), jump)
	assert.Equal(t, 0, ball.Jumps)

	assert.Equal(t, []cfg.CueID{cfg.CueJump, cfg.CueJump}, cues.played)
}

func TestResizeKeepsPlatforms(t *testing.T) {
	s := NewSimulation(nil, WithSeed(7, 8))
	s.Start(800, 600)
	s.Step(frameAt(0), components.InputState{})

	var before []components.PlatformData
	components.Platform.Each(s.ecs.World, func(e *donburi.Entry) {
		before = append(before, *components.Platform.Get(e))
	})

	s.Step(render.FrameContext{CanvasWidth: 1200, CanvasHeight: 900, ElapsedMs: 100}, components.InputState{})

	var after []components.PlatformData
	components.Platform.Each(s.ecs.World, func(e *donburi.Entry) {
		after = append(after, *components.Platform.Get(e))
	})
	assert.Equal(t, before, after, "ledges keep their session-start layout")

	frame := systems.GetFrame(s.ecs)
	assert.Equal(t, 800.0, frame.FloorY, "the floor follows the current height")
}

func TestStepDrawsBackToFront(t *testing.T) {
	s := NewSimulation(nil, WithSeed(9, 10))
	s.Start(800, 600)
	list := s.Step(frameAt(0), components.InputState{})

	layers := list.Layers()
	require.NotEmpty(t, layers)
	for i := 1; i < len(layers); i++ {
		assert.Less(t, layers[i-1], layers[i])
	}
	assert.Equal(t, render.LayerBall, layers[len(layers)-1], "the ball is drawn last")
}
