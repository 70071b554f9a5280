// Package garden is the generative platformer toy: a ball with a double jump,
// one-way ledges, collectible seeds, a butterfly that follows the ball and
// flowers that sprout on hard landings.
package garden

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
	"github.com/automoto/poetics/systems"
	"github.com/automoto/poetics/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// State is the toy's session state
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Simulation owns one Garden session. It is driven by Step once per frame and
// is not safe for concurrent use.
type Simulation struct {
	state State
	ecs   *ecs.ECS
	cues  systems.CuePlayer
	rng   func() *rand.Rand
	empty *render.List
}

// Option configures a Simulation
type Option func(*Simulation)

// WithSeed makes every session draw from the same random sequence.
func WithSeed(seed1, seed2 uint64) Option {
	return func(s *Simulation) {
		s.rng = func() *rand.Rand { return rand.New(rand.NewPCG(seed1, seed2)) }
	}
}

// NewSimulation returns an idle toy. Cues raised by the session go to cues,
// which may be nil.
func NewSimulation(cues systems.CuePlayer, opts ...Option) *Simulation {
	s := &Simulation{
		cues:  cues,
		empty: render.NewList(0),
		rng: func() *rand.Rand {
			now := uint64(time.Now().UnixNano())
			return rand.New(rand.NewPCG(now, now>>17|1))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports whether the toy is running
func (s *Simulation) State() State {
	return s.state
}

// Start begins a fresh session sized to the canvas. Nothing from a previous
// session survives.
func (s *Simulation) Start(width, height float64) {
	s.ecs = s.build(width, height)
	s.state = Running
	log.Printf("[garden] session started (%.0fx%.0f)", width, height)
}

// Exit ends the session and drops its world.
func (s *Simulation) Exit() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.ecs = nil
	log.Printf("[garden] session ended")
}

// HandleWheel exits on a scroll large enough that the user meant to leave.
// It reports whether the session ended.
func (s *Simulation) HandleWheel(deltaY float64) bool {
	if s.state != Running || math.Abs(deltaY) <= cfg.Garden.WheelExitDelta {
		return false
	}
	s.Exit()
	return true
}

// HandleEscape exits a running session. It reports whether the session ended.
func (s *Simulation) HandleEscape() bool {
	if s.state != Running {
		return false
	}
	s.Exit()
	return true
}

// Step advances one frame and returns its draw commands. While idle it
// returns an empty list and touches nothing.
func (s *Simulation) Step(fc render.FrameContext, in components.InputState) *render.List {
	if s.state != Running || s.ecs == nil {
		s.empty.Reset()
		return s.empty
	}

	frame := systems.GetFrame(s.ecs)
	frame.Width = fc.CanvasWidth
	frame.Height = fc.CanvasHeight
	frame.ElapsedMs = fc.ElapsedMs

	systems.SetInput(s.ecs, in)
	s.ecs.Update()

	return frame.List
}

// build creates the session world. System order is the frame order:
// input, integration, collision, walls, growth, pickups, follower, aging,
// audio, then drawing.
func (s *Simulation) build(width, height float64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	rng := s.rng()

	factory.CreateFrame(e, rng, width, height)
	space := components.Space.Get(factory.CreateSpace(e, width, height)).Space
	factory.CreatePlatforms(e, space, width, height)
	factory.CreateSeeds(e, space, rng, width, height)
	factory.CreateButterfly(e, height)
	factory.CreateBall(e, space, width, height)

	e.AddSystem(systems.UpdateFrame)
	e.AddSystem(systems.UpdateBall)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateWalls)
	e.AddSystem(systems.UpdateGrowth)
	e.AddSystem(systems.UpdateSeeds)
	e.AddSystem(systems.UpdateButterfly)
	e.AddSystem(systems.UpdateFlowers)
	e.AddSystem(systems.NewUpdateAudio(s.cues))
	e.AddSystem(systems.EmitGarden)

	return e
}
