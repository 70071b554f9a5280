// Package controls polls keyboard, gamepad, wheel, cursor and touch input
// once per frame and folds it into the states the simulations consume.
package controls

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/field"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Point is a pointer or touch position in canvas space
type Point struct {
	X, Y float64
}

// Poller keeps the current and previous frame's action state
type Poller struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool

	wheelY  float64
	pointer field.PointerState
	touches []Point

	// touchSeen flips once any touch arrives and keeps the on-screen
	// controls visible from then on
	touchSeen  bool
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func NewPoller() *Poller {
	return &Poller{pointer: field.Away()}
}

// Poll reads every device for a canvas of w by h. Must be called once per
// frame before any simulation steps.
func (p *Poller) Poll(w, h float64) {
	p.previous = p.current
	p.current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.current[actionID] = true
			}
		}
	}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for actionID, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[actionID] = true
				}
			}
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		left, right := analogDirection(horizontal, cfg.Input.AnalogDeadzone)
		p.current[cfg.ActionMoveLeft] = p.current[cfg.ActionMoveLeft] || left
		p.current[cfg.ActionMoveRight] = p.current[cfg.ActionMoveRight] || right
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.touches = append(p.touches, Point{X: float64(x), Y: float64(y)})
	}
	if len(p.touches) > 0 {
		p.touchSeen = true
	}
	if p.touchSeen {
		held := HitButtons(cfg.Touch.Buttons, w, h, p.touches)
		for i := range held {
			p.current[i] = p.current[i] || held[i]
		}
	}

	_, p.wheelY = ebiten.Wheel()

	cx, cy := ebiten.CursorPosition()
	p.pointer = PointerFromCursor(float64(cx), float64(cy), w, h)
	if len(p.touches) > 0 {
		p.pointer = PointerFromCursor(p.touches[0].X, p.touches[0].Y, w, h)
	}
}

// Pressed reports whether id is held this frame
func (p *Poller) Pressed(id cfg.ActionID) bool {
	return p.current[id]
}

// JustPressed reports a rising edge on id
func (p *Poller) JustPressed(id cfg.ActionID) bool {
	return p.current[id] && !p.previous[id]
}

// Garden returns the control state for the garden. Rising edges on jump
// are derived by the simulation itself.
func (p *Poller) Garden() components.InputState {
	return components.InputState{
		MoveLeft:    p.current[cfg.ActionMoveLeft],
		MoveRight:   p.current[cfg.ActionMoveRight],
		JumpPressed: p.current[cfg.ActionJump],
	}
}

// WheelDelta is this frame's vertical scroll in pixels, negative when
// scrolling up
func (p *Poller) WheelDelta() float64 {
	return -p.wheelY * cfg.Input.WheelPixelsPerNotch
}

func (p *Poller) Pointer() field.PointerState {
	return p.pointer
}

// Held is every action held this frame
func (p *Poller) Held() [cfg.ActionCount]bool {
	return p.current
}

// TouchActive reports whether on-screen controls should be shown
func (p *Poller) TouchActive() bool {
	return p.touchSeen
}

// Clicked reports a fresh left click or tap at canvas position (x, y)
func Clicked() (Point, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return Point{X: float64(x), Y: float64(y)}, true
	}
	var ids []ebiten.TouchID
	ids = inpututil.AppendJustPressedTouchIDs(ids)
	if len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return Point{X: float64(x), Y: float64(y)}, true
	}
	return Point{}, false
}

// PointerFromCursor maps a cursor position to pointer state, returning the
// away sentinel when it is off the canvas
func PointerFromCursor(x, y, w, h float64) field.PointerState {
	if x < 0 || y < 0 || x >= w || y >= h {
		return field.Away()
	}
	return field.PointerState{X: x, Y: y}
}

func analogDirection(v, deadzone float64) (left, right bool) {
	return v < -deadzone, v > deadzone
}

// ButtonCenter places b on a w by h canvas
func ButtonCenter(b cfg.TouchButton, w, h float64) (float64, float64) {
	x := b.OffsetX
	if b.FromRight {
		x = w - b.OffsetX
	}
	return x, h - b.OffsetY
}

// HitButtons returns which actions are held by any of points
func HitButtons(buttons []cfg.TouchButton, w, h float64, points []Point) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for _, b := range buttons {
		bx, by := ButtonCenter(b, w, h)
		for _, pt := range points {
			if math.Hypot(pt.X-bx, pt.Y-by) <= b.Radius {
				held[b.Action] = true
			}
		}
	}
	return held
}
