package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical toy action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionExit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// One mouse wheel notch expressed in scroll pixels
	WheelPixelsPerNotch float64
}

// TouchButton is a circular on-screen control anchored to the bottom band
type TouchButton struct {
	Action    ActionID
	OffsetX   float64 // from the left edge, or from the right edge when FromRight
	OffsetY   float64 // from the bottom edge
	Radius    float64
	FromRight bool
	Label     string
}

// TouchConfig lays out the on-screen controls
type TouchConfig struct {
	Buttons []TouchButton
}

// Input is the global input configuration
var Input InputConfig

// Touch is the global touch layout
var Touch TouchConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:      0.25,
		WheelPixelsPerNotch: 100,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionExit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}

	Touch = TouchConfig{
		Buttons: []TouchButton{
			{Action: ActionMoveLeft, OffsetX: 50, OffsetY: 50, Radius: 32, Label: "<"},
			{Action: ActionMoveRight, OffsetX: 130, OffsetY: 50, Radius: 32, Label: ">"},
			{Action: ActionJump, OffsetX: 60, OffsetY: 50, Radius: 36, FromRight: true, Label: "^"},
		},
	}
}
