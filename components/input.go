package components

import "github.com/yohamta/donburi"

// InputState is the unified control state a frame is driven by.
// Keyboard, gamepad and touch sources all fold into it.
type InputState struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool
}

// InputData stores the current and previous frame's input.
// Rising edges are derived by comparing the two.
type InputData struct {
	Current  InputState
	Previous InputState
}

// JumpJustPressed reports a rising edge on jump
func (i *InputData) JumpJustPressed() bool {
	return i.Current.JumpPressed && !i.Previous.JumpPressed
}

var Input = donburi.NewComponentType[InputData]()
