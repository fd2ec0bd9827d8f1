package main

import "github.com/hajimehoshi/ebiten/v2"

// action is a logical viewer command.
type action int

const (
	actionNone action = iota
	actionMoveLeft
	actionMoveRight
	actionMoveUp
	actionMoveDown
	actionPause
	actionStep
	actionManual
	actionHit
	actionGizmos
	actionReset
	actionCount // Must be last - used for array sizing
)

// binding is the set of keys and buttons that trigger an action.
type binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// analogDeadzone is the stick deflection below which movement is ignored.
const analogDeadzone = 0.25

var bindings = map[action]binding{
	actionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	actionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	actionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	actionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	actionPause: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	actionStep: {
		Keys:                   []ebiten.Key{ebiten.KeyPeriod},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	actionManual: {
		Keys:                   []ebiten.Key{ebiten.KeyM},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	actionHit: {
		Keys:                   []ebiten.Key{ebiten.KeyH},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionGizmos: {
		Keys:                   []ebiten.Key{ebiten.KeyG},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	actionReset: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

// input holds this frame's and last frame's action state.
type input struct {
	current  [actionCount]bool
	previous [actionCount]bool
	gamepads []ebiten.GamepadID
}

func (in *input) update() {
	in.previous = in.current
	in.current = [actionCount]bool{}
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])

	for id, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[id] = true
			}
		}
		for _, gp := range in.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					in.current[id] = true
				}
			}
		}
	}

	for _, gp := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		in.current[actionMoveLeft] = in.current[actionMoveLeft] || h < -analogDeadzone
		in.current[actionMoveRight] = in.current[actionMoveRight] || h > analogDeadzone
		in.current[actionMoveUp] = in.current[actionMoveUp] || v < -analogDeadzone
		in.current[actionMoveDown] = in.current[actionMoveDown] || v > analogDeadzone
	}
}

func (in *input) pressed(a action) bool {
	return in.current[a]
}

func (in *input) justPressed(a action) bool {
	return in.current[a] && !in.previous[a]
}
