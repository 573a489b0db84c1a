package systems

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionBinding maps one fighter action to physical inputs
type ActionBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ControlSchemeBindings is the keyboard layout of each control scheme.
var ControlSchemeBindings = [cfg.ControlSchemeCount][cfg.ActionCount][]ebiten.Key{
	cfg.ControlSchemeWASD: {
		cfg.ActionLeft:  {ebiten.KeyA},
		cfg.ActionRight: {ebiten.KeyD},
		cfg.ActionUp:    {ebiten.KeyW},
		cfg.ActionDown:  {ebiten.KeyS},
		cfg.ActionFire1: {ebiten.KeyF, ebiten.KeyShiftLeft},
		cfg.ActionFire2: {ebiten.KeyG, ebiten.KeyControlLeft},
	},
	cfg.ControlSchemeArrows: {
		cfg.ActionLeft:  {ebiten.KeyArrowLeft},
		cfg.ActionRight: {ebiten.KeyArrowRight},
		cfg.ActionUp:    {ebiten.KeyArrowUp},
		cfg.ActionDown:  {ebiten.KeyArrowDown},
		cfg.ActionFire1: {ebiten.KeyK, ebiten.KeyNumpad1},
		cfg.ActionFire2: {ebiten.KeyL, ebiten.KeyNumpad2},
	},
}

// GamepadBindings apply to whichever gamepad is assigned to a player.
var GamepadBindings = [cfg.ActionCount]ActionBinding{
	cfg.ActionLeft:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	cfg.ActionRight: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	cfg.ActionUp:    {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	cfg.ActionDown:  {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	cfg.ActionFire1: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
	cfg.ActionFire2: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
}

// AnalogDeadzone is the left stick threshold for directional input.
const AnalogDeadzone = 0.5

// Shell keys, outside the fighter action set
const (
	KeyRestart      = ebiten.KeyEnter
	KeyToggleDebug  = ebiten.KeyF1
	KeySwapSchemes  = ebiten.KeyF2
	KeyToggleMute   = ebiten.KeyM
	KeyVolumeDown   = ebiten.KeyMinus
	KeyVolumeUp     = ebiten.KeyEqual
	KeyToggleScreen = ebiten.KeyF11
)
