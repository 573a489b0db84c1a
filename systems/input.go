package systems

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// KeyboardInput is the live input source for both players. Each player reads
// one keyboard control scheme plus the gamepad connected in its slot.
type KeyboardInput struct {
	Schemes [2]cfg.ControlSchemeID
}

// NewKeyboardInput assigns WASD to player 1 and the arrow keys to player 2.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		Schemes: [2]cfg.ControlSchemeID{cfg.ControlSchemeWASD, cfg.ControlSchemeArrows},
	}
}

// Sample polls the held actions of one player. It is called from inside the
// simulation tick, so the tick argument is only informational here.
func (k *KeyboardInput) Sample(_ int64, playerIndex int) components.InputFrame {
	var frame components.InputFrame
	if playerIndex < 0 || playerIndex >= len(k.Schemes) {
		return frame
	}

	pollControlScheme(&frame, k.Schemes[playerIndex])

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if playerIndex < len(gamepadIDs) {
		pollGamepad(&frame, gamepadIDs[playerIndex])
	}
	return frame
}

// SwapSchemes exchanges the keyboard layouts of the two players.
func (k *KeyboardInput) SwapSchemes() {
	k.Schemes[0], k.Schemes[1] = k.Schemes[1], k.Schemes[0]
}

// pollControlScheme reads input from a control scheme into frame.
func pollControlScheme(frame *components.InputFrame, scheme cfg.ControlSchemeID) {
	if scheme < 0 || scheme >= cfg.ControlSchemeCount {
		return
	}
	for actionID, keys := range ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				frame[actionID] = true
			}
		}
	}
}

// pollGamepad reads buttons and the left stick of one gamepad into frame.
func pollGamepad(frame *components.InputFrame, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, binding := range GamepadBindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				frame[actionID] = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -AnalogDeadzone {
		frame[cfg.ActionLeft] = true
	}
	if horizontal > AnalogDeadzone {
		frame[cfg.ActionRight] = true
	}
	if vertical < -AnalogDeadzone {
		frame[cfg.ActionUp] = true
	}
	if vertical > AnalogDeadzone {
		frame[cfg.ActionDown] = true
	}
}

// ShellKeys are the non-fighting keys pressed this frame
type ShellKeys struct {
	Restart      bool
	ToggleDebug  bool
	SwapSchemes  bool
	ToggleMute   bool
	VolumeDown   bool
	VolumeUp     bool
	ToggleScreen bool
}

// ReadShellKeys returns which shell keys were just pressed.
func ReadShellKeys() ShellKeys {
	return ShellKeys{
		Restart:      inpututil.IsKeyJustPressed(KeyRestart),
		ToggleDebug:  inpututil.IsKeyJustPressed(KeyToggleDebug),
		SwapSchemes:  inpututil.IsKeyJustPressed(KeySwapSchemes),
		ToggleMute:   inpututil.IsKeyJustPressed(KeyToggleMute),
		VolumeDown:   inpututil.IsKeyJustPressed(KeyVolumeDown),
		VolumeUp:     inpututil.IsKeyJustPressed(KeyVolumeUp),
		ToggleScreen: inpututil.IsKeyJustPressed(KeyToggleScreen),
	}
}
