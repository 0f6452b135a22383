// Package input translates SDL2 keyboard events into the fixed
// host-to-CHIP-8 key mapping and applies them to a vm.Keypad. It is
// the host input source kept outside the interpreter core.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/chip8vm/chip8vm/vm"
)

// KeyMap is the fixed host-key-to-CHIP-8-key mapping. It is not
// configurable: it is part of the external interface, not a tunable.
var KeyMap = map[sdl.Keycode]uint8{
	sdl.K_1: 0x0, sdl.K_2: 0x1, sdl.K_3: 0x2, sdl.K_4: 0x3,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0x7,
	sdl.K_a: 0x8, sdl.K_s: 0x9, sdl.K_d: 0xA, sdl.K_f: 0xB,
	sdl.K_z: 0xC, sdl.K_x: 0xD, sdl.K_c: 0xE, sdl.K_v: 0xF,
}

// Keyboard dispatches SDL2 key events to a vm.Keypad.
type Keyboard struct {
	keys *vm.Keypad
}

// New binds a Keyboard to the keypad it will drive.
func New(keys *vm.Keypad) *Keyboard {
	return &Keyboard{keys: keys}
}

// HandleKeyDown applies a key-down event, if keycode is mapped.
func (k *Keyboard) HandleKeyDown(keycode sdl.Keycode) (uint8, bool) {
	chip8Key, ok := KeyMap[keycode]
	if !ok {
		return 0, false
	}
	k.keys.SetKey(chip8Key, true)
	return chip8Key, true
}

// HandleKeyUp applies a key-up event, if keycode is mapped.
func (k *Keyboard) HandleKeyUp(keycode sdl.Keycode) (uint8, bool) {
	chip8Key, ok := KeyMap[keycode]
	if !ok {
		return 0, false
	}
	k.keys.SetKey(chip8Key, false)
	return chip8Key, true
}
