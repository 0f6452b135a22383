// Package vm implements the CHIP-8 fetch-decode-execute core: memory,
// registers, call stack, framebuffer, keypad, the opcode decoder and
// executor, and a read-only inspection surface for a debugger. It has
// no knowledge of rendering, audio, or real time; those are the
// caller's concern (see package governor and the display/audio/input
// packages).
package vm

// NumRegisters is the number of general-purpose 8-bit data registers,
// V0 through VF.
const NumRegisters = 16

// VF is the index of the flag register, overloaded as an output by
// several arithmetic opcodes and by DRW.
const VF = 0xF

// VM holds all CHIP-8 interpreter state.
type VM struct {
	mem   memory
	stack callStack
	fb    Framebuffer
	keys  Keypad

	v  [NumRegisters]uint8
	i  uint16
	pc uint16

	delayTimer uint8
	soundTimer uint8

	cycles uint64

	waitingForKey bool
	keyRegister   uint8

	halted     bool
	haltReason haltReason

	changes changeSet
}

// New creates a VM in its reset state.
func New() *VM {
	v := &VM{}
	v.Reset()
	return v
}

// Reset restores every field to its power-on state: PC=0x200, I=0, all
// V=0, stack empty, DT=ST=0, framebuffer blank, keypad released,
// cycle=0, font table reloaded. The program region is left zeroed;
// callers must call LoadROM again after Reset.
func (v *VM) Reset() {
	v.mem.reset()
	v.stack.reset()
	v.fb.Clear()
	v.fb.AckDirty()
	v.keys.reset()

	for i := range v.v {
		v.v[i] = 0
	}
	v.i = 0
	v.pc = ProgramStart
	v.delayTimer = 0
	v.soundTimer = 0
	v.cycles = 0
	v.waitingForKey = false
	v.keyRegister = 0
	v.halted = false
	v.haltReason = haltNone
	v.changes = changeSet{}
}

// LoadROM copies a program image into memory starting at 0x200. It
// fails without mutating the VM if the image is larger than the 3584
// bytes available.
func (v *VM) LoadROM(data []uint8) error {
	if len(data) > MaxROMSize {
		return ErrROMTooLarge
	}
	v.mem.loadROM(data)
	return nil
}

// Framebuffer returns the VM's framebuffer. The returned pointer is
// read-only by convention for callers outside this package; use
// Framebuffer().Snapshot() to get a safe copy for a renderer.
func (v *VM) Framebuffer() *Framebuffer {
	return &v.fb
}

// Keypad returns the VM's keypad, the only state the host input source
// is permitted to mutate directly.
func (v *VM) Keypad() *Keypad {
	return &v.keys
}

// SoundActive reports whether the sound timer is presently non-zero,
// i.e. whether the host audio device should be emitting a tone.
func (v *VM) SoundActive() bool {
	return v.soundTimer > 0
}

// Halted reports whether a fatal step error has stopped the interpreter.
func (v *VM) Halted() bool {
	return v.halted
}

// WaitingForKey reports whether the VM is suspended inside Fx0A,
// waiting for any key to be pressed.
func (v *VM) WaitingForKey() bool {
	return v.waitingForKey
}

// Cycles returns the number of instructions executed since the last
// reset.
func (v *VM) Cycles() uint64 {
	return v.cycles
}

func (v *VM) wrapX(x int) int { return ((x % FramebufferWidth) + FramebufferWidth) % FramebufferWidth }
func (v *VM) wrapY(y int) int {
	return ((y % FramebufferHeight) + FramebufferHeight) % FramebufferHeight
}
