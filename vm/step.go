package vm

import "errors"

// Step performs one fetch-decode-execute iteration.
//
// If the VM is halted (a prior Step returned a fatal error), Step is a
// no-op; the host must Reset before stepping further.
//
// If the VM is waiting inside Fx0A, Step does not fetch a new
// instruction. It polls the keypad once; if a key is down, the
// instruction completes (Vx receives the lowest pressed index) and the
// cycle counter advances. Otherwise Step returns immediately, leaving
// PC and the wait state untouched — this is what lets the caller's
// paced loop (package governor) keep ticking timers and checking for
// cancellation while a program blocks on input, instead of busy-waiting
// inside execute() itself.
func (v *VM) Step() error {
	if v.halted {
		return nil
	}

	if v.waitingForKey {
		if idx, ok := v.keys.AnyPressed(); ok {
			v.v[v.keyRegister] = idx
			v.markVChanged(v.keyRegister)
			v.waitingForKey = false
			v.cycles++
		}
		return nil
	}

	opcodeAddr := v.pc
	opcode := v.mem.readWord(opcodeAddr)
	v.pc += 2
	v.markPCChanged()

	ins := decode(opcode)
	if err := v.execute(ins); err != nil {
		v.pc = opcodeAddr
		v.halted = true
		v.haltReason = reasonFor(err)
		return err
	}

	// An Fx0A that has just started waiting is counted when it completes.
	if !v.waitingForKey {
		v.cycles++
	}
	return nil
}

func reasonFor(err error) haltReason {
	switch {
	case errors.Is(err, ErrStackOverflow):
		return haltStackOverflow
	case errors.Is(err, ErrStackUnderflow):
		return haltStackUnderflow
	case errors.Is(err, ErrMemoryOutOfRange):
		return haltMemoryOutOfRange
	case errors.Is(err, ErrBadOpcode):
		return haltBadOpcode
	default:
		return haltBadOpcode
	}
}

// Tick decrements DT and ST by one each, if non-zero. The caller
// (package governor) drives this at 60 Hz, independent of Step's ~600
// Hz pace.
func (v *VM) Tick() {
	if v.delayTimer > 0 {
		v.delayTimer--
		v.markDTChanged()
	}
	if v.soundTimer > 0 {
		v.soundTimer--
		v.markSTChanged()
	}
}
