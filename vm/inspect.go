package vm

// changeSet tracks, per inspectable field, whether it was written since
// the last AckChanges call: a passive debugger highlights whatever the
// executor touched, without polling or diffing snapshots itself.
type changeSet struct {
	v  [NumRegisters]bool
	i  bool
	pc bool
	dt bool
	st bool
}

func (v *VM) markVChanged(idx uint8)  { v.changes.v[idx] = true }
func (v *VM) markIChanged()           { v.changes.i = true }
func (v *VM) markPCChanged()          { v.changes.pc = true }
func (v *VM) markDTChanged()          { v.changes.dt = true }
func (v *VM) markSTChanged()          { v.changes.st = true }

// ChangeSet is the public, read-only view of changeSet returned by
// Snapshot.
type ChangeSet struct {
	V  [NumRegisters]bool
	I  bool
	PC bool
	DT bool
	ST bool
}

// Snapshot is an internally-consistent, point-in-time read-only view of
// VM state for a debugger. It is always taken between steps, so no
// torn reads are possible: every field is copied by value.
type Snapshot struct {
	V     [NumRegisters]uint8
	I     uint16
	PC    uint16
	DT    uint8
	ST    uint8
	Stack []uint16 // oldest first
	Cycle uint64

	Halted        bool
	HaltReason    string
	WaitingForKey bool

	Changes ChangeSet
}

// Inspect returns a Snapshot of the VM's current state. It does not
// clear the change bitmap; call AckChanges to do that once the
// debugger has rendered the highlight.
func (v *VM) Inspect() Snapshot {
	return Snapshot{
		V:             v.v,
		I:             v.i,
		PC:            v.pc,
		DT:            v.delayTimer,
		ST:            v.soundTimer,
		Stack:         v.stack.view(),
		Cycle:         v.cycles,
		Halted:        v.halted,
		HaltReason:    v.haltReason.String(),
		WaitingForKey: v.waitingForKey,
		Changes: ChangeSet{
			V:  v.changes.v,
			I:  v.changes.i,
			PC: v.changes.pc,
			DT: v.changes.dt,
			ST: v.changes.st,
		},
	}
}

// AckChanges clears every "changed since last acknowledgement" flag.
func (v *VM) AckChanges() {
	v.changes = changeSet{}
}

// ReadMemory returns a copy of memory[addr, addr+length), clamped to
// the top of memory rather than erroring — this is a read-only
// debugger accessor, not an instruction operand, so ErrMemoryOutOfRange
// does not apply to it.
func (v *VM) ReadMemory(addr uint16, length int) []uint8 {
	end := int(addr) + length
	if end > MemorySize {
		end = MemorySize
	}
	if int(addr) >= end {
		return nil
	}
	out := make([]uint8, end-int(addr))
	copy(out, v.mem.bytes[addr:end])
	return out
}
