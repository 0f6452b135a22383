package vm

import "math/rand"

// addrMask restricts an index-register value to the 12 bits CHIP-8
// memory actually addresses. I itself stays a full 16-bit value so that
// ADD I,Vx can overflow past 0xFFF without silently truncating at the
// point of assignment; this mask is applied only at the point of
// memory access.
func addrMask(i uint16) uint16 {
	return i & 0x0FFF
}

// execute applies ins's effect to v. It returns an error only for fatal
// conditions (stack overflow/underflow, unknown opcode, memory out of
// range); all other opcodes always succeed. PC has already been
// advanced past ins by the caller (step.go) before execute runs;
// branch/call/return forms overwrite PC directly here.
func (v *VM) execute(ins instruction) error {
	x, y, n, kk, nnn := ins.x, ins.y, ins.n, ins.kk, ins.nnn

	switch ins.op {
	case opCLS:
		v.fb.Clear()

	case opRET:
		addr, err := v.stack.pop()
		if err != nil {
			return err
		}
		v.pc = addr
		v.markPCChanged()

	case opSYS:
		// legacy host call; intentionally ignored

	case opJP:
		v.pc = nnn
		v.markPCChanged()

	case opCALL:
		if err := v.stack.push(v.pc); err != nil {
			return err
		}
		v.pc = nnn
		v.markPCChanged()

	case opSEVxByte:
		if v.v[x] == kk {
			v.pc += 2
			v.markPCChanged()
		}

	case opSNEVxByte:
		if v.v[x] != kk {
			v.pc += 2
			v.markPCChanged()
		}

	case opSEVxVy:
		if v.v[x] == v.v[y] {
			v.pc += 2
			v.markPCChanged()
		}

	case opLDVxByte:
		v.v[x] = kk
		v.markVChanged(x)

	case opADDVxByte:
		v.v[x] = v.v[x] + kk
		v.markVChanged(x)

	case opLDVxVy:
		v.v[x] = v.v[y]
		v.markVChanged(x)

	case opOR:
		v.v[x] = v.v[x] | v.v[y]
		v.markVChanged(x)

	case opAND:
		v.v[x] = v.v[x] & v.v[y]
		v.markVChanged(x)

	case opXOR:
		v.v[x] = v.v[x] ^ v.v[y]
		v.markVChanged(x)

	case opADDVxVy:
		vx0, vy0 := v.v[x], v.v[y]
		sum := uint16(vx0) + uint16(vy0)
		v.v[x] = uint8(sum)
		v.markVChanged(x)
		v.setFlag(sum > 0xFF)

	case opSUB:
		vx0, vy0 := v.v[x], v.v[y]
		v.v[x] = vx0 - vy0
		v.markVChanged(x)
		v.setFlag(vx0 >= vy0)

	case opSHR:
		vx0 := v.v[x]
		v.v[x] = vx0 >> 1
		v.markVChanged(x)
		v.setFlag(vx0&0x1 != 0)

	case opSUBN:
		vx0, vy0 := v.v[x], v.v[y]
		v.v[x] = vy0 - vx0
		v.markVChanged(x)
		v.setFlag(vy0 >= vx0)

	case opSHL:
		vx0 := v.v[x]
		v.v[x] = vx0 << 1
		v.markVChanged(x)
		v.setFlag((vx0>>7)&0x1 != 0)

	case opSNEVxVy:
		if v.v[x] != v.v[y] {
			v.pc += 2
			v.markPCChanged()
		}

	case opLDI:
		v.i = nnn
		v.markIChanged()

	case opJPV0:
		v.pc = (uint16(v.v[0]) + nnn) & 0x0FFF
		v.markPCChanged()

	case opRND:
		v.v[x] = uint8(rand.Intn(256)) & kk
		v.markVChanged(x)

	case opDRW:
		return v.executeDRW(x, y, n)

	case opSKP:
		if v.keys.IsDown(v.v[x] & 0xF) {
			v.pc += 2
			v.markPCChanged()
		}

	case opSKNP:
		if !v.keys.IsDown(v.v[x] & 0xF) {
			v.pc += 2
			v.markPCChanged()
		}

	case opLDVxDT:
		v.v[x] = v.delayTimer
		v.markVChanged(x)

	case opLDVxK:
		v.waitingForKey = true
		v.keyRegister = x

	case opLDDTVx:
		v.delayTimer = v.v[x]
		v.markDTChanged()

	case opLDSTVx:
		v.soundTimer = v.v[x]
		v.markSTChanged()

	case opADDIVx:
		v.i = v.i + uint16(v.v[x])
		v.markIChanged()

	case opLDFVx:
		v.i = uint16(v.v[x]&0xF) * FontGlyphSize
		v.markIChanged()

	case opLDBVx:
		val := v.v[x]
		bcd := [3]uint8{val / 100, (val / 10) % 10, val % 10}
		if err := v.mem.writeRange(addrMask(v.i), bcd[:]); err != nil {
			return err
		}

	case opLDIVx:
		if err := v.mem.writeRange(addrMask(v.i), v.v[:int(x)+1]); err != nil {
			return err
		}

	case opLDVxI:
		data, err := v.mem.readRange(addrMask(v.i), int(x)+1)
		if err != nil {
			return err
		}
		copy(v.v[:int(x)+1], data)
		for i := uint8(0); i <= x; i++ {
			v.markVChanged(i)
		}

	default:
		return ErrBadOpcode
	}

	return nil
}

// executeDRW implements the Dxyn sprite blit: height is 16 when the low
// nibble is 0, otherwise n. Every sprite coordinate wraps modulo the
// framebuffer dimensions.
func (v *VM) executeDRW(x, y, n uint8) error {
	height := int(n)
	if height == 0 {
		height = 16
	}

	sx := int(v.v[x]) % FramebufferWidth
	sy := int(v.v[y]) % FramebufferHeight

	collision := false
	for row := 0; row < height; row++ {
		b := v.mem.readByte(v.i + uint16(row))
		for col := 0; col < 8; col++ {
			bit := (b>>(7-col))&0x1 != 0
			px := v.wrapX(sx + col)
			py := v.wrapY(sy + row)
			if v.fb.XorPixel(px, py, bit) {
				collision = true
			}
		}
	}
	v.fb.markDirty()

	v.setFlag(collision)
	return nil
}

// setFlag writes VF last, after any operand reads and the target
// register's own write have already happened, so that x==VF or y==VF
// observes the pre-update value of VF as an operand rather than the
// flag this same instruction is about to set.
func (v *VM) setFlag(set bool) {
	if set {
		v.v[VF] = 1
	} else {
		v.v[VF] = 0
	}
	v.markVChanged(VF)
}
