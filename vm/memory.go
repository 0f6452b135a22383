package vm

import "fmt"

// MemorySize is the total addressable memory, in bytes.
const MemorySize = 4096

// FontBase is the address of the first byte of the built-in font table.
const FontBase = 0x000

// FontGlyphSize is the number of bytes per font glyph.
const FontGlyphSize = 5

// ProgramStart is the address at which loaded program images begin.
const ProgramStart = 0x200

// MaxROMSize is the largest program image LoadROM will accept.
const MaxROMSize = MemorySize - ProgramStart

// fontset is the built-in 16-glyph 4x5 hex digit font, copied into
// memory at FontBase on every Reset.
var fontset = [16 * FontGlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// memory is the VM's 4 KiB linear address space. All indexing is masked
// modulo MemorySize so a read or write is never out of bounds at the
// Go-array level; callers that need the stricter "fail if the transfer
// would spill past the top of memory" behavior (Fx33/Fx55/Fx65) use
// readRange/writeRange instead of readByte/writeByte.
type memory struct {
	bytes [MemorySize]uint8
}

func (m *memory) reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
	copy(m.bytes[FontBase:], fontset[:])
}

func (m *memory) readByte(addr uint16) uint8 {
	return m.bytes[addr%MemorySize]
}

func (m *memory) writeByte(addr uint16, v uint8) {
	m.bytes[addr%MemorySize] = v
}

// readWord reads a big-endian 16-bit word at addr, addr+1.
func (m *memory) readWord(addr uint16) uint16 {
	hi := m.readByte(addr)
	lo := m.readByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readRange validates that [addr, addr+n) lies entirely within memory
// before reading; it does not wrap. Used for instructions where
// spilling past the top of memory is a hard error rather than a quirk.
func (m *memory) readRange(addr uint16, n int) ([]uint8, error) {
	if int(addr)+n > MemorySize {
		return nil, fmt.Errorf("%w: read [%#03x, %#03x)", ErrMemoryOutOfRange, addr, int(addr)+n)
	}
	out := make([]uint8, n)
	copy(out, m.bytes[addr:int(addr)+n])
	return out, nil
}

func (m *memory) writeRange(addr uint16, data []uint8) error {
	if int(addr)+len(data) > MemorySize {
		return fmt.Errorf("%w: write [%#03x, %#03x)", ErrMemoryOutOfRange, addr, int(addr)+len(data))
	}
	copy(m.bytes[addr:], data)
	return nil
}

// loadROM copies program data into memory starting at ProgramStart. The
// caller (VM.LoadROM) is responsible for the 3584-byte size check; this
// helper assumes data already fits.
func (m *memory) loadROM(data []uint8) {
	copy(m.bytes[ProgramStart:], data)
}
