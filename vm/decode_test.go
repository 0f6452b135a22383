package vm

import "testing"

func TestDecodeGroups(t *testing.T) {
	cases := []struct {
		name   string
		opcode uint16
		want   opTag
	}{
		{"CLS", 0x00E0, opCLS},
		{"RET", 0x00EE, opRET},
		{"SYS", 0x0123, opSYS},
		{"JP", 0x1234, opJP},
		{"CALL", 0x2345, opCALL},
		{"SE Vx,kk", 0x3012, opSEVxByte},
		{"SNE Vx,kk", 0x4012, opSNEVxByte},
		{"SE Vx,Vy", 0x5120, opSEVxVy},
		{"SE Vx,Vy bad n", 0x5121, opUnknown},
		{"LD Vx,kk", 0x6012, opLDVxByte},
		{"ADD Vx,kk", 0x7012, opADDVxByte},
		{"LD Vx,Vy", 0x8120, opLDVxVy},
		{"OR", 0x8121, opOR},
		{"AND", 0x8122, opAND},
		{"XOR", 0x8123, opXOR},
		{"ADD Vx,Vy", 0x8124, opADDVxVy},
		{"SUB", 0x8125, opSUB},
		{"SHR", 0x8126, opSHR},
		{"SUBN", 0x8127, opSUBN},
		{"SHL", 0x812E, opSHL},
		{"8xy unknown", 0x8128, opUnknown},
		{"SNE Vx,Vy", 0x9120, opSNEVxVy},
		{"LD I,nnn", 0xA123, opLDI},
		{"JP V0,nnn", 0xB123, opJPV0},
		{"RND", 0xC012, opRND},
		{"DRW", 0xD123, opDRW},
		{"SKP", 0xE09E, opSKP},
		{"SKNP", 0xE0A1, opSKNP},
		{"Ex unknown", 0xE000, opUnknown},
		{"LD Vx,DT", 0xF007, opLDVxDT},
		{"LD Vx,K", 0xF00A, opLDVxK},
		{"LD DT,Vx", 0xF015, opLDDTVx},
		{"LD ST,Vx", 0xF018, opLDSTVx},
		{"ADD I,Vx", 0xF01E, opADDIVx},
		{"LD F,Vx", 0xF029, opLDFVx},
		{"LD B,Vx", 0xF033, opLDBVx},
		{"LD [I],Vx", 0xF055, opLDIVx},
		{"LD Vx,[I]", 0xF065, opLDVxI},
		{"Fx unknown", 0xF000, opUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decode(c.opcode).op
			if got != c.want {
				t.Errorf("decode(%#04x) = %v, want %v", c.opcode, got, c.want)
			}
		})
	}
}

func TestDecodeFields(t *testing.T) {
	ins := decode(0xD1AF)
	if ins.x != 0x1 {
		t.Errorf("x = %#x, want 0x1", ins.x)
	}
	if ins.y != 0xA {
		t.Errorf("y = %#x, want 0xA", ins.y)
	}
	if ins.n != 0xF {
		t.Errorf("n = %#x, want 0xF", ins.n)
	}
	if ins.kk != 0xAF {
		t.Errorf("kk = %#x, want 0xAF", ins.kk)
	}
	if ins.nnn != 0x1AF {
		t.Errorf("nnn = %#x, want 0x1AF", ins.nnn)
	}
}
