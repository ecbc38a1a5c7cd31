// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

package m68k

import "testing"

type flatBus struct{ mem [0x10000]byte }

func (b *flatBus) Read8(addr uint32) uint8 { return b.mem[addr&0xFFFF] }
func (b *flatBus) Read16(addr uint32) uint16 {
	return uint16(b.Read8(addr))<<8 | uint16(b.Read8(addr+1))
}
func (b *flatBus) Read32(addr uint32) uint32 {
	return uint32(b.Read16(addr))<<16 | uint32(b.Read16(addr+2))
}
func (b *flatBus) Write8(addr uint32, v uint8)  { b.mem[addr&0xFFFF] = v }
func (b *flatBus) Write16(addr uint32, v uint16) {
	b.Write8(addr, uint8(v>>8))
	b.Write8(addr+1, uint8(v))
}
func (b *flatBus) Write32(addr uint32, v uint32) {
	b.Write16(addr, uint16(v>>16))
	b.Write16(addr+2, uint16(v))
}

// TestOddWordOperandRaisesAddressError covers spec §4.4: a word/long access
// through a memory operand at an odd address raises the address-error
// exception (vector 3), not just an odd PC on instruction fetch.
func TestOddWordOperandRaisesAddressError(t *testing.T) {
	b := &flatBus{}
	c := NewCPU(b)

	// MOVE.W D0,(A0): top nibble 3 (word move), src Dn/D0, dst (An)/A0.
	b.Write16(0x1000, 0x3080)

	// Vector 3's table entry (address error, word index 3 -> byte offset
	// 12) points at a recognizable handler address.
	b.Write32(3*4, 0x4000)

	c.SR = SRSuper
	c.SSP = 0x2000
	c.A[7] = 0x2000
	c.PC = 0x1000
	c.D[0] = 0x1234
	c.A[0] = 0x1001 // odd destination address

	c.Step()

	if c.PC != 0x4000 {
		t.Fatalf("PC = %#x, want 0x4000 (address-error vector)", c.PC)
	}
	// 0x1001 holds the low byte of the MOVE opcode itself (0x80).
	if b.mem[0x1001] != 0x80 {
		t.Fatalf("mem[0x1001] = %#x, want 0x80 untouched: the faulting write must not complete", b.mem[0x1001])
	}
}
