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

package vdp

import "testing"

type fakeBus struct{ mem [0x400000]byte }

func (f *fakeBus) Read8(addr uint32) uint8 { return f.mem[addr&0x3FFFFF] }

// TestControlLatchClearsAfterAddressPair covers the testable property: "for
// every VDP control-port write that completes an address/code pair, the
// first-word latch is clear afterward."
func TestControlLatchClearsAfterAddressPair(t *testing.T) {
	v := New(&fakeBus{})
	v.ControlWrite(0x4000) // first word of an address/code pair (non-register)
	if !v.latchArmed {
		t.Fatal("expected latch armed after first word")
	}
	v.ControlWrite(0x0000) // second word completes the pair
	if v.latchArmed {
		t.Fatal("expected latch clear after address/code pair completes")
	}
}

func TestDataPortClearsLatch(t *testing.T) {
	v := New(&fakeBus{})
	v.ControlWrite(0x4000)
	if !v.latchArmed {
		t.Fatal("expected latch armed")
	}
	v.DataWrite(0x1234)
	if v.latchArmed {
		t.Fatal("expected latch clear after data-port access")
	}
}

// TestDMAFill covers the spec's concrete scenario: fill 16 bytes of $5A
// starting at VRAM $1000, and check the surrounding bytes are untouched.
func TestDMAFill(t *testing.T) {
	v := New(&fakeBus{})
	v.Reg[1] = 0x10 // DMA enable
	v.Reg[15] = 1   // auto-increment
	v.Reg[19] = 16  // DMA length low
	v.Reg[20] = 0
	v.Reg[23] = 0x80 // fill mode

	// Address/code pair selecting VRAM write at $1000 with DMA bit set.
	v.ControlWrite(0x4000 | (0x1000 & 0x3FFF))
	v.ControlWrite(0x0080 | uint16((0x1000>>14)&0x3))

	if !v.dmaBusy {
		t.Fatal("expected DMA busy after control write with DMA enable set")
	}

	v.DataWrite(0x5A5A) // fill byte arrives via data port

	for !v.dmaBusy {
		break
	}
	for i := 0; i < 20 && v.dmaBusy; i++ {
		v.stepDMA()
	}

	if v.dmaBusy {
		t.Fatal("expected DMA complete")
	}
	for i := 0; i < 16; i++ {
		if v.VRAM[0x1000+i] != 0x5A {
			t.Fatalf("VRAM[%#x] = %#x, want 0x5A", 0x1000+i, v.VRAM[0x1000+i])
		}
	}
	if v.VRAM[0x1010] != 0 {
		t.Fatalf("VRAM[0x1010] = %#x, want untouched 0", v.VRAM[0x1010])
	}
}

func TestHVCounterWraps(t *testing.T) {
	v := New(&fakeBus{})
	for i := 0; i < H32Total*NTSCLines+5; i++ {
		v.StepPixel()
	}
	if v.HCounter < 0 || v.HCounter >= H32Total {
		t.Fatalf("HCounter out of range: %d", v.HCounter)
	}
}
