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

// Package vdp implements the Mega Drive's Video Display Processor: VRAM,
// CRAM and VSRAM, the control-port address/code latch state machine, H/V
// counters and blanking interrupts, DMA fill/copy/mem-to-VRAM, and the
// plane/sprite rendering pipeline, per spec §4.5.
package vdp

// Memory sizes, per spec "VDP memory".
const (
	VRAMSize  = 64 * 1024
	CRAMSize  = 128
	VSRAMSize = 80
)

// H32/H40 scanline totals and NTSC/PAL field totals, per spec §4.5.
const (
	H32Total = 342
	H40Total = 420

	NTSCLines = 262
	PALLines  = 313
)

// DMA modes selected by register 23's high bits.
const (
	DMANone = iota
	DMAMemToVRAM
	DMAFill
	DMACopy
)

// target selects which memory the control-port code addresses.
type target int

const (
	targetVRAM target = iota
	targetCRAM
	targetVSRAM
)

// VDP holds the full chip state: memories, the 24 numbered registers, the
// control-port latch, counters and DMA progress.
type VDP struct {
	VRAM  [VRAMSize]byte
	CRAM  [CRAMSize]byte
	VSRAM [VSRAMSize]byte

	Reg [24]uint8

	// Control-port address/code latch state machine (spec §4.5
	// "Register-vs-access model").
	latchArmed   bool
	latchFirst   uint16
	codeReg      uint8
	addr         uint16
	writeOp      bool
	autoIncrDone bool

	// Status register bits the 68K reads back at the control port.
	fifoEmpty  bool
	fifoFull   bool
	vblank     bool
	hblank     bool
	dmaBusy    bool
	spriteOvf  bool
	collision  bool
	oddFrame   bool

	HCounter int
	VCounter int
	hTotal   int
	vTotal   int

	hIntCounter uint8
	pendingHInt bool
	pendingVInt bool

	irqLevel uint8

	// DMA engine state.
	dmaMode      int
	dmaLen       uint16
	dmaSrc       uint32
	dmaFillValue uint8
	dmaPending   bool

	// Bus is the 68K-side memory the VDP reads from during a
	// memory-to-VRAM DMA transfer.
	Bus DMASource

	Framebuffer [320 * 240]uint16
}

// DMASource is the 68K bus, as seen by the VDP's DMA engine.
type DMASource interface {
	Read8(addr uint32) uint8
}

// New creates a VDP with power-on defaults: registers zeroed, latch clear,
// fifoEmpty set.
func New(bus DMASource) *VDP {
	v := &VDP{Bus: bus, fifoEmpty: true}
	v.hTotal = H32Total
	v.vTotal = NTSCLines
	return v
}

// Reset restores power-on defaults without reallocating memories, matching
// the hard-reset contract in spec §3 "Lifecycles".
func (v *VDP) Reset() {
	for i := range v.Reg {
		v.Reg[i] = 0
	}
	v.latchArmed = false
	v.dmaBusy = false
	v.dmaPending = false
	v.HCounter = 0
	v.VCounter = 0
	v.hTotal = H32Total
	v.vTotal = NTSCLines
	v.irqLevel = 0
}

func (v *VDP) h40() bool { return v.Reg[12]&0x01 != 0 }

func (v *VDP) lineTotal() int {
	if v.h40() {
		return H40Total
	}
	return H32Total
}

// HIntEnabled reports register 0 bit 4, "H-interrupt enabled".
func (v *VDP) hIntEnabled() bool { return v.Reg[0]&0x10 != 0 }

// VIntEnabled reports register 1 bit 5, "V-interrupt enabled".
func (v *VDP) vIntEnabled() bool { return v.Reg[1]&0x20 != 0 }

func (v *VDP) activeLines() int {
	if v.Reg[1]&0x08 != 0 {
		return 240 // 30-row mode, PAL-only in hardware but the field is self-describing
	}
	return 224
}

// IRQLevel reports the interrupt level currently asserted towards the 68K
// (0 if none), per spec §4.1: "the VDP publishes an IRQ level (0-6)".
func (v *VDP) IRQLevel() uint8 { return v.irqLevel }

// DMABusy reports the status bit 68K code polls during a DMA transfer.
func (v *VDP) DMABusy() bool { return v.dmaBusy }

// StatusRead implements a 68K read of the control port: bit 9 FIFO empty,
// bit 8 FIFO full, bit 6 sprite overflow, bit 5 sprite collision, bit 4 odd
// frame, bit 3 V-blank, bit 2 H-blank, bit 1 DMA busy. Bit 7 (V-interrupt
// pending) and bit 0 (PAL) always read 0.
func (v *VDP) StatusRead() uint16 {
	var s uint16
	if v.fifoEmpty {
		s |= 1 << 9
	}
	if v.fifoFull {
		s |= 1 << 8
	}
	if v.vblank {
		s |= 1 << 3
	}
	if v.hblank {
		s |= 1 << 2
	}
	if v.dmaBusy {
		s |= 1 << 1
	}
	if v.oddFrame {
		s |= 1 << 4
	}
	if v.spriteOvf {
		s |= 1 << 6
	}
	if v.collision {
		s |= 1 << 5
	}
	return s
}

// HVCounterRead implements a 68K read of $C00008: V-counter in the high
// byte, H-counter in the low byte, each scaled to the documented 8-bit
// hardware range.
func (v *VDP) HVCounterRead() uint16 {
	h := uint8(v.HCounter >> 1)
	vv := uint8(v.VCounter)
	return uint16(vv)<<8 | uint16(h)
}
