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

// Package z80 implements the Zilog Z80 instruction set as used by the Mega
// Drive's sound co-processor: the documented opcode set plus the
// commonly-relied-upon undocumented behaviours (MEMPTR/WZ leakage, the
// undocumented SLL opcode, DD/FD prefix stacking).
package z80

// Bus is the interface the Z80 uses to reach its 16-bit address space. All
// accesses are byte-granularity; the bridge to the 68K bus in the
// $8000-$FFFF window is the Bus implementation's responsibility.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	// In/Out address the 8-bit I/O space used by IN/OUT (C) and IN/OUT (n).
	In(port uint16) uint8
	Out(port uint16, v uint8)
}

// Flag bits of the F register.
const (
	FlagC  uint8 = 1 << 0
	FlagN  uint8 = 1 << 1
	FlagPV uint8 = 1 << 2
	FlagX  uint8 = 1 << 3 // undocumented, mirrors bit 3 of the result
	FlagH  uint8 = 1 << 4
	FlagY  uint8 = 1 << 5 // undocumented, mirrors bit 5 of the result
	FlagZ  uint8 = 1 << 6
	FlagS  uint8 = 1 << 7
)

// IM selects the Z80 interrupt mode.
type IM uint8

const (
	IM0 IM = 0
	IM1 IM = 1
	IM2 IM = 2
)

// CPU holds the full Z80 register file, including the shadow set, index
// registers and the internal MEMPTR/WZ register the spec requires for
// undocumented flag behaviour.
type CPU struct {
	A, F   uint8
	B, C   uint8
	D, E   uint8
	H, L   uint8
	A2, F2 uint8
	B2, C2 uint8
	D2, E2 uint8
	H2, L2 uint8

	IX, IY uint16
	SP, PC uint16

	I uint8
	R uint8

	IFF1, IFF2 bool
	IM         IM

	// WZ is the internal MEMPTR register: spec §4.3 "MEMPTR (WZ) update
	// rules" and §8 "BIT n,(HL) flag leakage".
	WZ uint16

	Bus Bus

	Cycles uint64

	Halted bool

	// busreqGranted mirrors the 68K's ownership of the Z80 bus via
	// $A11100/$A11200 (spec §4.3 "Reset / bus request"). While true the
	// Z80 does not execute.
	busreqGranted bool
	resetAsserted bool

	irqLine    bool
	irqVector  func() uint8 // IM 0 opcode / IM 2 low byte supplier
	eiShadow   bool
	pendingInt bool
}

// NewCPU creates a CPU wired to bus.
func NewCPU(bus Bus) *CPU {
	return &CPU{Bus: bus, irqVector: func() uint8 { return 0xFF }}
}

// SetIRQVectorSource installs the function the CPU calls to obtain the
// bus-supplied opcode/vector byte on interrupt acceptance in IM 0 or IM 2.
// Per spec: "The Genesis Z80 bus supplies $FF on IRQ unless otherwise
// modeled."
func (c *CPU) SetIRQVectorSource(fn func() uint8) { c.irqVector = fn }

// RequestInterrupt asserts or clears the single Z80 IRQ line (driven by VDP
// V-blank, per spec §4.1).
func (c *CPU) RequestInterrupt(asserted bool) { c.irqLine = asserted }

// SetBusRequest mirrors a 68K write to $A11100. Granting the bus request
// halts the Z80 until it is released (spec §4.3).
func (c *CPU) SetBusRequest(granted bool) { c.busreqGranted = granted }

// BusRequestAcknowledged mirrors a 68K read of $A11100's acknowledge bit.
func (c *CPU) BusRequestAcknowledged() bool { return c.busreqGranted }

// SetReset mirrors a 68K write to $A11200. While asserted the Z80 is held
// in reset and does not execute.
func (c *CPU) SetReset(asserted bool) {
	c.resetAsserted = asserted
	if asserted {
		c.Reset()
	}
}

// Reset performs the Z80 power-on/reset sequence: PC=0, IFF1=IFF2=false,
// IM=0, R preserves nothing meaningful (hardware leaves it undefined; we
// zero it for determinism).
func (c *CPU) Reset() {
	c.PC = 0
	c.IFF1 = false
	c.IFF2 = false
	c.IM = IM0
	c.I = 0
	c.R = 0
	c.Halted = false
	c.eiShadow = false
}

// TakeCycles drains the running cycle counter.
func (c *CPU) TakeCycles() uint64 {
	n := c.Cycles
	c.Cycles = 0
	return n
}

// incR increments the low 7 bits of R by one, preserving bit 7, per spec:
// "bit 7 of R is preserved across increments; only the low 7 bits are
// incremented by one per instruction fetch (including each prefix byte)."
func (c *CPU) incR() {
	c.R = (c.R & 0x80) | ((c.R + 1) & 0x7F)
}

// fetch reads the opcode/operand byte at PC, advances PC and bumps R.
func (c *CPU) fetch() uint8 {
	v := c.Bus.Read(c.PC)
	c.PC++
	c.incR()
	return v
}

// fetchNoR reads a byte at PC and advances PC without touching R - used for
// the second and later bytes of a multi-byte instruction, since only the
// opcode/prefix bytes increment R per the spec's invariant.
func (c *CPU) fetchNoR() uint8 {
	v := c.Bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetchNoR()
	hi := c.fetchNoR()
	return uint16(hi)<<8 | uint16(lo)
}

// Step decodes and executes one instruction, or services a pending
// interrupt / HALT condition, returning the number of Z80 cycles consumed.
func (c *CPU) Step() uint64 {
	before := c.Cycles

	if c.resetAsserted || c.busreqGranted {
		c.Cycles++
		return c.Cycles - before
	}

	if c.pendingInt {
		c.pendingInt = false
	} else if c.irqLine && c.IFF1 && !c.eiShadow {
		c.acceptInterrupt()
		return c.Cycles - before
	}
	c.eiShadow = false

	if c.Halted {
		if c.irqLine && c.IFF1 {
			c.Halted = false
		} else {
			c.Cycles += 4
			return c.Cycles - before
		}
	}

	op := c.fetch()
	c.decode(op)

	if c.Cycles == before {
		c.Cycles += 4
	}
	return c.Cycles - before
}

// acceptInterrupt dispatches a maskable interrupt per the CPU's current
// interrupt mode (spec §4.3).
func (c *CPU) acceptInterrupt() {
	c.IFF1 = false
	c.IFF2 = false
	if c.Halted {
		c.Halted = false
	}
	c.push16(c.PC)
	switch c.IM {
	case IM0:
		// The bus-supplied opcode is executed directly; modelled here as a
		// vector lookup of RST 38h for the documented default ($FF).
		c.PC = 0x0038
		c.Cycles += 13
	case IM1:
		c.PC = 0x0038
		c.Cycles += 13
	case IM2:
		low := c.irqVector()
		addr := uint16(c.I)<<8 | uint16(low)
		c.PC = uint16(c.Bus.Read(addr)) | uint16(c.Bus.Read(addr+1))<<8
		c.Cycles += 19
	}
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.Bus.Write(c.SP, uint8(v>>8))
	c.SP--
	c.Bus.Write(c.SP, uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.Bus.Read(c.SP)
	c.SP++
	hi := c.Bus.Read(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}
