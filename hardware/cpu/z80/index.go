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

package z80

// decodeIndex handles the DD/FD-prefixed page: the IX/IY-relative
// addressing forms of the instructions that reference HL/(HL), plus direct
// 16-bit IX/IY loads, PUSH/POP, ADD, INC/DEC and the (IX+d)/(IY+d) ALU and
// bit forms via decodeIndexCB.
//
// Per spec §4.3: "DD/FD before ED is ignored; repeated DD/FD stack and only
// the last counts; each prefix byte increments R." Any opcode this table
// doesn't special-case for the index register falls back to the unprefixed
// decoder, which still increments R correctly for the prefix byte itself
// (already accounted for by the caller's fetch of the prefix) and executes
// against HL - this models "DD/FD is ignored" for instructions that don't
// reference HL/(HL), at the cost of not modelling the extra stall cycles
// real hardware spends on the wasted prefix.
func (c *CPU) decodeIndex(ix *uint16) {
	op := c.fetch()
	for op == 0xDD || op == 0xFD {
		if op == 0xDD {
			ix = &c.IX
		} else {
			ix = &c.IY
		}
		op = c.fetch()
	}
	if op == 0xED {
		c.decodeED(c.fetch())
		return
	}
	if op == 0xCB {
		c.decodeIndexCB(ix)
		return
	}

	switch op {
	case 0x21: // LD IX,nn
		*ix = c.fetch16()
	case 0x22: // LD (nn),IX
		addr := c.fetch16()
		c.Bus.Write(addr, uint8(*ix))
		c.Bus.Write(addr+1, uint8(*ix>>8))
		c.WZ = addr + 1
	case 0x2A: // LD IX,(nn)
		addr := c.fetch16()
		lo := c.Bus.Read(addr)
		hi := c.Bus.Read(addr + 1)
		*ix = uint16(hi)<<8 | uint16(lo)
		c.WZ = addr + 1
	case 0x23: // INC IX
		*ix++
	case 0x2B: // DEC IX
		*ix--
	case 0x09, 0x19, 0x29, 0x39: // ADD IX,rr (rr includes IX itself at 0x29)
		var v uint16
		switch op {
		case 0x09:
			v = c.bc()
		case 0x19:
			v = c.de()
		case 0x29:
			v = *ix
		case 0x39:
			v = c.SP
		}
		hl := *ix
		r := hl + v
		half := (hl&0xFFF)+(v&0xFFF) > 0xFFF
		boolFlag(&c.F, FlagN, false)
		boolFlag(&c.F, FlagH, half)
		boolFlag(&c.F, FlagC, uint32(hl)+uint32(v) > 0xFFFF)
		xy(&c.F, uint8(r>>8))
		*ix = r
		c.WZ = hl + 1
	case 0xE5: // PUSH IX
		c.push16(*ix)
	case 0xE1: // POP IX
		*ix = c.pop16()
	case 0xE3: // EX (SP),IX
		v := c.pop16()
		c.push16(*ix)
		*ix = v
		c.WZ = v
	case 0xE9: // JP (IX)
		c.PC = *ix
	case 0xF9: // LD SP,IX
		c.SP = *ix
	case 0x34: // INC (IX+d)
		addr := c.indexAddr(ix)
		c.Bus.Write(addr, c.inc8(c.Bus.Read(addr)))
	case 0x35: // DEC (IX+d)
		addr := c.indexAddr(ix)
		c.Bus.Write(addr, c.dec8(c.Bus.Read(addr)))
	case 0x36: // LD (IX+d),n
		addr := c.indexAddr(ix)
		n := c.fetchNoR()
		c.Bus.Write(addr, n)
	default:
		if op&0xC0 == 0x40 && op != 0x76 { // LD r,(IX+d) / LD (IX+d),r
			y := (op >> 3) & 0x7
			z := op & 0x7
			if z == 6 {
				addr := c.indexAddr(ix)
				c.setReg8(y, c.Bus.Read(addr))
				return
			}
			if y == 6 {
				addr := c.indexAddr(ix)
				c.Bus.Write(addr, c.reg8(z))
				return
			}
			c.setReg8(y, c.reg8(z))
			return
		}
		if op&0xC0 == 0x80 && op&0x7 == 6 { // ALU A,(IX+d)
			addr := c.indexAddr(ix)
			c.alu((op>>3)&0x7, c.Bus.Read(addr))
			return
		}
		// Any other opcode doesn't reference HL/(HL); DD/FD is a no-op
		// prefix for it, per spec.
		c.decode(op)
	}
}

// indexAddr fetches the signed displacement byte and sets WZ to the
// resulting address, as real hardware computes it eagerly for every
// (IX+d)/(IY+d) reference.
func (c *CPU) indexAddr(ix *uint16) uint16 {
	d := int8(c.fetchNoR())
	addr := uint16(int32(*ix) + int32(d))
	c.WZ = addr
	return addr
}

// decodeIndexCB handles DD CB / FD CB: the displacement byte precedes the
// CB-style opcode, and the shift/bit/res/set operand is always (IX+d)/
// (IY+d) - register destinations other than (HL) are an undocumented
// "shadow copy" quirk some disassemblers model; this core does not write
// back to a shadow register, matching the documented-only subset the spec
// requires.
func (c *CPU) decodeIndexCB(ix *uint16) {
	addr := c.indexAddr(ix)
	op := c.fetchNoR()
	x := op >> 6
	y := (op >> 3) & 0x7

	v := c.Bus.Read(addr)
	switch x {
	case 0:
		c.Bus.Write(addr, c.shiftOp(y, v))
	case 1:
		c.bitTest(y, v, true)
	case 2:
		c.Bus.Write(addr, v&^(1<<y))
	case 3:
		c.Bus.Write(addr, v|(1<<y))
	}
}
