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

// execGroup4 handles the sprawling $4xxx "miscellaneous" page: NEGX, CLR,
// NEG, NOT, the MOVE SR/CCR forms, NBCD, SWAP, PEA, EXT, TST, TAS, CHK,
// LEA, JSR/JMP, MOVEM, LINK/UNLK, MOVE USP, and the no-operand control
// instructions (NOP, RTS, RTE, RTR, TRAP, TRAPV, STOP, RESET, ILLEGAL).
func (c *CPU) execGroup4(op uint16, pc uint32) {
	nibble := (op >> 8) & 0xF
	sizeBits := (op >> 6) & 0x3
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)

	// CHK <ea>,Dn: bits8-6 = 1,1,0.
	if op&0x01C0 == 0x0180 {
		c.chk(int((op>>9)&0x7), mode, reg, pc)
		return
	}

	// LEA <ea>,An: bits8-6 = 1,1,1.
	if op&0x01C0 == 0x01C0 {
		target := c.resolve(mode, reg, Long)
		areg := int((op >> 9) & 0x7)
		c.A[areg] = target.addr
		if areg == 7 {
			c.setSP(c.A[7])
		}
		return
	}

	switch nibble {
	case 0x0:
		if sizeBits == 3 {
			c.moveFromSR(mode, reg)
			return
		}
		c.unaryOp(unaryNegx, sizeField(sizeBits), mode, reg)
		return
	case 0x2:
		c.unaryOp(unaryClr, sizeField(sizeBits), mode, reg)
		return
	case 0x4:
		if sizeBits == 3 {
			c.moveToCCR(mode, reg)
			return
		}
		c.unaryOp(unaryNeg, sizeField(sizeBits), mode, reg)
		return
	case 0x6:
		if sizeBits == 3 {
			c.moveToSR(mode, reg, pc)
			return
		}
		c.unaryOp(unaryNot, sizeField(sizeBits), mode, reg)
		return
	case 0x8:
		c.execNibble8(op, sizeBits, mode, reg, pc)
		return
	case 0xA:
		if sizeBits == 3 {
			c.tas(mode, reg)
			return
		}
		c.unaryOp(unaryTst, sizeField(sizeBits), mode, reg)
		return
	case 0xC:
		if sizeBits >= 2 {
			c.movem(op, mode, reg)
			return
		}
	case 0xE:
		c.execNibbleE(op, mode, reg, pc)
		return
	}
}

func (c *CPU) execNibble8(op uint16, sizeBits uint16, mode, reg int, pc uint32) {
	if sizeBits == 0 {
		c.unaryOp(unaryNbcd, Byte, mode, reg)
		return
	}
	if mode == 0 {
		switch sizeBits {
		case 1:
			c.swap(reg)
		case 2:
			c.ext(reg, Word)
		case 3:
			c.ext(reg, Long)
		}
		return
	}
	if sizeBits == 1 {
		c.pea(mode, reg)
		return
	}
	// sizeBits 2 or 3 with mode != 0: MOVEM register-to-memory.
	c.movem(op, mode, reg)
}

func (c *CPU) execNibbleE(op uint16, mode, reg int, pc uint32) {
	switch {
	case op == 0x4E70: // RESET
		if !c.Supervisor() {
			c.privilegeViolation(pc)
			return
		}
		c.Cycles += 132
	case op == 0x4E71: // NOP
	case op == 0x4E72: // STOP
		if !c.Supervisor() {
			c.privilegeViolation(pc)
			return
		}
		sr := c.fetchWord()
		c.SR = sr
		c.Stopped = true
	case op == 0x4E73: // RTE
		if !c.Supervisor() {
			c.privilegeViolation(pc)
			return
		}
		oldSuper := c.Supervisor()
		c.SR = c.pop16()
		c.PC = c.pop32()
		if oldSuper != c.Supervisor() {
			c.syncSP()
		}
	case op == 0x4E75: // RTS
		c.PC = c.pop32()
	case op == 0x4E76: // TRAPV
		if c.SR&SROverflow != 0 {
			c.raiseException(VectorTrapV, c.PC)
		}
	case op == 0x4E77: // RTR
		ccr := c.pop16()
		c.SR = (c.SR &^ 0xFF) | (ccr & 0xFF)
		c.PC = c.pop32()
	case op&0xFFF0 == 0x4E40: // TRAP #n
		c.trap(uint8(op&0xF), c.PC)
	case op&0xFFF8 == 0x4E50: // LINK
		disp := int16(c.fetchWord())
		c.push32(c.A[reg])
		c.A[reg] = c.A[7]
		c.A[7] = uint32(int32(c.A[7]) + int32(disp))
		c.setSP(c.A[7])
	case op&0xFFF8 == 0x4E58: // UNLK
		c.A[7] = c.A[reg]
		c.setSP(c.A[7])
		c.A[reg] = c.pop32()
	case op&0xFFF8 == 0x4E60: // MOVE An,USP
		if !c.Supervisor() {
			c.privilegeViolation(pc)
			return
		}
		c.USP = c.A[reg]
	case op&0xFFF8 == 0x4E68: // MOVE USP,An
		if !c.Supervisor() {
			c.privilegeViolation(pc)
			return
		}
		c.A[reg] = c.USP
	case op&0xFFC0 == 0x4E80: // JSR
		target := c.resolve(mode, reg, Long)
		ret := c.PC
		c.push32(ret)
		c.PC = target.addr
	case op&0xFFC0 == 0x4EC0: // JMP
		target := c.resolve(mode, reg, Long)
		c.PC = target.addr
	default:
		c.illegal(VectorIllegal, pc)
	}
}

// unaryKind enumerates the single-operand ALU ops sharing the nibble-based
// dispatch above.
type unaryKind int

const (
	unaryNegx unaryKind = iota
	unaryClr
	unaryNeg
	unaryNot
	unaryTst
	unaryNbcd
)

func (c *CPU) unaryOp(kind unaryKind, size Size, mode, reg int) {
	target := c.resolve(mode, reg, size)
	switch kind {
	case unaryTst:
		v := c.readOperand(target, size)
		c.setNZ(v, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case unaryClr:
		c.writeOperand(target, size, 0)
		boolFlag(&c.SR, SRZero, true)
		boolFlag(&c.SR, SRNegative, false)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case unaryNeg:
		v := c.readOperand(target, size)
		r, ov, carry := subFlags(0, v, size)
		c.writeOperand(target, size, r)
		c.setNZVC(r, size, ov, carry)
		boolFlag(&c.SR, SRExtend, carry)
	case unaryNegx:
		v := c.readOperand(target, size)
		r := c.subx(0, v, size)
		c.writeOperand(target, size, r)
	case unaryNot:
		v := c.readOperand(target, size)
		r := maskSize(^v, size)
		c.writeOperand(target, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case unaryNbcd:
		v := c.readOperand(target, size)
		xin := uint32(0)
		if c.SR&SRExtend != 0 {
			xin = 1
		}
		r, borrow := bcdSub(0, v, xin)
		c.writeOperand(target, size, r)
		boolFlag(&c.SR, SRCarry, borrow)
		boolFlag(&c.SR, SRExtend, borrow)
		if r != 0 {
			boolFlag(&c.SR, SRZero, false)
		}
	}
}

func (c *CPU) swap(reg int) {
	v := c.D[reg]
	c.D[reg] = (v >> 16) | (v << 16)
	c.setNZ(c.D[reg], Long)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
}

func (c *CPU) ext(reg int, to Size) {
	switch to {
	case Word:
		c.D[reg] = (c.D[reg] &^ 0xFFFF) | (signExtendTo32(c.D[reg]&0xFF, Byte) & 0xFFFF)
		c.setNZ(c.D[reg], Word)
	default:
		c.D[reg] = signExtendTo32(c.D[reg]&0xFFFF, Word)
		c.setNZ(c.D[reg], Long)
	}
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
}

func (c *CPU) pea(mode, reg int) {
	target := c.resolve(mode, reg, Long)
	c.push32(target.addr)
}

func (c *CPU) tas(mode, reg int) {
	target := c.resolve(mode, reg, Byte)
	v := c.readOperand(target, Byte)
	c.setNZ(v, Byte)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
	c.writeOperand(target, Byte, v|0x80)
}

func (c *CPU) chk(dreg, mode, reg int, pc uint32) {
	bound := int16(c.readOperand(c.resolve(mode, reg, Word), Word))
	v := int16(c.D[dreg])
	if v < 0 {
		boolFlag(&c.SR, SRNegative, true)
		c.raiseException(VectorCHK, pc)
		return
	}
	if v > bound {
		boolFlag(&c.SR, SRNegative, false)
		c.raiseException(VectorCHK, pc)
	}
}

func (c *CPU) moveFromSR(mode, reg int) {
	target := c.resolve(mode, reg, Word)
	c.writeOperand(target, Word, uint32(c.SR))
}

func (c *CPU) moveToCCR(mode, reg int) {
	v := c.readOperand(c.resolve(mode, reg, Word), Word)
	c.SR = (c.SR &^ 0xFF) | (uint16(v) & 0xFF)
}

func (c *CPU) moveToSR(mode, reg int, pc uint32) {
	if !c.Supervisor() {
		c.privilegeViolation(pc)
		return
	}
	v := c.readOperand(c.resolve(mode, reg, Word), Word)
	oldSuper := c.Supervisor()
	c.SR = uint16(v)
	if oldSuper != c.Supervisor() {
		c.syncSP()
	}
}

// movem transfers the register set named by the extension-word mask
// to/from memory; direction is bit 10 of the opcode (0 = store, 1 = load).
func (c *CPU) movem(op uint16, mode, reg int) {
	memToReg := op&0x0400 != 0
	size := Word
	if op&0x0040 != 0 {
		size = Long
	}
	mask := c.fetchWord()

	if memToReg {
		addr := c.effectiveAddrForMovem(mode, reg)
		for i := 0; i < 8; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			c.D[i] = c.readMovemWord(addr, size)
			addr += uint32(size)
		}
		for i := 0; i < 8; i++ {
			if mask&(1<<(8+i)) == 0 {
				continue
			}
			c.A[i] = c.readMovemWord(addr, size)
			addr += uint32(size)
		}
		if mode == 3 { // (An)+ updates An with the final address
			c.A[reg] = addr
		}
		return
	}

	if mode == 4 { // -(An): register order is reversed, A7..A0,D7..D0
		addr := c.A[reg]
		for i := 7; i >= 0; i-- {
			if mask&(1<<(8+i)) == 0 {
				continue
			}
			addr -= uint32(size)
			c.writeMovemWord(addr, size, c.A[i])
		}
		for i := 7; i >= 0; i-- {
			if mask&(1<<i) == 0 {
				continue
			}
			addr -= uint32(size)
			c.writeMovemWord(addr, size, c.D[i])
		}
		c.A[reg] = addr
		return
	}

	addr := c.effectiveAddrForMovem(mode, reg)
	for i := 0; i < 8; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		c.writeMovemWord(addr, size, c.D[i])
		addr += uint32(size)
	}
	for i := 0; i < 8; i++ {
		if mask&(1<<(8+i)) == 0 {
			continue
		}
		c.writeMovemWord(addr, size, c.A[i])
		addr += uint32(size)
	}
}

func (c *CPU) effectiveAddrForMovem(mode, reg int) uint32 {
	switch mode {
	case 2, 3:
		return c.A[reg]
	default:
		target := c.resolve(mode, reg, Long)
		return target.addr
	}
}

func (c *CPU) readMovemWord(addr uint32, size Size) uint32 {
	if size == Long {
		return c.Bus.Read32(addr)
	}
	return signExtendTo32(uint32(c.Bus.Read16(addr)), Word)
}

func (c *CPU) writeMovemWord(addr uint32, size Size, v uint32) {
	if size == Long {
		c.Bus.Write32(addr, v)
	} else {
		c.Bus.Write16(addr, uint16(v))
	}
}
