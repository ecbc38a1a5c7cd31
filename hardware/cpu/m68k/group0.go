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

// execGroup0 handles the $0xxx opcode page: immediate ALU ops (ORI, ANDI,
// SUBI, ADDI, EORI, CMPI - including the CCR/SR variants) and the bit
// instructions (BTST/BCHG/BCLR/BSET, static-immediate and dynamic-Dn bit
// number forms).
func (c *CPU) execGroup0(op uint16, pc uint32) {
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)

	if op&0x0100 != 0 {
		// Dynamic bit op: bit number comes from a data register.
		bitReg := int((op >> 9) & 0x7)
		bitSel := uint8((op >> 6) & 0x3)
		c.bitOp(bitSel, uint32(c.D[bitReg]), mode, reg)
		return
	}

	nibble := (op >> 8) & 0xF
	if nibble == 0x8 {
		bitSel := uint8((op >> 6) & 0x3)
		n := c.fetchWord()
		c.bitOp(bitSel, uint32(n), mode, reg)
		return
	}

	size := sizeField((op >> 6) & 0x3)

	// ORI/ANDI/EORI to CCR or SR: mode=111 reg=100, size forced by opcode.
	if mode == 7 && reg == 4 {
		immSize := sizeField((op >> 6) & 0x3)
		imm := c.fetchImmediate(immSize)
		switch nibble {
		case 0x0:
			c.aluToSR(op, func(sr uint16) uint16 { return sr | uint16(imm) })
		case 0x2:
			c.aluToSR(op, func(sr uint16) uint16 { return sr & uint16(imm) })
		case 0xA:
			c.aluToSR(op, func(sr uint16) uint16 { return sr ^ uint16(imm) })
		}
		return
	}

	imm := c.fetchImmediate(size)
	target := c.resolve(mode, reg, size)
	dst := c.readOperand(target, size)

	switch nibble {
	case 0x0: // ORI
		r := maskSize(dst|imm, size)
		c.writeOperand(target, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 0x2: // ANDI
		r := maskSize(dst&imm, size)
		c.writeOperand(target, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 0x4: // SUBI
		r, v, carry := subFlags(dst, imm, size)
		c.writeOperand(target, size, r)
		c.setNZVC(r, size, v, carry)
		boolFlag(&c.SR, SRExtend, carry)
	case 0x6: // ADDI
		r, v, carry := addFlags(dst, imm, size)
		c.writeOperand(target, size, r)
		c.setNZVC(r, size, v, carry)
		boolFlag(&c.SR, SRExtend, carry)
	case 0xA: // EORI
		r := maskSize(dst^imm, size)
		c.writeOperand(target, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 0xC: // CMPI
		r, v, carry := subFlags(dst, imm, size)
		c.setNZVC(r, size, v, carry)
	default:
		c.illegal(VectorIllegal, pc)
	}
}

// aluToSR applies fn to the status register (or CCR only, if the opcode's
// word-size bit is clear), enforcing supervisor mode for the SR form.
func (c *CPU) aluToSR(op uint16, fn func(uint16) uint16) {
	toSR := op&0x0040 != 0
	if toSR && !c.Supervisor() {
		c.privilegeViolation(c.PC - 4)
		return
	}
	if toSR {
		old := c.Supervisor()
		c.SR = fn(c.SR)
		if old != c.Supervisor() {
			c.syncSP()
		}
	} else {
		c.SR = (c.SR &^ 0xFF) | (fn(c.SR) & 0xFF)
	}
}

// bitOp implements BTST(0)/BCHG(1)/BCLR(2)/BSET(3) against the effective
// address given by mode/reg, with bit number n (already resolved from
// either an immediate or a data register by the caller).
func (c *CPU) bitOp(sel uint8, n uint32, mode, reg int) {
	size := Long
	if mode != 0 {
		size = Byte
	}
	n &= uint32(size)*8 - 1

	target := c.resolve(mode, reg, size)
	val := c.readOperand(target, size)
	bit := (val >> n) & 1
	boolFlag(&c.SR, SRZero, bit == 0)

	switch sel {
	case 0: // BTST
		return
	case 1: // BCHG
		val ^= 1 << n
	case 2: // BCLR
		val &^= 1 << n
	case 3: // BSET
		val |= 1 << n
	}
	c.writeOperand(target, size, val)
}
