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

// execGroup8 handles the $8xxx page: OR, DIVU, DIVS and SBCD.
func (c *CPU) execGroup8(op uint16, pc uint32) {
	dreg := int((op >> 9) & 0x7)
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)
	opmode := (op >> 6) & 0x7

	if op&0x01F0 == 0x0100 { // SBCD
		c.sbcd(dreg, mode, reg)
		return
	}

	switch opmode {
	case 0, 1, 2: // OR <ea>,Dn
		size := sizeField(opmode)
		src := c.resolve(mode, reg, size)
		v := c.readOperand(src, size)
		r := maskSize(c.D[dreg]|v, size)
		c.D[dreg] = (c.D[dreg] &^ sizeMask(size)) | (r & sizeMask(size))
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 4, 5, 6: // OR Dn,<ea>
		size := sizeField(opmode - 4)
		dst := c.resolve(mode, reg, size)
		v := c.readOperand(dst, size)
		r := maskSize(v|c.D[dreg], size)
		c.writeOperand(dst, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 3: // DIVU <ea>,Dn
		c.divu(dreg, mode, reg, pc)
	case 7: // DIVS <ea>,Dn
		c.divs(dreg, mode, reg, pc)
	}
}

func sizeMask(size Size) uint32 {
	switch size {
	case Byte:
		return 0xFF
	case Word:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

// divu implements unsigned 32-by-16 division, per spec: "DIVS/DIVU take up
// to 158 cycles and raise the zero-divide exception (vector 5) on a zero
// divisor without advancing PC past the instruction."
func (c *CPU) divu(dreg, mode, reg int, pc uint32) {
	src := c.resolve(mode, reg, Word)
	divisor := c.readOperand(src, Word)
	if divisor == 0 {
		c.zeroDivide(pc)
		return
	}
	dividend := c.D[dreg]
	quotient := dividend / divisor
	remainder := dividend % divisor
	if quotient > 0xFFFF {
		boolFlag(&c.SR, SROverflow, true)
		c.Cycles += 10
		return
	}
	c.D[dreg] = (remainder << 16) | (quotient & 0xFFFF)
	c.setNZ(quotient, Word)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
	c.Cycles += 140
}

// divs implements signed 32-by-16 division, truncating toward zero.
func (c *CPU) divs(dreg, mode, reg int, pc uint32) {
	src := c.resolve(mode, reg, Word)
	divisor := int32(int16(c.readOperand(src, Word)))
	if divisor == 0 {
		c.zeroDivide(pc)
		return
	}
	dividend := int32(c.D[dreg])
	quotient := dividend / divisor
	remainder := dividend % divisor
	if quotient > 32767 || quotient < -32768 {
		boolFlag(&c.SR, SROverflow, true)
		c.Cycles += 10
		return
	}
	c.D[dreg] = (uint32(remainder) << 16) | (uint32(quotient) & 0xFFFF)
	c.setNZ(uint32(quotient), Word)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
	c.Cycles += 158
}

// sbcd subtracts two BCD-packed bytes with extend-in borrow, register or
// predecrement-memory operand form selected by bit 3 of the opcode.
func (c *CPU) sbcd(dstReg, mode, srcReg int) {
	var src, dst operand
	if mode == 0 {
		src = operand{isReg: true, dataReg: true, reg: srcReg}
		dst = operand{isReg: true, dataReg: true, reg: dstReg}
	} else {
		c.A[srcReg] -= 1
		src = operand{addr: c.A[srcReg]}
		c.A[dstReg] -= 1
		dst = operand{addr: c.A[dstReg]}
	}
	s := c.readOperand(src, Byte)
	d := c.readOperand(dst, Byte)
	xin := uint32(0)
	if c.SR&SRExtend != 0 {
		xin = 1
	}
	result, borrow := bcdSub(d, s, xin)
	c.writeOperand(dst, Byte, result)
	boolFlag(&c.SR, SRCarry, borrow)
	boolFlag(&c.SR, SRExtend, borrow)
	if result != 0 {
		boolFlag(&c.SR, SRZero, false)
	}
	boolFlag(&c.SR, SRNegative, result&0x80 != 0)
}

func bcdSub(d, s, xin uint32) (result uint32, borrow bool) {
	lo := int32(d&0xF) - int32(s&0xF) - int32(xin)
	var loBorrow int32
	if lo < 0 {
		lo += 10
		loBorrow = 1
	}
	hi := int32(d>>4&0xF) - int32(s>>4&0xF) - loBorrow
	var hiBorrow bool
	if hi < 0 {
		hi += 10
		hiBorrow = true
	}
	return uint32(hi<<4) | uint32(lo), hiBorrow
}
