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

// execGroupC handles the $Cxxx page: AND, MULU, MULS, EXG and ABCD.
func (c *CPU) execGroupC(op uint16, pc uint32) {
	dreg := int((op >> 9) & 0x7)
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)
	opmode := (op >> 6) & 0x7

	// EXG, per spec: "EXG swaps any two D or A registers, including across
	// the D/A boundary."
	field := (op >> 3) & 0x3F
	switch field {
	case 0x28: // Dx,Dy
		c.D[dreg], c.D[reg] = c.D[reg], c.D[dreg]
		return
	case 0x29: // Ax,Ay
		c.A[dreg], c.A[reg] = c.A[reg], c.A[dreg]
		c.exgSyncSP(dreg, reg)
		return
	case 0x31: // Dx,Ay
		c.D[dreg], c.A[reg] = c.A[reg], c.D[dreg]
		c.exgSyncSP(-1, reg)
		return
	}

	if op&0x01F0 == 0x0100 { // ABCD
		c.abcd(dreg, mode, reg)
		return
	}

	switch opmode {
	case 0, 1, 2: // AND <ea>,Dn
		size := sizeField(opmode)
		src := c.resolve(mode, reg, size)
		v := c.readOperand(src, size)
		r := maskSize(c.D[dreg]&v, size)
		c.D[dreg] = (c.D[dreg] &^ sizeMask(size)) | (r & sizeMask(size))
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 4, 5, 6: // AND Dn,<ea>
		size := sizeField(opmode - 4)
		dst := c.resolve(mode, reg, size)
		v := c.readOperand(dst, size)
		r := maskSize(v&c.D[dreg], size)
		c.writeOperand(dst, size, r)
		c.setNZ(r, size)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
	case 3: // MULU
		src := c.resolve(mode, reg, Word)
		v := c.readOperand(src, Word) & 0xFFFF
		r := (c.D[dreg] & 0xFFFF) * v
		c.D[dreg] = r
		c.setNZ(r, Long)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
		c.Cycles += 38
	case 7: // MULS
		src := c.resolve(mode, reg, Word)
		a := int32(int16(c.readOperand(src, Word)))
		b := int32(int16(c.D[dreg]))
		r := uint32(a * b)
		c.D[dreg] = r
		c.setNZ(r, Long)
		boolFlag(&c.SR, SROverflow, false)
		boolFlag(&c.SR, SRCarry, false)
		c.Cycles += 38
	}
}

// exgSyncSP re-syncs A7 with the mode-appropriate stack pointer after EXG
// has touched address registers directly.
func (c *CPU) exgSyncSP(dreg, reg int) {
	if dreg == 7 || reg == 7 {
		c.setSP(c.A[7])
	}
}

func (c *CPU) abcd(dstReg, mode, srcReg int) {
	var src, dst operand
	if mode == 0 {
		src = operand{isReg: true, dataReg: true, reg: srcReg}
		dst = operand{isReg: true, dataReg: true, reg: dstReg}
	} else {
		c.A[srcReg]--
		src = operand{addr: c.A[srcReg]}
		c.A[dstReg]--
		dst = operand{addr: c.A[dstReg]}
	}
	s := c.readOperand(src, Byte)
	d := c.readOperand(dst, Byte)
	xin := uint32(0)
	if c.SR&SRExtend != 0 {
		xin = 1
	}
	lo := (d & 0xF) + (s & 0xF) + xin
	var loCarry uint32
	if lo > 9 {
		lo -= 10
		loCarry = 1
	}
	hi := (d>>4)&0xF + (s>>4)&0xF + loCarry
	carry := hi > 9
	if carry {
		hi -= 10
	}
	result := (hi<<4 | lo) & 0xFF
	c.writeOperand(dst, Byte, result)
	boolFlag(&c.SR, SRCarry, carry)
	boolFlag(&c.SR, SRExtend, carry)
	if result != 0 {
		boolFlag(&c.SR, SRZero, false)
	}
	boolFlag(&c.SR, SRNegative, result&0x80 != 0)
}
