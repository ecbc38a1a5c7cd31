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

// execGroup9 handles the $9xxx page: SUB, SUBA and SUBX.
func (c *CPU) execGroup9(op uint16, pc uint32) {
	dreg := int((op >> 9) & 0x7)
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)
	opmode := (op >> 6) & 0x7

	if opmode == 3 || opmode == 7 { // SUBA
		size := Word
		if opmode == 7 {
			size = Long
		}
		src := c.resolve(mode, reg, size)
		v := signExtendTo32(c.readOperand(src, size), size)
		c.A[dreg] -= v
		if dreg == 7 {
			c.setSP(c.A[dreg])
		}
		return
	}

	if op&0x0130 == 0x0100 { // SUBX
		size := sizeField(opmode & 0x3)
		var src, dst operand
		if mode == 0 {
			src = operand{isReg: true, dataReg: true, reg: reg}
			dst = operand{isReg: true, dataReg: true, reg: dreg}
		} else {
			c.A[reg] -= uint32(size)
			src = operand{addr: c.A[reg]}
			c.A[dreg] -= uint32(size)
			dst = operand{addr: c.A[dreg]}
		}
		s := c.readOperand(src, size)
		d := c.readOperand(dst, size)
		r := c.subx(d, s, size)
		c.writeOperand(dst, size, r)
		return
	}

	if opmode <= 2 { // SUB <ea>,Dn
		size := sizeField(opmode)
		src := c.resolve(mode, reg, size)
		v := c.readOperand(src, size)
		r, ov, carry := subFlags(c.D[dreg], v, size)
		c.D[dreg] = (c.D[dreg] &^ sizeMask(size)) | (r & sizeMask(size))
		c.setNZVC(r, size, ov, carry)
		boolFlag(&c.SR, SRExtend, carry)
		return
	}

	// SUB Dn,<ea>
	size := sizeField(opmode - 4)
	dst := c.resolve(mode, reg, size)
	v := c.readOperand(dst, size)
	r, ov, carry := subFlags(v, c.D[dreg], size)
	c.writeOperand(dst, size, r)
	c.setNZVC(r, size, ov, carry)
	boolFlag(&c.SR, SRExtend, carry)
}
