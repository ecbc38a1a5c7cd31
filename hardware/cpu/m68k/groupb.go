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

// execGroupB handles the $Bxxx page: CMP, CMPA, CMPM and EOR.
func (c *CPU) execGroupB(op uint16, pc uint32) {
	dreg := int((op >> 9) & 0x7)
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)
	opmode := (op >> 6) & 0x7

	if opmode == 3 || opmode == 7 { // CMPA
		size := Word
		if opmode == 7 {
			size = Long
		}
		src := c.resolve(mode, reg, size)
		v := signExtendTo32(c.readOperand(src, size), size)
		r, ov, carry := subFlags(c.A[dreg], v, Long)
		c.setNZVC(r, Long, ov, carry)
		return
	}

	if op&0x0138 == 0x0108 { // CMPM (Ay)+,(Ax)+
		size := sizeField(opmode & 0x3)
		var srcOp, dstOp operand
		srcOp = operand{addr: c.A[reg]}
		c.A[reg] += uint32(postIncStep(reg, size))
		dstOp = operand{addr: c.A[dreg]}
		c.A[dreg] += uint32(postIncStep(dreg, size))
		sv := c.readOperand(srcOp, size)
		dv := c.readOperand(dstOp, size)
		r, ov, carry := subFlags(dv, sv, size)
		c.setNZVC(r, size, ov, carry)
		return
	}

	if opmode <= 2 { // CMP <ea>,Dn
		size := sizeField(opmode)
		src := c.resolve(mode, reg, size)
		v := c.readOperand(src, size)
		r, ov, carry := subFlags(c.D[dreg], v, size)
		c.setNZVC(r, size, ov, carry)
		return
	}

	// EOR Dn,<ea>
	size := sizeField(opmode - 4)
	dst := c.resolve(mode, reg, size)
	v := c.readOperand(dst, size)
	r := maskSize(v^c.D[dreg], size)
	c.writeOperand(dst, size, r)
	c.setNZ(r, size)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
}
