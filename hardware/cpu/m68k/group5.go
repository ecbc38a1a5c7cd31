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

// execGroup5 handles the $5xxx page: ADDQ/SUBQ, Scc and DBcc.
func (c *CPU) execGroup5(op uint16, pc uint32) {
	mode := int((op >> 3) & 0x7)
	reg := int(op & 0x7)

	if mode == 1 && op&0x00C0 == 0x00C0 {
		// DBcc: bits 11-8 = condition, low 3 bits = Dn.
		cond := uint8((op >> 8) & 0xF)
		disp := int16(c.fetchWord())
		if cond == 0x1 { // DBF/DBRA never true
			c.D[reg]--
			if int16(c.D[reg]) != -1 {
				c.PC = uint32(int32(pc+2) + int32(disp))
			}
			return
		}
		if c.condition(cond) {
			return
		}
		c.D[reg] = (c.D[reg] &^ 0xFFFF) | uint32(uint16(c.D[reg])-1)
		if int16(c.D[reg]) != -1 {
			c.PC = uint32(int32(pc+2) + int32(disp))
		}
		return
	}

	if op&0x00C0 == 0x00C0 {
		// Scc: bits 7-6 == 11, bits 11-8 condition.
		cond := uint8((op >> 8) & 0xF)
		target := c.resolve(mode, reg, Byte)
		if c.condition(cond) {
			c.writeOperand(target, Byte, 0xFF)
		} else {
			c.writeOperand(target, Byte, 0x00)
		}
		return
	}

	// ADDQ/SUBQ: bits 11-9 data (0 means 8), bit 8 selects SUB, bits 7-6 size.
	size := sizeField((op >> 6) & 0x3)
	data := uint32((op >> 9) & 0x7)
	if data == 0 {
		data = 8
	}
	target := c.resolve(mode, reg, size)
	dst := c.readOperand(target, size)

	if mode == 1 { // An destination: no flags affected, full 32-bit add
		if op&0x0100 != 0 {
			c.A[reg] -= data
		} else {
			c.A[reg] += data
		}
		return
	}

	if op&0x0100 != 0 { // SUBQ
		r, v, carry := subFlags(dst, data, size)
		c.writeOperand(target, size, r)
		c.setNZVC(r, size, v, carry)
		boolFlag(&c.SR, SRExtend, carry)
	} else { // ADDQ
		r, v, carry := addFlags(dst, data, size)
		c.writeOperand(target, size, r)
		c.setNZVC(r, size, v, carry)
		boolFlag(&c.SR, SRExtend, carry)
	}
}
