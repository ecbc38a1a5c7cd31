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

// execMove handles the $1xxx/$2xxx/$3xxx page: MOVE.B, MOVE.L and MOVE.W,
// including the MOVEA forms when the destination mode field selects an
// address register.
func (c *CPU) execMove(op uint16, pc uint32) {
	var size Size
	switch op >> 12 {
	case 1:
		size = Byte
	case 2:
		size = Long
	default:
		size = Word
	}

	srcMode := int((op >> 3) & 0x7)
	srcReg := int(op & 0x7)
	dstMode := int((op >> 6) & 0x7)
	dstReg := int((op >> 9) & 0x7)

	if srcMode == 7 && srcReg == 4 {
		v := c.fetchImmediate(size)
		c.storeMoveDest(dstMode, dstReg, size, v, pc)
		return
	}

	src := c.resolve(srcMode, srcReg, size)
	v := c.readOperand(src, size)
	c.storeMoveDest(dstMode, dstReg, size, v, pc)
}

func (c *CPU) storeMoveDest(mode, reg int, size Size, v uint32, pc uint32) {
	if mode == 1 { // MOVEA: always sign-extended to 32 bits, no flags
		c.A[reg] = signExtendTo32(v, size)
		if reg == 7 {
			c.setSP(c.A[reg])
		}
		return
	}
	dst := c.resolve(mode, reg, size)
	c.writeOperand(dst, size, v)
	c.setNZ(v, size)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
}

func signExtendTo32(v uint32, size Size) uint32 {
	switch size {
	case Byte:
		return uint32(int32(int8(v)))
	case Word:
		return uint32(int32(int16(v)))
	default:
		return v
	}
}

// execMoveq handles MOVEQ #data,Dn ($7xxx): an 8-bit immediate sign
// extended into a data register.
func (c *CPU) execMoveq(op uint16) {
	reg := int((op >> 9) & 0x7)
	data := uint32(int32(int8(op & 0xFF)))
	c.D[reg] = data
	c.setNZ(data, Long)
	boolFlag(&c.SR, SROverflow, false)
	boolFlag(&c.SR, SRCarry, false)
}
