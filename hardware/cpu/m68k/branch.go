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

// execBranch handles the $6xxx page: BRA, BSR and the fourteen Bcc
// conditional branches, with the 8-bit short displacement or a 16-bit
// extension word when the short form is zero.
func (c *CPU) execBranch(op uint16, pc uint32) {
	cond := uint8((op >> 8) & 0xF)
	disp := int32(int8(op & 0xFF))
	extPC := pc + 2
	if disp == 0 {
		disp = int32(int16(c.fetchWord()))
		extPC = pc + 4
	}
	target := uint32(int32(pc+2) + disp)

	if cond == 1 { // BSR
		c.push32(extPC)
		c.PC = target
		return
	}
	if !c.condition(cond) {
		return
	}
	c.PC = target
}

func (c *CPU) push32(v uint32) {
	c.A[7] -= 4
	c.setSP(c.A[7])
	c.Bus.Write32(c.A[7], v)
}

func (c *CPU) pop32() uint32 {
	v := c.Bus.Read32(c.A[7])
	c.A[7] += 4
	c.setSP(c.A[7])
	return v
}

func (c *CPU) push16(v uint16) {
	c.A[7] -= 2
	c.setSP(c.A[7])
	c.Bus.Write16(c.A[7], v)
}

func (c *CPU) pop16() uint16 {
	v := c.Bus.Read16(c.A[7])
	c.A[7] += 2
	c.setSP(c.A[7])
	return v
}
