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

// decodeCB handles the CB-prefixed rotate/shift/BIT/RES/SET page, operating
// on HL or a plain register. The DD CB / FD CB forms (operating on an
// indexed (IX+d)/(IY+d) address instead) are handled by decodeIndexCB in
// index.go, which shares the shift/bit helpers here.
func (c *CPU) decodeCB(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x7
	z := op & 0x7

	v := c.reg8(z)
	switch x {
	case 0:
		r := c.shiftOp(y, v)
		c.setReg8(z, r)
	case 1:
		c.bitTest(y, v, z == 6)
	case 2:
		c.setReg8(z, v&^(1<<y))
	case 3:
		c.setReg8(z, v|(1<<y))
	}
}

// shiftOp implements RLC(0)/RRC(1)/RL(2)/RR(3)/SLA(4)/SRA(5)/SLL(6,
// undocumented)/SRL(7).
func (c *CPU) shiftOp(op uint8, v uint8) uint8 {
	var r uint8
	var carry bool
	switch op {
	case 0: // RLC
		carry = v&0x80 != 0
		r = v<<1 | boolBit(carry)
	case 1: // RRC
		carry = v&1 != 0
		r = v>>1 | boolBit(carry)<<7
	case 2: // RL
		carry = v&0x80 != 0
		r = v<<1 | (c.F & FlagC)
	case 3: // RR
		carry = v&1 != 0
		r = v>>1 | (c.F&FlagC)<<7
	case 4: // SLA
		carry = v&0x80 != 0
		r = v << 1
	case 5: // SRA
		carry = v&1 != 0
		r = uint8(int8(v) >> 1)
	case 6: // SLL (undocumented): shifts left, bit 0 forced to 1
		carry = v&0x80 != 0
		r = v<<1 | 1
	case 7: // SRL
		carry = v&1 != 0
		r = v >> 1
	}
	c.F = 0
	boolFlag(&c.F, FlagC, carry)
	boolFlag(&c.F, FlagS, r&0x80 != 0)
	boolFlag(&c.F, FlagZ, r == 0)
	boolFlag(&c.F, FlagPV, parity(r))
	xy(&c.F, r)
	return r
}

// bitTest implements BIT n,r / BIT n,(HL). Per spec: "BIT reads WZ for X/Y
// flag leakage" only for the (HL) form; register forms leak from the
// register's own value.
func (c *CPU) bitTest(n uint8, v uint8, isIndirectHL bool) {
	bit := v & (1 << n)
	boolFlag(&c.F, FlagZ, bit == 0)
	boolFlag(&c.F, FlagPV, bit == 0)
	boolFlag(&c.F, FlagS, n == 7 && bit != 0)
	boolFlag(&c.F, FlagH, true)
	boolFlag(&c.F, FlagN, false)
	if isIndirectHL {
		xy(&c.F, uint8(c.WZ>>8))
	} else {
		xy(&c.F, v)
	}
}
