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

// decode dispatches the unprefixed opcode map. Following the
// well-documented x/y/z/p/q decomposition (x = op[7:6], y = op[5:3],
// z = op[2:0], p = y[2:1], q = y[0]) keeps the 256-entry table auditable
// instead of an unreadable flat switch, per spec §9's preference for
// explicit enumerated dispatch over open-ended polymorphism.
func (c *CPU) decode(op uint8) {
	switch op {
	case 0xCB:
		c.decodeCB(c.fetch())
		return
	case 0xED:
		c.decodeED(c.fetch())
		return
	case 0xDD:
		c.decodeIndex(&c.IX)
		return
	case 0xFD:
		c.decodeIndex(&c.IY)
		return
	}

	x := op >> 6
	y := (op >> 3) & 0x7
	z := op & 0x7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		c.decodeX0(op, y, z, p, q)
	case 1:
		if y == 6 && z == 6 {
			c.Halted = true
			return
		}
		c.setReg8(y, c.reg8(z))
	case 2:
		c.alu(y, c.reg8(z))
	case 3:
		c.decodeX3(op, y, z, p, q)
	}
}

func (c *CPU) decodeX0(op, y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0: // NOP
		case 1: // EX AF,AF'
			c.A, c.A2 = c.A2, c.A
			c.F, c.F2 = c.F2, c.F
		case 2: // DJNZ d
			d := int8(c.fetchNoR())
			c.B--
			c.Cycles += 5
			if c.B != 0 {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.Cycles += 5
			}
		case 3: // JR d
			d := int8(c.fetchNoR())
			c.PC = uint16(int32(c.PC) + int32(d))
			c.WZ = c.PC
		default: // JR cc,d (y=4..7 -> NZ,Z,NC,C)
			d := int8(c.fetchNoR())
			if c.condition(y - 4) {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.WZ = c.PC
				c.Cycles += 5
			}
		}
	case 1:
		if q == 0 { // LD rp,nn
			c.setReg16(p, c.fetch16())
		} else { // ADD HL,rp
			c.addHL(c.reg16(p))
		}
	case 2:
		switch y {
		case 0: // LD (BC),A
			c.Bus.Write(c.bc(), c.A)
			c.WZ = uint16(c.A)<<8 | (c.bc()+1)&0xFF
		case 1: // LD A,(BC)
			c.WZ = c.bc() + 1
			c.A = c.Bus.Read(c.bc())
		case 2: // LD (DE),A
			c.Bus.Write(c.de(), c.A)
			c.WZ = uint16(c.A)<<8 | (c.de()+1)&0xFF
		case 3: // LD A,(DE)
			c.WZ = c.de() + 1
			c.A = c.Bus.Read(c.de())
		case 4: // LD (nn),HL
			addr := c.fetch16()
			c.Bus.Write(addr, c.L)
			c.Bus.Write(addr+1, c.H)
			c.WZ = addr + 1
		case 5: // LD HL,(nn)
			addr := c.fetch16()
			c.L = c.Bus.Read(addr)
			c.H = c.Bus.Read(addr + 1)
			c.WZ = addr + 1
		case 6: // LD (nn),A
			addr := c.fetch16()
			c.Bus.Write(addr, c.A)
			c.WZ = uint16(c.A)<<8 | (addr+1)&0xFF
		case 7: // LD A,(nn)
			addr := c.fetch16()
			c.WZ = addr + 1
			c.A = c.Bus.Read(addr)
		}
	case 3:
		if q == 0 {
			c.setReg16(p, c.reg16(p)+1)
		} else {
			c.setReg16(p, c.reg16(p)-1)
		}
	case 4: // INC r
		if y == 6 {
			v := c.Bus.Read(c.hl())
			c.Bus.Write(c.hl(), c.inc8(v))
		} else {
			c.setReg8(y, c.inc8(c.reg8(y)))
		}
	case 5: // DEC r
		if y == 6 {
			v := c.Bus.Read(c.hl())
			c.Bus.Write(c.hl(), c.dec8(v))
		} else {
			c.setReg8(y, c.dec8(c.reg8(y)))
		}
	case 6: // LD r,n
		n := c.fetchNoR()
		c.setReg8(y, n)
	case 7:
		c.decodeRotateA(y)
	}
}

func (c *CPU) decodeRotateA(y uint8) {
	switch y {
	case 0: // RLCA
		carry := c.A&0x80 != 0
		c.A = c.A<<1 | boolBit(carry)
		boolFlag(&c.F, FlagC, carry)
		boolFlag(&c.F, FlagH, false)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 1: // RRCA
		carry := c.A&1 != 0
		c.A = c.A>>1 | boolBit(carry)<<7
		boolFlag(&c.F, FlagC, carry)
		boolFlag(&c.F, FlagH, false)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 2: // RLA
		carry := c.A&0x80 != 0
		cin := c.F & FlagC
		c.A = c.A<<1 | cin
		boolFlag(&c.F, FlagC, carry)
		boolFlag(&c.F, FlagH, false)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 3: // RRA
		carry := c.A&1 != 0
		cin := (c.F & FlagC) << 7
		c.A = c.A>>1 | cin
		boolFlag(&c.F, FlagC, carry)
		boolFlag(&c.F, FlagH, false)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 4: // CPL
		c.A = ^c.A
		boolFlag(&c.F, FlagH, true)
		boolFlag(&c.F, FlagN, true)
		xy(&c.F, c.A)
	case 5: // SCF
		boolFlag(&c.F, FlagC, true)
		boolFlag(&c.F, FlagH, false)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 6: // CCF
		h := c.F & FlagC
		boolFlag(&c.F, FlagH, h != 0)
		boolFlag(&c.F, FlagC, h == 0)
		boolFlag(&c.F, FlagN, false)
		xy(&c.F, c.A)
	case 7: // DAA
		c.daa()
	}
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (c *CPU) addHL(v uint16) {
	hl := c.hl()
	r := hl + v
	half := (hl&0xFFF)+(v&0xFFF) > 0xFFF
	boolFlag(&c.F, FlagN, false)
	boolFlag(&c.F, FlagH, half)
	boolFlag(&c.F, FlagC, uint32(hl)+uint32(v) > 0xFFFF)
	xy(&c.F, uint8(r>>8))
	c.setHL(r)
	c.WZ = hl + 1
}

func (c *CPU) daa() {
	a := c.A
	corr := uint8(0)
	carry := c.F&FlagC != 0
	half := c.F&FlagH != 0
	if half || a&0xF > 9 {
		corr |= 0x06
	}
	if carry || a > 0x99 {
		corr |= 0x60
		carry = true
	}
	if c.F&FlagN != 0 {
		a -= corr
	} else {
		a += corr
	}
	boolFlag(&c.F, FlagC, carry)
	boolFlag(&c.F, FlagS, a&0x80 != 0)
	boolFlag(&c.F, FlagZ, a == 0)
	boolFlag(&c.F, FlagPV, parity(a))
	xy(&c.F, a)
	c.A = a
}

func (c *CPU) alu(op uint8, v uint8) {
	switch op {
	case 0:
		c.A = c.add8(c.A, v, false)
	case 1:
		c.A = c.add8(c.A, v, c.F&FlagC != 0)
	case 2:
		c.A = c.sub8(c.A, v, false)
	case 3:
		c.A = c.sub8(c.A, v, c.F&FlagC != 0)
	case 4:
		c.A = c.and8(c.A, v)
	case 5:
		c.A = c.xor8(c.A, v)
	case 6:
		c.A = c.or8(c.A, v)
	case 7:
		c.cp8(c.A, v)
	}
}

func (c *CPU) condition(code uint8) bool {
	switch code & 0x7 {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagPV == 0
	case 5:
		return c.F&FlagPV != 0
	case 6:
		return c.F&FlagS == 0
	default:
		return c.F&FlagS != 0
	}
}

func (c *CPU) decodeX3(op, y, z, p, q uint8) {
	switch z {
	case 0: // RET cc
		if c.condition(y) {
			c.PC = c.pop16()
			c.WZ = c.PC
			c.Cycles += 6
		}
	case 1:
		if q == 0 { // POP rp2
			c.setPushPop(p, c.pop16())
		} else {
			switch p {
			case 0: // RET
				c.PC = c.pop16()
				c.WZ = c.PC
			case 1: // EXX
				c.B, c.B2 = c.B2, c.B
				c.C, c.C2 = c.C2, c.C
				c.D, c.D2 = c.D2, c.D
				c.E, c.E2 = c.E2, c.E
				c.H, c.H2 = c.H2, c.H
				c.L, c.L2 = c.L2, c.L
			case 2: // JP HL
				c.PC = c.hl()
			case 3: // LD SP,HL
				c.SP = c.hl()
			}
		}
	case 2: // JP cc,nn
		addr := c.fetch16()
		c.WZ = addr
		if c.condition(y) {
			c.PC = addr
		}
	case 3:
		switch y {
		case 0: // JP nn
			c.PC = c.fetch16()
			c.WZ = c.PC
		case 1: // CB prefix handled above
		case 2: // OUT (n),A
			n := c.fetchNoR()
			c.Bus.Out(uint16(c.A)<<8|uint16(n), c.A)
			c.WZ = uint16(c.A)<<8 | ((uint16(n) + 1) & 0xFF)
		case 3: // IN A,(n)
			n := c.fetchNoR()
			c.WZ = uint16(c.A)<<8 | uint16(n) + 1
			c.A = c.Bus.In(uint16(c.A)<<8 | uint16(n))
		case 4: // EX (SP),HL
			v := c.pop16()
			c.push16(c.hl())
			c.setHL(v)
			c.WZ = v
		case 5: // EX DE,HL
			c.D, c.H = c.H, c.D
			c.E, c.L = c.L, c.E
		case 6: // DI
			c.IFF1 = false
			c.IFF2 = false
		case 7: // EI
			c.IFF1 = true
			c.IFF2 = true
			c.eiShadow = true
		}
	case 4: // CALL cc,nn
		addr := c.fetch16()
		c.WZ = addr
		if c.condition(y) {
			c.push16(c.PC)
			c.PC = addr
			c.Cycles += 7
		}
	case 5:
		if q == 0 { // PUSH rp2
			c.push16(c.pushPop(p))
		} else if p == 0 { // CALL nn
			addr := c.fetch16()
			c.WZ = addr
			c.push16(c.PC)
			c.PC = addr
		}
		// p=1,2,3 with q=1 are the DD/ED/FD prefixes, handled earlier.
	case 6: // ALU a,n
		n := c.fetchNoR()
		c.alu(y, n)
	case 7: // RST
		c.push16(c.PC)
		c.PC = uint16(y) * 8
		c.WZ = c.PC
	}
}

// pushPop/setPushPop handle the PUSH/POP register pair encoding, which
// substitutes AF for SP relative to the LD rp,nn encoding.
func (c *CPU) pushPop(p uint8) uint16 {
	if p == 3 {
		return c.af()
	}
	return c.reg16(p)
}

func (c *CPU) setPushPop(p uint8, v uint16) {
	if p == 3 {
		c.setAF(v)
		return
	}
	c.setReg16(p, v)
}
