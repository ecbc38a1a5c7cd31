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

// Size identifies the width of an operand.
type Size int

const (
	Byte Size = 1
	Word Size = 2
	Long Size = 4
)

// operand is the result of resolving an effective-addressing-mode field: it
// is either register-direct (isReg set, reg holds the index) or a
// memory reference at addr. Immediate operands are resolved by the caller
// directly from the instruction stream rather than through operand, since
// they have no address to write back to.
type operand struct {
	isReg   bool
	dataReg bool // true = Dn, false = An, only meaningful when isReg
	reg     int
	addr    uint32
}

// fetchWord/fetchLong consume bytes at PC and advance it; all 68000 fetches
// are big-endian and word-aligned (an odd PC is itself an address error,
// modelled by the caller before fetch).
func (c *CPU) fetchWord() uint16 {
	v := c.Bus.Read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) fetchLong() uint32 {
	v := c.Bus.Read32(c.PC)
	c.PC += 4
	return v
}

// resolve decodes a 6-bit mode+register effective-address field and returns
// an operand descriptor, applying the (An)+/-(An) register side effects and
// consuming any extension words. It does not count cycles; EA timing is
// left to the caller.
func (c *CPU) resolve(mode, reg int, size Size) operand {
	switch mode {
	case 0: // Dn
		return operand{isReg: true, dataReg: true, reg: reg}
	case 1: // An
		return operand{isReg: true, dataReg: false, reg: reg}
	case 2: // (An)
		return operand{addr: c.A[reg]}
	case 3: // (An)+
		addr := c.A[reg]
		c.A[reg] += uint32(postIncStep(reg, size))
		return operand{addr: addr}
	case 4: // -(An)
		c.A[reg] -= uint32(postIncStep(reg, size))
		return operand{addr: c.A[reg]}
	case 5: // (d16,An)
		disp := int16(c.fetchWord())
		return operand{addr: uint32(int32(c.A[reg]) + int32(disp))}
	case 6: // (d8,An,Xn)
		return operand{addr: c.indexedAddr(c.A[reg])}
	case 7:
		switch reg {
		case 0: // (xxx).W
			return operand{addr: uint32(int32(int16(c.fetchWord())))}
		case 1: // (xxx).L
			return operand{addr: c.fetchLong()}
		case 2: // (d16,PC)
			base := c.PC
			disp := int16(c.fetchWord())
			return operand{addr: uint32(int32(base) + int32(disp))}
		case 3: // (d8,PC,Xn)
			return operand{addr: c.indexedAddr(c.PC)}
		case 4: // immediate - caller should use fetchImmediate instead
			return operand{addr: c.PC}
		}
	}
	return operand{}
}

// postIncStep returns the step size for (An)+ / -(An): A7 steps by 2 for
// byte-sized operations so the stack stays word-aligned, per spec.
func postIncStep(reg int, size Size) int {
	if reg == 7 && size == Byte {
		return 2
	}
	return int(size)
}

// indexedAddr resolves the (d8,Rn,Xn) brief extension-word format shared by
// address-register-indirect-with-index and PC-relative-with-index modes.
func (c *CPU) indexedAddr(base uint32) uint32 {
	ext := c.fetchWord()
	xn := int((ext >> 12) & 0x7)
	isAddr := ext&0x8000 != 0
	long := ext&0x0800 != 0
	disp := int8(ext & 0xFF)

	var x int32
	if isAddr {
		x = int32(c.A[xn])
	} else {
		x = int32(c.D[xn])
	}
	if !long {
		x = int32(int16(x))
	}
	return uint32(int32(base) + x + int32(disp))
}

// fetchImmediate reads an immediate value of the given size from the
// instruction stream. Byte and word immediates occupy a full extension
// word on the 68000.
func (c *CPU) fetchImmediate(size Size) uint32 {
	switch size {
	case Byte:
		return uint32(c.fetchWord() & 0xFF)
	case Word:
		return uint32(c.fetchWord())
	default:
		return c.fetchLong()
	}
}

// readOperand loads the value an operand refers to.
func (c *CPU) readOperand(op operand, size Size) uint32 {
	if op.isReg {
		if op.dataReg {
			return maskSize(c.D[op.reg], size)
		}
		return maskSize(c.A[op.reg], size)
	}
	if size != Byte && op.addr&1 != 0 {
		c.addressError(c.instrPC)
		return 0
	}
	switch size {
	case Byte:
		return uint32(c.Bus.Read8(op.addr))
	case Word:
		return uint32(c.Bus.Read16(op.addr))
	default:
		return c.Bus.Read32(op.addr)
	}
}

// writeOperand stores v into an operand, preserving the untouched bits of a
// register when size is less than 32 bits.
func (c *CPU) writeOperand(op operand, size Size, v uint32) {
	if op.isReg {
		reg := &c.D[op.reg]
		if !op.dataReg {
			reg = &c.A[op.reg]
		}
		switch size {
		case Byte:
			*reg = (*reg &^ 0xFF) | (v & 0xFF)
		case Word:
			if !op.dataReg {
				*reg = signExtend16(uint16(v))
			} else {
				*reg = (*reg &^ 0xFFFF) | (v & 0xFFFF)
			}
		default:
			*reg = v
		}
		if !op.dataReg && op.reg == 7 {
			c.setSP(*reg)
		}
		return
	}
	if size != Byte && op.addr&1 != 0 {
		c.addressError(c.instrPC)
		return
	}
	switch size {
	case Byte:
		c.Bus.Write8(op.addr, uint8(v))
	case Word:
		c.Bus.Write16(op.addr, uint16(v))
	default:
		c.Bus.Write32(op.addr, v)
	}
}

func maskSize(v uint32, size Size) uint32 {
	switch size {
	case Byte:
		return v & 0xFF
	case Word:
		return v & 0xFFFF
	default:
		return v
	}
}

func signExtend16(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

func signBit(v uint32, size Size) bool {
	switch size {
	case Byte:
		return v&0x80 != 0
	case Word:
		return v&0x8000 != 0
	default:
		return v&0x80000000 != 0
	}
}

func isZero(v uint32, size Size) bool {
	return maskSize(v, size) == 0
}
