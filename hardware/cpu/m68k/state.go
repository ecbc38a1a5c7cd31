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

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the CPU's full register file and pending-interrupt
// latch to w, per spec §6's save-state requirement.
func (c *CPU) MarshalState(w *savestate.Writer) {
	for i := range c.D {
		w.WriteUint32(c.D[i])
	}
	for i := range c.A {
		w.WriteUint32(c.A[i])
	}
	w.WriteUint32(c.PC)
	w.WriteUint16(c.SR)
	w.WriteUint32(c.USP)
	w.WriteUint32(c.SSP)
	w.WriteUint64(c.Cycles)
	w.WriteBool(c.Stopped)
	w.WriteBool(c.Halted)
	w.WriteBool(c.irq.valid)
	w.WriteUint8(c.irq.level)
}

// UnmarshalState restores a register file previously written by
// MarshalState. The CPU's Bus field is left untouched - it's wired by the
// console at construction time, not part of the serialized record.
func (c *CPU) UnmarshalState(r *savestate.Reader) {
	for i := range c.D {
		c.D[i] = r.ReadUint32()
	}
	for i := range c.A {
		c.A[i] = r.ReadUint32()
	}
	c.PC = r.ReadUint32()
	c.SR = r.ReadUint16()
	c.USP = r.ReadUint32()
	c.SSP = r.ReadUint32()
	c.Cycles = r.ReadUint64()
	c.Stopped = r.ReadBool()
	c.Halted = r.ReadBool()
	c.irq.valid = r.ReadBool()
	c.irq.level = r.ReadUint8()
}
