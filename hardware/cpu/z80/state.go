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

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the Z80's full register file, IFFs, the WZ (MEMPTR)
// register and bus-request/reset latches to w, per spec §6.
func (c *CPU) MarshalState(w *savestate.Writer) {
	w.WriteUint8(c.A)
	w.WriteUint8(c.F)
	w.WriteUint8(c.B)
	w.WriteUint8(c.C)
	w.WriteUint8(c.D)
	w.WriteUint8(c.E)
	w.WriteUint8(c.H)
	w.WriteUint8(c.L)
	w.WriteUint8(c.A2)
	w.WriteUint8(c.F2)
	w.WriteUint8(c.B2)
	w.WriteUint8(c.C2)
	w.WriteUint8(c.D2)
	w.WriteUint8(c.E2)
	w.WriteUint8(c.H2)
	w.WriteUint8(c.L2)
	w.WriteUint16(c.IX)
	w.WriteUint16(c.IY)
	w.WriteUint16(c.SP)
	w.WriteUint16(c.PC)
	w.WriteUint8(c.I)
	w.WriteUint8(c.R)
	w.WriteBool(c.IFF1)
	w.WriteBool(c.IFF2)
	w.WriteUint8(uint8(c.IM))
	w.WriteUint16(c.WZ)
	w.WriteUint64(c.Cycles)
	w.WriteBool(c.Halted)
	w.WriteBool(c.busreqGranted)
	w.WriteBool(c.resetAsserted)
	w.WriteBool(c.irqLine)
	w.WriteBool(c.eiShadow)
	w.WriteBool(c.pendingInt)
}

// UnmarshalState restores a register file previously written by
// MarshalState. irqVector is a runtime-supplied callback, not state, and is
// left as the caller wired it.
func (c *CPU) UnmarshalState(r *savestate.Reader) {
	c.A = r.ReadUint8()
	c.F = r.ReadUint8()
	c.B = r.ReadUint8()
	c.C = r.ReadUint8()
	c.D = r.ReadUint8()
	c.E = r.ReadUint8()
	c.H = r.ReadUint8()
	c.L = r.ReadUint8()
	c.A2 = r.ReadUint8()
	c.F2 = r.ReadUint8()
	c.B2 = r.ReadUint8()
	c.C2 = r.ReadUint8()
	c.D2 = r.ReadUint8()
	c.E2 = r.ReadUint8()
	c.H2 = r.ReadUint8()
	c.L2 = r.ReadUint8()
	c.IX = r.ReadUint16()
	c.IY = r.ReadUint16()
	c.SP = r.ReadUint16()
	c.PC = r.ReadUint16()
	c.I = r.ReadUint8()
	c.R = r.ReadUint8()
	c.IFF1 = r.ReadBool()
	c.IFF2 = r.ReadBool()
	c.IM = IM(r.ReadUint8())
	c.WZ = r.ReadUint16()
	c.Cycles = r.ReadUint64()
	c.Halted = r.ReadBool()
	c.busreqGranted = r.ReadBool()
	c.resetAsserted = r.ReadBool()
	c.irqLine = r.ReadBool()
	c.eiShadow = r.ReadBool()
	c.pendingInt = r.ReadBool()
}
