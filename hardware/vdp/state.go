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

package vdp

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends VRAM, CRAM, VSRAM, every numbered register and the
// control-port latch/counters/DMA-engine state to w, per spec §6: "all
// latches including the VDP control-word latch."
func (v *VDP) MarshalState(w *savestate.Writer) {
	w.WriteBytes(v.VRAM[:])
	w.WriteBytes(v.CRAM[:])
	w.WriteBytes(v.VSRAM[:])
	w.WriteBytes(v.Reg[:])

	w.WriteBool(v.latchArmed)
	w.WriteUint16(v.latchFirst)
	w.WriteUint8(v.codeReg)
	w.WriteUint16(v.addr)
	w.WriteBool(v.writeOp)
	w.WriteBool(v.autoIncrDone)

	w.WriteBool(v.fifoEmpty)
	w.WriteBool(v.fifoFull)
	w.WriteBool(v.vblank)
	w.WriteBool(v.hblank)
	w.WriteBool(v.dmaBusy)
	w.WriteBool(v.spriteOvf)
	w.WriteBool(v.collision)
	w.WriteBool(v.oddFrame)

	w.WriteUint32(uint32(v.HCounter))
	w.WriteUint32(uint32(v.VCounter))
	w.WriteUint32(uint32(v.hTotal))
	w.WriteUint32(uint32(v.vTotal))

	w.WriteUint8(v.hIntCounter)
	w.WriteBool(v.pendingHInt)
	w.WriteBool(v.pendingVInt)
	w.WriteUint8(v.irqLevel)

	w.WriteUint32(uint32(v.dmaMode))
	w.WriteUint16(v.dmaLen)
	w.WriteUint32(v.dmaSrc)
	w.WriteUint8(v.dmaFillValue)
	w.WriteBool(v.dmaPending)
}

// UnmarshalState restores a VDP previously written by MarshalState. The
// Bus field (the 68K memory the DMA engine reads through) is left as the
// caller wired it - it isn't part of the chip's own state.
func (v *VDP) UnmarshalState(r *savestate.Reader) {
	copy(v.VRAM[:], r.ReadBytes("vdp.VRAM", VRAMSize))
	copy(v.CRAM[:], r.ReadBytes("vdp.CRAM", CRAMSize))
	copy(v.VSRAM[:], r.ReadBytes("vdp.VSRAM", VSRAMSize))
	copy(v.Reg[:], r.ReadBytes("vdp.Reg", len(v.Reg)))

	v.latchArmed = r.ReadBool()
	v.latchFirst = r.ReadUint16()
	v.codeReg = r.ReadUint8()
	v.addr = r.ReadUint16()
	v.writeOp = r.ReadBool()
	v.autoIncrDone = r.ReadBool()

	v.fifoEmpty = r.ReadBool()
	v.fifoFull = r.ReadBool()
	v.vblank = r.ReadBool()
	v.hblank = r.ReadBool()
	v.dmaBusy = r.ReadBool()
	v.spriteOvf = r.ReadBool()
	v.collision = r.ReadBool()
	v.oddFrame = r.ReadBool()

	v.HCounter = int(r.ReadUint32())
	v.VCounter = int(r.ReadUint32())
	v.hTotal = int(r.ReadUint32())
	v.vTotal = int(r.ReadUint32())

	v.hIntCounter = r.ReadUint8()
	v.pendingHInt = r.ReadBool()
	v.pendingVInt = r.ReadBool()
	v.irqLevel = r.ReadUint8()

	v.dmaMode = int(r.ReadUint32())
	v.dmaLen = r.ReadUint16()
	v.dmaSrc = r.ReadUint32()
	v.dmaFillValue = r.ReadUint8()
	v.dmaPending = r.ReadBool()
}
