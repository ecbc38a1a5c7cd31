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

package ym2612

import "github.com/mdcore/mdcore/savestate"

func (op *Operator) marshal(w *savestate.Writer) {
	w.WriteUint32(op.phase)
	w.WriteUint32(op.phaseInc)
	w.WriteUint8(op.mul)
	w.WriteUint8(op.det)
	w.WriteUint8(op.totalLevel)
	w.WriteUint8(op.ar)
	w.WriteUint8(op.dr)
	w.WriteUint8(op.sr)
	w.WriteUint8(op.rr)
	w.WriteUint8(op.sl)
	w.WriteUint8(op.ssgEG)
	w.WriteUint16(op.envLevel)
	w.WriteUint8(uint8(op.envStage))
	w.WriteBool(op.ssgInvert)
	w.WriteBool(op.keyOn)
	w.WriteUint32(uint32(op.lastOut))
	w.WriteUint32(uint32(op.prevOut))
}

func (op *Operator) unmarshal(r *savestate.Reader) {
	op.phase = r.ReadUint32()
	op.phaseInc = r.ReadUint32()
	op.mul = r.ReadUint8()
	op.det = r.ReadUint8()
	op.totalLevel = r.ReadUint8()
	op.ar = r.ReadUint8()
	op.dr = r.ReadUint8()
	op.sr = r.ReadUint8()
	op.rr = r.ReadUint8()
	op.sl = r.ReadUint8()
	op.ssgEG = r.ReadUint8()
	op.envLevel = r.ReadUint16()
	op.envStage = envStage(r.ReadUint8())
	op.ssgInvert = r.ReadBool()
	op.keyOn = r.ReadBool()
	op.lastOut = int32(r.ReadUint32())
	op.prevOut = int32(r.ReadUint32())
}

func (c *Channel) marshal(w *savestate.Writer) {
	for i := range c.Op {
		c.Op[i].marshal(w)
	}
	w.WriteUint8(c.algorithm)
	w.WriteUint8(c.feedback)
	w.WriteUint8(c.ams)
	w.WriteUint8(c.pms)
	w.WriteBool(c.panL)
	w.WriteBool(c.panR)
	w.WriteUint16(c.fnum)
	w.WriteUint8(c.block)
	w.WriteUint16(c.pendingHigh)
	w.WriteUint8(c.pendingBlock)
	for i := range c.fnum3 {
		w.WriteUint16(c.fnum3[i])
	}
	for i := range c.block3 {
		w.WriteUint8(c.block3[i])
	}
	w.WriteBool(c.specialMode)
}

func (c *Channel) unmarshal(r *savestate.Reader) {
	for i := range c.Op {
		c.Op[i].unmarshal(r)
	}
	c.algorithm = r.ReadUint8()
	c.feedback = r.ReadUint8()
	c.ams = r.ReadUint8()
	c.pms = r.ReadUint8()
	c.panL = r.ReadBool()
	c.panR = r.ReadBool()
	c.fnum = r.ReadUint16()
	c.block = r.ReadUint8()
	c.pendingHigh = r.ReadUint16()
	c.pendingBlock = r.ReadUint8()
	for i := range c.fnum3 {
		c.fnum3[i] = r.ReadUint16()
	}
	for i := range c.block3 {
		c.block3[i] = r.ReadUint8()
	}
	c.specialMode = r.ReadBool()
}

// MarshalState appends every channel/operator register and the chip-level
// timer, LFO, DAC and BUSY-deadline state to w, per spec §6: "YM2612 BUSY
// deadline" is named explicitly as a required field.
func (y *YM2612) MarshalState(w *savestate.Writer) {
	for i := range y.Ch {
		y.Ch[i].marshal(w)
	}
	w.WriteUint8(y.latchedAddr[0])
	w.WriteUint8(y.latchedAddr[1])
	w.WriteUint32(uint32(y.selGroup))

	w.WriteUint16(y.timerA)
	w.WriteBool(y.timerAEnabled)
	w.WriteBool(y.timerAOverflow)
	w.WriteUint32(uint32(y.timerACounter))

	w.WriteUint8(y.timerB)
	w.WriteBool(y.timerBEnabled)
	w.WriteBool(y.timerBOverflow)
	w.WriteUint32(uint32(y.timerBCounter))
	w.WriteUint32(uint32(y.sampleCount))

	w.WriteBool(y.lfoEnabled)
	w.WriteUint8(y.lfoFreq)
	w.WriteUint32(uint32(y.lfoCounter))
	w.WriteUint8(y.lfoStep)

	w.WriteBool(y.dacEnabled)
	w.WriteUint8(y.dacSample)

	w.WriteUint64(y.busyDeadline)
	w.WriteUint64(y.cycle)
	w.WriteUint8(uint8(y.Profile))
}

// UnmarshalState restores a chip previously written by MarshalState.
func (y *YM2612) UnmarshalState(r *savestate.Reader) {
	for i := range y.Ch {
		y.Ch[i].unmarshal(r)
	}
	y.latchedAddr[0] = r.ReadUint8()
	y.latchedAddr[1] = r.ReadUint8()
	y.selGroup = int(r.ReadUint32())

	y.timerA = r.ReadUint16()
	y.timerAEnabled = r.ReadBool()
	y.timerAOverflow = r.ReadBool()
	y.timerACounter = int(r.ReadUint32())

	y.timerB = r.ReadUint8()
	y.timerBEnabled = r.ReadBool()
	y.timerBOverflow = r.ReadBool()
	y.timerBCounter = int(r.ReadUint32())
	y.sampleCount = int(r.ReadUint32())

	y.lfoEnabled = r.ReadBool()
	y.lfoFreq = r.ReadUint8()
	y.lfoCounter = int(r.ReadUint32())
	y.lfoStep = r.ReadUint8()

	y.dacEnabled = r.ReadBool()
	y.dacSample = r.ReadUint8()

	y.busyDeadline = r.ReadUint64()
	y.cycle = r.ReadUint64()
	y.Profile = Profile(r.ReadUint8())
}
