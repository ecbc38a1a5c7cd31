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

package psg

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the eight internal registers, the latch and the
// noise LFSR/counter state to w.
func (p *PSG) MarshalState(w *savestate.Writer) {
	for i := range p.toneFreq {
		w.WriteUint16(p.toneFreq[i])
	}
	for i := range p.toneVol {
		w.WriteUint8(p.toneVol[i])
	}
	w.WriteUint8(p.noiseCtrl)
	w.WriteUint8(p.noiseVol)
	w.WriteUint32(uint32(p.latchedChannel))
	w.WriteUint32(uint32(p.latchedType))
	for i := range p.toneCounter {
		w.WriteUint32(uint32(p.toneCounter[i]))
	}
	for i := range p.toneOutput {
		w.WriteBool(p.toneOutput[i])
	}
	w.WriteUint16(p.noiseShift)
	w.WriteUint32(uint32(p.noiseCounter))
	w.WriteBool(p.noiseOutput)
	w.WriteUint64(p.cycles)
}

// UnmarshalState restores a PSG previously written by MarshalState.
func (p *PSG) UnmarshalState(r *savestate.Reader) {
	for i := range p.toneFreq {
		p.toneFreq[i] = r.ReadUint16()
	}
	for i := range p.toneVol {
		p.toneVol[i] = r.ReadUint8()
	}
	p.noiseCtrl = r.ReadUint8()
	p.noiseVol = r.ReadUint8()
	p.latchedChannel = Channel(r.ReadUint32())
	p.latchedType = registerType(r.ReadUint32())
	for i := range p.toneCounter {
		p.toneCounter[i] = int(r.ReadUint32())
	}
	for i := range p.toneOutput {
		p.toneOutput[i] = r.ReadBool()
	}
	p.noiseShift = r.ReadUint16()
	p.noiseCounter = int(r.ReadUint32())
	p.noiseOutput = r.ReadBool()
	p.cycles = r.ReadUint64()
}
