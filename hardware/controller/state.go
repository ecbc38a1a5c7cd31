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

package controller

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the pad's button state, control register and TH
// multiplex state machine (including the 6-button timeout clock) to w.
func (p *Pad) MarshalState(w *savestate.Writer) {
	w.WriteUint16(uint16(p.state))
	w.WriteUint8(p.ctrlReg)
	w.WriteBool(p.thLevel)
	w.WriteUint32(uint32(p.thCount))
	w.WriteUint64(p.lastTHTimestampUs)
	w.WriteUint64(p.nowUs)
	w.WriteBool(p.sixButton)
}

// UnmarshalState restores a Pad previously written by MarshalState.
func (p *Pad) UnmarshalState(r *savestate.Reader) {
	p.state = Button(r.ReadUint16())
	p.ctrlReg = r.ReadUint8()
	p.thLevel = r.ReadBool()
	p.thCount = int(r.ReadUint32())
	p.lastTHTimestampUs = r.ReadUint64()
	p.nowUs = r.ReadUint64()
	p.sixButton = r.ReadBool()
}
