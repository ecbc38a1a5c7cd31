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

package bus

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends work RAM, sound RAM and the Z80<->68K bank
// accumulator to w, per spec §6's explicit "Z80 bank register contents."
func (b *Bus) MarshalState(w *savestate.Writer) {
	w.WriteBytes(b.WorkRAM[:])
	w.WriteBytes(b.SoundRAM[:])
	w.WriteUint32(b.bankAccumulator)
	w.WriteBool(b.z80BusGranted)
}

// UnmarshalState restores RAM and the bank accumulator previously written
// by MarshalState. Cart and the component pointers are left as the caller
// wired them.
func (b *Bus) UnmarshalState(r *savestate.Reader) {
	copy(b.WorkRAM[:], r.ReadBytes("bus.WorkRAM", len(b.WorkRAM)))
	copy(b.SoundRAM[:], r.ReadBytes("bus.SoundRAM", len(b.SoundRAM)))
	b.bankAccumulator = r.ReadUint32()
	b.z80BusGranted = r.ReadBool()
}
