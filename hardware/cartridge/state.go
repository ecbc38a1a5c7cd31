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

package cartridge

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the battery-backed SRAM contents to w. The ROM image
// itself is not part of the record - spec §6 treats re-attaching the same
// ROM as the caller's responsibility on load, not something a save state
// carries.
func (c *Cartridge) MarshalState(w *savestate.Writer) {
	if c.SRAM.present() {
		w.WriteBool(true)
		w.WriteBytes(c.SRAM.Data)
	} else {
		w.WriteBool(false)
	}
}

// UnmarshalState restores SRAM contents previously written by
// MarshalState. It is a no-op if the cartridge loaded for this session
// carries no SRAM, or the record carries none.
func (c *Cartridge) UnmarshalState(r *savestate.Reader) {
	present := r.ReadBool()
	if !present {
		return
	}
	if !c.SRAM.present() {
		// Record carries SRAM the currently loaded cartridge has none of
		// (a different cartridge was loaded when the state was taken);
		// consume the bytes so the reader stays aligned and drop them.
		n := r.ReadUint32()
		for i := uint32(0); i < n; i++ {
			r.ReadUint8()
		}
		return
	}
	copy(c.SRAM.Data, r.ReadBytes("cartridge.SRAM", len(c.SRAM.Data)))
}
