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

// This file implements the z80.Bus interface over the 16-bit Z80 address
// map in spec §3: 8 KiB sound RAM (mirrored), YM2612 ports, the bank
// register, the PSG port, and the window into 68K space.

// Read implements z80.Bus.Read.
func (b *Bus) Read(addr uint16) uint8 { return b.z80Read(addr) }

// Write implements z80.Bus.Write.
func (b *Bus) Write(addr uint16, v uint8) { b.z80Write(addr, v) }

func (b *Bus) z80Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.SoundRAM[addr]
	case addr < 0x4000:
		return b.SoundRAM[addr&0x1FFF]
	case addr < 0x6000:
		return b.YM.Status()
	case addr < 0x8000:
		return 0xFF
	default:
		return b.Read8(b.bankedAddress(addr))
	}
}

func (b *Bus) z80Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		b.SoundRAM[addr] = v
	case addr < 0x4000:
		b.SoundRAM[addr&0x1FFF] = v
	case addr < 0x6000:
		b.writeYM(addr, v)
	case addr == 0x6000:
		// Each write shifts the accumulator right and inserts the new
		// bit at bit 23 (here, bit 8 of the 9-bit accumulator),
		// least-significant-bit-first, per spec §4.4.
		b.bankAccumulator = (b.bankAccumulator >> 1) | (uint32(v&1) << 8)
	case addr == 0x7F11:
		b.PSG.Write(v)
	case addr < 0x8000:
		// unmapped
	default:
		b.Write8(b.bankedAddress(addr), v)
	}
}

// writeYM dispatches a Z80 write to the YM2612's mirrored 4-byte port
// group: $4000/$4002 are address ports, $4001/$4003 are data ports.
func (b *Bus) writeYM(addr uint16, v uint8) {
	group := int((addr >> 1) & 1)
	if addr&1 == 0 {
		b.YM.WriteAddress(group, v)
	} else {
		b.YM.WriteData(group, v)
	}
}

// In implements z80.Bus.In. The Mega Drive's Z80 does not use IN in
// practice; the documented default response is all bits set.
func (b *Bus) In(port uint16) uint8 { return 0xFF }

// Out implements z80.Bus.Out, symmetrically unused.
func (b *Bus) Out(port uint16, v uint8) {}
