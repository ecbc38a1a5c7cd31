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

// Package mapper describes cartridge address-decoding schemes. Per spec §1
// Non-goals ("no mappers beyond sequential ROM + battery SRAM"), Sequential
// is the only implementation - the type exists so the bus's cartridge
// window has a documented seam for hardware that needs one, without
// speculatively building mapper logic the spec excludes.
package mapper

// Mapper decodes a 68K-space cartridge address into a ROM offset, or
// reports that the address isn't backed by ROM at all (open bus or SRAM,
// which the caller handles separately).
type Mapper interface {
	Name() string
	Translate(addr uint32) (offset uint32, ok bool)
}

// Sequential is the standard Mega Drive mapper: ROM occupies $000000 up to
// its size, linearly, with no bank switching.
type Sequential struct {
	Size uint32
}

// NewSequential returns the sequential mapper for a ROM of the given size.
func NewSequential(size uint32) *Sequential {
	return &Sequential{Size: size}
}

func (m *Sequential) Name() string { return "sequential" }

func (m *Sequential) Translate(addr uint32) (uint32, bool) {
	if addr >= m.Size {
		return 0, false
	}
	return addr, true
}
