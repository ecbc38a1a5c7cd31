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

// Package cartridge holds the loaded ROM image, its mapper and an optional
// battery-backed SRAM region, per spec §3 "Cartridge state" and §1's
// Non-goals (no mappers beyond sequential ROM + battery SRAM).
package cartridge

import (
	"fmt"

	"github.com/mdcore/mdcore/curated"
	"github.com/mdcore/mdcore/hardware/mapper"
)

// MaxROMSize is the largest ROM this module accepts without a mapper
// declaration, per spec §6: "size <= 4 MiB without bank switching."
const MaxROMSize = 4 * 1024 * 1024

const (
	// ErrROMTooLarge is returned (via curated.Errorf) when a ROM exceeds
	// MaxROMSize and no mapper has been declared to handle bank switching.
	ErrROMTooLarge = "cartridge: rom size %d exceeds %d without a mapper declaration"
	// ErrROMEmpty is returned for a zero-length ROM image.
	ErrROMEmpty = "cartridge: rom image is empty"
)

// SRAM describes an optional battery-backed static RAM region, addressed in
// 68K space.
type SRAM struct {
	Start uint32
	End   uint32
	Data  []byte
}

func (s *SRAM) present() bool { return s != nil && s.End > s.Start }

func (s *SRAM) contains(addr uint32) bool {
	return s.present() && addr >= s.Start && addr < s.End
}

// Cartridge is the loaded ROM plus its mapper and optional SRAM. Per spec
// §7, ROM faults ("unsupported size, missing header") fail loading only and
// leave the core in power-on state - New returns a curated error
// rather than partially mutating any shared state.
type Cartridge struct {
	ROM    []byte
	Mapper mapper.Mapper
	SRAM   *SRAM
}

// New validates and wraps a ROM byte slice. The caller owns rom's backing
// array; New does not copy it, matching the "read-only byte slice" contract
// in spec §6.
func New(rom []byte, sram *SRAM) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, curated.Errorf(ErrROMEmpty)
	}
	if len(rom) > MaxROMSize {
		return nil, curated.Errorf(ErrROMTooLarge, len(rom), MaxROMSize)
	}
	return &Cartridge{
		ROM:    rom,
		Mapper: mapper.NewSequential(uint32(len(rom))),
		SRAM:   sram,
	}, nil
}

// Read8 returns the byte at addr, or the documented Genesis open-bus
// behaviour (the last ROM word's bytes, mirrored) when addr falls past the
// end of the loaded image - a guest-visible behaviour, not a host fault.
func (c *Cartridge) Read8(addr uint32) uint8 {
	if c.SRAM.contains(addr) {
		return c.SRAM.Data[addr-c.SRAM.Start]
	}
	if off, ok := c.Mapper.Translate(addr); ok {
		return c.ROM[off]
	}
	return c.openBus(addr)
}

func (c *Cartridge) Read16(addr uint32) uint16 {
	return uint16(c.Read8(addr))<<8 | uint16(c.Read8(addr+1))
}

// Write8 commits to SRAM only when the cartridge declares a battery-backed
// region covering addr; ROM writes elsewhere are a no-op (a debug-write
// window into ROM belongs to a host tool, not the guest-visible core).
func (c *Cartridge) Write8(addr uint32, v uint8) {
	if c.SRAM.contains(addr) {
		c.SRAM.Data[addr-c.SRAM.Start] = v
	}
}

func (c *Cartridge) Write16(addr uint32, v uint16) {
	c.Write8(addr, uint8(v>>8))
	c.Write8(addr+1, uint8(v))
}

// openBus mirrors the last complete word of ROM, the documented behaviour
// for reads past the end of a cartridge image that declares no mapper.
func (c *Cartridge) openBus(addr uint32) uint8 {
	if len(c.ROM) == 0 {
		return 0xFF
	}
	lastWordStart := (uint32(len(c.ROM)) - 1) &^ 1
	return c.ROM[lastWordStart+(addr&1)]
}

// String renders a short identifying summary, useful in logs.
func (c *Cartridge) String() string {
	return fmt.Sprintf("cartridge{rom=%d bytes, mapper=%s, sram=%v}", len(c.ROM), c.Mapper.Name(), c.SRAM.present())
}
