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

// Package bus resolves the 68K's 24-bit address space and the Z80's 16-bit
// address space to the component that owns each region, and implements the
// bank-switched Z80<->68K bridge window, per spec §4.4.
package bus

import (
	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/controller"
	"github.com/mdcore/mdcore/hardware/psg"
	"github.com/mdcore/mdcore/hardware/vdp"
	"github.com/mdcore/mdcore/hardware/ym2612"
	"github.com/mdcore/mdcore/random"
)

// Z80Core is the subset of the Z80 CPU the bus needs to drive BUSREQ/RESET
// and query bus ownership.
type Z80Core interface {
	SetBusRequest(granted bool)
	BusRequestAcknowledged() bool
	SetReset(asserted bool)
}

// Bus implements both the m68k.Bus and z80.Bus interfaces (via the two
// disjoint method sets below) over the Mega Drive's physical memory map,
// per spec §3 "Bus address map" / "Z80 address map".
type Bus struct {
	Cart *cartridge.Cartridge

	WorkRAM  [0x10000]byte
	SoundRAM [0x2000]byte

	VDP    *vdp.VDP
	YM     *ym2612.YM2612
	PSG    *psg.PSG
	Z80    Z80Core
	Pad1   *controller.Pad
	Pad2   *controller.Pad

	// bankAccumulator is the 9-bit shift register loaded one bit at a
	// time by Z80 writes to $6000, per spec §4.4: "shifted in one bit per
	// write... least-significant-bit-first into the top of the
	// accumulator."
	bankAccumulator uint32

	version uint8

	// z80BusGranted mirrors the 68K's view of BUSREQ for the stall model
	// in Read8/Write8 on the Z80 window.
	z80BusGranted bool

	// z80StallCycles accumulates the contention penalty from 68K accesses
	// into the Z80 window while the Z80 still owns its bus, drained by the
	// scheduler into the 68K's quantum after every instruction.
	z80StallCycles uint64

	// Rand seeds work/sound RAM with indeterminate contents on a hard
	// reset (real hardware's RAM powers up with whatever pattern the
	// silicon happened to settle on, not zero), kept reproducible across
	// runs by deriving from the scheduler's master-cycle position.
	Rand *random.Random
}

// New wires a Bus over its already-constructed components.
func New(cart *cartridge.Cartridge, v *vdp.VDP, ym *ym2612.YM2612, ps *psg.PSG, z80 Z80Core, pad1, pad2 *controller.Pad) *Bus {
	return &Bus{Cart: cart, VDP: v, YM: ym, PSG: ps, Z80: z80, Pad1: pad1, Pad2: pad2, Rand: random.NewRandom(nil)}
}

// ScramblePowerOnRAM fills work and sound RAM with the Rand source's
// output, matching real hardware's indeterminate power-on RAM contents.
// Called on a hard reset only - a soft reset leaves RAM untouched.
func (b *Bus) ScramblePowerOnRAM() {
	for i := range b.WorkRAM {
		b.WorkRAM[i] = b.Rand.Uint8()
	}
	for i := range b.SoundRAM {
		b.SoundRAM[i] = b.Rand.Uint8()
	}
}

// SetZ80BusGranted is called by the scheduler when BUSREQ is acknowledged,
// letting the 68K read/write Z80 space directly without a stall.
func (b *Bus) SetZ80BusGranted(granted bool) { b.z80BusGranted = granted }

// TakeZ80StallCycles drains the contention penalty accumulated since the
// last drain, for the scheduler to fold into the 68K's cycle count.
func (b *Bus) TakeZ80StallCycles() uint64 {
	n := b.z80StallCycles
	b.z80StallCycles = 0
	return n
}

// bankedAddress returns the 68K address a Z80 access to its $8000-$FFFF
// window resolves to, given the low 15 bits of the Z80 address and the
// current 9-bit bank accumulator supplying the high bits.
func (b *Bus) bankedAddress(z80Addr uint16) uint32 {
	low := uint32(z80Addr) & 0x7FFF
	high := (b.bankAccumulator & 0x1FF) << 15
	return high | low
}
