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

package scheduler

import (
	"testing"

	"github.com/mdcore/mdcore/hardware/bus"
	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/clocks"
	"github.com/mdcore/mdcore/hardware/controller"
	"github.com/mdcore/mdcore/hardware/cpu/m68k"
	"github.com/mdcore/mdcore/hardware/cpu/z80"
	"github.com/mdcore/mdcore/hardware/psg"
	"github.com/mdcore/mdcore/hardware/vdp"
	"github.com/mdcore/mdcore/hardware/ym2612"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	rom := make([]byte, 0x10000)
	// Reset vectors: SSP = $FF0000, PC = $000400 (zero-filled ROM, which decodes as repeated ORI.B #0,D0).
	rom[0], rom[1], rom[2], rom[3] = 0x00, 0xFF, 0x00, 0x00
	rom[4], rom[5], rom[6], rom[7] = 0x00, 0x00, 0x04, 0x00
	cart, err := cartridge.New(rom, nil)
	if err != nil {
		t.Fatal(err)
	}

	v := vdp.New(nil)
	ym := ym2612.New()
	ps := psg.New()
	fz := &stubZ80{}
	b := bus.New(cart, v, ym, ps, fz, controller.New(), controller.New())
	v.Bus = b

	cpu := m68k.NewCPU(b)
	cpu.Reset()
	z := z80.NewCPU(b)

	return New(cpu, z, v, ym, ps, b, clocks.NTSC)
}

type stubZ80 struct{ granted bool }

func (s *stubZ80) SetBusRequest(granted bool)   { s.granted = granted }
func (s *stubZ80) BusRequestAcknowledged() bool { return s.granted }
func (s *stubZ80) SetReset(asserted bool)       {}

func TestRunQuantumAdvancesMasterClock(t *testing.T) {
	s := newTestScheduler(t)
	before := s.MasterCycle()
	s.RunQuantum(1000)
	if s.MasterCycle() <= before {
		t.Fatal("expected master cycle counter to advance")
	}
}

// newContendedTestScheduler builds a scheduler whose reset vector runs a
// single MOVE.B #$30,$A04000 instruction - a 68K write into the Z80 window,
// contended whenever granted is false.
func newContendedTestScheduler(t *testing.T, granted bool) *Scheduler {
	t.Helper()
	rom := make([]byte, 0x10000)
	rom[0], rom[1], rom[2], rom[3] = 0x00, 0xFF, 0x00, 0x00
	rom[4], rom[5], rom[6], rom[7] = 0x00, 0x00, 0x04, 0x00

	// MOVE.B #$30,$A04000: opcode 0x13FC, immediate extension word 0x0030,
	// absolute long destination 0x00A04000.
	putWord := func(off int, w uint16) {
		rom[off], rom[off+1] = byte(w>>8), byte(w)
	}
	putWord(0x400, 0x13FC)
	putWord(0x402, 0x0030)
	putWord(0x404, 0x00A0)
	putWord(0x406, 0x4000)

	cart, err := cartridge.New(rom, nil)
	if err != nil {
		t.Fatal(err)
	}

	v := vdp.New(nil)
	ym := ym2612.New()
	ps := psg.New()
	fz := &stubZ80{granted: granted}
	b := bus.New(cart, v, ym, ps, fz, controller.New(), controller.New())
	b.SetZ80BusGranted(granted)
	v.Bus = b

	cpu := m68k.NewCPU(b)
	cpu.Reset()
	z := z80.NewCPU(b)

	return New(cpu, z, v, ym, ps, b, clocks.NTSC)
}

// TestZ80BusContentionStallsThe68K covers spec §4.4 "Contention": a 68K
// access into the Z80 window while the Z80 owns its bus must cost more
// master-clock time than the same access once BUSREQ is granted.
func TestZ80BusContentionStallsThe68K(t *testing.T) {
	contended := newContendedTestScheduler(t, false)
	before := contended.MasterCycle()
	contended.stepM68K()
	contendedCost := contended.MasterCycle() - before

	granted := newContendedTestScheduler(t, true)
	before = granted.MasterCycle()
	granted.stepM68K()
	grantedCost := granted.MasterCycle() - before

	if contendedCost <= grantedCost {
		t.Fatalf("contended access cost %d master cycles, want more than the granted cost %d", contendedCost, grantedCost)
	}
}
