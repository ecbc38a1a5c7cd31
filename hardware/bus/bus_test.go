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

import (
	"testing"

	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/controller"
	"github.com/mdcore/mdcore/hardware/psg"
	"github.com/mdcore/mdcore/hardware/vdp"
	"github.com/mdcore/mdcore/hardware/ym2612"
)

type fakeZ80 struct {
	granted, reset bool
}

func (f *fakeZ80) SetBusRequest(granted bool)   { f.granted = granted }
func (f *fakeZ80) BusRequestAcknowledged() bool { return f.granted }
func (f *fakeZ80) SetReset(asserted bool)       { f.reset = asserted }

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	rom := make([]byte, 0x1000)
	cart, err := cartridge.New(rom, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := vdp.New(nil)
	b := New(cart, v, ym2612.New(), psg.New(), &fakeZ80{}, controller.New(), controller.New())
	return b
}

func TestWorkRAMRoundTrip(t *testing.T) {
	b := newTestBus(t)
	b.Write32(0xFF0000, 0xDEADBEEF)
	if got := b.Read32(0xFF0000); got != 0xDEADBEEF {
		t.Fatalf("Read32 = %#x, want 0xDEADBEEF", got)
	}
}

func TestBankRegisterShiftsLSBFirst(t *testing.T) {
	b := newTestBus(t)
	// Shift in nine bits: 1,0,0,0,0,0,0,0,0 -> expect bit 0 set (each
	// write enters at the top and shifts right, so the first bit written
	// ends up as the least significant bit after 9 total writes).
	bits := []uint8{1, 0, 0, 0, 0, 0, 0, 0, 0}
	for _, bit := range bits {
		b.z80Write(0x6000, bit)
	}
	if b.bankAccumulator != 0x001 {
		t.Fatalf("bankAccumulator = %#x, want 0x1 (first bit written in bit 0)", b.bankAccumulator)
	}
}

func TestZ80WindowReachesWorkRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write8(0xFF0000, 0x42)
	// Bank $1FE selects the 32 KiB window at 68K address $FF0000, so the
	// Z80 window's $8000 maps to the first byte of work RAM.
	b.bankAccumulator = 0x1FE
	got := b.z80Read(0x8000)
	if got != 0x42 {
		t.Fatalf("z80 window read = %#x, want 0x42 (work RAM byte 0)", got)
	}
}

func TestZ80WindowReachesYM2612Ports(t *testing.T) {
	b := newTestBus(t)
	// $A04000 is the Z80-space address of the YM2612's first address port;
	// a 68K write there must not be masked down into the 8 KiB sound-RAM
	// mirror ($A04000 & 0x1FFF == 0, which would hit SoundRAM[0] instead).
	b.Write8(0xA04000, 0x30)
	b.Write8(0xA04001, 0x07)
	if b.SoundRAM[0] != 0 {
		t.Fatalf("SoundRAM[0] = %#x, want 0 (write should reach the YM2612, not sound RAM)", b.SoundRAM[0])
	}
}

func TestZ80WindowAccumulatesContentionStall(t *testing.T) {
	b := newTestBus(t)
	// z80BusGranted defaults to false (Z80 owns its bus), so a 68K access
	// into the window should be contended.
	if !b.Contended() {
		t.Fatal("expected bus to report contended with BUSREQ ungranted")
	}
	b.Write8(0xA04000, 0x30)
	if got := b.TakeZ80StallCycles(); got == 0 {
		t.Fatal("expected a contended Z80-window access to accumulate stall cycles")
	}
	if got := b.TakeZ80StallCycles(); got != 0 {
		t.Fatalf("TakeZ80StallCycles should drain to zero, got %d", got)
	}

	b.SetZ80BusGranted(true)
	b.Write8(0xA04000, 0x30)
	if got := b.TakeZ80StallCycles(); got != 0 {
		t.Fatalf("expected no stall once BUSREQ is granted, got %d", got)
	}
}
