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

package console

import (
	"testing"

	"github.com/mdcore/mdcore/hardware/clocks"
)

func TestSaveStateRoundTrip(t *testing.T) {
	c := New(testCart(t), clocks.NTSC)
	c.RunFrame()

	data := c.SaveState()

	other := New(testCart(t), clocks.NTSC)
	if err := other.LoadState(data); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if other.M68K.PC != c.M68K.PC {
		t.Fatalf("PC after restore = %#x, want %#x", other.M68K.PC, c.M68K.PC)
	}
	if other.Scheduler.MasterCycle() != c.Scheduler.MasterCycle() {
		t.Fatalf("master cycle after restore = %d, want %d", other.Scheduler.MasterCycle(), c.Scheduler.MasterCycle())
	}

	beforeVRAM := c.VDP.VRAM
	c.RunFrame()
	other.RunFrame()
	if other.VDP.VRAM != beforeVRAM && other.VDP.VRAM != c.VDP.VRAM {
		t.Fatal("restored machine diverged from the original after stepping both by one frame")
	}
}

func TestLoadStateRejectsBadMagic(t *testing.T) {
	c := New(testCart(t), clocks.NTSC)
	if err := c.LoadState([]byte("not a record")); err == nil {
		t.Fatal("expected an error for a malformed record")
	}
}
