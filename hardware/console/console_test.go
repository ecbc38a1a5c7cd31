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

	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/clocks"
	"github.com/mdcore/mdcore/hardware/controller"
)

func testCart(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	rom := make([]byte, 0x10000)
	rom[0], rom[1], rom[2], rom[3] = 0x00, 0xFF, 0x00, 0x00
	rom[4], rom[5], rom[6], rom[7] = 0x00, 0x00, 0x04, 0x00
	cart, err := cartridge.New(rom, nil)
	if err != nil {
		t.Fatal(err)
	}
	return cart
}

func TestHardResetLoadsVectors(t *testing.T) {
	c := New(testCart(t), clocks.NTSC)
	if c.M68K.PC != 0x000400 {
		t.Fatalf("PC after reset = %#x, want 0x000400", c.M68K.PC)
	}
}

func TestRunFrameAdvancesClock(t *testing.T) {
	c := New(testCart(t), clocks.NTSC)
	before := c.Scheduler.MasterCycle()
	c.RunFrame()
	if c.Scheduler.MasterCycle() <= before {
		t.Fatal("expected master clock to advance across a frame")
	}
}

func TestSetControllerState(t *testing.T) {
	c := New(testCart(t), clocks.NTSC)
	c.SetControllerState(1, controller.A|controller.Start)
	c.Pad1.WriteTH(false) // select the 3-button data layout carrying A/Start
	if c.Pad1.Read()&0x10 != 0 {
		t.Fatal("expected pad1 to report A held (active-low bit 4 clear)")
	}
}
