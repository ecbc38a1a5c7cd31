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

// Package console wires every hardware component into one machine: the
// top-level observer/mutator API spec §6 describes, hard/soft reset, ROM
// loading and controller input.
package console

import (
	"github.com/mdcore/mdcore/curated"
	"github.com/mdcore/mdcore/hardware/bus"
	"github.com/mdcore/mdcore/hardware/cartridge"
	"github.com/mdcore/mdcore/hardware/clocks"
	"github.com/mdcore/mdcore/hardware/controller"
	"github.com/mdcore/mdcore/hardware/cpu/m68k"
	"github.com/mdcore/mdcore/hardware/cpu/z80"
	"github.com/mdcore/mdcore/hardware/psg"
	"github.com/mdcore/mdcore/hardware/scheduler"
	"github.com/mdcore/mdcore/hardware/vdp"
	"github.com/mdcore/mdcore/hardware/ym2612"
	"github.com/mdcore/mdcore/logger"
)

// Console is the complete machine: every component plus the scheduler that
// drives them all off one master clock.
type Console struct {
	Cart *cartridge.Cartridge

	M68K *m68k.CPU
	Z80  *z80.CPU
	VDP  *vdp.VDP
	YM   *ym2612.YM2612
	PSG  *psg.PSG
	Bus  *bus.Bus
	Pad1 *controller.Pad
	Pad2 *controller.Pad

	Scheduler *scheduler.Scheduler
	Region    clocks.Region

	z80Core *z80BusAdapter
}

// z80BusAdapter satisfies bus.Z80Core by forwarding to the real z80.CPU,
// keeping the bus package free of a direct import cycle back to cpu/z80
// beyond the interface it already declares.
type z80BusAdapter struct{ cpu *z80.CPU }

func (a *z80BusAdapter) SetBusRequest(granted bool)   { a.cpu.SetBusRequest(granted) }
func (a *z80BusAdapter) BusRequestAcknowledged() bool { return a.cpu.BusRequestAcknowledged() }
func (a *z80BusAdapter) SetReset(asserted bool)       { a.cpu.SetReset(asserted) }

// New constructs a Console around a loaded cartridge, performing the
// power-on (hard reset) sequence described in spec §3 "Lifecycles".
func New(cart *cartridge.Cartridge, region clocks.Region) *Console {
	c := &Console{Cart: cart, Region: region}
	c.build()
	c.HardReset()
	return c
}

func (c *Console) build() {
	region := c.Region
	c.VDP = vdp.New(nil)
	c.YM = ym2612.New()
	c.PSG = psg.New()
	c.Pad1 = controller.New()
	c.Pad2 = controller.New()

	z := z80.NewCPU(nil)
	c.Z80 = z
	c.z80Core = &z80BusAdapter{cpu: z}

	c.Bus = bus.New(c.Cart, c.VDP, c.YM, c.PSG, c.z80Core, c.Pad1, c.Pad2)
	c.VDP.Bus = c.Bus
	c.Z80.Bus = c.Bus

	c.M68K = m68k.NewCPU(c.Bus)

	c.Scheduler = scheduler.New(c.M68K, c.Z80, c.VDP, c.YM, c.PSG, c.Bus, region)
	c.Bus.Rand.SetClock(c.Scheduler)
}

// HardReset re-establishes every component's power-on defaults, per spec
// §6 "hard reset (power-on defaults)".
func (c *Console) HardReset() {
	c.VDP.Reset()
	c.YM.Reset()
	c.PSG.Reset()
	c.Bus.ScramblePowerOnRAM()
	c.Z80.SetReset(true)
	c.Z80.SetBusRequest(true)
	c.M68K.Reset()
	logger.Log(logger.Allow, "console", "hard reset")
}

// SoftReset implements spec §6's "soft reset (68K interrupt level 7 + Z80
// reset pulse)".
func (c *Console) SoftReset() {
	c.M68K.RequestInterrupt(7)
	c.Z80.SetReset(true)
	c.Z80.SetReset(false)
	logger.Log(logger.Allow, "console", "soft reset")
}

// Load replaces the loaded cartridge, failing ROM loading only (spec §7
// "ROM faults") and leaving prior state untouched on error.
func (c *Console) Load(rom []byte, sram *cartridge.SRAM) error {
	cart, err := cartridge.New(rom, sram)
	if err != nil {
		return curated.Errorf("console: load rom: %v", err)
	}
	c.Cart = cart
	c.Bus.Cart = cart
	c.HardReset()
	return nil
}

// MasterCycle returns the scheduler's monotonic master-cycle counter.
func (c *Console) MasterCycle() uint64 { return c.Scheduler.MasterCycle() }

// SetControllerState implements spec §6's "set controller state (port,
// 12-bit button mask)".
func (c *Console) SetControllerState(port int, buttons controller.Button) {
	switch port {
	case 1:
		c.Pad1.SetState(buttons)
	case 2:
		c.Pad2.SetState(buttons)
	}
}

// RunFrame advances the machine by one NTSC/PAL field, per the master clock
// ratios in spec §4.1.
func (c *Console) RunFrame() {
	timing := clocks.For(c.Scheduler.Region)
	ticksPerField := uint64(timing.MasterHz / timing.FPS)
	cyclesPerField := ticksPerField / clocks.MasterPerM68K
	c.Scheduler.RunQuantum(cyclesPerField)
	c.Pad1.Advance(uint64(1000000 / timing.FPS))
	c.Pad2.Advance(uint64(1000000 / timing.FPS))
}
