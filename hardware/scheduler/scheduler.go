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

// Package scheduler drives the master clock: it steps the M68K until its
// per-quantum cycle budget is spent, then advances the Z80, VDP, YM2612 and
// PSG by the equivalent number of their own native ticks, tracking the
// fractional cycle debt each ratio leaves behind, per spec §4.1. VDP
// register and DMA writes take effect synchronously inside the bus rather
// than through a deferred scheduler-side queue.
package scheduler

import (
	"github.com/mdcore/mdcore/hardware/bus"
	"github.com/mdcore/mdcore/hardware/clocks"
	"github.com/mdcore/mdcore/hardware/cpu/m68k"
	"github.com/mdcore/mdcore/hardware/cpu/z80"
	"github.com/mdcore/mdcore/hardware/psg"
	"github.com/mdcore/mdcore/hardware/vdp"
	"github.com/mdcore/mdcore/hardware/ym2612"
)

// Scheduler owns the master-cycle counter and every component's fractional
// debt against it, per spec §9 "Cyclic ownership": "components hold only
// indices... into [an] arena" owned by the scheduler - here, direct
// pointers the scheduler alone steps, which plays the same role for a
// single-threaded core.
type Scheduler struct {
	M68K *m68k.CPU
	Z80  *z80.CPU
	VDP  *vdp.VDP
	YM   *ym2612.YM2612
	PSG  *psg.PSG
	Bus  *bus.Bus

	Region clocks.Region

	masterCycle uint64

	// debt* accumulate leftover master-clock ticks that didn't divide
	// evenly into a native tick, so no time is lost across mode
	// switches, per spec §4.1.
	debtZ80, debtPixel, debtYM, debtPSG int
}

// New wires a Scheduler over already-constructed components.
func New(cpu *m68k.CPU, z *z80.CPU, v *vdp.VDP, ym *ym2612.YM2612, ps *psg.PSG, b *bus.Bus, region clocks.Region) *Scheduler {
	return &Scheduler{M68K: cpu, Z80: z, VDP: v, YM: ym, PSG: ps, Bus: b, Region: region}
}

// MasterCycle returns the scheduler's monotonic master-cycle counter, part
// of the save-state record per spec §6.
func (s *Scheduler) MasterCycle() uint64 { return s.masterCycle }

// RunQuantum advances the M68K until it has consumed at least
// m68kCycleBudget of its own cycles, then brings every other component up
// to the same point on the master clock.
func (s *Scheduler) RunQuantum(m68kCycleBudget uint64) {
	var spent uint64
	for spent < m68kCycleBudget {
		spent += s.stepM68K()
	}
}

// stepM68K executes one 68K instruction (or interrupt/exception dispatch),
// folds in any Z80-bus contention stall the instruction's own bus accesses
// incurred, and catches the master clock up by the equivalent ticks.
func (s *Scheduler) stepM68K() uint64 {
	cycles := s.M68K.Step()
	cycles += s.Bus.TakeZ80StallCycles()
	master := cycles * clocks.MasterPerM68K
	s.masterCycle += master
	s.advanceOthers(master)
	return cycles
}

// advanceOthers brings the Z80, VDP and YM2612/PSG forward by masterTicks
// worth of master-clock time, tracking fractional debt per component.
func (s *Scheduler) advanceOthers(masterTicks uint64) {
	s.debtZ80 += int(masterTicks)
	for s.debtZ80 >= clocks.MasterPerZ80 {
		s.debtZ80 -= clocks.MasterPerZ80
		s.stepZ80()
	}

	s.debtPixel += int(masterTicks)
	for s.debtPixel >= clocks.MasterPerPixel {
		s.debtPixel -= clocks.MasterPerPixel
		s.stepPixel()
	}

	s.debtYM += int(masterTicks)
	for s.debtYM >= clocks.MasterPerYM2612 {
		s.debtYM -= clocks.MasterPerYM2612
		s.YM.StepInternalCycle()
	}

	s.debtPSG += int(masterTicks)
	for s.debtPSG >= clocks.MasterPerPSG {
		s.debtPSG -= clocks.MasterPerPSG
		s.PSG.Step()
	}
}

func (s *Scheduler) stepZ80() {
	s.Z80.Step()
}

// stepPixel advances the VDP by one pixel tick and forwards its interrupt
// level to the 68K and its V-interrupt (level 6) to the Z80's IRQ line.
func (s *Scheduler) stepPixel() {
	s.VDP.StepPixel()
	level := s.VDP.IRQLevel()
	if level != 0 {
		s.M68K.RequestInterrupt(level)
	}
	s.Z80.RequestInterrupt(level == 6)
}
