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

// Package clocks defines the master-clock ratios that tie the 68000, the
// Z80, the VDP and the YM2612 together on a single monotonic counter.
//
// The master clock divides unevenly per component, which is why the
// scheduler tracks fractional debts rather than integer cycle counts per
// quantum (see hardware/scheduler).
package clocks

// Divisors express how many master-clock ticks elapse per native tick of
// each component, on the NTSC timing basis. PAL uses the same ratios
// relative to its own (slower) master frequency.
const (
	MasterPerM68K   = 7
	MasterPerZ80    = 15
	MasterPerPixel  = 4
	MasterPerYM2612 = 42

	// MasterPerPSG shares the Z80's divisor: the PSG is driven off the
	// same clock the Z80 that writes to it runs on.
	MasterPerPSG = MasterPerZ80

	// Z80ContentionStallCycles approximates the extra 68000 cycles a 68K
	// access into $A00000-$A0FFFF costs when the Z80 still owns its own
	// bus, per spec §4.4 "Contention."
	Z80ContentionStallCycles = 3
)

// Region selects the console's video timing.
type Region int

const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	if r == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Timing holds the per-region constants needed to convert wall-clock frames
// into master-clock ticks.
type Timing struct {
	MasterHz       int
	ScanlinesTotal int
	FPS            int
}

// NTSCTiming and PALTiming are taken from the documented Genesis/Mega Drive
// master oscillator frequencies (53.693175MHz NTSC / 53.203424MHz PAL),
// scaled so that MasterPerM68K ticks equal one 68000 cycle.
var (
	NTSCTiming = Timing{MasterHz: 53693175, ScanlinesTotal: 262, FPS: 60}
	PALTiming  = Timing{MasterHz: 53203424, ScanlinesTotal: 313, FPS: 50}
)

// For returns the timing constants for the given region.
func For(r Region) Timing {
	if r == PAL {
		return PALTiming
	}
	return NTSCTiming
}
