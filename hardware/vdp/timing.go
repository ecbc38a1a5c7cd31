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

package vdp

// StepPixel advances the VDP by one pixel tick (master/4, per spec's clock
// ratio table), updating H/V counters and raising H-blank/V-blank/H-
// interrupt/V-interrupt as their thresholds are crossed.
func (v *VDP) StepPixel() {
	v.hblank = v.HCounter >= v.activeWidth()

	v.HCounter++
	if v.HCounter >= v.lineTotal() {
		v.HCounter = 0
		v.endOfLine()
	}

	v.stepDMA()
	v.recomputeIRQ()
}

func (v *VDP) activeWidth() int {
	if v.h40() {
		return 320
	}
	return 256
}

func (v *VDP) endOfLine() {
	activeEnd := v.activeLines()

	if v.VCounter < activeEnd {
		v.renderLine(v.VCounter)
	}

	if v.VCounter < activeEnd {
		if v.hIntCounter == 0 {
			v.hIntCounter = v.Reg[10]
			v.pendingHInt = true
		} else {
			v.hIntCounter--
		}
	} else {
		v.hIntCounter = v.Reg[10]
	}

	v.VCounter++
	if v.VCounter >= v.vTotal {
		v.VCounter = 0
		v.oddFrame = !v.oddFrame
	}

	wasVBlank := v.vblank
	v.vblank = v.VCounter >= activeEnd
	if v.vblank && !wasVBlank {
		v.pendingVInt = true
	}
}

func (v *VDP) recomputeIRQ() {
	switch {
	case v.pendingVInt && v.vIntEnabled():
		v.irqLevel = 6
	case v.pendingHInt && v.hIntEnabled():
		v.irqLevel = 4
	default:
		v.irqLevel = 0
	}
}

// AckInterrupt clears the pending flag for the given level once the 68K's
// interrupt acknowledge cycle has serviced it.
func (v *VDP) AckInterrupt(level uint8) {
	switch level {
	case 6:
		v.pendingVInt = false
	case 4:
		v.pendingHInt = false
	}
	v.recomputeIRQ()
}
