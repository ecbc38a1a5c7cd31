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

// Package ym2612 implements the Mega Drive's FM sound chip: six four-
// operator channels, the LFO, Timer A/B, DAC passthrough on channel 6, and
// the BUSY write-acceptance contract, per spec §4.6.
package ym2612

// lfoTable is the documented per-sample divider table indexed by the 3-bit
// LFO frequency select, per spec §4.6.
var lfoTable = [8]int{108, 77, 71, 67, 62, 44, 8, 5}

// Profile selects between the YM2612 and YM3438 DAC quantization behaviour,
// per spec §9 Open Questions: "implementers should expose a hardware
// profile switch."
type Profile int

const (
	ProfileYM2612 Profile = iota
	ProfileYM3438
)

// Operator holds one of a channel's four FM operators.
type Operator struct {
	phase      uint32
	phaseInc   uint32
	mul, det   uint8
	totalLevel uint8
	ar, dr, sr, rr uint8
	sl         uint8
	ssgEG      uint8

	envLevel   uint16 // 10-bit attenuation, 0 = loudest
	envStage   envStage
	ssgInvert  bool
	keyOn      bool

	lastOut, prevOut int32
}

type envStage int

const (
	stageAttack envStage = iota
	stageDecay
	stageSustain
	stageRelease
	stageOff
)

// Channel holds one of the six FM channels' shared (non-operator) state.
type Channel struct {
	Op [4]Operator

	algorithm uint8
	feedback  uint8
	ams, pms  uint8
	panL, panR bool

	fnum  uint16
	block uint8
	// pendingHigh/pendingBlock hold the last $A4-$A7 write until the
	// paired $A0-$A3 low write commits them atomically, per spec §4.6.
	pendingHigh  uint16
	pendingBlock uint8

	fnum3 [3]uint16 // Channel 3 special-mode per-operator F-num
	block3 [3]uint8

	specialMode bool
}

// YM2612 is the full chip: register groups, six channels, timers, LFO and
// the DAC passthrough latch.
type YM2612 struct {
	Ch [6]Channel

	latchedAddr [2]uint8 // per register group (channels 1-3, 4-6)
	selGroup    int

	timerA        uint16 // 10-bit
	timerAEnabled bool
	timerAOverflow bool
	timerACounter int

	timerB        uint8 // 8-bit
	timerBEnabled bool
	timerBOverflow bool
	timerBCounter int
	sampleCount   int

	lfoEnabled bool
	lfoFreq    uint8
	lfoCounter int
	lfoStep    uint8

	dacEnabled bool
	dacSample  uint8

	busyDeadline uint64
	cycle        uint64

	Profile Profile

	lastLeft, lastRight int32
}

// New creates a chip with power-on defaults, per spec §4.6 "Power-on
// state": panning both, DAC disabled, timers stopped, LFO off.
func New() *YM2612 {
	y := &YM2612{}
	y.Reset()
	return y
}

// Reset restores power-on defaults.
func (y *YM2612) Reset() {
	for i := range y.Ch {
		y.Ch[i] = Channel{panL: true, panR: true}
		for o := range y.Ch[i].Op {
			y.Ch[i].Op[o].envStage = stageOff
			y.Ch[i].Op[o].envLevel = 0x3FF
		}
	}
	y.timerAEnabled = false
	y.timerBEnabled = false
	y.timerAOverflow = false
	y.timerBOverflow = false
	y.lfoEnabled = false
	y.dacEnabled = false
	y.busyDeadline = 0
	y.cycle = 0
}

// Status returns the 8-bit status byte: bit 7 BUSY, bit 1 Timer B overflow,
// bit 0 Timer A overflow.
func (y *YM2612) Status() uint8 {
	var s uint8
	if y.cycle < y.busyDeadline {
		s |= 0x80
	}
	if y.timerBOverflow {
		s |= 0x02
	}
	if y.timerAOverflow {
		s |= 0x01
	}
	return s
}

// busyHoldCycles is the documented baseline BUSY hold time per spec §4.6 and
// §9 Open Questions ("the spec mandates a 32-cycle baseline").
const busyHoldCycles = 32
