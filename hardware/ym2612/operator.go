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

package ym2612

import "math"

// detuneTable approximates the eight-step detune field as a small additive
// shift to the phase increment; exact per-block/per-key-code detune tables
// are a documented lookup this core does not reproduce bit-for-bit, scoped
// out per the chip's LFO/detune open question.
var detuneTable = [8]int32{0, 1, 2, 3, -3, -2, -1, 0}

func fnumToIncrement(fnum uint16, block uint8) uint32 {
	return (uint32(fnum) << block) >> 1
}

// recomputePhaseIncrements updates every operator's phase increment for a
// channel after an F-num/block commit.
func (y *YM2612) recomputePhaseIncrements(ch int) {
	c := &y.Ch[ch]
	for i := range c.Op {
		y.setOperatorIncrement(c, &c.Op[i])
	}
}

func (y *YM2612) setOperatorIncrement(c *Channel, op *Operator) {
	mul := uint32(op.mul)
	base := fnumToIncrement(c.fnum, c.block)
	inc := (base * mul) >> 1
	if mul == 0 {
		inc = base >> 2 // MUL=0 behaves as 0.5: half of MUL=1's increment
	}
	det := detuneTable[op.det]
	if det < 0 {
		inc -= uint32(-det)
	} else {
		inc += uint32(det)
	}
	op.phaseInc = inc
}

// envStep advances one operator's envelope generator by one sample,
// implementing attack (exponential), decay/sustain/release (linear-in-log),
// and the SSG-EG hold/alternate/invert/attack behaviour once attenuation
// reaches $200, per spec §4.6.
func (o *Operator) envStep() {
	switch o.envStage {
	case stageAttack:
		if o.envLevel == 0 {
			o.envStage = stageDecay
			return
		}
		rate := attackRate(o.ar)
		if rate > 0 {
			delta := uint16(float64(o.envLevel) * rate)
			if delta < 1 {
				delta = 1
			}
			if delta >= o.envLevel {
				o.envLevel = 0
			} else {
				o.envLevel -= delta
			}
		}
	case stageDecay:
		target := uint16(o.sl) << 5
		o.envLevel = linearAdvance(o.envLevel, target, o.dr, o)
		if o.envLevel >= target {
			o.envStage = stageSustain
		}
	case stageSustain:
		o.envLevel = linearAdvance(o.envLevel, 0x3FF, o.sr, o)
	case stageRelease:
		o.envLevel = linearAdvance(o.envLevel, 0x3FF, o.rr<<1|1, o)
		if o.envLevel >= 0x3FF {
			o.envStage = stageOff
		}
	case stageOff:
		o.envLevel = 0x3FF
	}

	if o.envLevel >= 0x200 && o.ssgEG&0x08 != 0 {
		o.applySSGEG()
	}
}

func attackRate(ar uint8) float64 {
	if ar == 0 {
		return 0
	}
	return float64(ar) / 256.0
}

func linearAdvance(level, target uint16, rate uint8, o *Operator) uint16 {
	if rate == 0 {
		return level
	}
	step := uint16(rate)
	if level < target {
		if target-level < step {
			return target
		}
		return level + step
	}
	if level-target < step {
		return target
	}
	return level - step
}

// applySSGEG implements the hold/alternate/invert bits once attenuation
// saturates at $200, per spec: "per mode bits it holds, alternates
// (toggling an inversion flag), and/or resets phase."
func (o *Operator) applySSGEG() {
	hold := o.ssgEG&0x01 != 0
	alt := o.ssgEG&0x02 != 0
	attack := o.ssgEG&0x04 != 0

	if alt {
		o.ssgInvert = !o.ssgInvert
	}
	if !hold {
		o.phase = 0
		if o.envStage != stageAttack {
			o.envStage = stageAttack
		}
	} else if attack {
		o.envLevel = 0x3FF
		o.envStage = stageOff
	}
}

// sine returns the operator's raw sine-table output at the given phase
// (12-bit log-sine approximated in floating point here rather than via a
// fixed-point log-sine ROM table, a simplification of the real chip's
// lookup hardware).
func sine(phase uint32) float64 {
	rad := float64(phase&0xFFF) / 4096.0 * 2 * math.Pi
	return math.Sin(rad)
}

// evaluate computes one operator's signed output sample given a phase
// modulation input (in phase units), advancing its own phase counter.
func (o *Operator) evaluate(modulation int32) int32 {
	phase := o.phase + uint32(modulation)
	s := sine(phase)

	atten := float64(o.envLevel) + float64(o.totalLevel)*4
	if atten > 1023 {
		atten = 1023
	}
	gain := math.Pow(10, -atten*0.75/20.0)

	out := s * gain * 8191

	if o.ssgInvert {
		out = -out
	}

	o.phase += o.phaseInc
	o.prevOut = o.lastOut
	o.lastOut = int32(out)
	return o.lastOut
}
