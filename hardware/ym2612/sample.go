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

// StepInternalCycle advances the chip by one of its 42-master-cycle
// internal ticks (spec's clock ratio table). Every 24th internal cycle
// emits a new sample pair; this mirrors spec §4.6's "once per 24 internal
// cycles emits one output sample pair."
func (y *YM2612) StepInternalCycle() {
	y.cycle++
	if y.cycle%24 == 0 {
		y.Sample()
	}
}

// Sample advances every channel by one internal sample, updates Timer A,
// every 16th sample Timer B, and the LFO divider, per spec §4.6.
func (y *YM2612) Sample() (left, right int16) {
	y.stepTimers()
	y.stepLFO()

	var sumL, sumR int32
	for ch := 0; ch < 6; ch++ {
		var s int32
		if ch == 5 && y.dacEnabled {
			s = (int32(y.dacSample) - 128) << 5
		} else {
			s = y.sampleChannel(ch)
		}
		s = quantize(s, y.Profile)

		c := &y.Ch[ch]
		if c.panL {
			sumL += s
		}
		if c.panR {
			sumR += s
		}
	}

	sumL = clamp16(sumL)
	sumR = clamp16(sumR)
	y.lastLeft, y.lastRight = sumL, sumR
	return int16(sumL), int16(sumR)
}

// quantize truncates a carrier sample to 9 bits (per spec "DAC / ladder
// quantization") and applies the YM2612 ladder-effect bias; the YM3438
// profile disables the ladder.
func quantize(s int32, profile Profile) int32 {
	truncated := s >> 5
	if profile == ProfileYM3438 {
		return truncated << 5
	}
	if truncated >= 0 {
		truncated++
	} else {
		truncated--
	}
	return truncated << 5
}

func clamp16(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

// LastSample returns the most recently produced stereo sample, for host
// audio capture between Sample() calls.
func (y *YM2612) LastSample() (int16, int16) { return int16(y.lastLeft), int16(y.lastRight) }

// WriteDACSample latches the 8-bit DAC sample, written via the YM2612 data
// port when channel 6's DAC mode is selected.
func (y *YM2612) WriteDACSample(v uint8) { y.dacSample = v }

func (y *YM2612) stepTimers() {
	y.sampleCount++

	if y.timerAEnabled {
		y.timerACounter++
		if y.timerACounter >= (1024 - int(y.timerA)) {
			y.timerACounter = 0
			y.timerAOverflow = true
		}
	}

	if y.sampleCount%16 == 0 && y.timerBEnabled {
		y.timerBCounter++
		if y.timerBCounter >= (256 - int(y.timerB)) {
			y.timerBCounter = 0
			y.timerBOverflow = true
		}
	}
}

func (y *YM2612) stepLFO() {
	if !y.lfoEnabled {
		return
	}
	y.lfoCounter++
	if y.lfoCounter >= lfoTable[y.lfoFreq] {
		y.lfoCounter = 0
		y.lfoStep++
	}
}
