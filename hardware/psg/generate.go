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

package psg

// volumeTable is the standard two-decibel-per-step attenuation table: index
// 0 is loudest, 15 is silent.
var volumeTable = [16]int16{
	8191, 6507, 5168, 4105, 3261, 2590, 2057, 1634,
	1298, 1031, 819, 650, 516, 410, 325, 0,
}

// Step advances the PSG by one tick (the scheduler calls it once per Z80
// clock, every clocks.MasterPerPSG master cycles), toggling each tone
// channel's square-wave output and the noise channel's LFSR.
func (p *PSG) Step() {
	p.cycles++

	for ch := 0; ch < 3; ch++ {
		period := int(p.toneFreq[ch])
		if period == 0 {
			period = 1
		}
		p.toneCounter[ch]++
		if p.toneCounter[ch] >= period {
			p.toneCounter[ch] = 0
			p.toneOutput[ch] = !p.toneOutput[ch]
		}
	}

	p.stepNoise()
}

func (p *PSG) noisePeriod() int {
	switch p.noiseCtrl & 0x03 {
	case 0:
		return 16
	case 1:
		return 32
	case 2:
		return 64
	default:
		return int(p.toneFreq[2]) // shift rate locked to Tone3's frequency
	}
}

func (p *PSG) stepNoise() {
	period := p.noisePeriod()
	if period == 0 {
		period = 1
	}
	p.noiseCounter++
	if p.noiseCounter < period {
		return
	}
	p.noiseCounter = 0

	white := p.noiseCtrl&0x04 != 0
	bit0 := p.noiseShift & 1
	var feedback uint16
	if white {
		feedback = bit0 ^ ((p.noiseShift >> 3) & 1)
	} else {
		feedback = bit0
	}
	p.noiseShift = (p.noiseShift >> 1) | (feedback << 15)
	p.noiseOutput = bit0 != 0
}

// Sample mixes the four channels' current output into one mono sample,
// each channel contributing its square-wave/noise-bit polarity scaled by
// its attenuation register.
func (p *PSG) Sample() int16 {
	var sum int32
	for ch := 0; ch < 3; ch++ {
		if p.toneOutput[ch] {
			sum += int32(volumeTable[p.toneVol[ch]])
		}
	}
	if p.noiseOutput {
		sum += int32(volumeTable[p.noiseVol])
	}
	if sum > 32767 {
		sum = 32767
	}
	if sum < -32768 {
		sum = -32768
	}
	return int16(sum)
}
