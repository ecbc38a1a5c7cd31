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

import "testing"

func TestTone1FreqUpdate(t *testing.T) {
	p := New()

	p.Write(0x8A) // latch Tone1 freq, low nibble 0xA
	if p.latchedChannel != Tone1 || p.latchedType != typeToneNoise {
		t.Fatal("expected Tone1/ToneNoise latched")
	}
	if p.toneFreq[Tone1] != 0x0A {
		t.Fatalf("toneFreq = %#x, want 0x0A", p.toneFreq[Tone1])
	}

	p.Write(0x15) // data byte, high 6 bits 010101
	if p.toneFreq[Tone1] != 0x15A {
		t.Fatalf("toneFreq = %#x, want 0x15A", p.toneFreq[Tone1])
	}
}

func TestVolumeUpdateIgnoresDataByte(t *testing.T) {
	p := New()

	p.Write(0xB5) // latch Tone2 volume = 0x5
	if p.toneVol[Tone2] != 0x05 {
		t.Fatalf("toneVol = %#x, want 0x05", p.toneVol[Tone2])
	}

	p.Write(0x20) // data byte must not affect a latched volume register
	if p.toneVol[Tone2] != 0x05 {
		t.Fatalf("toneVol changed by data byte: got %#x, want 0x05", p.toneVol[Tone2])
	}
}

func TestNoiseControlLatch(t *testing.T) {
	p := New()

	p.Write(0xE6) // latch Noise control = white noise, shift rate 2
	if p.latchedChannel != Noise {
		t.Fatalf("latchedChannel = %v, want Noise", p.latchedChannel)
	}
	if p.noiseCtrl != 0x06 {
		t.Fatalf("noiseCtrl = %#x, want 0x06", p.noiseCtrl)
	}
}

func TestSampleSilentAtPowerOn(t *testing.T) {
	p := New()
	for i := 0; i < 100; i++ {
		p.Step()
	}
	if s := p.Sample(); s != 0 {
		t.Fatalf("Sample() = %d at power-on, want 0 (max attenuation)", s)
	}
}
