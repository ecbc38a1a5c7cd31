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

import "testing"

// TestFnumLatch covers the spec's concrete scenario: writing $A4 (block 1,
// fnum-high=$2) must not change the observed F-num until the paired $A0
// write arrives, at which point both commit atomically.
func TestFnumLatch(t *testing.T) {
	y := New()

	y.WriteAddress(0, 0xA4)
	y.WriteData(0, 0x12) // block=(0x12>>3)&7=2... use exact spec bit layout below
	fnum, _ := y.EffectiveFnum(0)
	if fnum != 0 {
		t.Fatalf("fnum changed before low write: got %#x, want 0", fnum)
	}

	y.WriteAddress(0, 0xA0)
	y.WriteData(0, 0x34)
	fnum, block := y.EffectiveFnum(0)
	if fnum != 0x234 {
		t.Fatalf("fnum after low write = %#x, want 0x234", fnum)
	}
	if block != 2 {
		t.Fatalf("block after low write = %d, want 2", block)
	}
}

func TestBusyDeadlineExtendsOnDataWrite(t *testing.T) {
	y := New()
	y.WriteAddress(0, 0x30)
	y.WriteData(0, 0x01)
	if y.Status()&0x80 == 0 {
		t.Fatal("expected BUSY set immediately after a data write")
	}
	for i := 0; i < busyHoldCycles+1; i++ {
		y.cycle++
	}
	if y.Status()&0x80 != 0 {
		t.Fatal("expected BUSY clear after the hold time elapses")
	}
}

func TestKeyOnStartsAttack(t *testing.T) {
	y := New()
	y.WriteAddress(0, 0x28)
	y.WriteData(0, 0xF0) // all four operators of channel 0 key-on
	for _, op := range y.Ch[0].Op {
		if op.envStage != stageAttack {
			t.Fatalf("operator envStage = %v, want stageAttack", op.envStage)
		}
	}
}
