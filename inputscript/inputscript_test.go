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

package inputscript

import (
	"strings"
	"testing"

	"github.com/mdcore/mdcore/hardware/controller"
)

const sample = `0,............,............
10,....A.......,............
30,............,............
`

func TestParseAndAdvance(t *testing.T) {
	events, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[1].P1 != controller.A {
		t.Fatalf("events[1].P1 = %v, want A", events[1].P1)
	}

	s := New(events)

	if p1, _ := s.Advance(5); p1 != 0 {
		t.Fatalf("frame 5: p1 = %v, want 0 (holding frame 0's state)", p1)
	}
	if p1, _ := s.Advance(15); p1 != controller.A {
		t.Fatalf("frame 15: p1 = %v, want A (holding frame 10's state)", p1)
	}
	if p1, _ := s.Advance(30); p1 != 0 {
		t.Fatalf("frame 30: p1 = %v, want 0 (frame 30 releases)", p1)
	}
	if !s.Done() {
		t.Fatal("expected script to be exhausted after its last frame")
	}
}

func TestParseRejectsBadFieldCount(t *testing.T) {
	_, err := Parse(strings.NewReader("0,............\n"))
	if err == nil {
		t.Fatal("expected an error for a 2-field line")
	}
}

func TestParseRejectsNonAscendingFrames(t *testing.T) {
	_, err := Parse(strings.NewReader("5,............,............\n3,............,............\n"))
	if err == nil {
		t.Fatal("expected an error for a non-ascending frame number")
	}
}

func TestParseRejectsBadButtonString(t *testing.T) {
	_, err := Parse(strings.NewReader("0,short,............\n"))
	if err == nil {
		t.Fatal("expected an error for a short button string")
	}
}
