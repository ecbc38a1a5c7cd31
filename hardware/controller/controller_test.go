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

package controller

import "testing"

// TestSixButtonTimeout covers the spec's concrete scenario: three TH
// transitions within 1ms latch 6-button mode; after a 2ms idle period the
// next read reverts to 3-button mode.
func TestSixButtonTimeout(t *testing.T) {
	p := New()

	p.WriteTH(false)
	p.Advance(300)
	p.WriteTH(true)
	p.Advance(300)
	p.WriteTH(false)

	if !p.SixButtonActive() {
		t.Fatal("expected 6-button mode active after three TH transitions within 1ms")
	}

	p.Advance(2000)
	if p.SixButtonActive() {
		t.Fatal("expected 6-button mode to expire after a 2ms idle period")
	}
}
