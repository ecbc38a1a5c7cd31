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

import "testing"

// TestRenderLineCompositesPlaneBBehindPlaneA covers the back-to-front
// B-low/A-low ordering of spec §4.5: where plane A has an opaque tile it
// wins, but plane B must still show through wherever plane A is
// transparent - before the fix, plane B was never drawn at all.
func TestRenderLineCompositesPlaneBBehindPlaneA(t *testing.T) {
	v := New(&fakeBus{})

	const nameBaseA = 0x2000
	const nameBaseB = 0x4000
	v.Reg[2] = 0x08 // plane A name table base -> 0x2000
	v.Reg[4] = 0x02 // plane B name table base -> 0x4000

	// Column 0: both planes opaque. Plane A (tile 1, pixel index 5) must
	// win over plane B (tile 2, pixel index 3).
	v.VRAM[nameBaseA+0], v.VRAM[nameBaseA+1] = 0x00, 0x01
	v.VRAM[nameBaseB+0], v.VRAM[nameBaseB+1] = 0x00, 0x02
	v.VRAM[1*32] = 0x50 // tile 1, (0,0) -> palette index 5
	v.VRAM[2*32] = 0x30 // tile 2, (0,0) -> palette index 3

	// Column 1 (x=8..15): plane A's cell is left at tile 0 (blank VRAM,
	// so every pixel decodes to index 0, i.e. transparent); plane B's
	// cell is tile 3, pixel index 7, and must show through.
	v.VRAM[nameBaseB+2], v.VRAM[nameBaseB+3] = 0x00, 0x03
	v.VRAM[3*32] = 0x70 // tile 3, (0,0) -> palette index 7

	colorA := uint16(0x0F0F)
	colorB := uint16(0x00F0)
	v.CRAM[5*2], v.CRAM[5*2+1] = byte(colorA>>8), byte(colorA)
	v.CRAM[7*2], v.CRAM[7*2+1] = byte(colorB>>8), byte(colorB)

	v.renderLine(0)

	if got := v.Framebuffer[0]; got != v.cramColor(5) {
		t.Fatalf("x=0: framebuffer = %#x, want plane A's color %#x", got, v.cramColor(5))
	}
	if got := v.Framebuffer[8]; got != v.cramColor(7) {
		t.Fatalf("x=8: framebuffer = %#x, want plane B's color %#x (plane B must show through a transparent plane A)", got, v.cramColor(7))
	}
}
