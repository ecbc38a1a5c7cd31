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

// maxSprites caps the per-line sprite budget: 20 in H32, 16 in H40, per
// spec §4.5.
func (v *VDP) maxSprites() int {
	if v.h40() {
		return 16
	}
	return 20
}

type pixel struct {
	color      uint16
	priority   bool
	opaque     bool
	fromSprite bool
	spriteIdx  int
}

// renderLine composes background plane A, plane B, the window plane and
// sprites for one visible scanline into v.Framebuffer.
func (v *VDP) renderLine(line int) {
	width := v.activeWidth()
	shadowHighlight := v.Reg[12]&0x08 != 0

	bgColor := v.cramColor(int(v.Reg[7] & 0x3F))

	row := make([]pixel, width)
	for x := range row {
		row[x] = pixel{color: bgColor}
	}

	v.renderPlane(row, line, true)
	v.renderPlane(row, line, false)
	v.renderWindow(row, line)
	v.renderSprites(row, line)

	base := line * 320
	for x := 0; x < width && x < 320; x++ {
		c := row[x].color
		if shadowHighlight {
			c = v.applyShadowHighlight(row[x])
		}
		v.Framebuffer[base+x] = c
	}
}

// renderPlane draws plane A/B tiles using the horizontal/vertical scroll
// modes selected by register 11 (full, tile-row, or per-line from HSRAM)
// and register 13's table base.
func (v *VDP) renderPlane(row []pixel, line int, planeB bool) {
	hScrollMode := v.Reg[11] & 0x03
	nameBase := uint16(v.Reg[2]&0x38) << 10
	if planeB {
		nameBase = uint16(v.Reg[4]&0x07) << 13
	}

	mapWidth, mapHeight := v.planeSize()

	for x := range row {
		hScroll := v.hScrollFor(hScrollMode, line, planeB)
		scrolledX := (x + int(hScroll)) & (mapWidth*8 - 1)
		vScroll := v.vScrollFor(x, planeB)
		scrolledY := (line + int(vScroll)) & (mapHeight*8 - 1)

		tileX := scrolledX / 8
		tileY := scrolledY / 8
		cellAddr := nameBase + uint16((tileY*mapWidth+tileX)*2)
		cell := uint16(v.VRAM[cellAddr&(VRAMSize-1)])<<8 | uint16(v.VRAM[(cellAddr+1)&(VRAMSize-1)])

		tileIdx := cell & 0x07FF
		hFlip := cell&0x0800 != 0
		vFlip := cell&0x1000 != 0
		palette := (cell >> 13) & 0x3
		priority := cell&0x8000 != 0

		px := scrolledX % 8
		py := scrolledY % 8
		if hFlip {
			px = 7 - px
		}
		if vFlip {
			py = 7 - py
		}

		idx := v.tilePixel(tileIdx, px, py)
		if idx == 0 {
			continue
		}
		if !row[x].opaque || priority || !row[x].priority {
			row[x] = pixel{color: v.cramColor(int(palette)<<4 | int(idx)), priority: priority, opaque: true}
		}
	}
}

func (v *VDP) planeSize() (int, int) {
	w := 32 + int(v.Reg[16]&0x03)*32
	h := 32 + int((v.Reg[16]>>4)&0x03)*32
	return w, h
}

func (v *VDP) hScrollFor(mode uint8, line int, planeB bool) uint16 {
	tableBase := uint16(v.Reg[13]&0x3F) << 10
	var addr uint16
	switch mode {
	case 0: // full-screen
		addr = tableBase
	case 2: // per-tile-row
		addr = tableBase + uint16((line/8)*4)
	default: // per-line
		addr = tableBase + uint16(line*4)
	}
	if planeB {
		addr += 2
	}
	raw := uint16(v.VRAM[addr&(VRAMSize-1)])<<8 | uint16(v.VRAM[(addr+1)&(VRAMSize-1)])
	return -raw & 0x3FF
}

func (v *VDP) vScrollFor(x int, planeB bool) uint16 {
	fullScreen := v.Reg[11]&0x04 == 0
	col := 0
	if !fullScreen {
		col = (x / 16) * 4
	}
	off := col
	if planeB {
		off += 2
	}
	if off+1 >= VSRAMSize {
		return 0
	}
	return uint16(v.VSRAM[off])<<8 | uint16(v.VSRAM[off+1])
}

// renderWindow overlays the window plane in the rectangular region
// registers 17/18 describe, replacing plane A there.
func (v *VDP) renderWindow(row []pixel, line int) {
	hSize := v.Reg[17]
	vSize := v.Reg[18]
	right := hSize&0x80 != 0
	down := vSize&0x80 != 0
	hPos := int(hSize&0x1F) * 16
	vPos := int(vSize&0x1F) * 8

	inWindowV := (down && line >= vPos) || (!down && line < vPos)
	if !inWindowV && vPos != 0 {
		return
	}
	if vPos == 0 && !down {
		return
	}

	nameBase := uint16(v.Reg[3]&0x3E) << 10
	mapWidth := 64
	if !v.h40() {
		mapWidth = 32
	}

	for x := range row {
		inWindowH := (right && x >= hPos) || (!right && hPos != 0 && x < hPos)
		if !inWindowH {
			continue
		}
		tileX := x / 8
		tileY := line / 8
		cellAddr := nameBase + uint16((tileY*mapWidth+tileX)*2)
		cell := uint16(v.VRAM[cellAddr&(VRAMSize-1)])<<8 | uint16(v.VRAM[(cellAddr+1)&(VRAMSize-1)])
		tileIdx := cell & 0x07FF
		palette := (cell >> 13) & 0x3
		priority := cell&0x8000 != 0
		px, py := x%8, line%8
		idx := v.tilePixel(tileIdx, px, py)
		if idx == 0 {
			continue
		}
		row[x] = pixel{color: v.cramColor(int(palette)<<4 | int(idx)), priority: priority, opaque: true}
	}
}

// spriteAttr is one 8-byte sprite-attribute-table entry.
type spriteAttr struct {
	y, x          int
	w, h          int
	tile          uint16
	hFlip, vFlip  bool
	palette       int
	priority      bool
	link          int
}

func (v *VDP) sprite(idx int) spriteAttr {
	base := uint16(v.Reg[5]&0x7F) << 9
	addr := base + uint16(idx*8)
	b := func(o uint16) byte { return v.VRAM[(addr+o)&(VRAMSize-1)] }
	y := int(uint16(b(0))<<8|uint16(b(1))) & 0x3FF
	size := b(2)
	link := int(b(3) & 0x7F)
	cell := uint16(b(4))<<8 | uint16(b(5))
	x := int(uint16(b(6))<<8|uint16(b(7))) & 0x1FF
	return spriteAttr{
		y:        y - 128,
		x:        x - 128,
		w:        int((size>>2)&0x3) + 1,
		h:        int(size&0x3) + 1,
		tile:     cell & 0x07FF,
		hFlip:    cell&0x0800 != 0,
		vFlip:    cell&0x1000 != 0,
		palette:  int((cell >> 13) & 0x3),
		priority: cell&0x8000 != 0,
		link:     link,
	}
}

// renderSprites walks the sprite-link list starting at index 0, drawing up
// to the per-line budget; sprite 0 is composited last among equal-priority
// pixels so it wins ties, per spec §4.5.
func (v *VDP) renderSprites(row []pixel, line int) {
	visited := make(map[int]bool)
	budget := v.maxSprites()

	var onLine []int
	idx := 0
	for !visited[idx] {
		visited[idx] = true
		s := v.sprite(idx)
		if line >= s.y && line < s.y+s.h*8 && s.w > 0 && s.h > 0 {
			onLine = append(onLine, idx)
			if len(onLine) >= budget {
				v.spriteOvf = true
				break
			}
		}
		if s.link == 0 {
			break
		}
		idx = s.link
	}

	for i := len(onLine) - 1; i >= 0; i-- {
		s := v.sprite(onLine[i])
		v.drawSprite(row, s, line, onLine[i] == 0)
	}
}

func (v *VDP) drawSprite(row []pixel, s spriteAttr, line int, isZero bool) {
	py := line - s.y
	if s.vFlip {
		py = s.h*8 - 1 - py
	}
	tileRow := py / 8
	py %= 8

	for col := 0; col < s.w; col++ {
		sx := s.x + col*8
		tileCol := col
		if s.hFlip {
			tileCol = s.w - 1 - col
		}
		tileIdx := s.tile + uint16(tileCol*s.h+tileRow)

		for px := 0; px < 8; px++ {
			x := sx + px
			if x < 0 || x >= len(row) {
				continue
			}
			tpx := px
			if s.hFlip {
				tpx = 7 - px
			}
			idx := v.tilePixel(tileIdx, tpx, py)
			if idx == 0 {
				continue
			}
			if row[x].opaque && row[x].fromSprite && !isZero {
				v.collision = true
				if row[x].priority || !s.priority {
					continue
				}
			}
			if !row[x].opaque || s.priority || !row[x].priority {
				row[x] = pixel{
					color:      v.cramColor(s.palette<<4 | int(idx)),
					priority:   s.priority,
					opaque:     true,
					fromSprite: true,
					spriteIdx:  tileCol,
				}
			}
		}
	}
}

// tilePixel returns the 4-bit palette index of one pixel within a tile, the
// tiles being stored 4 bits/pixel, 32 bytes each.
func (v *VDP) tilePixel(tile uint16, px, py int) uint8 {
	addr := int(tile)*32 + py*4 + px/2
	b := v.VRAM[addr&(VRAMSize-1)]
	if px&1 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// cramColor decodes a CRAM entry (9-bit BGR, 3 bits/channel) into a 16-bit
// RGB555-ish value for the framebuffer.
func (v *VDP) cramColor(entry int) uint16 {
	a := int(entry) % 64 * 2
	w := uint16(v.CRAM[a])<<8 | uint16(v.CRAM[a+1])
	r := (w >> 1) & 0x7
	g := (w >> 5) & 0x7
	b := (w >> 9) & 0x7
	return r | g<<5 | b<<10
}

// applyShadowHighlight implements the shadow half of shadow/highlight mode:
// priority-0 pixels are shadowed and priority-1 pixels keep their colour.
// Sprite pixels using palette entries $3E/$3F are drawn as ordinary colours;
// no pixel is highlighted.
func (v *VDP) applyShadowHighlight(p pixel) uint16 {
	if !p.priority {
		return shadeColor(p.color, -1)
	}
	return p.color
}

func shadeColor(c uint16, dir int) uint16 {
	r := c & 0x1F
	g := (c >> 5) & 0x1F
	b := (c >> 10) & 0x1F
	shift := func(v uint16) uint16 {
		nv := int(v) + dir*4
		if nv < 0 {
			nv = 0
		}
		if nv > 31 {
			nv = 31
		}
		return uint16(nv)
	}
	r, g, b = shift(r), shift(g), shift(b)
	return r | g<<5 | b<<10
}
