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

// WriteAddress latches the target register for the given port group (0 for
// $4000/$4001, 1 for $4002/$4003 per spec's Z80 address map "mirrored every
// 4 bytes").
func (y *YM2612) WriteAddress(group int, reg uint8) {
	y.latchedAddr[group&1] = reg
	y.selGroup = group & 1
}

// WriteData commits a value to the latched register in the given group.
// Per spec: "a data write extends the BUSY deadline by the documented hold
// time." F-num high/block writes do not take effect until the paired F-num
// low write, applied atomically there.
func (y *YM2612) WriteData(group int, val uint8) {
	reg := y.latchedAddr[group&1]
	y.busyDeadline = y.cycle + busyHoldCycles

	if group == 0 && reg < 0x30 {
		y.writeGlobal(reg, val)
		return
	}

	chanBase := group * 3
	if reg >= 0x30 {
		ch := int(reg & 0x03)
		if ch == 3 {
			return
		}
		y.writeChannelReg(chanBase+ch, reg, val)
	}
}

func (y *YM2612) writeGlobal(reg uint8, val uint8) {
	switch {
	case reg == 0x22:
		y.lfoEnabled = val&0x08 != 0
		y.lfoFreq = val & 0x07
	case reg == 0x24:
		y.timerA = (y.timerA & 0x3) | uint16(val)<<2
	case reg == 0x25:
		y.timerA = (y.timerA &^ 0x3) | uint16(val&0x3)
	case reg == 0x26:
		y.timerB = val
	case reg == 0x27:
		y.timerAEnabled = val&0x01 != 0
		y.timerBEnabled = val&0x02 != 0
		if val&0x10 != 0 {
			y.timerAOverflow = false
		}
		if val&0x20 != 0 {
			y.timerBOverflow = false
		}
		y.Ch[2].specialMode = val&0x40 != 0
	case reg == 0x28: // key on/off
		chSel := val & 0x07
		ch := int(chSel)
		if chSel >= 4 {
			ch = int(chSel) - 4 + 3
		}
		if ch >= len(y.Ch) {
			return
		}
		for op := 0; op < 4; op++ {
			on := val&(0x10<<uint(op)) != 0
			y.keyEvent(ch, op, on)
		}
	case reg == 0x2B:
		y.dacEnabled = val&0x80 != 0
	}
}

func (y *YM2612) keyEvent(ch, op int, on bool) {
	o := &y.Ch[ch].Op[op]
	if on && !o.keyOn {
		o.envStage = stageAttack
		o.phase = 0
		o.ssgInvert = false
	} else if !on && o.keyOn {
		o.envStage = stageRelease
	}
	o.keyOn = on
}

// writeChannelReg dispatches a per-channel register write. ch is the
// absolute channel index (0-5); reg is the raw register number, whose bits
// 2-3 select the operator for operator-scoped registers.
func (y *YM2612) writeChannelReg(ch int, reg uint8, val uint8) {
	c := &y.Ch[ch]
	opSel := int((reg >> 2) & 0x3)
	// Hardware orders operators 1,3,2,4 in the register map's bit layout;
	// translate to the evaluation-order slice index.
	opMap := [4]int{0, 2, 1, 3}
	op := &c.Op[opMap[opSel]]

	switch {
	case reg >= 0x30 && reg < 0x40:
		op.mul = val & 0x0F
		op.det = (val >> 4) & 0x07
	case reg >= 0x40 && reg < 0x50:
		op.totalLevel = val & 0x7F
	case reg >= 0x50 && reg < 0x60:
		op.ar = val & 0x1F
	case reg >= 0x60 && reg < 0x70:
		op.dr = val & 0x1F
	case reg >= 0x70 && reg < 0x80:
		op.sr = val & 0x1F
	case reg >= 0x80 && reg < 0x90:
		op.sl = (val >> 4) & 0x0F
		op.rr = val & 0x0F
	case reg >= 0x90 && reg < 0xA0:
		op.ssgEG = val & 0x0F
	case reg >= 0xA0 && reg < 0xA3: // F-num low, commits the pending high/block atomically
		c.fnum = (c.pendingHigh << 8) | uint16(val)
		c.block = c.pendingBlock
		y.recomputePhaseIncrements(ch)
	case reg >= 0xA4 && reg < 0xA7: // F-num high / block, latched only
		c.pendingHigh = uint16(val & 0x07)
		c.pendingBlock = (val >> 3) & 0x07
	case reg >= 0xA8 && reg < 0xAB: // Channel 3 special-mode per-operator F-num low
		idx := int(reg - 0xA8)
		c.fnum3[idx] = (c.fnum3[idx] & 0x0700) | uint16(val)
	case reg >= 0xAC && reg < 0xAF: // Channel 3 special-mode per-operator F-num high/block
		idx := int(reg - 0xAC)
		c.fnum3[idx] = (c.fnum3[idx] &^ 0x0700) | uint16(val&0x07)<<8
		c.block3[idx] = (val >> 3) & 0x07
	case reg >= 0xB0 && reg < 0xB3:
		c.algorithm = val & 0x07
		c.feedback = (val >> 3) & 0x07
	case reg >= 0xB4 && reg < 0xB7:
		c.panL = val&0x80 != 0
		c.panR = val&0x40 != 0
		c.ams = (val >> 4) & 0x03
		c.pms = val & 0x07
	}
}

// EffectiveFnum returns the channel's currently-committed F-num/block pair,
// the observer the spec's F-num latch scenario checks.
func (y *YM2612) EffectiveFnum(ch int) (fnum uint16, block uint8) {
	return y.Ch[ch].fnum, y.Ch[ch].block
}
