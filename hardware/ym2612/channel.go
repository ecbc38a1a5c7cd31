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

// delayedEdge names an algorithm's modulation edge that must see the
// modulating operator's previous-sample output rather than its current
// one, per spec §4.6 "a table of 'delayed' modulation edges".
type delayedEdge struct{ from, to int }

var delayedEdges = map[uint8][]delayedEdge{
	0: {{1, 2}},         // op2 -> op3
	1: {{0, 2}, {1, 2}}, // op1 -> op3, op2 -> op3
	2: {{1, 2}},         // op2 -> op3
	3: {{1, 3}},         // op2 -> op4
	5: {{0, 2}},         // op1 -> op3
}

func isDelayed(alg uint8, from, to int) bool {
	for _, e := range delayedEdges[alg] {
		if e.from == from && e.to == to {
			return true
		}
	}
	return false
}

// sampleChannel evaluates all four operators in Channel.Op's index order
// (op1..op4; writeChannelReg maps the register layout's 1,3,2,4 slots onto
// it) for one internal sample and returns the channel's carrier sum.
func (y *YM2612) sampleChannel(ch int) int32 {
	c := &y.Ch[ch]

	for i := range c.Op {
		c.Op[i].envStep()
	}

	fb := int32(0)
	if c.feedback > 0 {
		fb = (c.Op[0].lastOut + c.Op[0].prevOut) >> (10 - c.feedback)
	}

	var out [4]int32
	modIn := func(op int) int32 {
		var m int32
		switch c.algorithm {
		case 0:
			if op == 1 {
				m = out[0]
			} else if op == 2 {
				m = modSample(c, 1, out[1])
			} else if op == 3 {
				m = out[2]
			}
		case 1:
			if op == 2 {
				m = modSample(c, 0, out[0]) + modSample(c, 1, out[1])
			} else if op == 3 {
				m = out[2]
			}
		case 2:
			if op == 2 {
				m = out[1] + modSample(c, 1, out[1])
			} else if op == 3 {
				m = out[2]
			}
		case 3:
			if op == 1 {
				m = out[0]
			} else if op == 3 {
				m = out[1] + modSample(c, 1, out[1])
			}
		case 4:
			if op == 1 {
				m = out[0]
			} else if op == 3 {
				m = out[2]
			}
		case 5:
			if op == 1 {
				m = modSample(c, 0, out[0])
			} else if op == 2 {
				m = modSample(c, 0, out[0])
			} else if op == 3 {
				m = modSample(c, 0, out[0])
			}
		case 6:
			if op == 1 {
				m = out[0]
			}
		case 7:
		}
		return m
	}

	out[0] = c.Op[0].evaluate(fb)
	out[1] = c.Op[1].evaluate(modIn(1))
	out[2] = c.Op[2].evaluate(modIn(2))
	out[3] = c.Op[3].evaluate(modIn(3))

	switch c.algorithm {
	case 0, 1, 2:
		return out[3]
	case 3, 4:
		return out[1] + out[3]
	case 5:
		return out[1] + out[2] + out[3]
	case 6:
		return out[1] + out[2] + out[3]
	default: // 7: all four are carriers
		return out[0] + out[1] + out[2] + out[3]
	}
}

// modSample returns opIdx's previous-sample output instead of its current
// one when the channel's algorithm marks that edge as delayed.
func modSample(c *Channel, opIdx int, current int32) int32 {
	if isDelayed(c.algorithm, opIdx, opIdx+1) {
		return c.Op[opIdx].prevOut
	}
	return current
}
