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

package scheduler

import "github.com/mdcore/mdcore/savestate"

// MarshalState appends the master-cycle counter named explicitly in spec
// §6 and every component's fractional clock debt, so a restored core
// resumes on the same sub-tick phase it was saved at.
func (s *Scheduler) MarshalState(w *savestate.Writer) {
	w.WriteUint64(s.masterCycle)
	w.WriteUint32(uint32(s.debtZ80))
	w.WriteUint32(uint32(s.debtPixel))
	w.WriteUint32(uint32(s.debtYM))
	w.WriteUint32(uint32(s.debtPSG))
}

// UnmarshalState restores the scheduler's clock previously written by
// MarshalState.
func (s *Scheduler) UnmarshalState(r *savestate.Reader) {
	s.masterCycle = r.ReadUint64()
	s.debtZ80 = int(r.ReadUint32())
	s.debtPixel = int(r.ReadUint32())
	s.debtYM = int(r.ReadUint32())
	s.debtPSG = int(r.ReadUint32())
}
