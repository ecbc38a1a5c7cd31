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

package console

import "github.com/mdcore/mdcore/savestate"

// SaveState serializes the machine's full state per spec §6: "A versioned,
// self-describing record containing: scheduler cycle counter, every
// component's full internal state." The section order below is also the
// order UnmarshalState reads them back in.
func (c *Console) SaveState() []byte {
	w := savestate.NewWriter()
	c.Scheduler.MarshalState(w)
	c.M68K.MarshalState(w)
	c.Z80.MarshalState(w)
	c.VDP.MarshalState(w)
	c.YM.MarshalState(w)
	c.PSG.MarshalState(w)
	c.Bus.MarshalState(w)
	c.Cart.MarshalState(w)
	c.Pad1.MarshalState(w)
	c.Pad2.MarshalState(w)
	return w.Bytes()
}

// LoadState restores a record previously produced by SaveState onto this
// Console. Per spec §6's round-trip contract, stepping the restored machine
// must be bit-identical to continuing the machine the record was taken
// from; a malformed or version-mismatched record leaves the Console
// untouched and returns a state fault (spec §7).
func (c *Console) LoadState(data []byte) error {
	r, err := savestate.NewReader(data)
	if err != nil {
		return err
	}

	var next Console
	next.Cart = c.Cart
	next.Region = c.Region
	next.build()

	next.Scheduler.UnmarshalState(r)
	next.M68K.UnmarshalState(r)
	next.Z80.UnmarshalState(r)
	next.VDP.UnmarshalState(r)
	next.YM.UnmarshalState(r)
	next.PSG.UnmarshalState(r)
	next.Bus.UnmarshalState(r)
	next.Cart.UnmarshalState(r)
	next.Pad1.UnmarshalState(r)
	next.Pad2.UnmarshalState(r)

	if r.Err() != nil {
		return r.Err()
	}

	*c = next
	return nil
}
